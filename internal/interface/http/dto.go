package handlers

import (
	"time"

	"github.com/oksasatya/task-management-api/internal/domain/entity"
)

// Response shapes. Timestamps marshal as RFC 3339; a task's updated_at stays
// null until its first real update.

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID.Hex(),
		Email:     u.Email,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type TaskResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      entity.TaskStatus `json:"status"`
	UserID      string            `json:"user_id"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   *time.Time        `json:"updated_at"`
}

func newTaskResponse(t *entity.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID.Hex(),
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		UserID:      t.UserID.Hex(),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func newTaskListResponse(tasks []entity.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, newTaskResponse(&tasks[i]))
	}
	return out
}
