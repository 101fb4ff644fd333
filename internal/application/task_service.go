package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oksasatya/task-management-api/internal/domain/entity"
	repo "github.com/oksasatya/task-management-api/internal/domain/repository"
)

// ErrTaskNotFound covers a missing task, a malformed id, and a task owned by
// someone else, uniformly.
var ErrTaskNotFound = errors.New("task not found")

// TaskService is thin orchestration over the task repository; every call is
// scoped to the authenticated owner's id.
type TaskService struct {
	Tasks  repo.TaskRepository
	Logger *logrus.Logger
}

func NewTaskService(tasks repo.TaskRepository, logger *logrus.Logger) *TaskService {
	return &TaskService{Tasks: tasks, Logger: logger}
}

type CreateTaskInput struct {
	Title       string
	Description string
	Status      entity.TaskStatus
}

func (s *TaskService) Create(ctx context.Context, ownerID primitive.ObjectID, in CreateTaskInput) (*entity.Task, error) {
	status := in.Status
	if status == "" {
		status = entity.StatusPending
	}
	t := &entity.Task{
		Title:       in.Title,
		Description: in.Description,
		Status:      status,
		UserID:      ownerID,
	}
	if err := s.Tasks.Create(ctx, t); err != nil {
		s.Logger.WithError(err).WithField("user_id", ownerID.Hex()).Error("task creation failed")
		return nil, err
	}
	return t, nil
}

func (s *TaskService) List(ctx context.Context, ownerID primitive.ObjectID) ([]entity.Task, error) {
	return s.Tasks.ListByOwner(ctx, ownerID)
}

func (s *TaskService) Get(ctx context.Context, id string, ownerID primitive.ObjectID) (*entity.Task, error) {
	t, err := s.Tasks.GetByID(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *TaskService) Update(ctx context.Context, id string, ownerID primitive.ObjectID, fields repo.TaskUpdate) (*entity.Task, error) {
	t, err := s.Tasks.Update(ctx, id, ownerID, fields)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, id string, ownerID primitive.ObjectID) error {
	deleted, err := s.Tasks.Delete(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTaskNotFound
	}
	return nil
}
