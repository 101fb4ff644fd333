package handlers

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oksasatya/task-management-api/internal/application"
	"github.com/oksasatya/task-management-api/internal/domain/entity"
	repo "github.com/oksasatya/task-management-api/internal/domain/repository"
	"github.com/oksasatya/task-management-api/internal/interface/middleware"
	"github.com/oksasatya/task-management-api/pkg/helpers"
	"github.com/oksasatya/task-management-api/pkg/validation"
)

// newTestRouter wires real services and handlers over in-memory repositories,
// mirroring the route layout from the router modules.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	jwtm, err := helpers.NewJWTManager("test-secret", "HS256", time.Hour)
	require.NoError(t, err)

	authSvc := application.NewAuthService(newStubUserRepo(), jwtm, logger)
	taskSvc := application.NewTaskService(newStubTaskRepo(), logger)

	authHandler := NewAuthHandler(authSvc, logger)
	taskHandler := NewTaskHandler(taskSvc, logger)

	r := gin.New()
	api := r.Group("/api/v1")
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	tasks := api.Group("/tasks")
	tasks.Use(middleware.Auth(authSvc))
	{
		tasks.POST("/", taskHandler.Create)
		tasks.GET("/", taskHandler.List)
		tasks.GET("/:id", taskHandler.Get)
		tasks.PUT("/:id", taskHandler.Update)
		tasks.DELETE("/:id", taskHandler.Delete)
	}
	return r
}

// Stub repositories with the same contracts as the MongoDB implementations.

type stubUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*entity.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ex := range r.users {
		if ex.Email == u.Email {
			return repo.ErrDuplicateEmail
		}
	}
	u.ID = primitive.NewObjectID()
	u.CreatedAt = time.Now().UTC()
	cp := *u
	r.users[u.ID.Hex()] = &cp
	return nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repo.ErrNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

type stubTaskRepo struct {
	mu    sync.Mutex
	tasks map[string]*entity.Task
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{tasks: make(map[string]*entity.Task)}
}

func (r *stubTaskRepo) Create(_ context.Context, t *entity.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t.ID = primitive.NewObjectID()
	if t.Status == "" {
		t.Status = entity.StatusPending
	}
	t.CreatedAt = time.Now().UTC()
	cp := *t
	r.tasks[t.ID.Hex()] = &cp
	return nil
}

func (r *stubTaskRepo) ListByOwner(_ context.Context, ownerID primitive.ObjectID) ([]entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Task, 0)
	for _, t := range r.tasks {
		if t.UserID == ownerID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *stubTaskRepo) find(id string, ownerID primitive.ObjectID) *entity.Task {
	t, ok := r.tasks[id]
	if !ok || t.UserID != ownerID {
		return nil
	}
	return t
}

func (r *stubTaskRepo) GetByID(_ context.Context, id string, ownerID primitive.ObjectID) (*entity.Task, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repo.ErrNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	t := r.find(id, ownerID)
	if t == nil {
		return nil, repo.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *stubTaskRepo) Update(_ context.Context, id string, ownerID primitive.ObjectID, fields repo.TaskUpdate) (*entity.Task, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repo.ErrNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	t := r.find(id, ownerID)
	if t == nil {
		return nil, repo.ErrNotFound
	}
	if fields.Empty() {
		cp := *t
		return &cp, nil
	}
	if fields.Title != nil {
		t.Title = *fields.Title
	}
	if fields.Description != nil {
		t.Description = *fields.Description
	}
	if fields.Status != nil {
		t.Status = *fields.Status
	}
	now := time.Now().UTC()
	t.UpdatedAt = &now
	cp := *t
	return &cp, nil
}

func (r *stubTaskRepo) Delete(_ context.Context, id string, ownerID primitive.ObjectID) (bool, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return false, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.find(id, ownerID) == nil {
		return false, nil
	}
	delete(r.tasks, id)
	return true, nil
}
