package application

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oksasatya/task-management-api/internal/domain/entity"
	repo "github.com/oksasatya/task-management-api/internal/domain/repository"
)

// In-memory repositories mirroring the MongoDB implementations' contracts.

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
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

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
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

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
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

type memTaskRepo struct {
	mu    sync.Mutex
	tasks map[string]*entity.Task
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{tasks: make(map[string]*entity.Task)}
}

func (r *memTaskRepo) Create(_ context.Context, t *entity.Task) error {
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

func (r *memTaskRepo) ListByOwner(_ context.Context, ownerID primitive.ObjectID) ([]entity.Task, error) {
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

func (r *memTaskRepo) find(id string, ownerID primitive.ObjectID) *entity.Task {
	t, ok := r.tasks[id]
	if !ok || t.UserID != ownerID {
		return nil
	}
	return t
}

func (r *memTaskRepo) GetByID(_ context.Context, id string, ownerID primitive.ObjectID) (*entity.Task, error) {
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

func (r *memTaskRepo) Update(_ context.Context, id string, ownerID primitive.ObjectID, fields repo.TaskUpdate) (*entity.Task, error) {
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

func (r *memTaskRepo) Delete(_ context.Context, id string, ownerID primitive.ObjectID) (bool, error) {
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

var (
	_ repo.UserRepository = (*memUserRepo)(nil)
	_ repo.TaskRepository = (*memTaskRepo)(nil)
)
