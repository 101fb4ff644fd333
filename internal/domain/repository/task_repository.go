package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oksasatya/task-management-api/internal/domain/entity"
)

// TaskUpdate carries a partial set of task fields; nil fields are left
// untouched.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *entity.TaskStatus
}

// Empty reports whether no field is set.
func (u TaskUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Status == nil
}

// TaskRepository defines task database operations. All single-task reads and
// writes are scoped by (task id, owner id); an ownership mismatch is
// indistinguishable from nonexistence.
type TaskRepository interface {
	// Create persists a new task, assigning its id and creation timestamp.
	Create(ctx context.Context, t *entity.Task) error
	ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]entity.Task, error)
	GetByID(ctx context.Context, id string, ownerID primitive.ObjectID) (*entity.Task, error)
	// Update applies the set fields and refreshes the updated timestamp.
	// An empty update returns the current task unchanged.
	Update(ctx context.Context, id string, ownerID primitive.ObjectID, fields TaskUpdate) (*entity.Task, error)
	// Delete reports whether a matching task was removed; a miss is not an
	// error.
	Delete(ctx context.Context, id string, ownerID primitive.ObjectID) (bool, error)
}
