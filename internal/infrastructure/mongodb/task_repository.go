package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/oksasatya/task-management-api/internal/domain/entity"
	"github.com/oksasatya/task-management-api/internal/domain/repository"
)

const tasksCollection = "tasks"

type TaskRepository struct {
	client *Client
}

func NewTaskRepository(client *Client) *TaskRepository {
	return &TaskRepository{client: client}
}

func (r *TaskRepository) Create(ctx context.Context, t *entity.Task) error {
	col, err := r.client.Collection(ctx, tasksCollection)
	if err != nil {
		return err
	}
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}
	if t.Status == "" {
		t.Status = entity.StatusPending
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	_, err = col.InsertOne(ctx, t)
	return err
}

func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]entity.Task, error) {
	col, err := r.client.Collection(ctx, tasksCollection)
	if err != nil {
		return nil, err
	}
	cur, err := col.Find(ctx, bson.M{"user_id": ownerID})
	if err != nil {
		return nil, err
	}
	tasks := make([]entity.Task, 0)
	if err := cur.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id string, ownerID primitive.ObjectID) (*entity.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	return r.getByOID(ctx, oid, ownerID)
}

func (r *TaskRepository) getByOID(ctx context.Context, oid, ownerID primitive.ObjectID) (*entity.Task, error) {
	col, err := r.client.Collection(ctx, tasksCollection)
	if err != nil {
		return nil, err
	}
	t := &entity.Task{}
	if err := col.FindOne(ctx, bson.M{"_id": oid, "user_id": ownerID}).Decode(t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *TaskRepository) Update(ctx context.Context, id string, ownerID primitive.ObjectID, fields repository.TaskUpdate) (*entity.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	set := bson.M{}
	if fields.Title != nil {
		set["title"] = *fields.Title
	}
	if fields.Description != nil {
		set["description"] = *fields.Description
	}
	if fields.Status != nil {
		set["status"] = *fields.Status
	}
	// Nothing to change: hand back the current document without touching
	// updated_at.
	if len(set) == 0 {
		return r.getByOID(ctx, oid, ownerID)
	}
	set["updated_at"] = time.Now().UTC()

	col, err := r.client.Collection(ctx, tasksCollection)
	if err != nil {
		return nil, err
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	t := &entity.Task{}
	err = col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "user_id": ownerID},
		bson.M{"$set": set},
		opts,
	).Decode(t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string, ownerID primitive.ObjectID) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	col, err := r.client.Collection(ctx, tasksCollection)
	if err != nil {
		return false, err
	}
	res, err := col.DeleteOne(ctx, bson.M{"_id": oid, "user_id": ownerID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

var _ repository.TaskRepository = (*TaskRepository)(nil)
