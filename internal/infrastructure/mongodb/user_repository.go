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

const usersCollection = "users"

type UserRepository struct {
	client *Client
}

func NewUserRepository(client *Client) *UserRepository {
	return &UserRepository{client: client}
}

// EnsureIndexes creates the unique email index. Called once at startup.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	col, err := r.client.Collection(ctx, usersCollection)
	if err != nil {
		return err
	}
	_, err = col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	col, err := r.client.Collection(ctx, usersCollection)
	if err != nil {
		return err
	}

	err = col.FindOne(ctx, bson.M{"email": u.Email}).Err()
	if err == nil {
		return repository.ErrDuplicateEmail
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	_, err = col.InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		// Lost a race with a concurrent registration for the same email.
		return repository.ErrDuplicateEmail
	}
	return err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	col, err := r.client.Collection(ctx, usersCollection)
	if err != nil {
		return nil, err
	}
	u := &entity.User{}
	if err := col.FindOne(ctx, bson.M{"email": email}).Decode(u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	col, err := r.client.Collection(ctx, usersCollection)
	if err != nil {
		return nil, err
	}
	u := &entity.User{}
	if err := col.FindOne(ctx, bson.M{"_id": oid}).Decode(u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
