package repository

import (
	"context"

	"travel-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type userRepository struct {
	coll collection[models.User]
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{coll: collection[models.User]{c: db.Collection("users")}}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.coll.insert(ctx, user)
}

func (r *userRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return r.coll.findByID(ctx, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.coll.findOne(ctx, bson.M{"email": email})
}
