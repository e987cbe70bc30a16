// File: database/repository/user/interface.go
package userRepo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"doctorsportal/database"
	"doctorsportal/models"
)

// ErrNotFound is returned when a user lookup misses.
var ErrNotFound = mongo.ErrNoDocuments

// UserRepository stores portal accounts, keyed by email.
type UserRepository interface {
	Insert(ctx context.Context, user models.User) (string, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	GrantAdminByID(ctx context.Context, id string) error
}

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo() UserRepository {
	repo := &MongoUserRepo{coll: database.DB().Collection("users")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}
