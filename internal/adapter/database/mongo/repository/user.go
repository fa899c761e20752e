package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	db "github.com/mateusfonseca/dorsetToDo/internal/adapter/database/mongo"
	"github.com/mateusfonseca/dorsetToDo/internal/core/domain"
	"github.com/mateusfonseca/dorsetToDo/internal/core/port"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(database *mongo.Database) port.UserRepository {
	return &UserRepository{col: database.Collection(db.UsersCollection)}
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)

	if err != nil {
		return domain.User{}, domain.ErrNotFound
	}

	var user domain.User

	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.User{}, domain.ErrNotFound
		}

		return domain.User{}, fmt.Errorf("users find by id: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var user domain.User

	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.User{}, domain.ErrNotFound
		}

		return domain.User{}, fmt.Errorf("users find by email: %w", err)
	}

	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	res, err := r.col.InsertOne(ctx, user)

	if err != nil {
		// The unique index backs the one-document-per-email invariant
		// even when two signups race past the service's pre-check.
		if mongo.IsDuplicateKeyError(err) {
			return domain.User{}, domain.ErrDuplicateEmail
		}

		return domain.User{}, fmt.Errorf("users insert: %w", err)
	}

	user.ID = res.InsertedID.(primitive.ObjectID)

	return user, nil
}

func (r *UserRepository) Update(ctx context.Context, user domain.User) (domain.User, error) {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": user.ID}, bson.M{"$set": bson.M{
		"email":      user.Email,
		"name":       user.Name,
		"password":   user.EncryptedPassword,
		"updated_at": user.UpdatedAt,
	}})

	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.User{}, domain.ErrDuplicateEmail
		}

		return domain.User{}, fmt.Errorf("users update: %w", err)
	}

	if res.MatchedCount == 0 {
		return domain.User{}, domain.ErrNotFound
	}

	return user, nil
}

func (r *UserRepository) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)

	if err != nil {
		return domain.ErrNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})

	if err != nil {
		return fmt.Errorf("users delete: %w", err)
	}

	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}

	return nil
}
