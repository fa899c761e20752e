package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	db "github.com/mateusfonseca/dorsetToDo/internal/adapter/database/mongo"
	"github.com/mateusfonseca/dorsetToDo/internal/core/domain"
	"github.com/mateusfonseca/dorsetToDo/internal/core/port"
)

type TodoRepository struct {
	col *mongo.Collection
}

func NewTodoRepository(database *mongo.Database) port.TodoRepository {
	return &TodoRepository{col: database.Collection(db.TodosCollection)}
}

func (r *TodoRepository) GetByID(ctx context.Context, id string) (domain.Todo, error) {
	oid, err := primitive.ObjectIDFromHex(id)

	if err != nil {
		return domain.Todo{}, domain.ErrNotFound
	}

	var todo domain.Todo

	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&todo); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Todo{}, domain.ErrNotFound
		}

		return domain.Todo{}, fmt.Errorf("todos find by id: %w", err)
	}

	return todo, nil
}

func (r *TodoRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Todo, error) {
	oid, err := primitive.ObjectIDFromHex(ownerID)

	if err != nil {
		return nil, domain.ErrNotFound
	}

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"owner_id": oid}, opts)

	if err != nil {
		return nil, fmt.Errorf("todos list: %w", err)
	}

	defer cur.Close(ctx)

	todos := make([]domain.Todo, 0)

	if err := cur.All(ctx, &todos); err != nil {
		return nil, fmt.Errorf("todos decode: %w", err)
	}

	return todos, nil
}

func (r *TodoRepository) Create(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	res, err := r.col.InsertOne(ctx, todo)

	if err != nil {
		return domain.Todo{}, fmt.Errorf("todos insert: %w", err)
	}

	todo.ID = res.InsertedID.(primitive.ObjectID)

	return todo, nil
}

func (r *TodoRepository) Update(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": todo.ID, "owner_id": todo.OwnerID},
		bson.M{"$set": bson.M{
			"content":    todo.Content,
			"degree":     todo.Degree,
			"updated_at": todo.UpdatedAt,
		}},
	)

	if err != nil {
		return domain.Todo{}, fmt.Errorf("todos update: %w", err)
	}

	if res.MatchedCount == 0 {
		return domain.Todo{}, domain.ErrNotFound
	}

	return todo, nil
}

func (r *TodoRepository) ToggleDone(ctx context.Context, id, ownerID string) error {
	oid, err := primitive.ObjectIDFromHex(id)

	if err != nil {
		return domain.ErrNotFound
	}

	owner, err := primitive.ObjectIDFromHex(ownerID)

	if err != nil {
		return domain.ErrNotFound
	}

	// Aggregation-pipeline update: the negation happens inside the store,
	// so concurrent togglers never read a stale flag.
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid, "owner_id": owner},
		bson.A{bson.M{"$set": bson.M{
			"done":       bson.M{"$not": "$done"},
			"updated_at": time.Now(),
		}}},
	)

	if err != nil {
		return fmt.Errorf("todos toggle: %w", err)
	}

	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *TodoRepository) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)

	if err != nil {
		return domain.ErrNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})

	if err != nil {
		return fmt.Errorf("todos delete: %w", err)
	}

	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *TodoRepository) DeleteByOwner(ctx context.Context, ownerID string) error {
	oid, err := primitive.ObjectIDFromHex(ownerID)

	if err != nil {
		return domain.ErrNotFound
	}

	if _, err := r.col.DeleteMany(ctx, bson.M{"owner_id": oid}); err != nil {
		return fmt.Errorf("todos delete by owner: %w", err)
	}

	return nil
}
