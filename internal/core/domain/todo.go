package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Todo struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Content   string             `bson:"content" validate:"required,max=1000"`
	Degree    string             `bson:"degree" validate:"max=100"`
	Done      bool               `bson:"done"`
	OwnerID   primitive.ObjectID `bson:"owner_id"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (t *Todo) HexID() string {
	return t.ID.Hex()
}

func (t *Todo) BelongsTo(userID string) bool {
	return t.OwnerID.Hex() == userID
}
