package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	Email             string             `bson:"email" validate:"required,email,max=255"`
	Name              string             `bson:"name" validate:"required,min=2,max=100"`
	EncryptedPassword string             `bson:"password" validate:"required"`
	CreatedAt         time.Time          `bson:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at"`
}

func (u *User) HexID() string {
	return u.ID.Hex()
}
