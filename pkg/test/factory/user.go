package factory

import (
	fab "github.com/Goldziher/fabricator"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/mateusfonseca/dorsetToDo/internal/core/domain"
)

// NewUser builds a user with a known password ("12345678") unless the
// custom data overrides the hash.
func NewUser(customData ...map[string]any) domain.User {
	instance := fab.New(domain.User{})

	data := merge(customData)

	if _, ok := data["EncryptedPassword"]; !ok {
		encryptedPassword, _ := bcrypt.GenerateFromPassword([]byte("12345678"), bcrypt.DefaultCost)
		data["EncryptedPassword"] = string(encryptedPassword)
	}

	if _, ok := data["ID"]; !ok {
		data["ID"] = primitive.NewObjectID()
	}

	return instance.Build(data)
}
