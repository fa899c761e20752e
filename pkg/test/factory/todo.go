package factory

import (
	fab "github.com/Goldziher/fabricator"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mateusfonseca/dorsetToDo/internal/core/domain"
)

func NewTodo(customData ...map[string]any) domain.Todo {
	instance := fab.New(domain.Todo{})

	data := merge(customData)

	if _, ok := data["ID"]; !ok {
		data["ID"] = primitive.NewObjectID()
	}

	if _, ok := data["Done"]; !ok {
		data["Done"] = false
	}

	return instance.Build(data)
}

// merge flattens the override maps into one: Build honors a single map, so
// defaults and custom data must travel together.
func merge(customData []map[string]any) map[string]any {
	data := make(map[string]any)

	for _, m := range customData {
		for k, v := range m {
			data[k] = v
		}
	}

	return data
}
