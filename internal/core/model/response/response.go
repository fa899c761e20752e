package response

import "time"

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email,omitempty"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

type TodoResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content,omitempty"`
	Degree    string    `json:"degree,omitempty"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PageResponse is the model handed to the presentation layer: the page's
// data plus any flash messages queued by a previous request.
type PageResponse struct {
	Data    any      `json:"data,omitempty"`
	Flashes []string `json:"flashes,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ResponseError struct {
	Code    string            `json:"code"`
	Errors  []ValidationError `json:"errors"`
	Details any               `json:"details,omitempty"`
}

type ErrorResponse struct {
	Error ResponseError `json:"error"`
}
