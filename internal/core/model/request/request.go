package request

type SignUpRequest struct {
	Email    string `form:"email" json:"email,omitempty" validate:"required,email,max=255"`
	Name     string `form:"name" json:"name,omitempty" validate:"required,min=2,max=100"`
	Password string `form:"password" json:"password,omitempty" validate:"required,min=6,max=100"`
}

type LoginRequest struct {
	Email    string `form:"email" json:"email,omitempty" validate:"required,email,max=255"`
	Password string `form:"password" json:"password,omitempty" validate:"required,min=6,max=100"`
	Remember string `form:"remember" json:"remember,omitempty"`
}

// ProfileRequest updates the caller's own account. An empty Password means
// the stored hash is kept as is.
type ProfileRequest struct {
	Email    string `form:"email" json:"email,omitempty" validate:"required,email,max=255"`
	Name     string `form:"name" json:"name,omitempty" validate:"required,min=2,max=100"`
	Password string `form:"password" json:"password,omitempty" validate:"omitempty,min=6,max=100"`
}

type TodoRequest struct {
	Content string `form:"content" json:"content,omitempty" validate:"required,max=1000"`
	Degree  string `form:"degree" json:"degree,omitempty" validate:"max=100"`
}
