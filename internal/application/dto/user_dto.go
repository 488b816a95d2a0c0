package dto

import "time"

// CreateUserRequest forma completa sin id (POST y PUT). Password en texto, se hashea en el use case.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// PatchUserRequest forma parcial; el password no se cambia por PATCH.
type PatchUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

// IsEmpty indica que no se informó ningún campo.
func (r PatchUserRequest) IsEmpty() bool {
	return r.Username == nil && r.Email == nil
}

// UserQuery filtros del listado (?username=&email=).
type UserQuery struct {
	Username string `query:"username"`
	Email    string `query:"email"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LoginRequest credenciales.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token JWT + usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
