package entity

import "time"

// User representa un usuario. PasswordHash es bcrypt; el texto plano nunca se persiste ni se devuelve.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
