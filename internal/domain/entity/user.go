package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User usuario del API (empleado que opera contratos).
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RefreshToken token de renovación persistido; se revoca al rotar o cerrar sesión.
type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt time.Time
	IsRevoked bool
	CreatedAt time.Time
}

// Usable indica si el token no está revocado ni vencido en now.
func (t *RefreshToken) Usable(now time.Time) bool {
	return !t.IsRevoked && t.ExpiresAt.After(now)
}
