package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID               int        `json:"id"`
	Name             string     `json:"name"`
	Lastname         string     `json:"lastname"`
	Email            string     `json:"email"`
	PasswordHash     string     `json:"-"`
	Active           bool       `json:"active"`
	RoleID           int        `json:"role_id"`
	AvatarURL        *string    `json:"avatar_url"`
	Deleted          bool       `json:"deleted"`
	DeletedAt        *time.Time `json:"deleted_at"`
	LinkedBusinesses []string   `json:"linked_businesses"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// CreateUserRequest é o corpo aceito no cadastro de usuários. A senha chega
// em texto e nunca volta na resposta
type CreateUserRequest struct {
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   int    `json:"role_id,omitempty"`
}

type UpdateUserRequest struct {
	ID        int     `json:"id"`
	Name      *string `json:"name,omitempty"`
	Lastname  *string `json:"lastname,omitempty"`
	Email     *string `json:"email,omitempty"`
	Active    *bool   `json:"active,omitempty"`
	RoleID    *int    `json:"role_id,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	Deleted   *bool   `json:"deleted,omitempty"`
}

type Claims struct {
	UserID         int
	UserName       string
	UserLastname   string
	UserEmail      string
	UserActive     bool
	UserRoleID     int
	UserAvatarURL  *string
	UserBusinesses []string
	jwt.RegisteredClaims
}
