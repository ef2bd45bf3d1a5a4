package entities

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/rafabene/docrepo-backend/internal/domain/valueobjects"
)

var (
	ErrInvalidUserData = errors.New("invalid user data")
)

// User representa um usuário do sistema (ADMIN ou STAFF)
type User struct {
	ID           string
	Email        valueobjects.Email
	Name         *string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// IsAdmin verifica se o usuário é admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasPermission verifica se o usuário tem uma permissão
func (u *User) HasPermission(permission Permission) bool {
	return u.Role.HasPermission(permission)
}

// DisplayName retorna o nome ou, na falta dele, o email
func (u *User) DisplayName() string {
	if u.Name != nil && *u.Name != "" {
		return *u.Name
	}
	return u.Email.String()
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	return validation.ValidateStruct(u,
		validation.Field(&u.Email, validation.By(func(value interface{}) error {
			if value.(valueobjects.Email).String() == "" {
				return errors.New("email is required")
			}
			return nil
		})),
		validation.Field(&u.Name, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&u.PasswordHash, validation.Required),
		validation.Field(&u.Role, validation.Required, validation.In(RoleAdmin, RoleStaff)),
	)
}
