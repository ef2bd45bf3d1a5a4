package entities

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Client é o tenant cujos documentos ficam segregados dos demais
type Client struct {
	ID        string
	Name      string
	CreatedAt time.Time

	// DocumentCount só é preenchido em listagens
	DocumentCount int64
}

// Validate valida regras de negócio da entidade Client
func (c *Client) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Name, validation.Required, validation.Length(1, 200)),
	)
}

// ClientMember concede a um usuário STAFF visibilidade sobre um Client
type ClientMember struct {
	ID        string
	ClientID  string
	UserID    string
	CreatedAt time.Time

	// User é carregado junto na listagem de membros
	User *User
}

// ClientFolder é um rótulo de pasta, possivelmente vazio, de um Client
type ClientFolder struct {
	ID        string
	ClientID  string
	Name      string
	CreatedAt time.Time
}
