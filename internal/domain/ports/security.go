package ports

import "time"

// PasswordHasher abstrai a primitiva de hash de senha
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// SessionIdentity é o que viaja dentro do token de sessão
type SessionIdentity struct {
	UserID string
	Role   string
}

// SessionTokens emite e verifica tokens de sessão assinados
type SessionTokens interface {
	Issue(identity SessionIdentity) (token string, expiresAt time.Time, err error)
	Verify(token string) (*SessionIdentity, error)
}

// TextSanitizer limpa rótulos de texto livre antes de persistir
type TextSanitizer interface {
	Clean(value string) string
}
