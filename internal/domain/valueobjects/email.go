package valueobjects

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail = errors.New("invalid email format")

	emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)
)

// Email é um value object que garante que emails sejam sempre válidos
// e normalizados (minúsculas, sem espaços nas pontas)
type Email struct {
	value string
}

// NewEmail cria um novo Email validado
func NewEmail(email string) (Email, error) {
	email = NormalizeEmail(email)

	if !isValidEmail(email) {
		return Email{}, ErrInvalidEmail
	}

	return Email{value: email}, nil
}

// NormalizeEmail aplica a mesma normalização usada no login e nos cadastros
func NormalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

// String retorna o valor do email
func (e Email) String() string {
	return e.value
}

// isValidEmail valida o formato do email
func isValidEmail(email string) bool {
	if len(email) < 3 || len(email) > 254 {
		return false
	}
	return emailPattern.MatchString(email)
}
