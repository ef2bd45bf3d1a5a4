// Package sanitize remove marcação de rótulos de texto livre
// (nomes de cliente, pasta e usuário)
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/rafabene/docrepo-backend/internal/domain/ports"
)

var _ ports.TextSanitizer = (*Sanitizer)(nil)

// Sanitizer é seguro para uso concorrente
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer usa a política estrita: nenhum HTML sobrevive
func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// Clean remove tags e devolve o texto sem escapes HTML e sem espaços nas pontas
func (s *Sanitizer) Clean(value string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(value)))
}
