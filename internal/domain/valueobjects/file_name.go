package valueobjects

import (
	"errors"
	"strings"
	"unicode"
)

var ErrInvalidFileName = errors.New("invalid file name")

// NormalizeFileName apara espaços do nome original e recusa nome vazio ou com
// caracteres de controle. O resto é mantido como veio: o nome só volta ao
// navegador como texto JSON ou dentro do Content-Disposition codificado.
func NormalizeFileName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", ErrInvalidFileName
	}
	if strings.IndexFunc(name, unicode.IsControl) >= 0 {
		return "", ErrInvalidFileName
	}
	return name, nil
}
