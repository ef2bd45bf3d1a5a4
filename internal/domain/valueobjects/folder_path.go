package valueobjects

import "strings"

// NormalizeFolderPath limpa o rótulo de pasta informado no upload.
// Retorna nil para a raiz. Subpastas usam "/" como separador.
func NormalizeFolderPath(raw string) *string {
	parts := strings.Split(strings.TrimSpace(raw), "/")
	clean := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || p == "." || p == ".." {
			continue
		}
		clean = append(clean, p)
	}

	if len(clean) == 0 {
		return nil
	}

	folder := strings.Join(clean, "/")
	return &folder
}
