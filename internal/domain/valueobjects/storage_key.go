package valueobjects

import (
	"errors"
	"path"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidStorageKey = errors.New("invalid storage key")
)

// maxExtensionLength limita extensões absurdas vindas do nome original
const maxExtensionLength = 16

// StorageKey identifica os bytes de um documento no object storage.
// Formato: {clientId}/{uuid}{ext}. É independente do nome legível do arquivo.
type StorageKey struct {
	value string
}

// NewStorageKey gera uma chave nova e globalmente única para o cliente
func NewStorageKey(clientID, originalName string) StorageKey {
	return StorageKey{value: clientID + "/" + uuid.NewString() + Extension(originalName)}
}

// ParseStorageKey valida uma chave informada pelo navegador no upload direto.
// A chave precisa pertencer ao cliente indicado.
func ParseStorageKey(clientID, key string) (StorageKey, error) {
	prefix := clientID + "/"
	if clientID == "" || !strings.HasPrefix(key, prefix) {
		return StorageKey{}, ErrInvalidStorageKey
	}

	rest := strings.TrimPrefix(key, prefix)
	if rest == "" || strings.Contains(rest, "/") || strings.Contains(rest, "..") {
		return StorageKey{}, ErrInvalidStorageKey
	}

	id := strings.TrimSuffix(rest, path.Ext(rest))
	if _, err := uuid.Parse(id); err != nil {
		return StorageKey{}, ErrInvalidStorageKey
	}

	return StorageKey{value: key}, nil
}

// String retorna o valor da chave
func (k StorageKey) String() string {
	return k.value
}

// Extension extrai a extensão (com ponto) de um nome de arquivo. Só letras e
// dígitos ASCII entram na chave.
func Extension(name string) string {
	ext := path.Ext(strings.ReplaceAll(name, "\\", "/"))
	if len(ext) <= 1 || len(ext) > maxExtensionLength {
		return ""
	}
	for _, r := range ext[1:] {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return ""
		}
	}
	return ext
}
