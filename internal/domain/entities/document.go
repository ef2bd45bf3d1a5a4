package entities

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DefaultMimeType é usado quando o upload não informa o tipo
const DefaultMimeType = "application/octet-stream"

// Document é um arquivo armazenado. Documentos são imutáveis: um novo upload
// gera um novo Document com uma nova storage key.
type Document struct {
	ID           string
	ClientID     string
	UploaderID   string
	OriginalName string
	StorageKey   string
	MimeType     string
	Size         int64
	FolderPath   *string
	CreatedAt    time.Time
}

// Folder retorna o rótulo de pasta ou "" para a raiz
func (d *Document) Folder() string {
	if d.FolderPath == nil {
		return ""
	}
	return *d.FolderPath
}

// IsUploadedBy verifica se o usuário é o uploader original
func (d *Document) IsUploadedBy(userID string) bool {
	return d.UploaderID == userID
}

// Validate valida regras de negócio da entidade Document
func (d *Document) Validate() error {
	return validation.ValidateStruct(d,
		validation.Field(&d.ClientID, validation.Required),
		validation.Field(&d.UploaderID, validation.Required),
		validation.Field(&d.OriginalName, validation.Required, validation.Length(1, 255)),
		validation.Field(&d.StorageKey, validation.Required),
		validation.Field(&d.MimeType, validation.Required),
		validation.Field(&d.Size, validation.Min(int64(0))),
	)
}
