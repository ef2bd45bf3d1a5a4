package ports

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrObjectNotFound é devolvido por Stat quando a chave não existe no bucket
var ErrObjectNotFound = errors.New("object not found")

// Disposition define como o navegador deve tratar o arquivo assinado
type Disposition string

const (
	DispositionInline     Disposition = "inline"
	DispositionAttachment Disposition = "attachment"
)

// SignOptions configura uma URL assinada de leitura
type SignOptions struct {
	Disposition Disposition
	// Filename só é usado com DispositionAttachment
	Filename string
	TTL      time.Duration
}

// SignedUpload é um PUT pré-assinado. Headers traz os cabeçalhos que entram
// na assinatura e que o navegador precisa repetir sem alteração.
type SignedUpload struct {
	URL     string
	Method  string
	Headers map[string]string
}

// ObjectInfo são os metadados gravados pelo storage
type ObjectInfo struct {
	Size        int64
	ContentType string
}

// ObjectStorage guarda os bytes dos documentos por chave opaca
type ObjectStorage interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	// Delete deve tolerar objeto inexistente
	Delete(ctx context.Context, key string) error
	SignedURL(ctx context.Context, key string, opts SignOptions) (string, error)
	SignedUploadURL(ctx context.Context, key, contentType string, ttl time.Duration) (*SignedUpload, error)
	Stat(ctx context.Context, key string) (*ObjectInfo, error)
}
