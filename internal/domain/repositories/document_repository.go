package repositories

import (
	"context"

	"github.com/rafabene/docrepo-backend/internal/domain/entities"
)

// DocumentRepository define a interface para persistência de metadados de documentos
type DocumentRepository interface {
	Create(ctx context.Context, document *entities.Document) error
	FindByID(ctx context.Context, id string) (*entities.Document, error)
	Delete(ctx context.Context, id string) error
	DeleteByClient(ctx context.Context, clientID string) (int64, error)
	// ListByClient ordena por folder_path asc e created_at desc
	ListByClient(ctx context.Context, clientID string) ([]*entities.Document, error)
}
