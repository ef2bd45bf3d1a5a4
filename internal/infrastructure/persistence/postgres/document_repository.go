package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/docrepo-backend/internal/domain/entities"
	"github.com/rafabene/docrepo-backend/internal/domain/repositories"
)

// DocumentRepository implementa repositories.DocumentRepository
type DocumentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository cria um novo DocumentRepository
func NewDocumentRepository(db *gorm.DB) repositories.DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) Create(ctx context.Context, document *entities.Document) error {
	model := r.toModel(document)

	if err := dbFromContext(ctx, r.db).Create(model).Error; err != nil {
		return err
	}

	document.ID = model.ID
	document.CreatedAt = time.UnixMilli(model.CreatedAt)
	return nil
}

func (r *DocumentRepository) FindByID(ctx context.Context, id string) (*entities.Document, error) {
	var model DocumentModel

	if err := dbFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *DocumentRepository) Delete(ctx context.Context, id string) error {
	return dbFromContext(ctx, r.db).Where("id = ?", id).Delete(&DocumentModel{}).Error
}

func (r *DocumentRepository) DeleteByClient(ctx context.Context, clientID string) (int64, error) {
	result := dbFromContext(ctx, r.db).Where("client_id = ?", clientID).Delete(&DocumentModel{})
	return result.RowsAffected, result.Error
}

func (r *DocumentRepository) ListByClient(ctx context.Context, clientID string) ([]*entities.Document, error) {
	var models []*DocumentModel

	// Raiz (folder_path NULL) por último, igual ao padrão do Postgres, mas
	// explícito para não depender do banco
	err := dbFromContext(ctx, r.db).
		Where("client_id = ?", clientID).
		Order("CASE WHEN folder_path IS NULL THEN 1 ELSE 0 END").
		Order("folder_path ASC").
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	documents := make([]*entities.Document, 0, len(models))
	for _, model := range models {
		documents = append(documents, r.toEntity(model))
	}
	return documents, nil
}

// Conversores
func (r *DocumentRepository) toModel(document *entities.Document) *DocumentModel {
	return &DocumentModel{
		ID:           document.ID,
		ClientID:     document.ClientID,
		UploaderID:   document.UploaderID,
		OriginalName: document.OriginalName,
		StorageKey:   document.StorageKey,
		MimeType:     document.MimeType,
		Size:         document.Size,
		FolderPath:   document.FolderPath,
	}
}

func (r *DocumentRepository) toEntity(model *DocumentModel) *entities.Document {
	return &entities.Document{
		ID:           model.ID,
		ClientID:     model.ClientID,
		UploaderID:   model.UploaderID,
		OriginalName: model.OriginalName,
		StorageKey:   model.StorageKey,
		MimeType:     model.MimeType,
		Size:         model.Size,
		FolderPath:   model.FolderPath,
		CreatedAt:    time.UnixMilli(model.CreatedAt),
	}
}
