package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/docrepo-backend/internal/domain/entities"
	"github.com/rafabene/docrepo-backend/internal/domain/repositories"
)

// FolderRepository implementa repositories.FolderRepository
type FolderRepository struct {
	db *gorm.DB
}

// NewFolderRepository cria um novo FolderRepository
func NewFolderRepository(db *gorm.DB) repositories.FolderRepository {
	return &FolderRepository{db: db}
}

func (r *FolderRepository) CreateIfAbsent(ctx context.Context, clientID, name string) (bool, error) {
	model := &ClientFolderModel{ClientID: clientID, Name: name}

	result := dbFromContext(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "client_id"}, {Name: "name"}},
			DoNothing: true,
		}).
		Create(model)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return false, nil
		}
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (r *FolderRepository) DeleteByName(ctx context.Context, clientID, name string) (int64, error) {
	result := dbFromContext(ctx, r.db).
		Where("client_id = ? AND name = ?", clientID, name).
		Delete(&ClientFolderModel{})
	return result.RowsAffected, result.Error
}

func (r *FolderRepository) DeleteByClient(ctx context.Context, clientID string) (int64, error) {
	result := dbFromContext(ctx, r.db).Where("client_id = ?", clientID).Delete(&ClientFolderModel{})
	return result.RowsAffected, result.Error
}

func (r *FolderRepository) ListByClient(ctx context.Context, clientID string) ([]*entities.ClientFolder, error) {
	var models []*ClientFolderModel

	err := dbFromContext(ctx, r.db).Where("client_id = ?", clientID).Order("name ASC").Find(&models).Error
	if err != nil {
		return nil, err
	}

	folders := make([]*entities.ClientFolder, 0, len(models))
	for _, model := range models {
		folders = append(folders, &entities.ClientFolder{
			ID:        model.ID,
			ClientID:  model.ClientID,
			Name:      model.Name,
			CreatedAt: time.UnixMilli(model.CreatedAt),
		})
	}

	return folders, nil
}
