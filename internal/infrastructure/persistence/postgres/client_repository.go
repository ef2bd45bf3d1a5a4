package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/docrepo-backend/internal/domain/entities"
	"github.com/rafabene/docrepo-backend/internal/domain/repositories"
)

// documentCountColumn conta documentos por cliente na mesma query da listagem
const documentCountColumn = "(SELECT COUNT(*) FROM documents WHERE documents.client_id = clients.id) AS document_count"

// ClientRepository implementa repositories.ClientRepository
type ClientRepository struct {
	db *gorm.DB
}

// NewClientRepository cria um novo ClientRepository
func NewClientRepository(db *gorm.DB) repositories.ClientRepository {
	return &ClientRepository{db: db}
}

type clientRow struct {
	ID            string
	Name          string
	CreatedAt     int64
	DocumentCount int64
}

func (r *ClientRepository) CreateIfAbsent(ctx context.Context, client *entities.Client) (bool, error) {
	model := &ClientModel{ID: client.ID, Name: client.Name}

	result := dbFromContext(ctx, r.db).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(model)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return false, nil
		}
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	client.ID = model.ID
	client.CreatedAt = time.UnixMilli(model.CreatedAt)
	return true, nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id string) (*entities.Client, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *ClientRepository) FindByName(ctx context.Context, name string) (*entities.Client, error) {
	return r.findOne(ctx, "name = ?", name)
}

func (r *ClientRepository) findOne(ctx context.Context, query string, arg any) (*entities.Client, error) {
	var model ClientModel

	if err := dbFromContext(ctx, r.db).Where(query, arg).First(&model).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return &entities.Client{
		ID:        model.ID,
		Name:      model.Name,
		CreatedAt: time.UnixMilli(model.CreatedAt),
	}, nil
}

// Delete remove apenas a linha do cliente; documentos, membros e pastas
// são removidos antes pelo serviço.
func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	result := dbFromContext(ctx, r.db).Where("id = ?", id).Delete(&ClientModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ClientRepository) ListAll(ctx context.Context) ([]*entities.Client, error) {
	var rows []clientRow

	err := dbFromContext(ctx, r.db).
		Table("clients").
		Select("clients.id, clients.name, clients.created_at, " + documentCountColumn).
		Order("clients.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return toClients(rows), nil
}

func (r *ClientRepository) ListForMember(ctx context.Context, userID string) ([]*entities.Client, error) {
	var rows []clientRow

	err := dbFromContext(ctx, r.db).
		Table("clients").
		Select("clients.id, clients.name, clients.created_at, "+documentCountColumn).
		Joins("JOIN client_members ON client_members.client_id = clients.id").
		Where("client_members.user_id = ?", userID).
		Order("clients.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return toClients(rows), nil
}

func toClients(rows []clientRow) []*entities.Client {
	clients := make([]*entities.Client, 0, len(rows))
	for _, row := range rows {
		clients = append(clients, &entities.Client{
			ID:            row.ID,
			Name:          row.Name,
			CreatedAt:     time.UnixMilli(row.CreatedAt),
			DocumentCount: row.DocumentCount,
		})
	}
	return clients
}
