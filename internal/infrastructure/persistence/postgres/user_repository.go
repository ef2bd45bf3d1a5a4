package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/docrepo-backend/internal/domain/entities"
	"github.com/rafabene/docrepo-backend/internal/domain/repositories"
	"github.com/rafabene/docrepo-backend/internal/domain/valueobjects"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

// CreateIfAbsent insere o usuário; email já cadastrado devolve false sem erro
func (r *UserRepository) CreateIfAbsent(ctx context.Context, user *entities.User) (bool, error) {
	model := r.toModel(user)

	result := dbFromContext(ctx, r.db).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, DoNothing: true}).
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

	user.ID = model.ID
	user.CreatedAt = time.UnixMilli(model.CreatedAt)
	return true, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	var model UserModel

	if err := dbFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var model UserModel

	if err := dbFromContext(ctx, r.db).Where("email = ?", valueobjects.NormalizeEmail(email)).First(&model).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *UserRepository) UpdatePasswordHash(ctx context.Context, id, passwordHash string) error {
	result := dbFromContext(ctx, r.db).Model(&UserModel{}).Where("id = ?", id).Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *UserRepository) Upsert(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)

	err := dbFromContext(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"password_hash", "role"}),
	}).Create(model).Error
	if err != nil {
		return err
	}

	// Em caso de conflito o ID gerado não é o persistido; recarregar pelo email
	stored, err := r.FindByEmail(ctx, model.Email)
	if err != nil {
		return err
	}
	if stored != nil {
		*user = *stored
	}
	return nil
}

// Delete remove o usuário. Memberships devem ser removidas antes pelo chamador.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	result := dbFromContext(ctx, r.db).Where("id = ?", id).Delete(&UserModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, error) {
	var models []*UserModel

	query := dbFromContext(ctx, r.db).Model(&UserModel{})

	// Aplicar filtros
	if filters.Role != nil {
		query = query.Where("role = ?", string(*filters.Role))
	}

	// Paginação
	page := filters.Page
	if page < 1 {
		page = 1
	}
	pageSize := filters.PageSize
	if pageSize < 1 {
		pageSize = 100
	}
	if pageSize > 500 {
		pageSize = 500
	}

	offset := (page - 1) * pageSize
	query = query.Order("created_at DESC").Limit(pageSize).Offset(offset)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

// Conversores
func (r *UserRepository) toModel(user *entities.User) *UserModel {
	var createdAt int64
	if !user.CreatedAt.IsZero() {
		createdAt = user.CreatedAt.UnixMilli()
	}

	return &UserModel{
		ID:           user.ID,
		Email:        user.Email.String(),
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		CreatedAt:    createdAt,
	}
}

func (r *UserRepository) toEntity(model *UserModel) (*entities.User, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	return &entities.User{
		ID:           model.ID,
		Email:        email,
		Name:         model.Name,
		PasswordHash: model.PasswordHash,
		Role:         entities.ParseRole(model.Role),
		CreatedAt:    time.UnixMilli(model.CreatedAt),
	}, nil
}

func (r *UserRepository) toEntities(models []*UserModel) ([]*entities.User, error) {
	users := make([]*entities.User, 0, len(models))

	for _, model := range models {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		users = append(users, entity)
	}

	return users, nil
}
