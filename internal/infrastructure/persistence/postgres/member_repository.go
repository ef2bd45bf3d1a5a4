package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/docrepo-backend/internal/domain/entities"
	"github.com/rafabene/docrepo-backend/internal/domain/repositories"
)

// MemberRepository implementa repositories.MemberRepository
type MemberRepository struct {
	db    *gorm.DB
	users *UserRepository
}

// NewMemberRepository cria um novo MemberRepository
func NewMemberRepository(db *gorm.DB) repositories.MemberRepository {
	return &MemberRepository{db: db, users: &UserRepository{db: db}}
}

func (r *MemberRepository) Exists(ctx context.Context, clientID, userID string) (bool, error) {
	var count int64

	err := dbFromContext(ctx, r.db).Model(&ClientMemberModel{}).
		Where("client_id = ? AND user_id = ?", clientID, userID).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *MemberRepository) AddIfAbsent(ctx context.Context, clientID, userID string) (bool, error) {
	model := &ClientMemberModel{ClientID: clientID, UserID: userID}

	result := dbFromContext(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "client_id"}, {Name: "user_id"}},
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

func (r *MemberRepository) Remove(ctx context.Context, clientID, userID string) (int64, error) {
	result := dbFromContext(ctx, r.db).
		Where("client_id = ? AND user_id = ?", clientID, userID).
		Delete(&ClientMemberModel{})
	return result.RowsAffected, result.Error
}

func (r *MemberRepository) DeleteByClient(ctx context.Context, clientID string) (int64, error) {
	result := dbFromContext(ctx, r.db).Where("client_id = ?", clientID).Delete(&ClientMemberModel{})
	return result.RowsAffected, result.Error
}

func (r *MemberRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	result := dbFromContext(ctx, r.db).Where("user_id = ?", userID).Delete(&ClientMemberModel{})
	return result.RowsAffected, result.Error
}

func (r *MemberRepository) ListByClient(ctx context.Context, clientID string) ([]*entities.ClientMember, error) {
	var models []*ClientMemberModel

	err := dbFromContext(ctx, r.db).
		Preload("User").
		Where("client_id = ?", clientID).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	members := make([]*entities.ClientMember, 0, len(models))
	for _, model := range models {
		member := &entities.ClientMember{
			ID:        model.ID,
			ClientID:  model.ClientID,
			UserID:    model.UserID,
			CreatedAt: time.UnixMilli(model.CreatedAt),
		}
		if model.User != nil {
			user, err := r.users.toEntity(model.User)
			if err != nil {
				return nil, err
			}
			member.User = user
		}
		members = append(members, member)
	}

	return members, nil
}
