package repositories

import (
	"context"

	"github.com/rafabene/docrepo-backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários
type UserRepository interface {
	// CreateIfAbsent devolve false quando o email já existe
	CreateIfAbsent(ctx context.Context, user *entities.User) (bool, error)
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	UpdatePasswordHash(ctx context.Context, id, passwordHash string) error
	// Upsert cria o usuário ou atualiza senha e role do existente (seed)
	Upsert(ctx context.Context, user *entities.User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filters UserFilters) ([]*entities.User, error)
}

// UserFilters contém filtros para listagem de usuários
type UserFilters struct {
	Role     *entities.Role
	Page     int // Página (começa em 1)
	PageSize int // Itens por página (default: 100, max: 500)
}
