package repositories

import (
	"context"

	"github.com/rafabene/docrepo-backend/internal/domain/entities"
)

// ClientRepository define a interface para persistência de clientes
type ClientRepository interface {
	// CreateIfAbsent insere o cliente; se o nome já existir não faz nada e retorna false
	CreateIfAbsent(ctx context.Context, client *entities.Client) (bool, error)
	FindByID(ctx context.Context, id string) (*entities.Client, error)
	FindByName(ctx context.Context, name string) (*entities.Client, error)
	Delete(ctx context.Context, id string) error
	// ListAll lista todos os clientes ordenados por nome
	ListAll(ctx context.Context) ([]*entities.Client, error)
	// ListForMember lista os clientes dos quais o usuário é membro
	ListForMember(ctx context.Context, userID string) ([]*entities.Client, error)
}

// MemberRepository define a interface para persistência de ClientMember
type MemberRepository interface {
	Exists(ctx context.Context, clientID, userID string) (bool, error)
	// AddIfAbsent é idempotente pelo par (clientID, userID)
	AddIfAbsent(ctx context.Context, clientID, userID string) (bool, error)
	Remove(ctx context.Context, clientID, userID string) (int64, error)
	DeleteByClient(ctx context.Context, clientID string) (int64, error)
	DeleteByUser(ctx context.Context, userID string) (int64, error)
	ListByClient(ctx context.Context, clientID string) ([]*entities.ClientMember, error)
}

// FolderRepository define a interface para persistência de ClientFolder
type FolderRepository interface {
	// CreateIfAbsent é idempotente pelo par (clientID, name)
	CreateIfAbsent(ctx context.Context, clientID, name string) (bool, error)
	DeleteByName(ctx context.Context, clientID, name string) (int64, error)
	DeleteByClient(ctx context.Context, clientID string) (int64, error)
	ListByClient(ctx context.Context, clientID string) ([]*entities.ClientFolder, error)
}
