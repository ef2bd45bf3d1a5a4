package services

import (
	"context"
	"fmt"

	"github.com/rafabene/docrepo-backend/internal/domain/entities"
	"github.com/rafabene/docrepo-backend/internal/domain/errors"
	"github.com/rafabene/docrepo-backend/internal/domain/ports"
	"github.com/rafabene/docrepo-backend/internal/domain/repositories"
)

// Tipos de evento publicados para as telas abertas de um cliente
const (
	RefreshClient    = "client"
	RefreshDocuments = "documents"
	RefreshMembers   = "members"
	RefreshFolders   = "folders"
)

// ClientService contém a lógica de negócio para clientes
type ClientService struct {
	clientRepo   repositories.ClientRepository
	memberRepo   repositories.MemberRepository
	folderRepo   repositories.FolderRepository
	documentRepo repositories.DocumentRepository
	uow          ports.UnitOfWork
	policy       *AccessPolicy
	sanitizer    ports.TextSanitizer
	revalidator  ports.Revalidator
	logger       ports.Logger
}

// NewClientService cria um novo ClientService
func NewClientService(
	clientRepo repositories.ClientRepository,
	memberRepo repositories.MemberRepository,
	folderRepo repositories.FolderRepository,
	documentRepo repositories.DocumentRepository,
	uow ports.UnitOfWork,
	policy *AccessPolicy,
	sanitizer ports.TextSanitizer,
	revalidator ports.Revalidator,
	logger ports.Logger,
) *ClientService {
	return &ClientService{
		clientRepo:   clientRepo,
		memberRepo:   memberRepo,
		folderRepo:   folderRepo,
		documentRepo: documentRepo,
		uow:          uow,
		policy:       policy,
		sanitizer:    sanitizer,
		revalidator:  revalidator,
		logger:       logger,
	}
}

// CreateClient cria o cliente se o nome ainda não existir. Nome vazio ou
// repetido retorna false sem erro.
func (s *ClientService) CreateClient(ctx context.Context, actor ports.SessionIdentity, name string) (bool, error) {
	if err := s.policy.RequireAdmin(actor); err != nil {
		return false, err
	}

	client := &entities.Client{Name: s.sanitizer.Clean(name)}
	if err := client.Validate(); err != nil {
		return false, nil
	}

	created, err := s.clientRepo.CreateIfAbsent(ctx, client)
	if err != nil {
		return false, fmt.Errorf("failed to create client: %w", err)
	}

	if created {
		s.logger.Info("client created", "client_id", client.ID, "by", actor.UserID)
	}
	return created, nil
}

// DeleteClient remove documentos, membros e pastas do cliente antes do
// próprio cliente, numa única transação. Os objetos no storage ficam.
func (s *ClientService) DeleteClient(ctx context.Context, actor ports.SessionIdentity, clientID string) error {
	if err := s.policy.RequireAdmin(actor); err != nil {
		return err
	}

	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		client, err := s.clientRepo.FindByID(ctx, clientID)
		if err != nil {
			return fmt.Errorf("failed to find client: %w", err)
		}
		if client == nil {
			return errors.ErrClientNotFound
		}

		documents, err := s.documentRepo.DeleteByClient(ctx, clientID)
		if err != nil {
			return fmt.Errorf("failed to delete documents: %w", err)
		}
		members, err := s.memberRepo.DeleteByClient(ctx, clientID)
		if err != nil {
			return fmt.Errorf("failed to delete members: %w", err)
		}
		folders, err := s.folderRepo.DeleteByClient(ctx, clientID)
		if err != nil {
			return fmt.Errorf("failed to delete folders: %w", err)
		}
		if err := s.clientRepo.Delete(ctx, clientID); err != nil {
			return fmt.Errorf("failed to delete client: %w", err)
		}

		s.logger.Info("client deleted",
			"client_id", clientID,
			"documents_removed", documents,
			"members_removed", members,
			"folders_removed", folders,
			"by", actor.UserID,
		)
		return nil
	})
	if err != nil {
		return err
	}

	s.revalidator.Revalidate(ctx, clientID, RefreshClient)
	return nil
}

// ListVisibleClients lista os clientes que o usuário enxerga, com a contagem de documentos
func (s *ClientService) ListVisibleClients(ctx context.Context, actor ports.SessionIdentity) ([]*entities.Client, error) {
	if entities.Role(actor.Role).HasPermission(entities.PermissionClientsViewAll) {
		return s.clientRepo.ListAll(ctx)
	}
	return s.clientRepo.ListForMember(ctx, actor.UserID)
}

// ListAllClients é a listagem administrativa
func (s *ClientService) ListAllClients(ctx context.Context, actor ports.SessionIdentity) ([]*entities.Client, error) {
	if err := s.policy.RequireAdmin(actor); err != nil {
		return nil, err
	}
	return s.clientRepo.ListAll(ctx)
}

// ClientDetail é a visão de um cliente: documentos agrupados por pasta,
// conjunto de pastas e, para administradores, os membros
type ClientDetail struct {
	Client       *entities.Client
	Groups       []entities.FolderGroup
	Folders      []string
	EmptyFolders []*entities.ClientFolder
	Members      []*entities.ClientMember
	Deletable    map[string]bool
	CanManage    bool
}

// GetClientDetail monta a visão do cliente para o usuário
func (s *ClientService) GetClientDetail(ctx context.Context, actor ports.SessionIdentity, clientID string) (*ClientDetail, error) {
	if err := s.policy.RequireAccess(ctx, actor, clientID); err != nil {
		return nil, err
	}

	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to find client: %w", err)
	}
	if client == nil {
		return nil, errors.ErrClientNotFound
	}

	documents, err := s.documentRepo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	folders, err := s.folderRepo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}

	detail := &ClientDetail{
		Client:       client,
		Groups:       entities.GroupByFolder(documents),
		Folders:      entities.MergeFolders(folders, documents),
		EmptyFolders: entities.EmptyFolders(folders, documents),
		Deletable:    make(map[string]bool, len(documents)),
		CanManage:    entities.Role(actor.Role).HasPermission(entities.PermissionMembersManage),
	}
	client.DocumentCount = int64(len(documents))

	for _, d := range documents {
		detail.Deletable[d.ID] = s.policy.CanDeleteDocument(actor, d)
	}

	if detail.CanManage {
		detail.Members, err = s.memberRepo.ListByClient(ctx, clientID)
		if err != nil {
			return nil, fmt.Errorf("failed to list members: %w", err)
		}
	}

	return detail, nil
}
