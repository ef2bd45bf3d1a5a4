package services

import (
	"context"
	"fmt"

	"github.com/rafabene/docrepo-backend/internal/domain/errors"
	"github.com/rafabene/docrepo-backend/internal/domain/ports"
	"github.com/rafabene/docrepo-backend/internal/domain/repositories"
	"github.com/rafabene/docrepo-backend/internal/domain/valueobjects"
)

// FolderService gerencia as pastas explícitas de um cliente. Documentos
// nunca são afetados.
type FolderService struct {
	folderRepo  repositories.FolderRepository
	clientRepo  repositories.ClientRepository
	policy      *AccessPolicy
	sanitizer   ports.TextSanitizer
	revalidator ports.Revalidator
	logger      ports.Logger
}

// NewFolderService cria um novo FolderService
func NewFolderService(
	folderRepo repositories.FolderRepository,
	clientRepo repositories.ClientRepository,
	policy *AccessPolicy,
	sanitizer ports.TextSanitizer,
	revalidator ports.Revalidator,
	logger ports.Logger,
) *FolderService {
	return &FolderService{
		folderRepo:  folderRepo,
		clientRepo:  clientRepo,
		policy:      policy,
		sanitizer:   sanitizer,
		revalidator: revalidator,
		logger:      logger,
	}
}

// CreateFolder cria a pasta se ainda não existir. Qualquer usuário com
// acesso ao cliente pode criar.
func (s *FolderService) CreateFolder(ctx context.Context, actor ports.SessionIdentity, clientID, name string) (bool, error) {
	if err := s.policy.RequireAccess(ctx, actor, clientID); err != nil {
		return false, err
	}

	folder := valueobjects.NormalizeFolderPath(s.sanitizer.Clean(name))
	if folder == nil {
		return false, nil
	}

	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return false, fmt.Errorf("failed to find client: %w", err)
	}
	if client == nil {
		return false, errors.ErrClientNotFound
	}

	created, err := s.folderRepo.CreateIfAbsent(ctx, clientID, *folder)
	if err != nil {
		return false, fmt.Errorf("failed to create folder: %w", err)
	}

	if created {
		s.logger.Info("folder created", "client_id", clientID, "folder", *folder, "by", actor.UserID)
		s.revalidator.Revalidate(ctx, clientID, RefreshFolders)
	}
	return created, nil
}

// DeleteFolder remove a pasta explícita pelo nome; só ADMIN
func (s *FolderService) DeleteFolder(ctx context.Context, actor ports.SessionIdentity, clientID, name string) (bool, error) {
	if err := s.policy.RequireAdmin(actor); err != nil {
		return false, err
	}

	removed, err := s.folderRepo.DeleteByName(ctx, clientID, name)
	if err != nil {
		return false, fmt.Errorf("failed to delete folder: %w", err)
	}

	if removed > 0 {
		s.logger.Info("folder deleted", "client_id", clientID, "folder", name, "by", actor.UserID)
		s.revalidator.Revalidate(ctx, clientID, RefreshFolders)
	}
	return removed > 0, nil
}
