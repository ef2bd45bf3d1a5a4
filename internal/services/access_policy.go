package services

import (
	"context"
	"fmt"

	"github.com/rafabene/docrepo-backend/internal/domain/entities"
	"github.com/rafabene/docrepo-backend/internal/domain/errors"
	"github.com/rafabene/docrepo-backend/internal/domain/ports"
	"github.com/rafabene/docrepo-backend/internal/domain/repositories"
)

// AccessPolicy concentra todas as decisões de autorização.
// ADMIN vê todos os clientes; STAFF só vê clientes onde é membro.
type AccessPolicy struct {
	members repositories.MemberRepository
	metrics ports.Metrics
	logger  ports.Logger
}

// NewAccessPolicy cria um novo AccessPolicy
func NewAccessPolicy(
	members repositories.MemberRepository,
	metrics ports.Metrics,
	logger ports.Logger,
) *AccessPolicy {
	return &AccessPolicy{
		members: members,
		metrics: metrics,
		logger:  logger,
	}
}

// CanAccess decide se o usuário enxerga o cliente. Cliente inexistente
// resulta em false para STAFF.
func (p *AccessPolicy) CanAccess(ctx context.Context, userID string, role entities.Role, clientID string) (bool, error) {
	if role.HasPermission(entities.PermissionClientsViewAll) {
		return true, nil
	}
	if userID == "" || clientID == "" {
		return false, nil
	}

	ok, err := p.members.Exists(ctx, clientID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check membership: %w", err)
	}
	return ok, nil
}

// RequireAccess é CanAccess convertido em erro
func (p *AccessPolicy) RequireAccess(ctx context.Context, actor ports.SessionIdentity, clientID string) error {
	ok, err := p.CanAccess(ctx, actor.UserID, entities.Role(actor.Role), clientID)
	if err != nil {
		return err
	}
	if !ok {
		p.deny("no_membership", actor, "client_id", clientID)
		return errors.ErrNoClientAccess
	}
	return nil
}

// RequireAdmin protege administração de clientes, usuários, membros e pastas
func (p *AccessPolicy) RequireAdmin(actor ports.SessionIdentity) error {
	if entities.Role(actor.Role) != entities.RoleAdmin {
		p.deny("admin_only", actor)
		return errors.ErrAdminOnly
	}
	return nil
}

// CanDeleteDocument permite ADMIN ou quem enviou o documento
func (p *AccessPolicy) CanDeleteDocument(actor ports.SessionIdentity, document *entities.Document) bool {
	if entities.Role(actor.Role).HasPermission(entities.PermissionDocumentsDeleteAny) {
		return true
	}
	return document.IsUploadedBy(actor.UserID)
}

func (p *AccessPolicy) deny(reason string, actor ports.SessionIdentity, args ...any) {
	p.metrics.AccessDenied(reason)
	p.logger.Warn("access denied", append([]any{"reason", reason, "user_id", actor.UserID, "role", actor.Role}, args...)...)
}
