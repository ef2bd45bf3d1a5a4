package services

import (
	"context"
	"fmt"

	"github.com/rafabene/docrepo-backend/internal/domain/errors"
	"github.com/rafabene/docrepo-backend/internal/domain/ports"
	"github.com/rafabene/docrepo-backend/internal/domain/repositories"
	"github.com/rafabene/docrepo-backend/internal/domain/valueobjects"
)

// MemberService gerencia quem da equipe enxerga cada cliente
type MemberService struct {
	memberRepo  repositories.MemberRepository
	clientRepo  repositories.ClientRepository
	userRepo    repositories.UserRepository
	policy      *AccessPolicy
	revalidator ports.Revalidator
	logger      ports.Logger
}

// NewMemberService cria um novo MemberService
func NewMemberService(
	memberRepo repositories.MemberRepository,
	clientRepo repositories.ClientRepository,
	userRepo repositories.UserRepository,
	policy *AccessPolicy,
	revalidator ports.Revalidator,
	logger ports.Logger,
) *MemberService {
	return &MemberService{
		memberRepo:  memberRepo,
		clientRepo:  clientRepo,
		userRepo:    userRepo,
		policy:      policy,
		revalidator: revalidator,
		logger:      logger,
	}
}

// AddMember concede acesso ao usuário dono do email. Email vazio ou
// desconhecido não altera nada; repetir a operação também não.
func (s *MemberService) AddMember(ctx context.Context, actor ports.SessionIdentity, clientID, email string) (bool, error) {
	if err := s.policy.RequireAdmin(actor); err != nil {
		return false, err
	}

	email = valueobjects.NormalizeEmail(email)
	if email == "" {
		return false, nil
	}

	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return false, fmt.Errorf("failed to find client: %w", err)
	}
	if client == nil {
		return false, errors.ErrClientNotFound
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return false, nil
	}

	added, err := s.memberRepo.AddIfAbsent(ctx, clientID, user.ID)
	if err != nil {
		return false, fmt.Errorf("failed to add member: %w", err)
	}

	if added {
		s.logger.Info("member added", "client_id", clientID, "user_id", user.ID, "by", actor.UserID)
		s.revalidator.Revalidate(ctx, clientID, RefreshMembers)
	}
	return added, nil
}

// RemoveMember retira o acesso; remover quem não é membro não é erro
func (s *MemberService) RemoveMember(ctx context.Context, actor ports.SessionIdentity, clientID, userID string) (bool, error) {
	if err := s.policy.RequireAdmin(actor); err != nil {
		return false, err
	}

	removed, err := s.memberRepo.Remove(ctx, clientID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to remove member: %w", err)
	}

	if removed > 0 {
		s.logger.Info("member removed", "client_id", clientID, "user_id", userID, "by", actor.UserID)
		s.revalidator.Revalidate(ctx, clientID, RefreshMembers)
	}
	return removed > 0, nil
}
