package services

import (
	"context"
	"fmt"

	"github.com/rafabene/docrepo-backend/internal/domain/entities"
	"github.com/rafabene/docrepo-backend/internal/domain/errors"
	"github.com/rafabene/docrepo-backend/internal/domain/ports"
	"github.com/rafabene/docrepo-backend/internal/domain/repositories"
	"github.com/rafabene/docrepo-backend/internal/domain/valueobjects"
)

// MinPasswordLength vale para reset de senha
const MinPasswordLength = 8

// UserService contém a lógica de negócio para usuários
type UserService struct {
	userRepo   repositories.UserRepository
	memberRepo repositories.MemberRepository
	uow        ports.UnitOfWork
	hasher     ports.PasswordHasher
	policy     *AccessPolicy
	sanitizer  ports.TextSanitizer
	logger     ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	memberRepo repositories.MemberRepository,
	uow ports.UnitOfWork,
	hasher ports.PasswordHasher,
	policy *AccessPolicy,
	sanitizer ports.TextSanitizer,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo:   userRepo,
		memberRepo: memberRepo,
		uow:        uow,
		hasher:     hasher,
		policy:     policy,
		sanitizer:  sanitizer,
		logger:     logger,
	}
}

// CreateUserInput representa os dados para criar um usuário
type CreateUserInput struct {
	Email    string
	Name     string
	Password string
	Role     string
}

// CreateUser cria um usuário. Email ou senha ausentes, email inválido e
// email já cadastrado não alteram nada e retornam false sem erro.
func (s *UserService) CreateUser(ctx context.Context, actor ports.SessionIdentity, input CreateUserInput) (bool, error) {
	if err := s.policy.RequireAdmin(actor); err != nil {
		return false, err
	}

	if input.Password == "" {
		return false, nil
	}
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return false, nil
	}

	existing, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return false, fmt.Errorf("failed to find user: %w", err)
	}
	if existing != nil {
		return false, nil
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entities.User{
		Email:        email,
		Name:         s.optionalName(input.Name),
		PasswordHash: hash,
		Role:         entities.ParseRole(input.Role),
	}
	if err := user.Validate(); err != nil {
		return false, nil
	}

	created, err := s.userRepo.CreateIfAbsent(ctx, user)
	if err != nil {
		return false, fmt.Errorf("failed to create user: %w", err)
	}
	if !created {
		s.logger.Debug("user already exists", "email", email.String())
		return false, nil
	}

	s.logger.Info("user created", "user_id", user.ID, "role", user.Role, "by", actor.UserID)
	return true, nil
}

// DeleteUser remove as memberships do usuário e depois o usuário, na mesma transação
func (s *UserService) DeleteUser(ctx context.Context, actor ports.SessionIdentity, userID string) error {
	if err := s.policy.RequireAdmin(actor); err != nil {
		return err
	}

	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.FindByID(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to find user: %w", err)
		}
		if user == nil {
			return errors.ErrUserNotFound
		}

		removed, err := s.memberRepo.DeleteByUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to delete memberships: %w", err)
		}

		if err := s.userRepo.Delete(ctx, userID); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}

		s.logger.Info("user deleted", "user_id", userID, "memberships_removed", removed, "by", actor.UserID)
		return nil
	})
	return err
}

// ResetPassword troca a senha; senhas com menos de MinPasswordLength
// caracteres são ignoradas
func (s *UserService) ResetPassword(ctx context.Context, actor ports.SessionIdentity, userID, password string) (bool, error) {
	if err := s.policy.RequireAdmin(actor); err != nil {
		return false, err
	}
	if len([]rune(password)) < MinPasswordLength {
		return false, nil
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return false, errors.ErrUserNotFound
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdatePasswordHash(ctx, userID, hash); err != nil {
		return false, fmt.Errorf("failed to update password: %w", err)
	}

	s.logger.Info("password reset", "user_id", userID, "by", actor.UserID)
	return true, nil
}

// GetUser busca um usuário por ID
func (s *UserService) GetUser(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// ListUsers lista usuários com filtros
func (s *UserService) ListUsers(ctx context.Context, actor ports.SessionIdentity, filters repositories.UserFilters) ([]*entities.User, error) {
	if err := s.policy.RequireAdmin(actor); err != nil {
		return nil, err
	}
	return s.userRepo.List(ctx, filters)
}

// SeedAdmin cria o ADMIN inicial ou redefine senha e role se o email já existir
func (s *UserService) SeedAdmin(ctx context.Context, email, password string) (*entities.User, error) {
	parsed, err := valueobjects.NewEmail(email)
	if err != nil {
		return nil, fmt.Errorf("invalid seed email: %w", err)
	}
	if password == "" {
		return nil, fmt.Errorf("seed password is required")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entities.User{
		Email:        parsed,
		PasswordHash: hash,
		Role:         entities.RoleAdmin,
	}
	if err := s.userRepo.Upsert(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to upsert admin: %w", err)
	}

	s.logger.Info("admin seeded", "user_id", user.ID, "email", parsed.String())
	return user, nil
}

func (s *UserService) optionalName(raw string) *string {
	name := s.sanitizer.Clean(raw)
	if name == "" {
		return nil
	}
	return &name
}
