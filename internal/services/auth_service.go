package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rafabene/docrepo-backend/internal/domain/entities"
	"github.com/rafabene/docrepo-backend/internal/domain/errors"
	"github.com/rafabene/docrepo-backend/internal/domain/ports"
	"github.com/rafabene/docrepo-backend/internal/domain/repositories"
	"github.com/rafabene/docrepo-backend/internal/domain/valueobjects"
)

// AuthService verifica credenciais e emite sessões
type AuthService struct {
	userRepo repositories.UserRepository
	hasher   ports.PasswordHasher
	sessions ports.SessionTokens
	logger   ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	hasher ports.PasswordHasher,
	sessions ports.SessionTokens,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		sessions: sessions,
		logger:   logger,
	}
}

// Session é o resultado de um login bem-sucedido
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *entities.User
}

// Login normaliza o email e compara a senha com o hash armazenado.
// Qualquer falha resulta em ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	email = valueobjects.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, errors.ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil || !s.hasher.Compare(user.PasswordHash, password) {
		s.logger.Info("login rejected", "email", email)
		return nil, errors.ErrInvalidCredentials
	}

	token, expiresAt, err := s.sessions.Issue(ports.SessionIdentity{
		UserID: user.ID,
		Role:   string(user.Role),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to issue session: %w", err)
	}

	s.logger.Info("user logged in", "user_id", user.ID, "role", user.Role)

	return &Session{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// Authenticate valida o token de sessão
func (s *AuthService) Authenticate(token string) (*ports.SessionIdentity, error) {
	if token == "" {
		return nil, errors.ErrUnauthenticated
	}
	return s.sessions.Verify(token)
}
