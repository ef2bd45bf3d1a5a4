package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainerrors "github.com/rafabene/docrepo-backend/internal/domain/errors"
	"github.com/rafabene/docrepo-backend/internal/domain/ports"
)

const sessionIssuer = "docrepo"

// sessionClaims carrega a identidade da sessão no JWT
type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTSessions implementa ports.SessionTokens com HS256
type JWTSessions struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTSessions cria o emissor/verificador de tokens de sessão
func NewJWTSessions(secret string, ttl time.Duration) (ports.SessionTokens, error) {
	if secret == "" {
		return nil, errors.New("jwt secret cannot be empty")
	}
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &JWTSessions{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (s *JWTSessions) Issue(identity ports.SessionIdentity) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)

	claims := sessionClaims{
		Role: identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID,
			Issuer:    sessionIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}

	return token, expiresAt, nil
}

// Verify valida assinatura, algoritmo, emissor e expiração
func (s *JWTSessions) Verify(tokenString string) (*ports.SessionIdentity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{},
		func(*jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(sessionIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrUnauthenticated
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || claims.Subject == "" || claims.Role == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	return &ports.SessionIdentity{UserID: claims.Subject, Role: claims.Role}, nil
}
