// Package jwt verifies the HS256 bearer tokens the identity service issues and turns
// them into scheduling actors.
package jwt

import (
	"errors"
	"estate/config"
	"estate/shared/identity"
	"estate/shared/timezone"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidClaim = errors.New("invalid token claim")
	ErrMissingToken = errors.New("authorization header must carry a bearer token")
)

type TokenType string

const AccessToken TokenType = "access"

const bearerPrefix = "Bearer "

// Claims identify the actor. The actor id travels as the subject.
type Claims struct {
	Role string    `json:"role"`
	Type TokenType `json:"type"`
	jwt.RegisteredClaims
}

// Actor returns the scheduling actor the token speaks for.
func (c *Claims) Actor() identity.Actor {
	return identity.Actor{ID: c.Subject, Role: c.Role}
}

// JWT verifies access tokens. Issue signs with the same secret and exists for local
// tooling and tests.
type JWT interface {
	Issue(actor identity.Actor) (string, error)
	Verify(token string) (*Claims, error)
}

type Service struct {
	secret []byte
	issuer string
	ttl    time.Duration
	parser *jwt.Parser
}

func New(cfg *config.Config) JWT {
	return &Service{
		secret: []byte(cfg.JWT.AccessSecret),
		issuer: cfg.App.Name,
		ttl:    time.Duration(cfg.JWT.AccessExpireMin) * time.Minute,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}
}

func (s *Service) Issue(actor identity.Actor) (string, error) {
	now := timezone.Now()

	claims := Claims{
		Role: actor.Role,
		Type: AccessToken,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID,
			Issuer:    s.issuer,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify checks the signature and expiry and requires an access token with a subject.
func (s *Service) Verify(token string) (*Claims, error) {
	claims := &Claims{}

	_, err := s.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil:
		return nil, ErrInvalidToken
	case claims.Type != AccessToken || claims.Subject == "":
		return nil, ErrInvalidClaim
	}

	return claims, nil
}

// ExtractTokenFromHeader returns the token of an "Authorization: Bearer <token>" header.
func ExtractTokenFromHeader(header string) (string, error) {
	token, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok || strings.TrimSpace(token) == "" {
		return "", ErrMissingToken
	}

	return token, nil
}
