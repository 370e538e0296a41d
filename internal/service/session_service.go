package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/lshigami/quizreview/config"
	"github.com/lshigami/quizreview/internal/dto"
	"github.com/rs/zerolog/log"
)

const sessionIssuer = "quizreview"

// SessionService issues and verifies the bearer tokens that carry a user's
// identity between requests.
type SessionService interface {
	// Issue signs a token for userID without checking who the caller is. The
	// token only carries the identity; it is not authentication.
	Issue(userID string) (*dto.SessionResponse, error)
	Verify(token string) (string, error)
}

type sessionService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSessionService(cfg *config.Config) (SessionService, error) {
	secret := []byte(cfg.Session.Secret)
	if len(secret) == 0 {
		// Tokens from a generated secret do not survive a restart.
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return nil, fmt.Errorf("failed to generate session secret: %w", err)
		}
		secret = []byte(hex.EncodeToString(buf))
		log.Warn().Msg("JWT_SECRET is not set, using a random secret for this process")
	}
	ttl := cfg.Session.TTL
	if ttl <= 0 {
		ttl = 720 * time.Hour
	}
	return &sessionService{secret: secret, ttl: ttl, now: time.Now}, nil
}

func (s *sessionService) Issue(userID string) (*dto.SessionResponse, error) {
	userID, err := requireUser(userID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := jwt.RegisteredClaims{
		Issuer:    sessionIssuer,
		Subject:   userID,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}
	return &dto.SessionResponse{Token: signed, UserID: userID, ExpiresAt: expiresAt.UTC()}, nil
}

// Verify returns the user id carried by a valid token.
func (s *sessionService) Verify(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", fmt.Errorf("%w: empty token", ErrUnauthorized)
	}
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(sessionIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", fmt.Errorf("%w: token expired", ErrUnauthorized)
		case errors.Is(err, jwt.ErrSignatureInvalid):
			return "", fmt.Errorf("%w: invalid signature", ErrUnauthorized)
		default:
			return "", fmt.Errorf("%w: %v", ErrUnauthorized, err)
		}
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return "", fmt.Errorf("%w: token has no subject", ErrUnauthorized)
	}
	return claims.Subject, nil
}
