// Package session maps a browser cookie to a user id.
package session

import (
	"context"
	"ctchen222/Cat-Match/internal/repository"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Store issues, resolves and revokes session tokens.
type Store interface {
	Create(ctx context.Context, userID int64) (token string, err error)
	// Resolve returns found == false for unknown, expired or tampered tokens.
	Resolve(ctx context.Context, token string) (userID int64, found bool, err error)
	Destroy(ctx context.Context, token string) error
}

// NewRedisStore keeps sessions server-side; the cookie carries a random id.
func NewRedisStore(repo repository.SessionRepository, ttl time.Duration) Store {
	return &redisStore{repo: repo, ttl: ttl}
}

type redisStore struct {
	repo repository.SessionRepository
	ttl  time.Duration
}

func (s *redisStore) Create(ctx context.Context, userID int64) (string, error) {
	token := uuid.New().String()
	if err := s.repo.Create(ctx, token, userID, s.ttl); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	return token, nil
}

func (s *redisStore) Resolve(ctx context.Context, token string) (int64, bool, error) {
	if _, err := uuid.Parse(token); err != nil {
		return 0, false, nil
	}
	userID, found, err := s.repo.FindUserID(ctx, token)
	if err != nil || !found {
		return 0, false, err
	}
	if err := s.repo.Touch(ctx, token, s.ttl); err != nil {
		return 0, false, fmt.Errorf("failed to refresh session: %w", err)
	}
	return userID, true, nil
}

func (s *redisStore) Destroy(ctx context.Context, token string) error {
	return s.repo.Delete(ctx, token)
}

// NewCookieStore keeps sessions in an HS256-signed token; nothing is stored
// server-side and Destroy only relies on the cookie being cleared.
func NewCookieStore(secret []byte, ttl time.Duration) Store {
	return &cookieStore{secret: secret, ttl: ttl}
}

type cookieStore struct {
	secret []byte
	ttl    time.Duration
}

func (s *cookieStore) Create(_ context.Context, userID int64) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		ID:        uuid.New().String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session: %w", err)
	}
	return signed, nil
}

func (s *cookieStore) Resolve(_ context.Context, token string) (int64, bool, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return 0, false, nil
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, false, nil
	}
	return userID, true, nil
}

func (s *cookieStore) Destroy(context.Context, string) error {
	return nil
}
