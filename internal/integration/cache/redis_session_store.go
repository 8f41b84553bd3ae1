// Package cache implements survey session stores.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/walletive/backend/internal/application/adapter"
	"github.com/walletive/backend/internal/domain/entity"
	domainerror "github.com/walletive/backend/internal/domain/error"
)

const sessionKeyPrefix = "walletive:survey:session:"

// redisSessionStore implements adapter.SurveySessionStore on Redis.
// Each session is a JSON value whose TTL is refreshed on every save.
type redisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionStore creates a Redis-backed session store.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) adapter.SurveySessionStore {
	return &redisSessionStore{
		client: client,
		ttl:    ttl,
	}
}

func sessionKey(id uuid.UUID) string {
	return sessionKeyPrefix + id.String()
}

// Save creates or replaces a session.
func (s *redisSessionStore) Save(ctx context.Context, session *entity.SurveySession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode survey session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(session.ID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store survey session: %w", err)
	}
	return nil
}

// Get returns a session or ErrSessionNotFound.
func (s *redisSessionStore) Get(ctx context.Context, id uuid.UUID) (*entity.SurveySession, error) {
	payload, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domainerror.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load survey session: %w", err)
	}

	var session entity.SurveySession
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("failed to decode survey session: %w", err)
	}
	return &session, nil
}

// Delete removes a session.
func (s *redisSessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete survey session: %w", err)
	}
	return nil
}
