package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pinesvet/config"
	"pinesvet/internal/domain/entity"
	"pinesvet/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// keyAdminSession is the key pattern for back-office sessions:
// admin_session:{token} -> JSON-encoded session.
const keyAdminSession = "admin_session:%s"

// adminSessionStore implements service.AdminSessionStore on top of Redis.
// The TTL doubles as the session timeout: an expired key simply disappears,
// so there is no sweep job.
type adminSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAdminSessionStore is the constructor for adminSessionStore.
func NewAdminSessionStore(client *redis.Client, cfg *config.Config) service.AdminSessionStore {
	ttl := cfg.Admin.SessionTimeout
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}

	return &adminSessionStore{
		client: client,
		ttl:    ttl,
	}
}

// Save stores a session under its token with the configured TTL.
func (s *adminSessionStore) Save(ctx context.Context, session *entity.AdminSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "failed to encode admin session")
	}

	key := fmt.Sprintf(keyAdminSession, session.Token)
	if err := s.client.Set(ctx, key, payload, s.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to save admin session")
	}

	return nil
}

// Find retrieves the session for a token. Unknown and expired tokens both
// come back as a nil session without error.
func (s *adminSessionStore) Find(ctx context.Context, token string) (*entity.AdminSession, error) {
	key := fmt.Sprintf(keyAdminSession, token)

	payload, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to load admin session")
	}

	var session entity.AdminSession
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, errors.Wrap(err, "failed to decode admin session")
	}

	return &session, nil
}

// Delete revokes a session (logout).
func (s *adminSessionStore) Delete(ctx context.Context, token string) error {
	key := fmt.Sprintf(keyAdminSession, token)
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return errors.Wrap(err, "failed to delete admin session")
	}

	return nil
}

// Touch extends a live session's TTL, keeping active admins signed in.
func (s *adminSessionStore) Touch(ctx context.Context, token string) error {
	key := fmt.Sprintf(keyAdminSession, token)
	if err := s.client.Expire(ctx, key, s.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to extend admin session")
	}

	return nil
}
