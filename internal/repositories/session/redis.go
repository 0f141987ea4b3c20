package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/duels/internal/models"
)

const (
	// Key prefixes for Redis
	sessionKeyPrefix    = "duel_session:"
	connectionKeyPrefix = "connection_sessions:"
	sessionsIndexKey    = "duel_sessions"
	openSessionKey      = "duel_open_session"

	// maxTxRetries bounds optimistic retries on the open slot
	maxTxRetries = 5
)

// RedisConfig holds configuration for the Redis session repository
type RedisConfig struct {
	// Redis client
	RedisClient *redis.Client

	// TTL expires session keys that are never deleted, zero keeps them until
	// the sweeper removes them
	TTL time.Duration
}

// redisRepository keeps the registry in Redis so live sessions can be
// inspected from outside the process. Every read returns a fresh copy.
type redisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed session repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
		ttl:    cfg.TTL,
	}, nil
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("%s%s", sessionKeyPrefix, sessionID)
}

func connectionKey(connectionID string) string {
	return fmt.Sprintf("%s%s", connectionKeyPrefix, connectionID)
}

// SaveSession persists a session to Redis
func (r *redisRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}
	if input.Session.ID == "" {
		return errors.New("session ID cannot be empty")
	}

	sessionJSON, err := json.Marshal(input.Session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	pipe := r.client.TxPipeline()

	pipe.Set(ctx, sessionKey(input.Session.ID), sessionJSON, r.ttl)

	// Index by creation time so listing comes back oldest first
	pipe.ZAdd(ctx, sessionsIndexKey, redis.Z{
		Score:  float64(input.Session.CreatedAt.UnixNano()),
		Member: input.Session.ID,
	})

	// Connections that left are pruned lazily by GetSessionsByConnection
	for _, p := range input.Session.Participants {
		if p.ConnectionID != "" {
			pipe.SAdd(ctx, connectionKey(p.ConnectionID), input.Session.ID)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// GetSession retrieves a session by ID from Redis
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrSessionNotFound
	}

	sessionJSON, err := r.client.Get(ctx, sessionKey(input.SessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return decodeSession(sessionJSON)
}

func decodeSession(sessionJSON string) (*models.Session, error) {
	var session models.Session
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

// DeleteSession removes a session from Redis and clears the open slot if it
// pointed at it. Deleting an unknown session is not an error.
func (r *redisRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.SessionID == "" {
		return errors.New("input and session ID cannot be empty")
	}

	session, err := r.GetSession(ctx, &GetSessionInput{SessionID: input.SessionID})
	if err != nil && !errors.Is(err, ErrSessionNotFound) {
		return err
	}

	return r.withOpenSlot(ctx, func(tx *redis.Tx, open string) error {
		_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, sessionKey(input.SessionID))
			pipe.ZRem(ctx, sessionsIndexKey, input.SessionID)

			if session != nil {
				for _, p := range session.Participants {
					pipe.SRem(ctx, connectionKey(p.ConnectionID), input.SessionID)
				}
			}

			if open == input.SessionID {
				pipe.Del(ctx, openSessionKey)
			}
			return nil
		})
		return err
	})
}

// ListSessions returns every live session, oldest first
func (r *redisRepository) ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error) {
	sessionIDs, err := r.client.ZRange(ctx, sessionsIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	sessions, missing, err := r.getMany(ctx, sessionIDs)
	if err != nil {
		return nil, err
	}

	// Expired sessions leave their index entry behind
	if len(missing) > 0 {
		members := make([]any, len(missing))
		for i, id := range missing {
			members[i] = id
		}
		if err := r.client.ZRem(ctx, sessionsIndexKey, members...).Err(); err != nil {
			return nil, fmt.Errorf("failed to prune session index: %w", err)
		}
	}

	return &ListSessionsOutput{
		Sessions: sessions,
	}, nil
}

// GetSessionsByConnection returns the sessions a connection participates in
func (r *redisRepository) GetSessionsByConnection(ctx context.Context, input *GetSessionsByConnectionInput) (*GetSessionsByConnectionOutput, error) {
	if input == nil || input.ConnectionID == "" {
		return nil, errors.New("input and connection ID cannot be empty")
	}

	key := connectionKey(input.ConnectionID)
	sessionIDs, err := r.client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get sessions for connection: %w", err)
	}

	sessions, stale, err := r.getMany(ctx, sessionIDs)
	if err != nil {
		return nil, err
	}

	matched := make([]*models.Session, 0, len(sessions))
	for _, session := range sessions {
		if session.ParticipantByConnection(input.ConnectionID) >= 0 {
			matched = append(matched, session)
			continue
		}
		stale = append(stale, session.ID)
	}

	if len(stale) > 0 {
		members := make([]any, len(stale))
		for i, id := range stale {
			members[i] = id
		}
		if err := r.client.SRem(ctx, key, members...).Err(); err != nil {
			return nil, fmt.Errorf("failed to prune connection index: %w", err)
		}
	}

	return &GetSessionsByConnectionOutput{
		Sessions: matched,
	}, nil
}

// GetOpenSession returns the session open for matchmaking
func (r *redisRepository) GetOpenSession(ctx context.Context, input *GetOpenSessionInput) (*models.Session, error) {
	sessionID, err := r.client.Get(ctx, openSessionKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNoOpenSession
		}
		return nil, fmt.Errorf("failed to get open session: %w", err)
	}

	session, err := r.GetSession(ctx, &GetSessionInput{SessionID: sessionID})
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, ErrNoOpenSession
		}
		return nil, err
	}
	return session, nil
}

// SetOpenSession points the open slot at a stored session, or clears it
func (r *redisRepository) SetOpenSession(ctx context.Context, input *SetOpenSessionInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	if input.SessionID != "" {
		exists, err := r.client.Exists(ctx, sessionKey(input.SessionID)).Result()
		if err != nil {
			return fmt.Errorf("failed to check session: %w", err)
		}
		if exists == 0 {
			return ErrSessionNotFound
		}
	}

	return r.withOpenSlot(ctx, func(tx *redis.Tx, open string) error {
		if input.IfSessionID != "" && open != input.IfSessionID {
			return nil
		}

		_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if input.SessionID == "" {
				pipe.Del(ctx, openSessionKey)
			} else {
				pipe.Set(ctx, openSessionKey, input.SessionID, 0)
			}
			return nil
		})
		return err
	})
}

// withOpenSlot runs fn in a transaction watching the open slot, retrying
// when another writer changes the slot first
func (r *redisRepository) withOpenSlot(ctx context.Context, fn func(tx *redis.Tx, open string) error) error {
	txf := func(tx *redis.Tx) error {
		open, err := tx.Get(ctx, openSessionKey).Result()
		if err != nil && err != redis.Nil {
			return err
		}
		return fn(tx, open)
	}

	for i := 0; i < maxTxRetries; i++ {
		err := r.client.Watch(ctx, txf, openSessionKey)
		if err == nil {
			return nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return fmt.Errorf("failed to update open session: %w", err)
	}

	return fmt.Errorf("failed to update open session: %w", redis.TxFailedErr)
}

// getMany loads sessions in one round trip. IDs whose key is gone are
// returned as missing.
func (r *redisRepository) getMany(ctx context.Context, sessionIDs []string) ([]*models.Session, []string, error) {
	if len(sessionIDs) == 0 {
		return []*models.Session{}, nil, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(sessionIDs))
	for i, id := range sessionIDs {
		cmds[i] = pipe.Get(ctx, sessionKey(id))
	}

	// redis.Nil from missing keys is checked per command
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, nil, fmt.Errorf("failed to get sessions: %w", err)
	}

	sessions := make([]*models.Session, 0, len(sessionIDs))
	var missing []string
	for i, cmd := range cmds {
		sessionJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				missing = append(missing, sessionIDs[i])
				continue
			}
			return nil, nil, fmt.Errorf("failed to get session %s: %w", sessionIDs[i], err)
		}

		session, err := decodeSession(sessionJSON)
		if err != nil {
			return nil, nil, err
		}
		sessions = append(sessions, session)
	}

	return sessions, missing, nil
}
