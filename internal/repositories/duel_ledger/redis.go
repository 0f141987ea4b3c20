package duel_ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/KirkDiggler/duels/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	duelKeyPrefix           = "duel:"
	characterDuelsKeyPrefix = "character_duels:"
	characterStatsKeyPrefix = "character_stats:"

	statsFieldWins   = "wins"
	statsFieldLosses = "losses"
	statsFieldDraws  = "draws"
)

// ErrDuelNotFound is returned when a duel record is not found
var ErrDuelNotFound = errors.New("duel record not found")

// Config holds configuration for the Redis duel ledger repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed duel ledger repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// RecordDuel stores the record, indexes it under both characters and bumps their totals
func (r *redisRepository) RecordDuel(ctx context.Context, input *RecordDuelInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	record := input.Record
	if record.ID == "" {
		return errors.New("duel record ID cannot be empty")
	}
	if record.CharacterID == "" || record.OpponentID == "" {
		return errors.New("duel record needs both character IDs")
	}

	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal duel record: %w", err)
	}

	pipe := r.client.TxPipeline()

	duelKey := duelKeyPrefix + record.ID
	pipe.Set(ctx, duelKey, recordJSON, 0)

	score := float64(record.Timestamp.UnixMilli())
	for _, characterID := range []string{record.CharacterID, record.OpponentID} {
		pipe.ZAdd(ctx, characterDuelsKeyPrefix+characterID, redis.Z{
			Score:  score,
			Member: record.ID,
		})
	}

	pipe.HIncrBy(ctx, characterStatsKeyPrefix+record.CharacterID, statsField(record.Outcome), 1)
	pipe.HIncrBy(ctx, characterStatsKeyPrefix+record.OpponentID, statsField(record.Outcome.Invert()), 1)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record duel: %w", err)
	}

	return nil
}

// GetDuel retrieves an archived duel by ID
func (r *redisRepository) GetDuel(ctx context.Context, input *GetDuelInput) (*models.DuelRecord, error) {
	if input == nil || input.DuelID == "" {
		return nil, errors.New("input and duel ID cannot be empty")
	}

	recordJSON, err := r.client.Get(ctx, duelKeyPrefix+input.DuelID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrDuelNotFound
		}
		return nil, fmt.Errorf("failed to get duel record: %w", err)
	}

	var record models.DuelRecord
	if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal duel record: %w", err)
	}

	return &record, nil
}

// GetDuelsForCharacter retrieves a character's duels, newest first
func (r *redisRepository) GetDuelsForCharacter(ctx context.Context, input *GetDuelsForCharacterInput) (*GetDuelsForCharacterOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.New("input and character ID cannot be empty")
	}

	stop := int64(-1)
	if input.Limit > 0 {
		stop = int64(input.Limit - 1)
	}

	duelIDs, err := r.client.ZRevRange(ctx, characterDuelsKeyPrefix+input.CharacterID, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get duel IDs for character: %w", err)
	}

	if len(duelIDs) == 0 {
		return &GetDuelsForCharacterOutput{
			Records: []*models.DuelRecord{},
		}, nil
	}

	// Fetch all records in one round trip; keep the sorted set order
	pipe := r.client.Pipeline()
	duelCommands := make([]*redis.StringCmd, len(duelIDs))
	for i, duelID := range duelIDs {
		duelCommands[i] = pipe.Get(ctx, duelKeyPrefix+duelID)
	}

	// redis.Nil from a single GET surfaces here too; handled per command below
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get duel records: %w", err)
	}

	records := make([]*models.DuelRecord, 0, len(duelIDs))
	for i, cmd := range duelCommands {
		recordJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get duel record %s: %w", duelIDs[i], err)
		}

		var record models.DuelRecord
		if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal duel record %s: %w", duelIDs[i], err)
		}

		records = append(records, &record)
	}

	return &GetDuelsForCharacterOutput{
		Records: records,
	}, nil
}

// GetCharacterStats retrieves a character's win/loss/draw totals
func (r *redisRepository) GetCharacterStats(ctx context.Context, input *GetCharacterStatsInput) (*models.CharacterStats, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.New("input and character ID cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, characterStatsKeyPrefix+input.CharacterID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get character stats: %w", err)
	}

	stats := &models.CharacterStats{
		CharacterID: input.CharacterID,
	}

	for field, target := range map[string]*int{
		statsFieldWins:   &stats.Wins,
		statsFieldLosses: &stats.Losses,
		statsFieldDraws:  &stats.Draws,
	} {
		raw, ok := fields[field]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s count for character %s: %w", field, input.CharacterID, err)
		}
		*target = n
	}

	return stats, nil
}

func statsField(outcome models.DuelOutcome) string {
	switch outcome {
	case models.DuelOutcomeWin:
		return statsFieldWins
	case models.DuelOutcomeLoss:
		return statsFieldLosses
	default:
		return statsFieldDraws
	}
}
