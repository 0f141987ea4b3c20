package duel_ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/duels/internal/repositories/duel_ledger Repository

import (
	"context"

	"github.com/KirkDiggler/duels/internal/models"
)

// Repository defines the interface for duel archive persistence
type Repository interface {
	// RecordDuel archives a duel both participants accepted
	RecordDuel(ctx context.Context, input *RecordDuelInput) error

	// GetDuel retrieves an archived duel by ID
	GetDuel(ctx context.Context, input *GetDuelInput) (*models.DuelRecord, error)

	// GetDuelsForCharacter retrieves a character's duels, newest first
	GetDuelsForCharacter(ctx context.Context, input *GetDuelsForCharacterInput) (*GetDuelsForCharacterOutput, error)

	// GetCharacterStats retrieves a character's win/loss/draw totals
	GetCharacterStats(ctx context.Context, input *GetCharacterStatsInput) (*models.CharacterStats, error)
}
