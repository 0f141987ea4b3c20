package duel_ledger

import "github.com/KirkDiggler/duels/internal/models"

type RecordDuelInput struct {
	Record *models.DuelRecord
}

type GetDuelInput struct {
	DuelID string
}

// GetDuelsForCharacterInput selects a character's history. A zero Limit returns every duel.
type GetDuelsForCharacterInput struct {
	CharacterID string
	Limit       int
}

type GetDuelsForCharacterOutput struct {
	Records []*models.DuelRecord
}

type GetCharacterStatsInput struct {
	CharacterID string
}
