package models

import (
	"time"
)

// DuelOutcome is the result of a duel from the recorded character's point of view
type DuelOutcome string

const (
	// DuelOutcomeWin indicates the character won more pairings
	DuelOutcomeWin DuelOutcome = "win"

	// DuelOutcomeLoss indicates the opponent won more pairings
	DuelOutcomeLoss DuelOutcome = "loss"

	// DuelOutcomeDraw indicates equal pairing wins
	DuelOutcomeDraw DuelOutcome = "draw"
)

// Invert returns the outcome seen from the other side
func (o DuelOutcome) Invert() DuelOutcome {
	switch o {
	case DuelOutcomeWin:
		return DuelOutcomeLoss
	case DuelOutcomeLoss:
		return DuelOutcomeWin
	default:
		return o
	}
}

// DuelRecord archives a duel both participants accepted
type DuelRecord struct {
	// ID is the unique identifier for the record
	ID string `json:"id"`

	// SessionID is the session the duel was played in
	SessionID string `json:"sessionId"`

	// CharacterID is the first participant's character
	CharacterID string `json:"characterId"`

	// CharacterName is the first participant's character name
	CharacterName string `json:"characterName"`

	// OpponentID is the second participant's character
	OpponentID string `json:"opponentId"`

	// OpponentName is the second participant's character name
	OpponentName string `json:"opponentName"`

	// Outcome is the result for CharacterID
	Outcome DuelOutcome `json:"outcome"`

	// UserWins is the number of pairings CharacterID won
	UserWins int `json:"userWins"`

	// OpponentWins is the number of pairings OpponentID won
	OpponentWins int `json:"opponentWins"`

	// DrawCount is the number of tied pairings
	DrawCount int `json:"drawCount"`

	// CharacterTotal and OpponentTotal are the rolled totals
	CharacterTotal int `json:"characterTotal"`
	OpponentTotal  int `json:"opponentTotal"`

	// Timestamp is when the duel was accepted
	Timestamp time.Time `json:"timestamp"`
}
