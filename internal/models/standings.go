package models

// CharacterStats represents a character's duel history totals
type CharacterStats struct {
	// CharacterID is the character the totals belong to
	CharacterID string

	// Wins is the number of duels won
	Wins int

	// Losses is the number of duels lost
	Losses int

	// Draws is the number of drawn duels
	Draws int
}

// Played returns the number of recorded duels
func (s *CharacterStats) Played() int {
	return s.Wins + s.Losses + s.Draws
}
