package models

// CharacterInfo is the opaque identity a client duels as. Only ID and Name are read.
type CharacterInfo struct {
	// ID is the client supplied character identifier
	ID string `json:"id"`

	// Name is the display name of the character
	Name string `json:"name"`
}

// Participant represents one side of a duel
type Participant struct {
	// ConnectionID is the transport connection holding this side
	ConnectionID string `json:"connectionId"`

	// CharacterInfo identifies the character
	CharacterInfo CharacterInfo `json:"characterInfo"`

	// SelectedDice are the die sizes chosen before the duel, in ranked order
	SelectedDice []int `json:"selectedDice"`

	// BonusSuccessIDs are the success tokens this side may assign
	BonusSuccessIDs []string `json:"bonusSuccessIds"`

	// RollResults[i] is the face rolled for SelectedDice[i]
	RollResults []int `json:"rollResults,omitempty"`

	// RollTotal is the sum of RollResults
	RollTotal int `json:"rollTotal"`

	// Accepted is true once this side commits to the current result
	Accepted bool `json:"accepted"`

	// Successes maps a pairing index to the success token assigned to this side
	Successes map[int]string `json:"successes,omitempty"`
}

// HasRolled reports whether the authoritative roll has filled in results
func (p *Participant) HasRolled() bool {
	return len(p.RollResults) == len(p.SelectedDice) && len(p.RollResults) > 0
}
