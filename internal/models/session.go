package models

import (
	"time"
)

// SessionStatus represents the current state of a duel session
type SessionStatus string

const (
	// SessionStatusWaiting indicates a session has one participant and is open for matchmaking
	SessionStatusWaiting SessionStatus = "WAITING"

	// SessionStatusActive indicates both participants are in and the roll is pending
	SessionStatusActive SessionStatus = "ACTIVE"

	// SessionStatusRolling is only held while the authoritative roll runs
	SessionStatusRolling SessionStatus = "ROLLING"

	// SessionStatusCompleted indicates the dice have been rolled
	SessionStatusCompleted SessionStatus = "COMPLETED"

	// SessionStatusCancelled indicates the session was abandoned
	SessionStatusCancelled SessionStatus = "CANCELLED"
)

// WinnerTie is the Winner value when both totals are equal
const WinnerTie = -1

// MaxParticipants is the number of sides in a duel
const MaxParticipants = 2

// Session represents one matched duel between two participants
type Session struct {
	// ID is the unique identifier for the session
	ID string `json:"id"`

	// CreatedAt is when the session was created, used by the sweeper
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is when the session last changed
	UpdatedAt time.Time `json:"updatedAt"`

	// Status is the current state of the session
	Status SessionStatus `json:"status"`

	// Participants in insertion order, never reordered
	Participants []*Participant `json:"participants"`

	// Winner is the index of the winning participant, WinnerTie, or nil before the roll
	Winner *int `json:"winner"`

	// Overrides holds manual result overrides by pairing index
	Overrides map[int]ResultOverride `json:"overrides,omitempty"`

	// AcceptedAt is set once both participants have accepted the result
	AcceptedAt *time.Time `json:"acceptedAt,omitempty"`
}

// ResultOverride is a manually cycled pairing result. An empty
// WinnerCharacterID is a tie; WasOpponentWin remembers which side the
// cycle came from.
type ResultOverride struct {
	WinnerCharacterID string `json:"winnerCharacterId"`
	WasOpponentWin    bool   `json:"wasOpponentWin"`
}

// IsWaiting reports whether the session is open for a second participant
func (s *Session) IsWaiting() bool {
	return s.Status == SessionStatusWaiting
}

// IsCompleted reports whether the authoritative roll has happened
func (s *Session) IsCompleted() bool {
	return s.Status == SessionStatusCompleted
}

// IsFull reports whether both sides are present
func (s *Session) IsFull() bool {
	return len(s.Participants) == MaxParticipants
}

// ParticipantByConnection returns the index of the participant holding connectionID, or -1
func (s *Session) ParticipantByConnection(connectionID string) int {
	for i, p := range s.Participants {
		if p.ConnectionID == connectionID {
			return i
		}
	}
	return -1
}

// ParticipantByCharacter returns the index of the participant playing characterID, or -1
func (s *Session) ParticipantByCharacter(characterID string) int {
	for i, p := range s.Participants {
		if p.CharacterInfo.ID == characterID {
			return i
		}
	}
	return -1
}

// Opponent returns the participant facing index i, or nil
func (s *Session) Opponent(i int) *Participant {
	if !s.IsFull() || i < 0 || i >= MaxParticipants {
		return nil
	}
	return s.Participants[1-i]
}

// BothAccepted reports whether the acceptance handshake is complete
func (s *Session) BothAccepted() bool {
	if !s.IsFull() {
		return false
	}
	return s.Participants[0].Accepted && s.Participants[1].Accepted
}

// AnyAccepted reports whether either side has committed to the result
func (s *Session) AnyAccepted() bool {
	for _, p := range s.Participants {
		if p.Accepted {
			return true
		}
	}
	return false
}
