// Package successes tracks which bonus success token sits on which dice pairing.
package successes

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Side labels a pool relative to whoever is looking at it
type Side string

const (
	// SidePlayer is the viewer's own pool
	SidePlayer Side = "player"

	// SideOpponent is the other participant's pool
	SideOpponent Side = "opponent"
)

// Valid reports whether s is a known side
func (s Side) Valid() bool {
	return s == SidePlayer || s == SideOpponent
}

// Flip returns the same pool seen from the other participant
func (s Side) Flip() Side {
	if s == SidePlayer {
		return SideOpponent
	}
	return SidePlayer
}

// Owner returns the participant index a side refers to when the sender sits
// at senderIndex in a two-participant session.
func (s Side) Owner(senderIndex int) int {
	if s == SidePlayer {
		return senderIndex
	}
	return 1 - senderIndex
}

// Key addresses one pairing on one side
type Key struct {
	Side      Side
	PairIndex int
}

// String formats the key as "{side}-{pairIndex}"
func (k Key) String() string {
	return fmt.Sprintf("%s-%d", k.Side, k.PairIndex)
}

// ParseKey reverses Key.String
func ParseKey(s string) (Key, error) {
	i := strings.LastIndex(s, "-")
	if i <= 0 {
		return Key{}, fmt.Errorf("invalid success key %q", s)
	}
	side := Side(s[:i])
	if !side.Valid() {
		return Key{}, fmt.Errorf("invalid side in success key %q", s)
	}
	idx, err := strconv.Atoi(s[i+1:])
	if err != nil || idx < 0 {
		return Key{}, fmt.Errorf("invalid pair index in success key %q", s)
	}
	return Key{Side: side, PairIndex: idx}, nil
}

// Remote is an assignment change made by the other participant, expressed in
// the sender's frame
type Remote struct {
	CharacterID string
	Side        Side
	PairIndex   int
	// SuccessID is nil when the assignment is cleared
	SuccessID *string
}

// Ledger maps pairings to success tokens. It is not safe for concurrent use;
// the owner serializes access.
type Ledger struct {
	assignments map[Key]string
}

// New creates an empty ledger
func New() *Ledger {
	return &Ledger{
		assignments: make(map[Key]string),
	}
}

// Assign puts successID on the pairing. A token sits on at most one pairing
// per side, so it is moved off any other pairing first.
func (l *Ledger) Assign(side Side, pairIndex int, successID string) {
	for key, id := range l.assignments {
		if id == successID && key.Side == side {
			delete(l.assignments, key)
		}
	}
	l.assignments[Key{Side: side, PairIndex: pairIndex}] = successID
}

// Clear removes the assignment on the pairing. Returns false if there was none.
func (l *Ledger) Clear(side Side, pairIndex int) bool {
	key := Key{Side: side, PairIndex: pairIndex}
	if _, ok := l.assignments[key]; !ok {
		return false
	}
	delete(l.assignments, key)
	return true
}

// Get returns the token on the pairing
func (l *Ledger) Get(side Side, pairIndex int) (string, bool) {
	id, ok := l.assignments[Key{Side: side, PairIndex: pairIndex}]
	return id, ok
}

// Len returns the number of assignments
func (l *Ledger) Len() int {
	return len(l.assignments)
}

// Reset drops every assignment
func (l *Ledger) Reset() {
	l.assignments = make(map[Key]string)
}

// Snapshot returns the assignments keyed by "{side}-{pairIndex}"
func (l *Ledger) Snapshot() map[string]string {
	out := make(map[string]string, len(l.assignments))
	for key, id := range l.assignments {
		out[key.String()] = id
	}
	return out
}

// Keys returns the assigned keys in a stable order
func (l *Ledger) Keys() []Key {
	keys := make([]Key, 0, len(l.assignments))
	for key := range l.assignments {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Side != keys[j].Side {
			return keys[i].Side < keys[j].Side
		}
		return keys[i].PairIndex < keys[j].PairIndex
	})
	return keys
}

// ApplyRemote replays a change from the other participant. Changes sent by
// selfCharacterID are our own echo and are dropped. The sender's side is
// flipped into our frame. Replaying the same change is idempotent. Returns
// whether the change was applied.
func (l *Ledger) ApplyRemote(r Remote, selfCharacterID string) bool {
	if r.CharacterID == selfCharacterID || !r.Side.Valid() || r.PairIndex < 0 {
		return false
	}

	side := r.Side.Flip()
	if r.SuccessID == nil || *r.SuccessID == "" {
		l.Clear(side, r.PairIndex)
		return true
	}

	l.Assign(side, r.PairIndex, *r.SuccessID)
	return true
}
