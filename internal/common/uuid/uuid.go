package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/duels/internal/common/uuid UUID

// UUID hands out identifiers for sessions, duel records and connections
type UUID interface {
	NewUUID() string
}

// DefaultUUID generates random (v4) identifiers
type DefaultUUID struct {
	// Prefix is prepended to every identifier when set, e.g. "conn-"
	Prefix string
}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewWithPrefix returns a generator whose identifiers start with prefix
func NewWithPrefix(prefix string) *DefaultUUID {
	return &DefaultUUID{Prefix: prefix}
}

// NewUUID returns a new UUID
func (d *DefaultUUID) NewUUID() string {
	return d.Prefix + uuid.New().String()
}
