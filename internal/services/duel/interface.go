package duel

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/duels/internal/services/duel Service,Broadcaster

import (
	"context"

	"github.com/KirkDiggler/duels/internal/protocol"
)

// Service runs matchmaking and the duel session state machine. Operations
// against an unknown session are no-ops that report Success=false.
type Service interface {
	// JoinOrCreate pairs the caller with the open session or opens a new one
	JoinOrCreate(ctx context.Context, input *JoinOrCreateInput) (*JoinOrCreateOutput, error)

	// PerformRoll runs the authoritative roll for an active session
	PerformRoll(ctx context.Context, input *PerformRollInput) (*PerformRollOutput, error)

	// CancelSession aborts a session on behalf of one of its participants
	CancelSession(ctx context.Context, input *CancelSessionInput) (*CancelSessionOutput, error)

	// Disconnect removes a connection from every session it holds
	Disconnect(ctx context.Context, input *DisconnectInput) (*DisconnectOutput, error)

	// RerollDie replaces one die's value and relays it to the room
	RerollDie(ctx context.Context, input *RerollDieInput) (*RerollDieOutput, error)

	// UpdateResultIndicator stores a manual pairing override and relays it
	UpdateResultIndicator(ctx context.Context, input *UpdateResultIndicatorInput) (*UpdateResultIndicatorOutput, error)

	// UpdateSuccessAssignment moves a success token and relays it
	UpdateSuccessAssignment(ctx context.Context, input *UpdateSuccessAssignmentInput) (*UpdateSuccessAssignmentOutput, error)

	// UpdateAcceptance sets the caller's acceptance flag and relays it
	UpdateAcceptance(ctx context.Context, input *UpdateAcceptanceInput) (*UpdateAcceptanceOutput, error)

	// GetCharacterStats returns a character's archived duel totals
	GetCharacterStats(ctx context.Context, input *GetCharacterStatsInput) (*GetCharacterStatsOutput, error)

	// Sweep deletes sessions older than the maximum session age
	Sweep(ctx context.Context, input *SweepInput) (*SweepOutput, error)

	// RunSweeper sweeps on every interval until ctx is done
	RunSweeper(ctx context.Context)
}

// Broadcaster delivers envelopes to connections. Rooms are keyed by session
// id. Implementations must not block and must not call back into Service.
type Broadcaster interface {
	JoinRoom(roomID, connectionID string)
	LeaveRoom(roomID, connectionID string)
	SendTo(connectionID string, env *protocol.Envelope)
	BroadcastToRoom(roomID string, env *protocol.Envelope, exceptConnectionID string)
	CloseRoom(roomID string)
}
