package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/duels/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetCancellationMessage returns the notice shown when a duel is aborted
	GetCancellationMessage(ctx context.Context, input *GetCancellationMessageInput) (*GetCancellationMessageOutput, error)

	// GetDuelSummaryMessage returns the headline and body for a finished duel
	GetDuelSummaryMessage(ctx context.Context, input *GetDuelSummaryMessageInput) (*GetDuelSummaryMessageOutput, error)
}
