package notifier

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/duels/internal/services/notifier Service,WebhookExecutor

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// Service posts duel results outside the duel itself
type Service interface {
	// PostDuelSummary announces a mutually accepted duel
	PostDuelSummary(ctx context.Context, input *PostDuelSummaryInput) error
}

// WebhookExecutor is the slice of *discordgo.Session the notifier uses
type WebhookExecutor interface {
	WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}
