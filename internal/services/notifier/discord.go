package notifier

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/KirkDiggler/duels/internal/models"
	"github.com/KirkDiggler/duels/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

const (
	colorWin  = 0x2ecc71
	colorDraw = 0xf1c40f
)

type discordNotifier struct {
	webhookID    string
	webhookToken string
	username     string
	executor     WebhookExecutor
	messaging    messaging.Service
}

// NewDiscord creates a notifier that posts an embed to a Discord webhook
func NewDiscord(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Executor == nil {
		return nil, ErrNilExecutor
	}
	if cfg.Messaging == nil {
		return nil, ErrNilMessaging
	}

	id, token, err := ParseWebhookURL(cfg.WebhookURL)
	if err != nil {
		return nil, err
	}

	return &discordNotifier{
		webhookID:    id,
		webhookToken: token,
		username:     cfg.Username,
		executor:     cfg.Executor,
		messaging:    cfg.Messaging,
	}, nil
}

// ParseWebhookURL extracts the webhook id and token from a Discord webhook URL
func ParseWebhookURL(raw string) (string, string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidWebhookURL, err)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return "", "", ErrInvalidWebhookURL
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	// api/webhooks/<id>/<token>, optionally api/v10/webhooks/<id>/<token>
	for i := 0; i+2 < len(parts); i++ {
		if parts[i] == "webhooks" && parts[i+1] != "" && parts[i+2] != "" {
			return parts[i+1], parts[i+2], nil
		}
	}

	return "", "", ErrInvalidWebhookURL
}

// PostDuelSummary posts the duel summary embed
func (n *discordNotifier) PostDuelSummary(ctx context.Context, input *PostDuelSummaryInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	summary, err := n.messaging.GetDuelSummaryMessage(ctx, &messaging.GetDuelSummaryMessageInput{
		CharacterName: input.CharacterName,
		OpponentName:  input.OpponentName,
		Outcome:       input.Result,
		UserWins:      input.UserWins,
		OpponentWins:  input.OpponentWins,
		DrawCount:     input.DrawCount,
	})
	if err != nil {
		return fmt.Errorf("failed to build duel summary: %w", err)
	}

	color := colorWin
	if input.Result == models.DuelOutcomeDraw {
		color = colorDraw
	}

	params := &discordgo.WebhookParams{
		Username: n.username,
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       summary.Title,
				Description: summary.Message,
				Color:       color,
				Fields: []*discordgo.MessageEmbedField{
					{Name: input.CharacterName, Value: fmt.Sprintf("%d", input.UserWins), Inline: true},
					{Name: input.OpponentName, Value: fmt.Sprintf("%d", input.OpponentWins), Inline: true},
					{Name: "Ties", Value: fmt.Sprintf("%d", input.DrawCount), Inline: true},
				},
			},
		},
	}

	if _, err := n.executor.WebhookExecute(n.webhookID, n.webhookToken, false, params, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to execute webhook: %w", err)
	}

	return nil
}
