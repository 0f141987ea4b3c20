package notifier_test

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/duels/internal/models"
	"github.com/KirkDiggler/duels/internal/services/messaging"
	"github.com/KirkDiggler/duels/internal/services/notifier"
	"github.com/KirkDiggler/duels/internal/services/notifier/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testWebhookURL = "https://discord.com/api/webhooks/123456/secret-token"

type DiscordNotifierTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockExecutor *mocks.MockWebhookExecutor
	svc          notifier.Service
	ctx          context.Context
}

func (s *DiscordNotifierTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockExecutor = mocks.NewMockWebhookExecutor(s.ctrl)
	s.ctx = context.Background()

	msg, err := messaging.NewService(&messaging.ServiceConfig{Seed: 7})
	s.Require().NoError(err)

	n, err := notifier.NewDiscord(&notifier.Config{
		WebhookURL: testWebhookURL,
		Executor:   s.mockExecutor,
		Messaging:  msg,
		Username:   "Duel Herald",
	})
	s.Require().NoError(err)
	s.svc = n
}

func (s *DiscordNotifierTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestDiscordNotifierTestSuite(t *testing.T) {
	suite.Run(t, new(DiscordNotifierTestSuite))
}

func (s *DiscordNotifierTestSuite) TestPostDuelSummary() {
	var sent *discordgo.WebhookParams
	s.mockExecutor.EXPECT().
		WebhookExecute("123456", "secret-token", false, gomock.Any(), gomock.Any()).
		DoAndReturn(func(id, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error) {
			sent = data
			return nil, nil
		})

	err := s.svc.PostDuelSummary(s.ctx, &notifier.PostDuelSummaryInput{
		CharacterName: "Aria",
		OpponentName:  "Bram",
		Result:        models.DuelOutcomeWin,
		UserWins:      2,
		OpponentWins:  1,
	})
	s.Require().NoError(err)

	s.Require().NotNil(sent)
	s.Equal("Duel Herald", sent.Username)
	s.Require().Len(sent.Embeds, 1)
	embed := sent.Embeds[0]
	s.NotEmpty(embed.Title)
	s.Contains(embed.Description, "Aria")
	s.Equal(notifier.ColorWin, embed.Color)
	s.Require().Len(embed.Fields, 3)
	s.Equal("Aria", embed.Fields[0].Name)
	s.Equal("2", embed.Fields[0].Value)
	s.Equal("Bram", embed.Fields[1].Name)
	s.Equal("1", embed.Fields[1].Value)
	s.Equal("0", embed.Fields[2].Value)
}

func (s *DiscordNotifierTestSuite) TestPostDuelSummaryDrawColor() {
	s.mockExecutor.EXPECT().
		WebhookExecute("123456", "secret-token", false, gomock.Any(), gomock.Any()).
		DoAndReturn(func(id, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error) {
			s.Equal(notifier.ColorDraw, data.Embeds[0].Color)
			return nil, nil
		})

	err := s.svc.PostDuelSummary(s.ctx, &notifier.PostDuelSummaryInput{
		CharacterName: "Aria",
		OpponentName:  "Bram",
		Result:        models.DuelOutcomeDraw,
		UserWins:      1,
		OpponentWins:  1,
		DrawCount:     1,
	})
	s.NoError(err)
}

func (s *DiscordNotifierTestSuite) TestPostDuelSummaryExecutorError() {
	s.mockExecutor.EXPECT().
		WebhookExecute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("rate limited"))

	err := s.svc.PostDuelSummary(s.ctx, &notifier.PostDuelSummaryInput{
		CharacterName: "Aria",
		OpponentName:  "Bram",
		Result:        models.DuelOutcomeLoss,
	})
	s.Error(err)
	s.Contains(err.Error(), "rate limited")
}

func (s *DiscordNotifierTestSuite) TestPostDuelSummaryMissingNames() {
	err := s.svc.PostDuelSummary(s.ctx, &notifier.PostDuelSummaryInput{CharacterName: "Aria"})
	s.Error(err)
}

func (s *DiscordNotifierTestSuite) TestNewDiscordValidation() {
	msg, err := messaging.NewService(nil)
	s.Require().NoError(err)

	_, err = notifier.NewDiscord(nil)
	s.Error(err)

	_, err = notifier.NewDiscord(&notifier.Config{WebhookURL: testWebhookURL, Messaging: msg})
	s.ErrorIs(err, notifier.ErrNilExecutor)

	_, err = notifier.NewDiscord(&notifier.Config{WebhookURL: testWebhookURL, Executor: s.mockExecutor})
	s.ErrorIs(err, notifier.ErrNilMessaging)

	_, err = notifier.NewDiscord(&notifier.Config{WebhookURL: "not a webhook", Executor: s.mockExecutor, Messaging: msg})
	s.ErrorIs(err, notifier.ErrInvalidWebhookURL)
}

func (s *DiscordNotifierTestSuite) TestParseWebhookURL() {
	tests := []struct {
		name    string
		raw     string
		id      string
		token   string
		wantErr bool
	}{
		{name: "standard", raw: testWebhookURL, id: "123456", token: "secret-token"},
		{name: "versioned api", raw: "https://discord.com/api/v10/webhooks/42/tok", id: "42", token: "tok"},
		{name: "trailing slash", raw: "https://discord.com/api/webhooks/42/tok/", id: "42", token: "tok"},
		{name: "missing token", raw: "https://discord.com/api/webhooks/42", wantErr: true},
		{name: "wrong scheme", raw: "ftp://discord.com/api/webhooks/42/tok", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			id, token, err := notifier.ParseWebhookURL(tt.raw)
			if tt.wantErr {
				s.ErrorIs(err, notifier.ErrInvalidWebhookURL)
				return
			}
			s.Require().NoError(err)
			s.Equal(tt.id, id)
			s.Equal(tt.token, token)
		})
	}
}

func (s *DiscordNotifierTestSuite) TestNoop() {
	s.NoError(notifier.NewNoop().PostDuelSummary(s.ctx, &notifier.PostDuelSummaryInput{}))
}
