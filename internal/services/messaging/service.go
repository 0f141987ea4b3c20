package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/duels/internal/models"
)

// service implements the Service interface
type service struct {
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	seed := time.Now().UnixNano()
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

// GetCancellationMessage returns the notice shown when a duel is aborted
func (s *service) GetCancellationMessage(ctx context.Context, input *GetCancellationMessageInput) (*GetCancellationMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.Tone
	if tone == "" {
		tone = ToneNeutral
	}

	name := input.CharacterName
	if name == "" {
		name = "Your opponent"
	}

	var messages []string
	switch input.Reason {
	case CancelReasonDisconnected:
		switch tone {
		case ToneDramatic:
			messages = []string{
				fmt.Sprintf("%s vanished into the mist before the duel was settled.", name),
				fmt.Sprintf("The arena falls silent. %s has fled the field.", name),
			}
		case ToneSnarky:
			messages = []string{
				fmt.Sprintf("%s tripped over the network cable. Duel's off.", name),
				fmt.Sprintf("%s remembered an urgent appointment elsewhere.", name),
			}
		default:
			messages = []string{
				fmt.Sprintf("%s disconnected. The duel has been cancelled.", name),
			}
		}
	default:
		switch tone {
		case ToneDramatic:
			messages = []string{
				fmt.Sprintf("%s sheathed their blade. The duel is called off.", name),
				fmt.Sprintf("By the will of %s, steel is lowered and the duel ends.", name),
			}
		case ToneSnarky:
			messages = []string{
				fmt.Sprintf("%s got cold feet. Duel cancelled.", name),
				fmt.Sprintf("%s decided today is not the day. Duel cancelled.", name),
			}
		default:
			messages = []string{
				fmt.Sprintf("%s cancelled the duel.", name),
			}
		}
	}

	return &GetCancellationMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetDuelSummaryMessage returns the headline and body for a finished duel
func (s *service) GetDuelSummaryMessage(ctx context.Context, input *GetDuelSummaryMessageInput) (*GetDuelSummaryMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.CharacterName == "" || input.OpponentName == "" {
		return nil, errors.New("both character names are required")
	}

	tone := input.Tone
	if tone == "" {
		tone = ToneDramatic
	}

	score := fmt.Sprintf("%d-%d", input.UserWins, input.OpponentWins)
	if input.DrawCount > 0 {
		score = fmt.Sprintf("%s with %d tied", score, input.DrawCount)
	}

	winner, loser := input.CharacterName, input.OpponentName
	if input.Outcome == models.DuelOutcomeLoss {
		winner, loser = loser, winner
	}

	var titles, messages []string
	switch input.Outcome {
	case models.DuelOutcomeDraw:
		titles = []string{"Stalemate", "Evenly Matched", "Honors Even"}
		switch tone {
		case ToneSnarky:
			messages = []string{
				fmt.Sprintf("%s and %s fought to a %s draw. Riveting stuff.", input.CharacterName, input.OpponentName, score),
			}
		case ToneNeutral:
			messages = []string{
				fmt.Sprintf("%s and %s drew (%s).", input.CharacterName, input.OpponentName, score),
			}
		default:
			messages = []string{
				fmt.Sprintf("Neither %s nor %s would yield. The duel ends %s.", input.CharacterName, input.OpponentName, score),
				fmt.Sprintf("Blades locked, %s and %s part as equals at %s.", input.CharacterName, input.OpponentName, score),
			}
		}
	default:
		titles = []string{"Duel Decided", "Victory", "The Dust Settles"}
		switch tone {
		case ToneSnarky:
			messages = []string{
				fmt.Sprintf("%s beat %s %s. %s will be hearing about this for a while.", winner, loser, score, loser),
			}
		case ToneNeutral:
			messages = []string{
				fmt.Sprintf("%s defeated %s (%s).", winner, loser, score),
			}
		default:
			messages = []string{
				fmt.Sprintf("%s stands victorious over %s, %s.", winner, loser, score),
				fmt.Sprintf("The crowd roars for %s! %s yields at %s.", winner, loser, score),
			}
		}
	}

	return &GetDuelSummaryMessageOutput{
		Title:   s.pick(titles),
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

func (s *service) pick(options []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return options[s.rand.Intn(len(options))]
}
