// Package client mirrors a duel for one participant over the duel channel.
package client

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/KirkDiggler/duels/internal/common/clock"
	"github.com/KirkDiggler/duels/internal/common/uuid"
	"github.com/KirkDiggler/duels/internal/dice"
	"github.com/KirkDiggler/duels/internal/models"
	"github.com/KirkDiggler/duels/internal/protocol"
	"github.com/KirkDiggler/duels/internal/successes"
)

// Adapter is one participant's connection to the duel channel. Requests are
// sent with the local state already updated; inbound frames are folded into
// the same state by a read loop.
type Adapter struct {
	cfg         Config
	ws          *websocket.Conn
	clock       clock.Clock
	diceRoller  dice.Roller
	clientID    string
	rerollDelay time.Duration

	mu    sync.Mutex
	state *State

	writeMu sync.Mutex
	actions atomic.Uint64

	updates chan Update
	done    chan struct{}
}

// Dial connects to the duel channel. The adapter does not join until Join is called.
func Dial(ctx context.Context, cfg *Config) (*Adapter, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.URL == "" {
		return nil, ErrMissingURL
	}
	if cfg.CharacterInfo.ID == "" {
		return nil, ErrMissingCharacter
	}
	if len(cfg.SelectedDice) == 0 {
		return nil, ErrNoDice
	}

	dialer := cfg.Dialer
	if dialer == nil {
		dialer = websocket.DefaultDialer
	}

	ws, _, err := dialer.DialContext(ctx, cfg.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", cfg.URL, err)
	}

	a := &Adapter{
		cfg:         *cfg,
		ws:          ws,
		clock:       cfg.Clock,
		diceRoller:  cfg.DiceRoller,
		rerollDelay: cfg.RerollDelay,
		state:       NewState(cfg.CharacterInfo),
		updates:     make(chan Update, updateBuffer),
		done:        make(chan struct{}),
	}
	if a.clock == nil {
		a.clock = &clock.DefaultClock{}
	}
	if a.diceRoller == nil {
		a.diceRoller = dice.New(nil)
	}
	if a.rerollDelay == 0 {
		a.rerollDelay = DefaultRerollDelay
	}

	generator := cfg.UUIDGenerator
	if generator == nil {
		generator = uuid.New()
	}
	a.clientID = generator.NewUUID()

	go a.readLoop()

	return a, nil
}

// Join asks the matchmaker for a duel
func (a *Adapter) Join(ctx context.Context) error {
	return a.send(ctx, protocol.EventAutoJoinOrCreate, &protocol.JoinPayload{
		CharacterInfo:   a.cfg.CharacterInfo,
		SelectedDice:    a.cfg.SelectedDice,
		BonusSuccessIDs: a.cfg.BonusSuccessIDs,
	})
}

// Cancel abandons the current session
func (a *Adapter) Cancel(ctx context.Context) error {
	a.mu.Lock()
	sessionID := a.state.SessionID()
	a.mu.Unlock()

	if sessionID == "" {
		return ErrNotInSession
	}
	return a.send(ctx, protocol.EventCancelSession, &protocol.CancelPayload{SessionID: sessionID})
}

// Reroll rerolls the die shown at displayIndex on side. The new value is
// rolled locally, held for the animation delay and sent only if the duel is
// still editable. The committed value arrives back as die-rerolled.
func (a *Adapter) Reroll(ctx context.Context, side successes.Side, displayIndex int) (int, error) {
	a.mu.Lock()
	sessionID := a.state.SessionID()
	original, size, err := a.state.RerollTarget(side, displayIndex)
	a.mu.Unlock()
	if err != nil {
		return 0, err
	}

	value := a.diceRoller.Roll(size)

	if err := a.wait(ctx, a.rerollDelay); err != nil {
		return 0, err
	}

	// The world may have moved on during the animation
	a.mu.Lock()
	current := a.state.SessionID()
	_, _, err = a.state.RerollTarget(side, displayIndex)
	a.mu.Unlock()
	if current != sessionID {
		return 0, ErrSessionChanged
	}
	if err != nil {
		return 0, err
	}

	err = a.send(ctx, protocol.EventRerollDie, &protocol.RerollPayload{
		SessionID:   sessionID,
		Player:      side,
		DiceIndex:   original,
		NewValue:    value,
		CharacterID: a.cfg.CharacterInfo.ID,
	})
	if err != nil {
		return 0, err
	}
	return value, nil
}

// AssignSuccess puts one of our success tokens on a pairing
func (a *Adapter) AssignSuccess(ctx context.Context, side successes.Side, pairIndex int, successID string) error {
	a.mu.Lock()
	sessionID := a.state.SessionID()
	err := a.state.AssignSuccess(side, pairIndex, successID)
	a.mu.Unlock()
	if err != nil {
		return err
	}

	return a.send(ctx, protocol.EventSuccessAssignmentUpdated, &protocol.SuccessAssignmentPayload{
		SessionID:   sessionID,
		CharacterID: a.cfg.CharacterInfo.ID,
		Player:      side,
		DiceIndex:   pairIndex,
		SuccessID:   &successID,
	})
}

// ClearSuccess removes the token on a pairing
func (a *Adapter) ClearSuccess(ctx context.Context, side successes.Side, pairIndex int) error {
	a.mu.Lock()
	sessionID := a.state.SessionID()
	err := a.state.ClearSuccess(side, pairIndex)
	a.mu.Unlock()
	if err != nil {
		return err
	}

	return a.send(ctx, protocol.EventSuccessAssignmentUpdated, &protocol.SuccessAssignmentPayload{
		SessionID:   sessionID,
		CharacterID: a.cfg.CharacterInfo.ID,
		Player:      side,
		DiceIndex:   pairIndex,
	})
}

// ToggleResult cycles the manual override on a pairing
func (a *Adapter) ToggleResult(ctx context.Context, index int) (models.ResultOverride, error) {
	token := fmt.Sprintf("%s:%d", a.clientID, a.actions.Add(1))

	a.mu.Lock()
	sessionID := a.state.SessionID()
	next, err := a.state.ToggleResult(index, token)
	a.mu.Unlock()
	if err != nil {
		return models.ResultOverride{}, err
	}

	err = a.send(ctx, protocol.EventUpdateResultIndicator, &protocol.ResultIndicatorPayload{
		SessionID:   sessionID,
		Index:       index,
		State:       next,
		CharacterID: a.cfg.CharacterInfo.ID,
		ActionToken: token,
	})
	if err != nil {
		return models.ResultOverride{}, err
	}
	return next, nil
}

// SetAccepted sets our acceptance of the current result
func (a *Adapter) SetAccepted(ctx context.Context, accepted bool) error {
	a.mu.Lock()
	sessionID := a.state.SessionID()
	err := a.state.SetAccepted(accepted)
	a.mu.Unlock()
	if err != nil {
		return err
	}

	return a.send(ctx, protocol.EventAcceptanceStateUpdated, &protocol.AcceptancePayload{
		SessionID:   sessionID,
		CharacterID: a.cfg.CharacterInfo.ID,
		Accepted:    accepted,
	})
}

// State returns a copy of the mirrored duel
func (a *Adapter) State() View {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state.Snapshot()
}

// Updates signals every frame that changed the state. The channel is closed
// when the connection ends.
func (a *Adapter) Updates() <-chan Update {
	return a.updates
}

// Done is closed when the connection ends
func (a *Adapter) Done() <-chan struct{} {
	return a.done
}

// Close ends the connection; the server treats it as a disconnect
func (a *Adapter) Close() error {
	a.writeMu.Lock()
	_ = a.ws.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeTimeout))
	a.writeMu.Unlock()

	err := a.ws.Close()
	<-a.done
	return err
}

func (a *Adapter) send(ctx context.Context, event protocol.Event, payload any) error {
	select {
	case <-a.done:
		return ErrClosed
	default:
	}

	env, err := protocol.NewEnvelope(event, payload)
	if err != nil {
		return err
	}
	msg, err := env.Marshal()
	if err != nil {
		return err
	}

	deadline := time.Now().Add(writeTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	a.writeMu.Lock()
	defer a.writeMu.Unlock()

	if err := a.ws.SetWriteDeadline(deadline); err != nil {
		return fmt.Errorf("failed to send %s: %w", event, err)
	}
	if err := a.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
		return fmt.Errorf("failed to send %s: %w", event, err)
	}
	return nil
}

func (a *Adapter) wait(ctx context.Context, d time.Duration) error {
	fired := make(chan struct{})
	timer := a.clock.AfterFunc(d, func() { close(fired) })

	select {
	case <-fired:
		return nil
	case <-a.done:
		timer.Stop()
		return ErrClosed
	case <-ctx.Done():
		timer.Stop()
		return ctx.Err()
	}
}

func (a *Adapter) readLoop() {
	defer close(a.done)
	defer close(a.updates)

	for {
		_, msg, err := a.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("client: read failed character=%s err=%v", a.cfg.CharacterInfo.ID, err)
			}
			return
		}

		env, err := protocol.Parse(msg)
		if err != nil {
			log.Printf("client: dropping unreadable frame err=%v", err)
			continue
		}

		a.mu.Lock()
		changed, err := a.state.Apply(env)
		a.mu.Unlock()
		if err != nil {
			log.Printf("client: failed to apply %s err=%v", env.Event, err)
			continue
		}
		if !changed {
			continue
		}

		select {
		case a.updates <- Update{Event: env.Event}:
		default:
			log.Printf("client: update buffer full, dropped %s", env.Event)
		}
	}
}
