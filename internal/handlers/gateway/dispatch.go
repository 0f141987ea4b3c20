package gateway

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/duels/internal/protocol"
	"github.com/KirkDiggler/duels/internal/services/duel"
)

// errUnknownEvent is reported for frames no handler claims
var errUnknownEvent = errors.New("unknown event")

// dispatch routes one inbound frame to the duel service. Frames that cannot
// be read are answered with an error frame; rejected edits are silent.
func (g *Gateway) dispatch(ctx context.Context, c *connection, raw []byte) {
	env, err := protocol.Parse(raw)
	if err != nil {
		g.sendError(c, err)
		return
	}

	if err := g.handle(ctx, c.id, env); err != nil {
		log.Printf("gateway: %s failed connection=%s err=%v", env.Event, c.id, err)
		g.sendError(c, err)
	}
}

func (g *Gateway) handle(ctx context.Context, connectionID string, env *protocol.Envelope) error {
	switch env.Event {
	case protocol.EventAutoJoinOrCreate:
		var payload protocol.JoinPayload
		if err := env.Decode(&payload); err != nil {
			return err
		}
		_, err := g.duelService.JoinOrCreate(ctx, &duel.JoinOrCreateInput{
			ConnectionID:    connectionID,
			CharacterInfo:   payload.CharacterInfo,
			SelectedDice:    payload.SelectedDice,
			BonusSuccessIDs: payload.BonusSuccessIDs,
		})
		return err

	case protocol.EventCancelSession:
		var payload protocol.CancelPayload
		if err := env.Decode(&payload); err != nil {
			return err
		}
		_, err := g.duelService.CancelSession(ctx, &duel.CancelSessionInput{
			ConnectionID: connectionID,
			SessionID:    payload.SessionID,
		})
		return err

	case protocol.EventRerollDie:
		var payload protocol.RerollPayload
		if err := env.Decode(&payload); err != nil {
			return err
		}
		_, err := g.duelService.RerollDie(ctx, &duel.RerollDieInput{
			ConnectionID: connectionID,
			SessionID:    payload.SessionID,
			Player:       payload.Player,
			DiceIndex:    payload.DiceIndex,
			NewValue:     payload.NewValue,
			CharacterID:  payload.CharacterID,
		})
		return err

	case protocol.EventUpdateResultIndicator:
		var payload protocol.ResultIndicatorPayload
		if err := env.Decode(&payload); err != nil {
			return err
		}
		_, err := g.duelService.UpdateResultIndicator(ctx, &duel.UpdateResultIndicatorInput{
			ConnectionID: connectionID,
			SessionID:    payload.SessionID,
			Index:        payload.Index,
			State:        payload.State,
			ActionToken:  payload.ActionToken,
		})
		return err

	case protocol.EventSuccessAssignmentUpdated:
		var payload protocol.SuccessAssignmentPayload
		if err := env.Decode(&payload); err != nil {
			return err
		}
		_, err := g.duelService.UpdateSuccessAssignment(ctx, &duel.UpdateSuccessAssignmentInput{
			ConnectionID: connectionID,
			SessionID:    payload.SessionID,
			Player:       payload.Player,
			DiceIndex:    payload.DiceIndex,
			SuccessID:    payload.SuccessID,
		})
		return err

	case protocol.EventAcceptanceStateUpdated:
		var payload protocol.AcceptancePayload
		if err := env.Decode(&payload); err != nil {
			return err
		}
		_, err := g.duelService.UpdateAcceptance(ctx, &duel.UpdateAcceptanceInput{
			ConnectionID: connectionID,
			SessionID:    payload.SessionID,
			Accepted:     payload.Accepted,
		})
		return err

	default:
		return fmt.Errorf("%w: %s", errUnknownEvent, env.Event)
	}
}

func (g *Gateway) sendError(c *connection, err error) {
	env, encErr := protocol.NewEnvelope(protocol.EventError, &protocol.ErrorPayload{Message: err.Error()})
	if encErr != nil {
		return
	}
	g.hub.SendTo(c.id, env)
}
