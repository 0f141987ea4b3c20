package client

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/duels/internal/common/clock"
	"github.com/KirkDiggler/duels/internal/common/uuid"
	"github.com/KirkDiggler/duels/internal/dice"
	"github.com/KirkDiggler/duels/internal/handlers/gateway"
	"github.com/KirkDiggler/duels/internal/models"
	"github.com/KirkDiggler/duels/internal/pairing"
	"github.com/KirkDiggler/duels/internal/repositories/duel_ledger"
	sessionRepo "github.com/KirkDiggler/duels/internal/repositories/session"
	"github.com/KirkDiggler/duels/internal/services/duel"
	"github.com/KirkDiggler/duels/internal/services/messaging"
	"github.com/KirkDiggler/duels/internal/services/notifier"
	"github.com/KirkDiggler/duels/internal/successes"
)

const waitTimeout = 3 * time.Second

// archivingService is the duel service plus the hook the server uses on shutdown
type archivingService interface {
	duel.Service
	WaitForArchives(ctx context.Context) error
}

// AdapterTestSuite runs adapters against a real gateway and duel service
type AdapterTestSuite struct {
	suite.Suite
	ctx context.Context

	mr       *miniredis.Miniredis
	client   *redis.Client
	ledger   duel_ledger.Repository
	sessions sessionRepo.Repository
	svc      archivingService
	hub      *gateway.Hub
	server   *httptest.Server
	url      string
}

func (s *AdapterTestSuite) SetupTest() {
	s.ctx = context.Background()

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
	s.client = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	ledger, err := duel_ledger.NewRedis(&duel_ledger.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.ledger = ledger

	msg, err := messaging.NewService(&messaging.ServiceConfig{Seed: 1})
	s.Require().NoError(err)

	s.sessions = sessionRepo.NewMemory()
	s.hub = gateway.NewHub()

	svc, err := duel.New(&duel.Config{
		SessionRepo:    s.sessions,
		DuelLedgerRepo: s.ledger,
		Notifier:       notifier.NewNoop(),
		Messaging:      msg,
		DiceRoller:     dice.New(&dice.Config{Seed: 7}),
		Clock:          &clock.DefaultClock{},
		UUIDGenerator:  uuid.New(),
		Broadcaster:    s.hub,
		OrderCache:     pairing.NewOrderCache(),
		RollDelay:      20 * time.Millisecond,
	})
	s.Require().NoError(err)
	s.svc = svc

	g, err := gateway.New(&gateway.Config{DuelService: s.svc, Hub: s.hub})
	s.Require().NoError(err)

	s.server = httptest.NewServer(g.Routes())
	s.url = "ws" + strings.TrimPrefix(s.server.URL, "http") + "/duel/ws"
}

func (s *AdapterTestSuite) TearDownTest() {
	s.hub.Close()
	s.server.Close()
	s.client.Close()
	s.mr.Close()
}

func TestAdapterTestSuite(t *testing.T) {
	suite.Run(t, new(AdapterTestSuite))
}

func (s *AdapterTestSuite) dial(character models.CharacterInfo, selected []int, bonus ...string) *Adapter {
	a, err := Dial(s.ctx, &Config{
		URL:             s.url,
		CharacterInfo:   character,
		SelectedDice:    selected,
		BonusSuccessIDs: bonus,
		DiceRoller:      dice.New(&dice.Config{Seed: 11}),
		RerollDelay:     10 * time.Millisecond,
	})
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = a.Close() })
	return a
}

// waitFor blocks until cond holds for the adapter's state
func (s *AdapterTestSuite) waitFor(a *Adapter, what string, cond func(View) bool) View {
	deadline := time.After(waitTimeout)
	for {
		if v := a.State(); cond(v) {
			return v
		}
		select {
		case _, ok := <-a.Updates():
			if !ok {
				v := a.State()
				s.Require().True(cond(v), "connection closed waiting for %s", what)
				return v
			}
		case <-deadline:
			s.FailNow("timed out waiting for " + what)
		}
	}
}

func rolled(v View) bool {
	return v.Session != nil && v.Session.Status == models.SessionStatusCompleted
}

// duel matches Vex and Mara and waits for both to see the roll
func (s *AdapterTestSuite) duel() (*Adapter, *Adapter) {
	x := s.dial(vex, []int{6, 6}, "b1")
	y := s.dial(mara, []int{6}, "b2")

	s.Require().NoError(x.Join(s.ctx))
	s.waitFor(x, "session-created", func(v View) bool {
		return v.Session != nil && v.Session.Status == models.SessionStatusWaiting
	})

	s.Require().NoError(y.Join(s.ctx))
	s.waitFor(x, "roll on x", rolled)
	s.waitFor(y, "roll on y", rolled)
	return x, y
}

func (s *AdapterTestSuite) TestJoinValidation() {
	_, err := Dial(s.ctx, nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = Dial(s.ctx, &Config{CharacterInfo: vex, SelectedDice: []int{6}})
	s.ErrorIs(err, ErrMissingURL)

	_, err = Dial(s.ctx, &Config{URL: s.url, SelectedDice: []int{6}})
	s.ErrorIs(err, ErrMissingCharacter)

	_, err = Dial(s.ctx, &Config{URL: s.url, CharacterInfo: vex})
	s.ErrorIs(err, ErrNoDice)
}

func (s *AdapterTestSuite) TestBothSidesDeriveTheSameResult() {
	x, y := s.duel()

	vx, vy := x.State(), y.State()
	s.Require().NotNil(vx.Session.Winner)
	s.Equal(vx.Session.Winner, vy.Session.Winner)
	s.Equal(vx.Verdict.WinnerCharacterID, vy.Verdict.WinnerCharacterID)
	s.Equal(vx.Verdict.LeftWins, vy.Verdict.RightWins)
	s.Equal(vx.Verdict.RightWins, vy.Verdict.LeftWins)
	s.Equal(vx.Player, vy.Opponent)
	s.Equal(vx.Opponent, vy.Player)
	s.True(vx.CanEdit)
	s.True(vy.CanEdit)
}

func (s *AdapterTestSuite) TestNegotiatedDuelIsArchived() {
	x, y := s.duel()

	toggled, err := x.ToggleResult(s.ctx, 0)
	s.Require().NoError(err)
	s.waitFor(y, "override relay", func(v View) bool {
		o, ok := v.Overrides[0]
		return ok && o == toggled
	})
	s.Equal(toggled, x.State().Overrides[0])

	s.Require().NoError(x.AssignSuccess(s.ctx, successes.SidePlayer, 1, "b1"))
	s.waitFor(y, "success relay", func(v View) bool {
		return v.Successes["opponent-1"] == "b1"
	})

	value, err := y.Reroll(s.ctx, successes.SidePlayer, 0)
	s.Require().NoError(err)
	s.waitFor(x, "reroll on x", func(v View) bool {
		p := v.Session.Participants[1]
		return p.RollResults[0] == value && p.RollTotal == value
	})

	s.Require().NoError(x.SetAccepted(s.ctx, true))
	vy := s.waitFor(y, "x acceptance", func(v View) bool { return v.PeerAccepted })
	s.False(vy.CanEdit)
	_, err = y.ToggleResult(s.ctx, 0)
	s.ErrorIs(err, ErrLocked)

	s.Require().NoError(y.SetAccepted(s.ctx, true))
	s.waitFor(x, "y acceptance", func(v View) bool { return v.PeerAccepted })

	s.Eventually(func() bool {
		stats, err := s.ledger.GetCharacterStats(s.ctx, &duel_ledger.GetCharacterStatsInput{CharacterID: mara.ID})
		return err == nil && stats.Played() == 1
	}, waitTimeout, 10*time.Millisecond)
	s.Require().NoError(s.svc.WaitForArchives(s.ctx))

	vexStats, err := s.ledger.GetCharacterStats(s.ctx, &duel_ledger.GetCharacterStatsInput{CharacterID: vex.ID})
	s.Require().NoError(err)
	s.Equal(1, vexStats.Played())
}

func (s *AdapterTestSuite) TestRerollBeforeRollIsRefused() {
	x := s.dial(vex, []int{6})
	s.Require().NoError(x.Join(s.ctx))
	s.waitFor(x, "session-created", func(v View) bool { return v.Session != nil })

	_, err := x.Reroll(s.ctx, successes.SidePlayer, 0)
	s.ErrorIs(err, ErrNotRolled)
}

func (s *AdapterTestSuite) TestCancelBeforeMatch() {
	x := s.dial(vex, []int{6})
	s.ErrorIs(x.Cancel(s.ctx), ErrNotInSession)

	s.Require().NoError(x.Join(s.ctx))
	s.waitFor(x, "session-created", func(v View) bool { return v.Session != nil })

	s.Require().NoError(x.Cancel(s.ctx))
	view := s.waitFor(x, "session-cancelled", func(v View) bool { return v.Cancelled })
	s.Equal("Vex", view.CancelledBy)
}

func (s *AdapterTestSuite) TestDisconnectBeforeBothAcceptedCancels() {
	x, y := s.duel()

	s.Require().NoError(x.SetAccepted(s.ctx, true))
	s.waitFor(y, "x acceptance", func(v View) bool { return v.PeerAccepted })

	s.Require().NoError(x.Close())

	view := s.waitFor(y, "session-cancelled", func(v View) bool { return v.Cancelled })
	s.Equal("Vex", view.CancelledBy)
	s.Contains(view.CancelMessage, "Vex")
}

func (s *AdapterTestSuite) TestDisconnectAfterBothAcceptedIsQuiet() {
	x, y := s.duel()
	sessionID := x.State().Session.ID

	s.Require().NoError(x.SetAccepted(s.ctx, true))
	s.waitFor(y, "x acceptance", func(v View) bool { return v.PeerAccepted })
	s.Require().NoError(y.SetAccepted(s.ctx, true))
	s.waitFor(x, "y acceptance", func(v View) bool { return v.PeerAccepted })

	s.Require().NoError(x.Close())

	s.Eventually(func() bool {
		_, err := s.sessions.GetSession(s.ctx, &sessionRepo.GetSessionInput{SessionID: sessionID})
		return err != nil
	}, waitTimeout, 10*time.Millisecond)
	s.Never(func() bool { return y.State().Cancelled }, 200*time.Millisecond, 20*time.Millisecond)

	s.Require().NoError(s.svc.WaitForArchives(s.ctx))
}
