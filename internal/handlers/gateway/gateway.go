// Package gateway serves the duel channel over websocket and the small HTTP
// surface around it.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/KirkDiggler/duels/internal/common/uuid"
	"github.com/KirkDiggler/duels/internal/services/duel"
)

// disconnectTimeout bounds the cleanup run when a socket goes away
const disconnectTimeout = 5 * time.Second

// Config holds the gateway dependencies
type Config struct {
	DuelService   duel.Service
	Hub           *Hub
	UUIDGenerator uuid.UUID

	// AllowedOrigins restricts browser upgrades, empty allows any origin
	AllowedOrigins []string
}

// Gateway upgrades duel connections and hands their frames to the duel service
type Gateway struct {
	duelService duel.Service
	hub         *Hub
	uuid        uuid.UUID
	upgrader    websocket.Upgrader
}

// New creates a gateway
func New(cfg *Config) (*Gateway, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.DuelService == nil {
		return nil, errors.New("duel service cannot be nil")
	}
	if cfg.Hub == nil {
		return nil, errors.New("hub cannot be nil")
	}

	generator := cfg.UUIDGenerator
	if generator == nil {
		generator = uuid.NewWithPrefix("conn-")
	}

	return &Gateway{
		duelService: cfg.DuelService,
		hub:         cfg.Hub,
		uuid:        generator,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin(cfg.AllowedOrigins),
		},
	}, nil
}

// Routes mounts the gateway endpoints
func (g *Gateway) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", g.Health)
	r.Route("/duel", func(r chi.Router) {
		r.Get("/ws", g.ServeWS)
		r.With(middleware.Logger).Get("/stats/{characterID}", g.GetStats)
	})

	return r
}

// Health reports liveness
func (g *Gateway) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ServeWS upgrades the request and runs the connection until it closes
func (g *Gateway) ServeWS(w http.ResponseWriter, r *http.Request) {
	ws, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error
		log.Printf("gateway: upgrade failed remote=%s err=%v", r.RemoteAddr, err)
		return
	}

	c := newConnection(g.uuid.NewUUID(), ws)
	g.hub.register(c)
	log.Printf("gateway: connected connection=%s remote=%s", c.id, r.RemoteAddr)

	go c.writePump()
	c.readPump(func(msg []byte) {
		g.dispatch(context.Background(), c, msg)
	})

	g.hub.unregister(c.id)
	g.disconnect(c.id)
}

func (g *Gateway) disconnect(connectionID string) {
	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()

	output, err := g.duelService.Disconnect(ctx, &duel.DisconnectInput{ConnectionID: connectionID})
	if err != nil {
		log.Printf("gateway: disconnect cleanup failed connection=%s err=%v", connectionID, err)
		return
	}
	log.Printf("gateway: disconnected connection=%s sessions=%v", connectionID, output.SessionIDs)
}

type statsResponse struct {
	CharacterID string       `json:"characterId"`
	Wins        int          `json:"wins"`
	Losses      int          `json:"losses"`
	Draws       int          `json:"draws"`
	Played      int          `json:"played"`
	Recent      []recentDuel `json:"recent"`
}

type recentDuel struct {
	ID           string    `json:"id"`
	OpponentID   string    `json:"opponentId"`
	OpponentName string    `json:"opponentName"`
	Outcome      string    `json:"outcome"`
	UserWins     int       `json:"userWins"`
	OpponentWins int       `json:"opponentWins"`
	DrawCount    int       `json:"drawCount"`
	Timestamp    time.Time `json:"timestamp"`
}

// GetStats returns a character's duel standings and recent duels
func (g *Gateway) GetStats(w http.ResponseWriter, r *http.Request) {
	characterID := chi.URLParam(r, "characterID")

	output, err := g.duelService.GetCharacterStats(r.Context(), &duel.GetCharacterStatsInput{
		CharacterID: characterID,
	})
	if err != nil {
		if errors.Is(err, duel.ErrInvalidCharacterID) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("gateway: stats failed character=%s err=%v", characterID, err)
		respondError(w, http.StatusInternalServerError, "failed to load stats")
		return
	}

	resp := statsResponse{
		CharacterID: characterID,
		Recent:      make([]recentDuel, 0, len(output.Recent)),
	}
	if output.Stats != nil {
		resp.Wins = output.Stats.Wins
		resp.Losses = output.Stats.Losses
		resp.Draws = output.Stats.Draws
		resp.Played = output.Stats.Played()
	}
	for _, record := range output.Recent {
		resp.Recent = append(resp.Recent, recentDuel{
			ID:           record.ID,
			OpponentID:   record.OpponentID,
			OpponentName: record.OpponentName,
			Outcome:      string(record.Outcome),
			UserWins:     record.UserWins,
			OpponentWins: record.OpponentWins,
			DrawCount:    record.DrawCount,
			Timestamp:    record.Timestamp,
		})
	}

	respondJSON(w, http.StatusOK, resp)
}

func checkOrigin(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 {
		return func(r *http.Request) bool { return true }
	}

	set := make(map[string]struct{}, len(allowed))
	for _, origin := range allowed {
		set[origin] = struct{}{}
	}

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			// Non-browser clients send no origin
			return true
		}
		_, ok := set[origin]
		return ok
	}
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("gateway: failed to encode response err=%v", err)
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
