package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/duels/internal/common/clock"
	"github.com/KirkDiggler/duels/internal/common/uuid"
	"github.com/KirkDiggler/duels/internal/config"
	"github.com/KirkDiggler/duels/internal/dice"
	"github.com/KirkDiggler/duels/internal/handlers/gateway"
	"github.com/KirkDiggler/duels/internal/pairing"
	"github.com/KirkDiggler/duels/internal/repositories/duel_ledger"
	"github.com/KirkDiggler/duels/internal/repositories/session"
	duelService "github.com/KirkDiggler/duels/internal/services/duel"
	"github.com/KirkDiggler/duels/internal/services/messaging"
	"github.com/KirkDiggler/duels/internal/services/notifier"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	duelLedgerRepo, err := duel_ledger.NewRedis(&duel_ledger.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create duel ledger repository: %v", err)
	}

	sessionRepo := session.NewMemory()
	if cfg.SessionStore == config.SessionStoreRedis {
		sessionRepo, err = session.NewRedis(&session.RedisConfig{
			RedisClient: redisClient,
			TTL:         cfg.SessionMaxAge,
		})
		if err != nil {
			log.Fatalf("Failed to create session repository: %v", err)
		}
	}

	// Initialize messaging and the summary notifier
	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	notifierSvc := notifier.NewNoop()
	if cfg.DiscordWebhookURL != "" {
		// Webhook execution needs no bot token
		discordSession, err := discordgo.New("")
		if err != nil {
			log.Fatalf("Failed to create Discord session: %v", err)
		}

		notifierSvc, err = notifier.NewDiscord(&notifier.Config{
			WebhookURL: cfg.DiscordWebhookURL,
			Executor:   discordSession,
			Messaging:  messagingSvc,
		})
		if err != nil {
			log.Fatalf("Failed to create Discord notifier: %v", err)
		}
	} else {
		log.Println("DISCORD_WEBHOOK_URL not set, duel summaries will not be posted")
	}

	hub := gateway.NewHub()

	// Initialize duel service
	duelSvc, err := duelService.New(&duelService.Config{
		SessionRepo:    sessionRepo,
		DuelLedgerRepo: duelLedgerRepo,
		Notifier:       notifierSvc,
		Messaging:      messagingSvc,
		DiceRoller:     dice.New(&dice.Config{}),
		Clock:          &clock.DefaultClock{},
		UUIDGenerator:  uuid.New(),
		Broadcaster:    hub,
		OrderCache:     pairing.NewOrderCache(),
		RollDelay:      cfg.RollDelay,
		SweepInterval:  cfg.SweepInterval,
		SessionMaxAge:  cfg.SessionMaxAge,
	})
	if err != nil {
		log.Fatalf("Failed to create duel service: %v", err)
	}

	gw, err := gateway.New(&gateway.Config{
		DuelService:    duelSvc,
		Hub:            hub,
		UUIDGenerator:  uuid.NewWithPrefix("conn-"),
		AllowedOrigins: cfg.AllowedOrigins,
	})
	if err != nil {
		log.Fatalf("Failed to create gateway: %v", err)
	}

	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()
	go duelSvc.RunSweeper(sweepCtx)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           gw.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Duel server listening on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	stopSweeper()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error stopping server: %v", err)
	}

	// Hijacked websocket connections are not closed by Shutdown
	hub.Close()

	if err := duelSvc.WaitForArchives(shutdownCtx); err != nil {
		log.Printf("Error waiting for duel archives: %v", err)
	}

	log.Println("Duel server has been shut down")
}
