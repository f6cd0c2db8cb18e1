package main

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/hradek/salon-booking-ai/internal/api/router"
	"github.com/hradek/salon-booking-ai/internal/bookings"
	appconfig "github.com/hradek/salon-booking-ai/internal/config"
	"github.com/hradek/salon-booking-ai/internal/contacts"
	"github.com/hradek/salon-booking-ai/internal/conversation"
	"github.com/hradek/salon-booking-ai/internal/http/handlers"
	"github.com/hradek/salon-booking-ai/internal/messaging"
	"github.com/hradek/salon-booking-ai/internal/notify"
	"github.com/hradek/salon-booking-ai/internal/observability/metrics"
	"github.com/hradek/salon-booking-ai/internal/reservio"
	"github.com/hradek/salon-booking-ai/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	logger.Info("starting salon booking assistant",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Error("invalid timezone", "timezone", cfg.Timezone, "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Sessions live in Redis so a conversation survives restarts.
	redisOpts := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}
	if cfg.RedisTLS {
		redisOpts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	rdb := redis.NewClient(redisOpts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Error("redis unreachable", "addr", cfg.RedisAddr, "error", err)
		os.Exit(1)
	}
	sessions := conversation.NewRedisSessionStore(rdb, cfg.SessionTTL)

	// Postgres is optional. Without it returning customers are not
	// recognized and bookings exist only in Reservio.
	var (
		contactStore   conversation.ContactStore
		bookingCounter handlers.BookingCounter
	)
	convMetrics := metrics.NewConversationMetrics(nil)
	var bookingsRepo *bookings.Repository
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to create pgx pool", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		contactStore = contacts.NewRepository(pool)
		bookingsRepo = bookings.NewRepository(pool)
		bookingCounter = bookingsRepo
	} else {
		logger.Warn("DATABASE_URL not set, contact memory and booking records disabled")
	}
	var recorder conversation.BookingRecorder
	if bookingsRepo != nil {
		recorder = metrics.NewInstrumentedRecorder(bookingsRepo, convMetrics)
	} else {
		recorder = metrics.NewInstrumentedRecorder(nil, convMetrics)
	}

	reservioClient := reservio.NewClient(cfg.ReservioBaseURL, cfg.ReservioAPIKey, cfg.ReservioTimeout, logger)
	reservioClient.ResourceID = cfg.ReservioResourceID
	gateway := conversation.NewReservioGateway(reservioClient)
	gateway.Hours = cfg.BusinessHours

	venues, err := loadVenues(cfg)
	if err != nil {
		logger.Error("invalid VENUES_JSON", "error", err)
		os.Exit(1)
	}

	var llm conversation.LLMClient
	if cfg.GeminiAPIKey != "" {
		gemini, err := conversation.NewGeminiLLMClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Error("failed to create gemini client", "error", err)
			os.Exit(1)
		}
		defer gemini.Close()
		llm = conversation.NewFallbackLLMClient(gemini, nil, logger.Logger)
	} else {
		logger.Warn("GEMINI_API_KEY not set, message matching runs on heuristics only")
	}
	matcher := conversation.NewMatcher(llm, loc, cfg.LLMTimeout, logger)

	var sender notify.EmailSender
	if sg := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.SendGridFromEmail,
		FromName:  cfg.SendGridFromName,
	}, logger); sg != nil {
		sender = sg
	} else {
		sender = notify.NewStubEmailSender(logger)
	}
	notifier := notify.NewBookingNotifier(sender, cfg.SendGridFromName, cfg.NotifyEmail, loc, logger)

	machine := conversation.NewMachine(conversation.MachineConfig{
		Sessions:     sessions,
		Gateway:      gateway,
		Matcher:      matcher,
		Contacts:     contactStore,
		Recorder:     recorder,
		Notifier:     notifier,
		Venues:       venues,
		Messages:     conversation.NewMessages(cfg.DefaultLanguage),
		Location:     loc,
		Logger:       logger,
		PageSize:     cfg.SlotPageSize,
		NearbyWindow: cfg.NearbyWindow,
	})

	messagingHandler := messaging.NewHandler(cfg.TwilioAuthToken, machine, convMetrics, logger)

	r := router.New(&router.Config{
		Logger:           logger,
		MessagingHandler: messagingHandler,
		StatusHandler:    handlers.NewStatusHandler(bookingCounter, logger),
		MetricsHandler:   promhttp.Handler(),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// loadVenues builds the venue list from VENUES_JSON, falling back to
// the single business identified by RESERVIO_BUSINESS_ID.
func loadVenues(cfg *appconfig.Config) ([]conversation.Venue, error) {
	if cfg.VenuesJSON != "" {
		var venues []conversation.Venue
		if err := json.Unmarshal([]byte(cfg.VenuesJSON), &venues); err != nil {
			return nil, err
		}
		if len(venues) > 0 {
			return venues, nil
		}
	}
	return []conversation.Venue{{ID: cfg.ReservioBusinessID}}, nil
}
