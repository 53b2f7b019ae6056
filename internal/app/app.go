package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"
	"github.com/novaleague/vrfs-bot/internal/config"
	"github.com/novaleague/vrfs-bot/internal/domain/notification"
	"github.com/novaleague/vrfs-bot/internal/domain/store"
	"github.com/novaleague/vrfs-bot/internal/infrastructure/discord"
	"github.com/novaleague/vrfs-bot/internal/infrastructure/repository/memory"
	"github.com/novaleague/vrfs-bot/internal/infrastructure/repository/postgres"
	"github.com/novaleague/vrfs-bot/internal/interfaces/httpapi"
	"github.com/novaleague/vrfs-bot/internal/platform/logging"
	"github.com/novaleague/vrfs-bot/internal/platform/resilience"
	"github.com/novaleague/vrfs-bot/internal/usecase"
)

// Runtime holds the services shared by the api and bot processes.
type Runtime struct {
	Store      store.Transactor
	Stats      *usecase.StatService
	Profiles   *usecase.ProfileService
	Periods    *usecase.PeriodService
	Players    *usecase.PlayerService
	Dispatcher *usecase.NotificationDispatcher

	db *sqlx.DB
}

// NewRuntime wires storage, services and the notice dispatcher. session may
// be nil, in which case notices are dropped.
func NewRuntime(ctx context.Context, cfg config.Config, session *discordgo.Session, logger *logging.Logger) (*Runtime, error) {
	if logger == nil {
		logger = logging.Default()
	}

	rt := &Runtime{}
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		rt.Store = memory.NewStore()
		logger.Warn("using in-memory storage, data is lost on restart")
	case config.StorageDriverPostgres:
		if err := RunMigrations(cfg, logger); err != nil {
			return nil, err
		}
		db, err := openDatabase(ctx, cfg)
		if err != nil {
			return nil, err
		}
		rt.db = db
		rt.Store = postgres.NewStore(db)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}

	var notifier notification.Notifier
	if session != nil && cfg.NotifyEnabled {
		notifier = discord.NewDMNotifier(session, discord.NotifierConfig{
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.NotifyCircuitEnabled,
				FailureThreshold: cfg.NotifyCircuitFailureCount,
				OpenTimeout:      cfg.NotifyCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.NotifyCircuitHalfOpenMaxReq,
			},
		}, logger)
	} else {
		logger.Info("stat notifications disabled")
	}

	dispatcher, err := usecase.NewNotificationDispatcher(notifier, usecase.NotificationDispatcherConfig{
		Workers: cfg.NotifyWorkers,
		Timeout: cfg.NotifyTimeout,
	}, logger)
	if err != nil {
		_ = rt.Close()
		return nil, err
	}

	rt.Dispatcher = dispatcher
	rt.Stats = usecase.NewStatService(rt.Store, logger)
	rt.Profiles = usecase.NewProfileService(rt.Store)
	rt.Periods = usecase.NewPeriodService(rt.Store, logger)
	rt.Players = usecase.NewPlayerService(rt.Store)

	return rt, nil
}

// Close drains pending notices before releasing the database.
func (r *Runtime) Close() error {
	if r == nil {
		return nil
	}
	r.Dispatcher.Close()
	if r.db != nil {
		if err := r.db.Close(); err != nil {
			return fmt.Errorf("close database: %w", err)
		}
	}
	return nil
}

// NewDiscordSession returns nil when no bot token is configured. The session
// is usable for REST calls before Open.
func NewDiscordSession(cfg config.Config) (*discordgo.Session, error) {
	token := strings.TrimSpace(cfg.DiscordToken)
	if token == "" {
		return nil, nil
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds
	return session, nil
}

func NewHTTPServer(cfg config.Config, rt *Runtime, logger *logging.Logger) (*http.Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}
	if strings.TrimSpace(cfg.ModeratorToken) == "" {
		logger.Warn("MODERATOR_TOKEN is empty, moderator routes will reject every request")
	}

	handler := httpapi.NewHandler(rt.Stats, rt.Profiles, rt.Periods, rt.Players, rt.Dispatcher, logger)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterConfig{
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		ModeratorToken:     cfg.ModeratorToken,
	})

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}
