package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/novaleague/vrfs-bot/internal/app"
	"github.com/novaleague/vrfs-bot/internal/config"
	"github.com/novaleague/vrfs-bot/internal/interfaces/discordbot"
	"github.com/novaleague/vrfs-bot/internal/observability"
	"github.com/novaleague/vrfs-bot/internal/platform/logging"
)

var errMissingToken = errors.New("DISCORD_TOKEN is required to run the bot")

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	format := logging.FormatJSON
	if cfg.AppEnv == config.EnvDev {
		format = logging.FormatConsole
	}
	logger := logging.New(format, cfg.LogLevel).With("service", cfg.ServiceName, "role", "bot")
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Error("bot stopped with error", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
	logger.Info("bot stopped")
}

func run(cfg config.Config, logger *logging.Logger) error {
	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Warn("shutdown uptrace", "error", err)
		}
	}()

	stopProfiler, err := observability.InitPyroscope(cfg, "bot", logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := stopProfiler(); err != nil {
			logger.Warn("stop pyroscope", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	session, err := app.NewDiscordSession(cfg)
	if err != nil {
		return err
	}
	if session == nil {
		return errMissingToken
	}

	rt, err := app.NewRuntime(ctx, cfg, session, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := rt.Close(); err != nil {
			logger.Error("close runtime", "error", err)
		}
	}()

	bot := discordbot.NewBot(rt.Stats, rt.Profiles, rt.Periods, rt.Players, rt.Dispatcher, logger)
	session.AddHandler(bot.HandleInteraction)
	session.AddHandler(func(_ *discordgo.Session, ready *discordgo.Ready) {
		logger.Info("discord gateway ready", "user", ready.User.Username, "guilds", len(ready.Guilds))
	})

	if err := session.Open(); err != nil {
		return err
	}
	defer func() {
		if err := session.Close(); err != nil {
			logger.Warn("close discord session", "error", err)
		}
	}()

	if err := bot.Register(ctx, session, session.State.User.ID, cfg.DiscordGuildID); err != nil {
		return err
	}

	<-ctx.Done()
	return nil
}
