package discordbot

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
	crerr "github.com/cockroachdb/errors"
	"github.com/novaleague/vrfs-bot/internal/platform/logging"
	"github.com/novaleague/vrfs-bot/internal/usecase"
	"go.opentelemetry.io/otel/attribute"
)

// Discord drops interactions that are not acknowledged within three seconds.
const interactionTimeout = 3 * time.Second

type Bot struct {
	statService    *usecase.StatService
	profileService *usecase.ProfileService
	periodService  *usecase.PeriodService
	playerService  *usecase.PlayerService
	dispatcher     *usecase.NotificationDispatcher
	logger         *logging.Logger
}

func NewBot(
	statService *usecase.StatService,
	profileService *usecase.ProfileService,
	periodService *usecase.PeriodService,
	playerService *usecase.PlayerService,
	dispatcher *usecase.NotificationDispatcher,
	logger *logging.Logger,
) *Bot {
	if logger == nil {
		logger = logging.Default()
	}

	return &Bot{
		statService:    statService,
		profileService: profileService,
		periodService:  periodService,
		playerService:  playerService,
		dispatcher:     dispatcher,
		logger:         logger,
	}
}

// commandRegistrar is the slice of *discordgo.Session used at startup.
type commandRegistrar interface {
	ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}

// Register replaces the application's slash commands. An empty guildID
// registers them globally.
func (b *Bot) Register(ctx context.Context, session commandRegistrar, appID, guildID string) error {
	registered, err := session.ApplicationCommandBulkOverwrite(appID, guildID, Commands(), discordgo.WithContext(ctx))
	if err != nil {
		return crerr.Wrap(err, "register slash commands")
	}

	b.logger.InfoContext(ctx, "slash commands registered", "count", len(registered), "guild_id", guildID)
	return nil
}

// HandleInteraction is the discordgo event handler for slash commands.
func (b *Bot) HandleInteraction(s *discordgo.Session, event *discordgo.InteractionCreate) {
	if event == nil || event.Interaction == nil || event.Type != discordgo.InteractionApplicationCommand {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), interactionTimeout)
	defer cancel()

	data := b.handle(ctx, event.Interaction)
	err := s.InteractionRespond(event.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}, discordgo.WithContext(ctx))
	if err != nil {
		b.logger.ErrorContext(ctx, "respond to interaction failed",
			"command", event.ApplicationCommandData().Name,
			"error", err,
		)
	}
}

// handle runs one slash command and returns the response to send.
func (b *Bot) handle(ctx context.Context, i *discordgo.Interaction) *discordgo.InteractionResponseData {
	data := i.ApplicationCommandData()

	ctx, span := startSpan(ctx, "discordbot.Bot."+data.Name,
		attribute.String("guild_id", i.GuildID),
	)
	defer span.End()

	opts := optionsOf(data)
	switch data.Name {
	case commandSet:
		return b.setPeriod(ctx, i, opts)
	case commandPeriod:
		return b.currentPeriod(ctx)
	case commandAddStat:
		return b.addStat(ctx, i, opts)
	case commandRemoveStats:
		return b.removeStats(ctx, i, opts)
	case commandProfile:
		return b.profile(ctx, i, data, opts)
	case commandPosition:
		return b.setPosition(ctx, i, opts)
	default:
		b.logger.WarnContext(ctx, "unknown slash command", "command", data.Name)
		return ephemeral("❌ Unknown command")
	}
}

func message(content string) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{Content: content}
}

func ephemeral(content string) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{Content: content, Flags: discordgo.MessageFlagsEphemeral}
}

func embedResponse(embed *discordgo.MessageEmbed) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{Embeds: []*discordgo.MessageEmbed{embed}}
}
