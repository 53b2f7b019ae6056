package discord

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/discordgo"
	crerr "github.com/cockroachdb/errors"
	"github.com/novaleague/vrfs-bot/internal/domain/notification"
	"github.com/novaleague/vrfs-bot/internal/platform/cache"
	"github.com/novaleague/vrfs-bot/internal/platform/logging"
	"github.com/novaleague/vrfs-bot/internal/platform/resilience"
	"go.opentelemetry.io/otel/attribute"
)

// ErrDMClosed means the player does not accept direct messages from the bot.
var ErrDMClosed = crerr.New("player has direct messages closed")

// dmSender is the slice of *discordgo.Session the notifier needs.
type dmSender interface {
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

const defaultChannelCacheTTL = time.Hour

type NotifierConfig struct {
	CircuitBreaker  resilience.CircuitBreakerConfig
	ChannelCacheTTL time.Duration
}

// DMNotifier sends stat notices to players as direct-message embeds.
type DMNotifier struct {
	session  dmSender
	channels *cache.Store[string]
	breaker  *resilience.CircuitBreaker
	logger   *logging.Logger
}

var _ notification.Notifier = (*DMNotifier)(nil)

func NewDMNotifier(session dmSender, cfg NotifierConfig, logger *logging.Logger) *DMNotifier {
	if logger == nil {
		logger = logging.Default()
	}
	ttl := cfg.ChannelCacheTTL
	if ttl <= 0 {
		ttl = defaultChannelCacheTTL
	}
	return &DMNotifier{
		session:  session,
		channels: cache.NewStore[string](ttl),
		breaker:  resilience.NewCircuitBreaker(cfg.CircuitBreaker),
		logger:   logger,
	}
}

func (n *DMNotifier) NotifyStatRecorded(ctx context.Context, notice notification.StatNotice) error {
	ctx, span := startSpan(ctx, "discord.DMNotifier.NotifyStatRecorded",
		attribute.String("player_id", notice.PlayerID),
		attribute.String("stat_kind", string(notice.Kind)),
	)
	defer span.End()

	err := n.breaker.Execute(func() error {
		return n.send(ctx, notice)
	}, isDMClosed)
	if errors.Is(err, resilience.ErrCircuitOpen) {
		n.logger.WarnContext(ctx, "discord circuit breaker rejected notification", "state", n.breaker.State())
		return crerr.Wrap(err, "discord is temporarily unavailable")
	}
	return err
}

func (n *DMNotifier) send(ctx context.Context, notice notification.StatNotice) error {
	channelID, err := n.channels.GetOrLoad(ctx, notice.PlayerID, func(ctx context.Context) (string, error) {
		channel, err := n.session.UserChannelCreate(notice.PlayerID, discordgo.WithContext(ctx))
		if err != nil {
			return "", err
		}
		return channel.ID, nil
	})
	if err != nil {
		return classifyDMError(err, "open dm channel")
	}
	if _, err := n.session.ChannelMessageSendEmbed(channelID, StatNoticeEmbed(notice), discordgo.WithContext(ctx)); err != nil {
		// The channel may be gone; reopen it on the next notice.
		n.channels.Delete(ctx, notice.PlayerID)
		return classifyDMError(err, "send stat notice")
	}
	return nil
}

func classifyDMError(err error, msg string) error {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Message != nil {
		switch restErr.Message.Code {
		case discordgo.ErrCodeCannotSendMessagesToThisUser, discordgo.ErrCodeUnknownUser:
			return crerr.Mark(crerr.Wrap(err, msg), ErrDMClosed)
		}
	}
	return crerr.Wrap(err, msg)
}

func isDMClosed(err error) bool {
	return crerr.Is(err, ErrDMClosed)
}
