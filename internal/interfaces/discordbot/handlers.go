package discordbot

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/novaleague/vrfs-bot/internal/domain/stat"
	"github.com/novaleague/vrfs-bot/internal/infrastructure/discord"
	"github.com/novaleague/vrfs-bot/internal/usecase"
)

const (
	msgNoPermission  = "❌ You don't have permission to use this command"
	msgMissingMember = "❌ Please choose a player"
	msgFailure       = "❌ Something went wrong, please try again later."
)

func (b *Bot) setPeriod(ctx context.Context, i *discordgo.Interaction, opts commandOptions) *discordgo.InteractionResponseData {
	if !isModerator(i) {
		return message(msgNoPermission)
	}

	current, err := b.periodService.Set(ctx, opts.intValue(optionGameweek), opts.intValue(optionSeason))
	if err != nil {
		return b.failure(ctx, commandSet, err)
	}
	return message(fmt.Sprintf("✅ Set current GW to %d and Season to %d", current.Gameweek, current.Season))
}

func (b *Bot) currentPeriod(ctx context.Context) *discordgo.InteractionResponseData {
	current, err := b.periodService.Current(ctx)
	if err != nil {
		return b.failure(ctx, commandPeriod, err)
	}
	return message(fmt.Sprintf("📅 Current: GW%d Season %d", current.Gameweek, current.Season))
}

func (b *Bot) addStat(ctx context.Context, i *discordgo.Interaction, opts commandOptions) *discordgo.InteractionResponseData {
	if !isModerator(i) {
		return message(msgNoPermission)
	}
	playerID, ok := opts.userID(optionMember)
	if !ok {
		return message(msgMissingMember)
	}

	result, err := b.statService.Record(ctx, usecase.RecordStatInput{
		PlayerID: playerID,
		Gameweek: opts.intValue(optionGameweek),
		Season:   opts.intValue(optionSeason),
		Kind:     opts.stringValue(optionStatType, ""),
		Division: opts.stringValue(optionDivision, string(stat.Div1)),
		Count:    opts.intValue(optionCount),
	})
	if err != nil {
		return b.failure(ctx, commandAddStat, err, "player_id", playerID)
	}

	if err := b.dispatcher.Dispatch(result.Notice()); err != nil {
		b.logger.WarnContext(ctx, "stat notice not queued", "player_id", playerID, "error", err)
	}

	event := result.Event
	return message(fmt.Sprintf("%s Added %d %s(s) to %s for %s GW%d Season %d! (+%d pts)",
		event.Kind.Emoji(), event.Count, event.Kind, mention(playerID),
		event.Division, event.Gameweek, event.Season, result.PointsDelta))
}

func (b *Bot) removeStats(ctx context.Context, i *discordgo.Interaction, opts commandOptions) *discordgo.InteractionResponseData {
	if !isModerator(i) {
		return message(msgNoPermission)
	}
	playerID, ok := opts.userID(optionMember)
	if !ok {
		return message(msgMissingMember)
	}

	input := usecase.RemoveStatInput{
		PlayerID: playerID,
		Gameweek: opts.intValue(optionGameweek),
		Season:   opts.intValue(optionSeason),
		Kind:     opts.stringValue(optionStatType, ""),
		Division: opts.stringValue(optionDivision, string(stat.Div1)),
	}
	removed, err := b.statService.Remove(ctx, input)
	if errors.Is(err, usecase.ErrNotFound) {
		return message(fmt.Sprintf("❌ No stats found for %s in %s GW%d Season %d",
			mention(playerID), input.Division, input.Gameweek, input.Season))
	}
	if err != nil {
		return b.failure(ctx, commandRemoveStats, err, "player_id", playerID)
	}

	return message(fmt.Sprintf("%s Removed %d %s(s) from %s for %s GW%d Season %d!",
		removed.Kind.Emoji(), removed.Count, removed.Kind, mention(playerID),
		removed.Division, removed.Gameweek, removed.Season))
}

func (b *Bot) profile(
	ctx context.Context,
	i *discordgo.Interaction,
	data discordgo.ApplicationCommandInteractionData,
	opts commandOptions,
) *discordgo.InteractionResponseData {
	view := profileTarget(i, data, opts)
	if view.playerID == "" {
		return message(msgMissingMember)
	}

	profile, err := b.profileService.Get(ctx, view.playerID)
	if err != nil {
		return b.failure(ctx, commandProfile, err, "player_id", view.playerID)
	}

	return embedResponse(discord.ProfileEmbed(discord.ProfileView{
		DisplayName: view.displayName,
		Username:    view.username,
		AvatarURL:   view.avatarURL,
		Position:    profile.Position,
		Totals:      profile.Totals,
		TotalPoints: profile.TotalPoints,
		Tier:        profile.Tier,
	}))
}

func (b *Bot) setPosition(ctx context.Context, i *discordgo.Interaction, opts commandOptions) *discordgo.InteractionResponseData {
	if !isModerator(i) {
		return message(msgNoPermission)
	}
	playerID, ok := opts.userID(optionMember)
	if !ok {
		return message(msgMissingMember)
	}

	updated, err := b.playerService.SetPosition(ctx, playerID, opts.stringValue(optionPosition, ""))
	if err != nil {
		return b.failure(ctx, commandPosition, err, "player_id", playerID)
	}
	if updated.Position == "" {
		return message(fmt.Sprintf("✅ Cleared position for %s", mention(playerID)))
	}
	return message(fmt.Sprintf("✅ Set position for %s to %s", mention(playerID), updated.Position))
}

// failure renders a usecase error. Rejected input is echoed to the moderator;
// anything else is logged and reported generically.
func (b *Bot) failure(ctx context.Context, command string, err error, kv ...any) *discordgo.InteractionResponseData {
	var validationErr *usecase.ValidationError
	if errors.As(err, &validationErr) {
		return message("❌ " + validationErr.Message)
	}

	fields := append([]any{"command", command, "storage_failure", usecase.IsStorageFailure(err), "error", err}, kv...)
	b.logger.ErrorContext(ctx, "slash command failed", fields...)
	return message(msgFailure)
}

type profileSubject struct {
	playerID    string
	displayName string
	username    string
	avatarURL   string
}

// profileTarget resolves the member option, falling back to the invoker.
func profileTarget(i *discordgo.Interaction, data discordgo.ApplicationCommandInteractionData, opts commandOptions) profileSubject {
	var (
		user   *discordgo.User
		member *discordgo.Member
	)
	if id, ok := opts.userID(optionMember); ok {
		user = &discordgo.User{ID: id}
		if data.Resolved != nil {
			if resolved, ok := data.Resolved.Users[id]; ok && resolved != nil {
				user = resolved
			}
			member = data.Resolved.Members[id]
		}
	} else {
		user = invoker(i)
		member = i.Member
	}
	if user == nil {
		return profileSubject{}
	}

	subject := profileSubject{
		playerID:    user.ID,
		displayName: user.GlobalName,
		username:    user.Username,
	}
	if member != nil && member.Nick != "" {
		subject.displayName = member.Nick
	}
	if subject.displayName == "" {
		subject.displayName = user.Username
	}
	if user.Username != "" {
		subject.avatarURL = user.AvatarURL("")
	}
	return subject
}

func mention(playerID string) string {
	return (&discordgo.User{ID: playerID}).Mention()
}
