package discord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/novaleague/vrfs-bot/internal/domain/notification"
	"github.com/novaleague/vrfs-bot/internal/domain/player"
	"github.com/novaleague/vrfs-bot/internal/domain/stat"
)

// Teal, shared by every embed the bot sends.
const EmbedColor = 0x008080

const (
	embedFooterLeague = "NOVA - VRFS League"
	embedFooterNotice = "Use /profile to view your full stat and value changes."
)

// ProfileView is what the profile embed renders.
type ProfileView struct {
	DisplayName string
	Username    string
	AvatarURL   string
	Position    string
	Totals      map[stat.Kind]int
	TotalPoints int
	Tier        stat.Tier
}

func ProfileEmbed(view ProfileView) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:  view.DisplayName,
		Color:  EmbedColor,
		Footer: &discordgo.MessageEmbedFooter{Text: embedFooterLeague},
	}
	if view.Username != "" {
		embed.Description = "@" + view.Username
	}
	if view.AvatarURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: view.AvatarURL}
	}

	embed.Fields = append(embed.Fields,
		&discordgo.MessageEmbedField{Name: "Position", Value: player.Player{Position: view.Position}.DisplayPosition(), Inline: false},
		&discordgo.MessageEmbedField{Name: "Rank", Value: view.Tier.Label(), Inline: false},
		&discordgo.MessageEmbedField{Name: "Points", Value: strconv.Itoa(view.TotalPoints), Inline: true},
	)
	for _, kind := range stat.AllKinds {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("%s %s", kind.Emoji(), kind.Label()),
			Value:  strconv.Itoa(view.Totals[kind]),
			Inline: true,
		})
	}
	return embed
}

func StatNoticeEmbed(notice notification.StatNotice) *discordgo.MessageEmbed {
	latest := fmt.Sprintf("%s %s: +%d  (**+%d pts**)",
		notice.Kind.Emoji(), notice.Kind.Label(), notice.Count, notice.PointsDelta)

	return &discordgo.MessageEmbed{
		Title:       "🔔 Stat Update Notification",
		Description: fmt.Sprintf("Your stats in **%s** have just been updated.", notice.Division),
		Color:       EmbedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "📰 Latest change", Value: latest, Inline: false},
			{Name: fmt.Sprintf("GW%d Season %d", notice.Gameweek, notice.Season), Value: "Recorded for the current gameweek.", Inline: false},
			{Name: fmt.Sprintf("Your current totals in %s", notice.Division), Value: totalsLines(notice.DivisionTotals), Inline: false},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: embedFooterNotice},
	}
}

func totalsLines(totals map[stat.Kind]int) string {
	lines := make([]string, 0, len(stat.AllKinds))
	for _, kind := range stat.AllKinds {
		lines = append(lines, fmt.Sprintf("%s %s: %d", kind.Emoji(), kind.Label(), totals[kind]))
	}
	return strings.Join(lines, "\n")
}
