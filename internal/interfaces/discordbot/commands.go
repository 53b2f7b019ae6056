package discordbot

import (
	"github.com/bwmarrin/discordgo"
	"github.com/novaleague/vrfs-bot/internal/domain/period"
	"github.com/novaleague/vrfs-bot/internal/domain/player"
	"github.com/novaleague/vrfs-bot/internal/domain/stat"
)

const (
	commandSet         = "set"
	commandPeriod      = "period"
	commandAddStat     = "addstat"
	commandRemoveStats = "removestats"
	commandProfile     = "profile"
	commandPosition    = "position"
)

const (
	optionMember   = "member"
	optionGameweek = "gw"
	optionSeason   = "season"
	optionStatType = "stat_type"
	optionCount    = "count"
	optionDivision = "division"
	optionPosition = "position"
)

// Commands returns the slash command set registered with Discord.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        commandSet,
			Description: "Set current GameWeek and Season",
			Options: []*discordgo.ApplicationCommandOption{
				gameweekOption(),
				seasonOption(),
			},
		},
		{
			Name:        commandPeriod,
			Description: "Show the current GameWeek and Season",
		},
		{
			Name:        commandAddStat,
			Description: "Add a stat to a player for current GW/Season",
			Options: []*discordgo.ApplicationCommandOption{
				memberOption("Player to add stats for", true),
				gameweekOption(),
				seasonOption(),
				statTypeOption(),
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        optionCount,
					Description: "Number of stats to add",
					Required:    true,
					MinValue:    floatPtr(1),
				},
				divisionOption(),
			},
		},
		{
			Name:        commandRemoveStats,
			Description: "Remove a stat from a player for a specific GW/Season",
			Options: []*discordgo.ApplicationCommandOption{
				memberOption("Player to remove stats from", true),
				gameweekOption(),
				seasonOption(),
				statTypeOption(),
				divisionOption(),
			},
		},
		{
			Name:        commandProfile,
			Description: "View a player's profile and stats",
			Options: []*discordgo.ApplicationCommandOption{
				memberOption("Player to view (leave empty for yourself)", false),
			},
		},
		{
			Name:        commandPosition,
			Description: "Set a player's position shown on their profile",
			Options: []*discordgo.ApplicationCommandOption{
				memberOption("Player to update", true),
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        optionPosition,
					Description: "Position, e.g. ST or GK (leave empty to clear)",
					Required:    false,
					MaxLength:   player.MaxPositionLength,
				},
			},
		},
	}
}

func memberOption(description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionUser,
		Name:        optionMember,
		Description: description,
		Required:    required,
	}
}

func gameweekOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        optionGameweek,
		Description: "GameWeek (1-22)",
		Required:    true,
	}
}

func seasonOption() *discordgo.ApplicationCommandOption {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(period.Seasons))
	for _, season := range period.Seasons {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  "Season " + itoa(season),
			Value: season,
		})
	}
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        optionSeason,
		Description: "Season (1, 2, or 3)",
		Required:    true,
		Choices:     choices,
	}
}

func statTypeOption() *discordgo.ApplicationCommandOption {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(stat.AllKinds))
	for _, kind := range stat.AllKinds {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  kind.Label(),
			Value: string(kind),
		})
	}
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        optionStatType,
		Description: "Type of stat (goal, assist, defender cleansheet, goalkeeper cleansheet, totw, motm)",
		Required:    true,
		Choices:     choices,
	}
}

func divisionOption() *discordgo.ApplicationCommandOption {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(stat.AllDivisions))
	for _, division := range stat.AllDivisions {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  string(division),
			Value: string(division),
		})
	}
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        optionDivision,
		Description: "Division (Div 1, Div 2, or Div 3)",
		Required:    false,
		Choices:     choices,
	}
}

func floatPtr(v float64) *float64 {
	return &v
}
