package discordbot

import (
	"strconv"

	"github.com/bwmarrin/discordgo"
)

// commandOptions indexes the top-level options of one invocation by name.
type commandOptions map[string]*discordgo.ApplicationCommandInteractionDataOption

func optionsOf(data discordgo.ApplicationCommandInteractionData) commandOptions {
	out := make(commandOptions, len(data.Options))
	for _, opt := range data.Options {
		out[opt.Name] = opt
	}
	return out
}

func (o commandOptions) intValue(name string) int {
	opt, ok := o[name]
	if !ok {
		return 0
	}
	return int(opt.IntValue())
}

func (o commandOptions) stringValue(name, fallback string) string {
	opt, ok := o[name]
	if !ok {
		return fallback
	}
	return opt.StringValue()
}

// userID returns the snowflake of a user option. UserValue with a nil session
// only fills the ID, which is all the core needs.
func (o commandOptions) userID(name string) (string, bool) {
	opt, ok := o[name]
	if !ok {
		return "", false
	}
	user := opt.UserValue(nil)
	if user == nil || user.ID == "" {
		return "", false
	}
	return user.ID, true
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
