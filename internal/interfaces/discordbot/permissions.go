package discordbot

import "github.com/bwmarrin/discordgo"

const moderatorPermissions = discordgo.PermissionAdministrator | discordgo.PermissionModerateMembers

// isModerator holds for guild members with Administrator or Moderate Members.
// Invocations outside a guild carry no member and are never moderators.
func isModerator(i *discordgo.Interaction) bool {
	if i == nil || i.Member == nil {
		return false
	}
	return i.Member.Permissions&moderatorPermissions != 0
}

func invoker(i *discordgo.Interaction) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}
