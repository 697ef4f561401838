package discord

import (
	"github.com/bwmarrin/discordgo"

	"server-warden/internal/permissions"
)

// moderationBits maps Discord permission bits to the platform-neutral
// capability names the gate understands.
var moderationBits = []struct {
	bit int64
	cap permissions.Capability
}{
	{discordgo.PermissionManageMessages, permissions.CapManageMessages},
	{discordgo.PermissionKickMembers, permissions.CapKickMembers},
	{discordgo.PermissionBanMembers, permissions.CapBanMembers},
	{discordgo.PermissionModerateMembers, permissions.CapModerateMembers},
}

// normalizeCaller translates an interaction into the caller contract
// the pipeline consumes. Nothing downstream sees discordgo types.
func (b *Bot) normalizeCaller(s *discordgo.Session, i *discordgo.InteractionCreate) *permissions.Caller {
	caller := &permissions.Caller{
		GuildID:   i.GuildID,
		ChannelID: i.ChannelID,
	}

	if i.Member == nil || i.Member.User == nil {
		// Direct message: no member, no guild capabilities.
		if i.User != nil {
			caller.UserID = i.User.ID
			caller.Operator = b.cfg.IsOwner(i.User.ID)
		}
		return caller
	}

	caller.UserID = i.Member.User.ID
	caller.RoleIDs = i.Member.Roles
	caller.Operator = b.cfg.IsOwner(caller.UserID)

	if guild, err := s.State.Guild(i.GuildID); err == nil {
		caller.GuildOwner = guild.OwnerID == caller.UserID
	}

	memberPerms := i.Member.Permissions
	caller.Administrator = memberPerms&discordgo.PermissionAdministrator != 0
	for _, m := range moderationBits {
		if memberPerms&m.bit != 0 {
			caller.Moderation = append(caller.Moderation, m.cap)
		}
	}
	return caller
}
