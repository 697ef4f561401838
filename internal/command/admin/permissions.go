package admin

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"server-warden/internal/command"
	"server-warden/internal/permissions"
)

func init() {
	command.Register(&command.Command{
		Name:          "permissions",
		Description:   "Inspect permission levels and refresh caches",
		Category:      "Admin",
		RequiredLevel: permissions.Administrator,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "action",
				Description: "level, invalidate, invalidate-all or refresh",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "level", Value: "level"},
					{Name: "invalidate", Value: "invalidate"},
					{Name: "invalidate-all", Value: "invalidate-all"},
					{Name: "refresh", Value: "refresh"},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "user",
				Description: "Target user ID",
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "kind",
				Description: "Cache to refresh: guild or user",
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "guild", Value: "guild"},
					{Name: "user", Value: "user"},
				},
			},
		},
		Run: permissionsRun,
	})
}

func permissionsRun(ctx *command.Context) error {
	guildID := ctx.Caller.GuildID

	switch ctx.Option("action") {
	case "level":
		level := ctx.Services.Gate.Resolve(ctx.Caller)
		return ctx.ReplyEphemeral(fmt.Sprintf("Your permission level: **%s**", level))

	case "invalidate":
		userID := ctx.Option("user")
		if userID == "" {
			return ctx.ReplyEphemeral("Provide a user ID to invalidate.")
		}
		ctx.Services.Gate.Invalidate(guildID, userID)
		return ctx.ReplyEphemeral(fmt.Sprintf("Permission cache invalidated for <@%s>.", userID))

	case "invalidate-all":
		ctx.Services.Gate.InvalidateAll()
		return ctx.ReplyEphemeral("Permission cache cleared.")

	case "refresh":
		switch ctx.Option("kind") {
		case "guild":
			ctx.Services.Guilds.Refresh(guildID)
			return ctx.ReplyEphemeral("Guild settings cache refreshed.")
		case "user":
			userID := ctx.Option("user")
			if userID == "" {
				return ctx.ReplyEphemeral("Provide a user ID to refresh.")
			}
			ctx.Services.Users.Refresh(userID)
			return ctx.ReplyEphemeral(fmt.Sprintf("Profile cache refreshed for <@%s>.", userID))
		default:
			return ctx.ReplyEphemeral("Provide a kind: guild or user.")
		}

	default:
		return ctx.ReplyEphemeral("Unknown action.")
	}
}
