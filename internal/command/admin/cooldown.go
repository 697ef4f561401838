package admin

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"server-warden/internal/command"
	"server-warden/internal/permissions"
)

func init() {
	command.Register(&command.Command{
		Name:          "cooldown",
		Description:   "Clear active cooldowns",
		Category:      "Admin",
		RequiredLevel: permissions.Administrator,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "action",
				Description: "clear-command or clear-user",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "clear-command", Value: "clear-command"},
					{Name: "clear-user", Value: "clear-user"},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "target",
				Description: "Command name or user ID",
				Required:    true,
			},
		},
		Run: cooldownRun,
	})
}

func cooldownRun(ctx *command.Context) error {
	target := ctx.Option("target")

	switch ctx.Option("action") {
	case "clear-command":
		removed := ctx.Services.Cooldowns.ClearCommand(target)
		return ctx.ReplyEphemeral(fmt.Sprintf("Cleared %d cooldown(s) for `%s`.", removed, target))
	case "clear-user":
		removed := ctx.Services.Cooldowns.ClearUser(target)
		return ctx.ReplyEphemeral(fmt.Sprintf("Cleared %d cooldown(s) for user `%s`.", removed, target))
	default:
		return ctx.ReplyEphemeral("Unknown action.")
	}
}
