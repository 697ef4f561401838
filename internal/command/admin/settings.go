package admin

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"server-warden/internal/command"
	"server-warden/internal/permissions"
)

func init() {
	command.Register(&command.Command{
		Name:          "settings",
		Description:   "View or change server settings",
		Category:      "Admin",
		RequiredLevel: permissions.Administrator,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "action",
				Description: "view, language, welcome, autorole, disable or enable",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "view", Value: "view"},
					{Name: "language", Value: "language"},
					{Name: "welcome", Value: "welcome"},
					{Name: "autorole", Value: "autorole"},
					{Name: "disable", Value: "disable"},
					{Name: "enable", Value: "enable"},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "value",
				Description: "Language tag or command name",
			},
			{
				Type:        discordgo.ApplicationCommandOptionChannel,
				Name:        "channel",
				Description: "Welcome channel",
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "message",
				Description: "Welcome message; supports {user}, {server}, {username}, {membercount}",
			},
			{
				Type:        discordgo.ApplicationCommandOptionRole,
				Name:        "role",
				Description: "Role granted to new members",
			},
		},
		Run: settingsRun,
	})
}

func settingsRun(ctx *command.Context) error {
	guilds := ctx.Services.Guilds
	guildID := ctx.Caller.GuildID
	value := ctx.Option("value")

	switch ctx.Option("action") {
	case "view":
		settings, err := guilds.Settings(guildID)
		if err != nil {
			return err
		}
		disabled := "none"
		if len(settings.DisabledCommands) > 0 {
			disabled = strings.Join(settings.DisabledCommands, ", ")
		}
		welcome := "off"
		if settings.WelcomeChannel != "" {
			welcome = fmt.Sprintf("<#%s> — %s", settings.WelcomeChannel, settings.WelcomeMessage)
		}
		autoRole := "none"
		if settings.AutoRole != "" {
			autoRole = fmt.Sprintf("<@&%s>", settings.AutoRole)
		}
		return ctx.ReplyEphemeral(fmt.Sprintf(
			"Language: `%s`\nWelcome: %s\nAuto-role: %s\nDisabled commands: %s",
			settings.Language, welcome, autoRole, disabled,
		))

	case "language":
		if value == "" {
			return ctx.ReplyEphemeral("Provide a language tag, e.g. `en-US`.")
		}
		if err := guilds.SetLanguage(guildID, value); err != nil {
			return err
		}
		return ctx.ReplyEphemeral(fmt.Sprintf("Language set to `%s`.", value))

	case "welcome":
		channelID := ctx.Option("channel")
		message := ctx.Option("message")
		if channelID == "" {
			return ctx.ReplyEphemeral("Provide a welcome channel.")
		}
		if message == "" {
			return ctx.ReplyEphemeral("Provide a welcome message, e.g. `Welcome {user} to {server}!`.")
		}
		if err := guilds.SetWelcome(guildID, channelID, message); err != nil {
			return err
		}
		return ctx.ReplyEphemeral(fmt.Sprintf(
			"Welcome messages will now be sent to <#%s> with the message:\n%s", channelID, message,
		))

	case "autorole":
		roleID := ctx.Option("role")
		if roleID == "" {
			return ctx.ReplyEphemeral("Provide a role to grant to new members.")
		}
		if err := guilds.SetAutoRole(guildID, roleID); err != nil {
			return err
		}
		return ctx.ReplyEphemeral(fmt.Sprintf("New members will now receive <@&%s>.", roleID))

	case "disable":
		if _, ok := command.Get(value); !ok {
			return ctx.ReplyEphemeral(fmt.Sprintf("Unknown command `%s`.", value))
		}
		if value == "settings" {
			return ctx.ReplyEphemeral("Refusing to disable `settings` — you would lock yourself out.")
		}
		if err := guilds.DisableCommand(guildID, value); err != nil {
			return err
		}
		return ctx.ReplyEphemeral(fmt.Sprintf("Command `%s` disabled in this server.", value))

	case "enable":
		if _, ok := command.Get(value); !ok {
			return ctx.ReplyEphemeral(fmt.Sprintf("Unknown command `%s`.", value))
		}
		if err := guilds.EnableCommand(guildID, value); err != nil {
			return err
		}
		return ctx.ReplyEphemeral(fmt.Sprintf("Command `%s` enabled in this server.", value))

	default:
		return ctx.ReplyEphemeral("Unknown action.")
	}
}
