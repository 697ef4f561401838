package discord

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"server-warden/internal/command"
	"server-warden/internal/cooldown"
)

const (
	colorError   = 0xED4245
	colorWarning = 0xFEE75C
)

func respond(s *discordgo.Session, i *discordgo.InteractionCreate, msg string, ephemeral bool) error {
	data := &discordgo.InteractionResponseData{Content: msg}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

func respondEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, title, msg string, color int) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{Title: title, Description: msg, Color: color},
			},
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Println("[ERR] Failed to respond to interaction:", err)
	}
}

// renderRejection turns a typed rejection into a user-facing notice.
// This is the only place rejection text lives.
func (b *Bot) renderRejection(s *discordgo.Session, i *discordgo.InteractionCreate, rej *command.Rejection) {
	switch rej.Reason {
	case command.ReasonUnknownCommand:
		respondEmbed(s, i, "Command Not Found", "This command does not exist or has been removed.", colorError)
	case command.ReasonDisabledGlobally:
		respondEmbed(s, i, "Command Disabled", "This command is currently disabled.", colorError)
	case command.ReasonDisabledInGuild:
		respondEmbed(s, i, "Command Disabled", "This command is disabled in this server.", colorError)
	case command.ReasonNoPermission:
		respondEmbed(s, i, "Insufficient Permissions", "You do not have the required permission level to use this command.", colorError)
	case command.ReasonOnCooldown:
		respondEmbed(s, i, "Command Cooldown", cooldownNotice(rej), colorWarning)
	case command.ReasonStoreUnavailable:
		respondEmbed(s, i, "Service Unavailable", "This command is temporarily unavailable. Please try again later.", colorError)
	case command.ReasonExecutionFailed:
		respondEmbed(s, i, "Command Error", "An error occurred while executing this command. The error has been logged.", colorError)
	}
}

func cooldownNotice(rej *command.Rejection) string {
	remaining := rej.Remaining.Seconds()
	switch rej.Scope {
	case cooldown.ScopeGlobal:
		return fmt.Sprintf("This command is on global cooldown. Please try again in %.1f seconds.", remaining)
	case cooldown.ScopeChannel:
		return fmt.Sprintf("This command is on cooldown in this channel for %.1f more seconds.", remaining)
	case cooldown.ScopeRole:
		return fmt.Sprintf("Your role must wait %.1f more seconds before using this command.", remaining)
	default:
		return fmt.Sprintf("You can use this command again in %.1f seconds.", remaining)
	}
}
