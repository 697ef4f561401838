package discord

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"server-warden/internal/models"
)

const colorPrimary = 0x5865F2

// onGuildMemberAdd greets new members in the configured welcome channel
// and grants the auto-role, when the guild has them set.
func (b *Bot) onGuildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	if m.User == nil {
		return
	}

	settings, err := b.services.Guilds.Settings(m.GuildID)
	if err != nil {
		log.Printf("[ERR] Welcome settings lookup failed for guild %s: %v", m.GuildID, err)
		return
	}

	if settings.AutoRole != "" {
		if err := s.GuildMemberRoleAdd(m.GuildID, m.User.ID, settings.AutoRole); err != nil {
			log.Printf("[ERR] Failed to grant auto-role in guild %s: %v", m.GuildID, err)
		}
	}

	if settings.WelcomeChannel == "" {
		return
	}

	guildName := m.GuildID
	memberCount := 0
	if guild, err := s.State.Guild(m.GuildID); err == nil {
		guildName = guild.Name
		memberCount = guild.MemberCount
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Welcome to %s!", guildName),
		Description: welcomeText(settings, m.User.ID, m.User.Username, guildName, memberCount),
		Color:       colorPrimary,
	}
	if memberCount > 0 {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Member #%d", memberCount)}
	}
	if m.User.Avatar != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: m.User.AvatarURL("")}
	}

	if _, err := s.ChannelMessageSendEmbed(settings.WelcomeChannel, embed); err != nil {
		log.Printf("[ERR] Failed to send welcome message in guild %s: %v", m.GuildID, err)
		return
	}
	log.Printf("[INFO] Sent welcome message for %s in guild %s", m.User.Username, m.GuildID)
}

// welcomeText expands the placeholders the settings command documents:
// {user}, {server}, {username} and {membercount}.
func welcomeText(settings models.GuildSettings, userID, username, guildName string, memberCount int) string {
	msg := settings.WelcomeMessage
	if msg == "" {
		msg = models.NewGuildSettings(settings.GuildID).WelcomeMessage
	}
	r := strings.NewReplacer(
		"{user}", "<@"+userID+">",
		"{server}", guildName,
		"{username}", username,
		"{membercount}", strconv.Itoa(memberCount),
	)
	return r.Replace(msg)
}
