package discord

import (
	"context"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"server-warden/internal/command"
)

// registerSlashCommands pushes the registry's definitions to Discord,
// replacing whatever was registered before. Bulk overwrites are
// 429-prone, so calls go through the limiter.
func (b *Bot) registerSlashCommands(s *discordgo.Session) error {
	defs := make([]*discordgo.ApplicationCommand, 0, len(command.All()))
	for _, cmd := range command.All() {
		defs = append(defs, &discordgo.ApplicationCommand{
			Name:        cmd.Name,
			Description: cmd.Description,
			Options:     cmd.Options,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	err := b.limiter.Do(ctx, "register slash commands", func() error {
		_, err := s.ApplicationCommandBulkOverwrite(s.State.User.ID, "", defs)
		return err
	})
	if err != nil {
		return err
	}
	log.Printf("[INFO] Registered %d slash commands", len(defs))
	return nil
}
