package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"server-warden/internal/command"
	"server-warden/internal/config"
	"server-warden/pkg/retrylimit"
)

// Bot owns the Discord session and feeds normalized requests into the
// dispatcher.
type Bot struct {
	dg         *discordgo.Session
	cfg        *config.Config
	dispatcher *command.Dispatcher
	services   *command.Services
	limiter    *retrylimit.Limiter
}

// NewBot creates a Bot around an already wired dispatcher.
func NewBot(cfg *config.Config, dispatcher *command.Dispatcher, services *command.Services) *Bot {
	return &Bot{
		cfg:        cfg,
		dispatcher: dispatcher,
		services:   services,
		limiter:    retrylimit.New(2, 1, 4),
	}
}

// Run opens the Discord session and blocks until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	b.dg = dg

	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers

	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onGuildCreate)
	dg.AddHandler(b.onGuildDelete)
	dg.AddHandler(b.onGuildMemberAdd)
	dg.AddHandler(b.onInteractionCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	log.Println("[INFO] Shutdown signal received. Cleaning up...")
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Printf("[INFO] Logged in as %s#%s", r.User.Username, r.User.Discriminator)
	if err := b.registerSlashCommands(s); err != nil {
		log.Println("[ERR] Failed to register slash commands:", err)
	}
}

func (b *Bot) onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	log.Printf("[INFO] Guild available: %s (%s)", g.Name, g.ID)
}

func (b *Bot) onGuildDelete(s *discordgo.Session, g *discordgo.GuildDelete) {
	if g.Unavailable {
		// Outage, not a removal; keep the settings.
		return
	}
	log.Printf("[INFO] Removed from guild %s, dropping its settings", g.ID)
	if err := b.services.Guilds.Forget(g.ID); err != nil {
		log.Printf("[ERR] Failed to drop settings for guild %s: %v", g.ID, err)
	}
}
