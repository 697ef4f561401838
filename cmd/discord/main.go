// cmd/discord/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "server-warden/internal/command/admin"
	_ "server-warden/internal/command/core"
	_ "server-warden/internal/command/user"

	"server-warden/internal/command"
	"server-warden/internal/config"
	"server-warden/internal/cooldown"
	"server-warden/internal/discord"
	"server-warden/internal/models"
	"server-warden/internal/permissions"
	"server-warden/internal/repository"
	"server-warden/internal/service"
	"server-warden/internal/storage"
)

func main() {
	log.Println("[INFO] Starting server-warden bot...")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
	}

	// Pick the repository mode once: a reachable store means persisted
	// repositories with TTL caches, otherwise everything lives in
	// memory for the lifetime of the process.
	var guildRepo repository.Repository[models.GuildSettings]
	var userRepo repository.Repository[models.UserProfile]

	store, err := storage.New(cfg.StoragePath)
	if err != nil {
		log.Printf("[WARN] Storage unavailable (%v), running in memory-only mode", err)
		guildRepo = repository.NewMemory(models.NewGuildSettings)
		userRepo = repository.NewMemory(models.NewUserProfile)
	} else {
		defer store.Close()
		guilds := repository.NewPersisted("guild_settings", store, cfg.SettingsCacheTTL, models.NewGuildSettings)
		users := repository.NewPersisted("user_profile", store, cfg.SettingsCacheTTL, models.NewUserProfile)
		go guilds.Run(ctx, cfg.SweepInterval)
		go users.Run(ctx, cfg.SweepInterval)
		guildRepo, userRepo = guilds, users
	}

	guildSettings := service.NewGuildSettings(guildRepo)
	userProfiles := service.NewUserProfiles(userRepo)

	tracker := cooldown.NewTracker()
	go tracker.Run(ctx, cfg.SweepInterval)

	gate := permissions.NewGate(cfg.PermissionCacheTTL)
	go gate.Run(ctx, cfg.SweepInterval)

	dispatcher := command.NewDispatcher(gate, tracker, guildSettings, cfg.DisabledCommands)
	services := &command.Services{
		Guilds:    guildSettings,
		Users:     userProfiles,
		Cooldowns: tracker,
		Gate:      gate,
	}

	bot := discord.NewBot(cfg, dispatcher, services)

	errCh := make(chan error, 1)
	go func() {
		if err := bot.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...", s)
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Println("[ERR] Discord bot error:", err)
		}
		cancel()
	case <-ctx.Done():
	}

	log.Println("[INFO] Discord bot exited cleanly")
}
