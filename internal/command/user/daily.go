package user

import (
	"fmt"
	"time"

	"server-warden/internal/command"
	"server-warden/internal/permissions"
)

func init() {
	command.Register(&command.Command{
		Name:          "daily",
		Description:   "Claim your daily reward",
		Category:      "User",
		RequiredLevel: permissions.Everyone,
		// The once-per-day window is the dispatcher's user cooldown;
		// the body only credits the reward.
		Cooldowns: command.Cooldowns{User: 24 * time.Hour},
		Run:       dailyRun,
	})
}

func dailyRun(ctx *command.Context) error {
	profile, err := ctx.Services.Users.GrantDaily(ctx.Caller.UserID)
	if err != nil {
		return err
	}
	return ctx.Reply(fmt.Sprintf("💰 Daily reward claimed! New balance: %d 🪙", profile.Balance))
}
