package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"server-warden/internal/command"
	"server-warden/internal/permissions"
)

func init() {
	command.Register(&command.Command{
		Name:          "profile",
		Description:   "Show your profile or set your bio",
		Category:      "User",
		RequiredLevel: permissions.Everyone,
		Cooldowns:     command.Cooldowns{User: 5 * time.Second},
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "bio",
				Description: "New bio text",
			},
		},
		Run: profileRun,
	})
}

func profileRun(ctx *command.Context) error {
	if bio := ctx.Option("bio"); bio != "" {
		if err := ctx.Services.Users.SetBio(ctx.Caller.UserID, bio); err != nil {
			return err
		}
		return ctx.ReplyEphemeral("Bio updated.")
	}

	profile, err := ctx.Services.Users.Profile(ctx.Caller.UserID)
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Level %d** · %d XP · %d rep\n", profile.Level, profile.XP, profile.Reputation)
	fmt.Fprintf(&b, "Balance: %d 🪙\n", profile.Balance)
	if len(profile.Badges) > 0 {
		fmt.Fprintf(&b, "Badges: %s\n", strings.Join(profile.Badges, ", "))
	}
	if profile.Bio != "" {
		fmt.Fprintf(&b, "Bio: %s\n", profile.Bio)
	}
	return ctx.ReplyEphemeral(b.String())
}
