package core

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"server-warden/internal/command"
	"server-warden/internal/permissions"
)

func init() {
	command.Register(&command.Command{
		Name:          "help",
		Description:   "List available commands",
		Category:      "Information",
		RequiredLevel: permissions.Everyone,
		Cooldowns:     command.Cooldowns{User: 5 * time.Second},
		Run:           helpRun,
	})
}

func helpRun(ctx *command.Context) error {
	byCategory := map[string][]*command.Command{}
	for _, cmd := range command.All() {
		byCategory[cmd.Category] = append(byCategory[cmd.Category], cmd)
	}

	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	slices.Sort(categories)

	var b strings.Builder
	for _, category := range categories {
		fmt.Fprintf(&b, "**%s**\n", category)
		for _, cmd := range byCategory[category] {
			fmt.Fprintf(&b, "`/%s` — %s\n", cmd.Name, cmd.Description)
		}
		b.WriteString("\n")
	}
	return ctx.ReplyEphemeral(b.String())
}
