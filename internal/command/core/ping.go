package core

import (
	"fmt"
	"time"

	"server-warden/internal/command"
	"server-warden/internal/permissions"
)

func init() {
	command.Register(&command.Command{
		Name:          "ping",
		Description:   "Pong!",
		Category:      "Information",
		RequiredLevel: permissions.Everyone,
		Cooldowns:     command.Cooldowns{User: 3 * time.Second},
		Run:           pingRun,
	})
}

func pingRun(ctx *command.Context) error {
	return ctx.Reply(fmt.Sprintf("🏓 Pong! Response time: `%dms`", ctx.Latency.Milliseconds()))
}
