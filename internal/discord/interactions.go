package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"server-warden/internal/command"
)

func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	caller := b.normalizeCaller(s, i)

	ctx := &command.Context{
		Caller:   caller,
		Options:  resolveOptions(data.Options),
		Services: b.services,
		Latency:  s.HeartbeatLatency(),
		Reply: func(msg string) error {
			return respond(s, i, msg, false)
		},
		ReplyEphemeral: func(msg string) error {
			return respond(s, i, msg, true)
		},
	}

	if rej := b.dispatcher.Dispatch(data.Name, caller, ctx); rej != nil {
		b.renderRejection(s, i, rej)
	}
}

// resolveOptions flattens slash options into the name→value map bodies
// consume.
func resolveOptions(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]string {
	resolved := make(map[string]string, len(options))
	for _, opt := range options {
		switch opt.Type {
		case discordgo.ApplicationCommandOptionString:
			resolved[opt.Name] = opt.StringValue()
		case discordgo.ApplicationCommandOptionInteger:
			resolved[opt.Name] = fmt.Sprintf("%d", opt.IntValue())
		case discordgo.ApplicationCommandOptionBoolean:
			resolved[opt.Name] = fmt.Sprintf("%t", opt.BoolValue())
		case discordgo.ApplicationCommandOptionUser, discordgo.ApplicationCommandOptionChannel, discordgo.ApplicationCommandOptionRole:
			if v, ok := opt.Value.(string); ok {
				resolved[opt.Name] = v
			}
		}
	}
	return resolved
}
