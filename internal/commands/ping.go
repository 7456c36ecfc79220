package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

var pingDefinition = &discordgo.ApplicationCommand{
	Name:        "ping",
	Description: "Ping the bot and get the latency",
}

// Ping reports the gateway heartbeat latency.
func (b *Bot) Ping(_ context.Context, inv Invocation) *Reply {
	latency := inv.Status.Latency.Milliseconds()
	slog.Info("Pong!", slog.Int64("latency_ms", latency))

	e := NewEmbed("Pong!").
		SetDescription(fmt.Sprintf("Latency: %dms", latency)).
		SetColor(ColourSuccess)

	return &Reply{Embed: e.MessageEmbed}
}
