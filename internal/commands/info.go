package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/bwmarrin/discordgo"
	"github.com/latoulicious/justincat/internal/config"
	"github.com/latoulicious/justincat/internal/session"
)

const botDescription = "This bot allows you to get cat pictures on demand. " +
	"Use the `/randomcat` command to get a random cat picture."

var infoDefinition = &discordgo.ApplicationCommand{
	Name:        "info",
	Description: "Get information about the bot",
}

// Info displays latency, guild count, uptime and version.
func (b *Bot) Info(_ context.Context, inv Invocation) *Reply {
	slog.Info("Getting bot information")

	uptime := "Starting up"
	if s, ok := b.Session(); ok {
		uptime = session.FormatUptime(s, inv.Status.Now)
	}

	e := NewEmbed("Bot Information").
		SetColor(ColourSuccess).
		AddField("Latency", fmt.Sprintf("%dms", inv.Status.Latency.Milliseconds())).MakeFieldInline().
		AddField("Guilds", strconv.Itoa(inv.Status.Guilds)).MakeFieldInline().
		AddField("Uptime", uptime).MakeFieldInline().
		AddField("Version", config.BotVersion).MakeFieldInline().
		AddField("Description", botDescription)

	return &Reply{Embed: e.Truncate().MessageEmbed}
}
