package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/latoulicious/justincat/internal/config"
	"github.com/latoulicious/justincat/internal/log"
)

var howManyCatsDefinition = &discordgo.ApplicationCommand{
	Name:        "howmanycats",
	Description: "Show how many cat pictures are available",
}

// HowManyCats shows the number of pictures known upstream.
func (b *Bot) HowManyCats(ctx context.Context, _ Invocation) *Reply {
	slog.Info("Getting the number of available cat pictures")

	count, err := b.cats.Count(ctx)
	if err != nil {
		slog.Error("Failed to get cat pictures", log.ErrAttr(err))

		return ErrorReply("Failed to get cat pictures")
	}

	message := fmt.Sprintf("There are %d cat pictures available in the database", count)
	slog.Info(message)

	e := NewEmbed(config.BotName).
		SetColor(ColourSuccess).
		AddField("Cat Pictures Count", message)

	return &Reply{Embed: e.MessageEmbed}
}
