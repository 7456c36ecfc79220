package commands

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/latoulicious/justincat/internal/config"
)

var tagsDefinition = &discordgo.ApplicationCommand{
	Name:        "tags",
	Description: "Where to find the available cat tags",
}

func (b *Bot) Tags(_ context.Context, _ Invocation) *Reply {
	e := NewEmbed(config.BotName).
		SetColor(ColourSuccess).
		SetDescription(fmt.Sprintf("The list of available tags can be found at %s", b.cats.TagsURL()))

	return &Reply{Embed: e.MessageEmbed}
}
