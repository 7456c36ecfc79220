package commands

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/dustin/go-humanize"
	"github.com/latoulicious/justincat/internal/config"
	"github.com/latoulicious/justincat/internal/log"
	"github.com/latoulicious/justincat/pkg/cataas"
	embed "github.com/leighmacdonald/discordgo-embed"
)

var randomCatDefinition = &discordgo.ApplicationCommand{
	Name:        "randomcat",
	Description: "Get a random cat picture",
}

// RandomCat attaches one random picture.
func (b *Bot) RandomCat(ctx context.Context, _ Invocation) *Reply {
	slog.Info("Getting a random cat picture")

	image, err := b.cats.Cat(ctx, cataas.PictureRequest{})
	if err != nil {
		slog.Error("Failed to get cat picture", log.ErrAttr(err))

		return ErrorReply("Failed to get cat picture")
	}

	return imageReply(NewEmbed(config.BotName), image)
}

// imageReply attaches the picture bytes unchanged and points the embed image at the attachment.
func imageReply(e *embed.Embed, image *cataas.Image) *Reply {
	attachment := Attachment{
		Name:        image.Filename(),
		ContentType: image.MimeType,
		Data:        image.Data,
	}

	slog.Info("Got cat picture",
		slog.String("file", attachment.Name),
		slog.String("size", humanize.Bytes(uint64(len(attachment.Data)))))

	e.SetColor(ColourSuccess).SetImage(attachment.Reference())

	return &Reply{
		Embed:       e.Truncate().MessageEmbed,
		Attachments: []Attachment{attachment},
	}
}
