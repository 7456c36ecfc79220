package commands

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/latoulicious/justincat/internal/config"
	"github.com/latoulicious/justincat/internal/log"
	"github.com/latoulicious/justincat/pkg/cataas"
)

var optionDescriptions = map[string]string{
	"width":      "Width of the picture in pixels",
	"height":     "Height of the picture in pixels",
	"blur":       "Blur strength",
	"brightness": "Brightness of the custom filter",
	"saturation": "Saturation of the custom filter",
	"lightness":  "Lightness of the custom filter",
	"hue":        "Hue rotation of the custom filter in degrees",
	"red":        "Red channel of the custom filter",
	"green":      "Green channel of the custom filter",
	"blue":       "Blue channel of the custom filter",
}

// customCatDefinition derives the numeric options from the validator bounds so both stay in sync.
func customCatDefinition() *discordgo.ApplicationCommand {
	filterChoices := make([]*discordgo.ApplicationCommandOptionChoice, len(cataas.Filters))
	for i, f := range cataas.Filters {
		filterChoices[i] = &discordgo.ApplicationCommandOptionChoice{Name: string(f), Value: string(f)}
	}

	options := []*discordgo.ApplicationCommandOption{{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "filter",
		Description: "Filter applied to the picture",
		Choices:     filterChoices,
	}}

	for _, bound := range cataas.Bounds {
		minValue := float64(bound.Min)
		options = append(options, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        bound.Name,
			Description: optionDescriptions[bound.Name],
			MinValue:    &minValue,
			MaxValue:    float64(bound.Max),
		})
	}

	return &discordgo.ApplicationCommand{
		Name:        "customcat",
		Description: "Get a cat picture with custom filters and size",
		Options:     options,
	}
}

// PictureRequestFromOptions maps slash command options onto a picture request. Unknown options are ignored.
func PictureRequestFromOptions(options []*discordgo.ApplicationCommandInteractionDataOption) cataas.PictureRequest {
	var req cataas.PictureRequest

	for _, opt := range options {
		if opt.Name == "filter" {
			req.Filter = cataas.Filter(opt.StringValue())

			continue
		}

		value := int(opt.IntValue())

		switch opt.Name {
		case "width":
			req.Width = &value
		case "height":
			req.Height = &value
		case "blur":
			req.Blur = &value
		case "brightness":
			req.Brightness = &value
		case "saturation":
			req.Saturation = &value
		case "lightness":
			req.Lightness = &value
		case "hue":
			req.Hue = &value
		case "red":
			req.Red = &value
		case "green":
			req.Green = &value
		case "blue":
			req.Blue = &value
		}
	}

	return req
}

// CustomCat validates every parameter, fetches the rendered picture and echoes the parameters back.
func (b *Bot) CustomCat(ctx context.Context, inv Invocation) *Reply {
	req := PictureRequestFromOptions(inv.Options)

	if err := req.Validate(); err != nil {
		slog.Info("Rejected custom cat parameters", log.ErrAttr(err))

		return validationReply(err)
	}

	slog.Info("Getting a custom cat picture")

	image, err := b.cats.Cat(ctx, req)
	if err != nil {
		slog.Error("Failed to get custom cat picture", log.ErrAttr(err))

		return ErrorReply("Failed to get cat picture")
	}

	e := NewEmbed(config.BotName)
	for _, opt := range inv.Options {
		e.AddField(opt.Name, optionValue(opt)).MakeFieldInline()
	}

	return imageReply(e, image)
}

func optionValue(opt *discordgo.ApplicationCommandInteractionDataOption) string {
	if opt.Type == discordgo.ApplicationCommandOptionString {
		return opt.StringValue()
	}

	return strconv.FormatInt(opt.IntValue(), 10)
}

func validationReply(err error) *Reply {
	var validationErr *cataas.ValidationError
	if !errors.As(err, &validationErr) {
		return ErrorReply("Invalid parameters")
	}

	lines := make([]string, len(validationErr.Violations))
	for i, v := range validationErr.Violations {
		lines[i] = "• " + v.Error()
	}

	e := NewEmbed("Invalid parameters").
		SetDescription(strings.Join(lines, "\n")).
		SetColor(ColourError)

	return &Reply{Embed: e.Truncate().MessageEmbed, Ephemeral: true}
}
