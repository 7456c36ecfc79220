package commands

import (
	"bytes"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/latoulicious/justincat/internal/config"
	embed "github.com/leighmacdonald/discordgo-embed"
)

const (
	ColourSuccess = 0x2ecc71
	ColourError   = 0xe74c3c
)

// Attachment is a file uploaded together with a reply.
type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}

// Reference is the in-message token an embed uses to display the attachment inline.
func (a Attachment) Reference() string {
	return "attachment://" + a.Name
}

// Reply is the rendered outcome of one slash command.
type Reply struct {
	Embed       *discordgo.MessageEmbed
	Attachments []Attachment
	Ephemeral   bool
}

// NewEmbed constructs an embed carrying the bot footer and the current timestamp.
func NewEmbed(title string) *embed.Embed {
	e := embed.NewEmbed().
		SetTitle(title).
		SetFooter(config.BotName + " v" + config.BotVersion)
	e.Timestamp = time.Now().Format(time.RFC3339)

	return e
}

// ErrorReply is the ephemeral red card shown when a command fails.
func ErrorReply(description string) *Reply {
	e := NewEmbed("Error").
		SetDescription(description).
		SetColor(ColourError)

	return &Reply{Embed: e.Truncate().MessageEmbed, Ephemeral: true}
}

func (r *Reply) flags() discordgo.MessageFlags {
	if r.Ephemeral {
		return discordgo.MessageFlagsEphemeral
	}

	return 0
}

// Files builds fresh readers over the attachments; each call may be sent independently.
func (r *Reply) Files() []*discordgo.File {
	if len(r.Attachments) == 0 {
		return nil
	}

	files := make([]*discordgo.File, len(r.Attachments))
	for i, a := range r.Attachments {
		files[i] = &discordgo.File{
			Name:        a.Name,
			ContentType: a.ContentType,
			Reader:      bytes.NewReader(a.Data),
		}
	}

	return files
}

// ResponseData renders the reply as an immediate interaction response.
func (r *Reply) ResponseData() *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{r.Embed},
		Files:  r.Files(),
		Flags:  r.flags(),
	}
}

// WebhookEdit renders the reply as an edit of a deferred response.
func (r *Reply) WebhookEdit() *discordgo.WebhookEdit {
	embeds := []*discordgo.MessageEmbed{r.Embed}

	return &discordgo.WebhookEdit{
		Embeds: &embeds,
		Files:  r.Files(),
	}
}

// WebhookParams renders the reply as a followup message.
func (r *Reply) WebhookParams() *discordgo.WebhookParams {
	return &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{r.Embed},
		Files:  r.Files(),
		Flags:  r.flags(),
	}
}
