package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/latoulicious/justincat/internal/commands"
	"github.com/latoulicious/justincat/internal/session"
	"github.com/latoulicious/justincat/pkg/cataas"
	"github.com/stretchr/testify/require"
)

type fakeCats struct {
	count    int
	image    *cataas.Image
	err      error
	calls    int
	requests []cataas.PictureRequest
}

func (f *fakeCats) Count(_ context.Context) (int, error) {
	f.calls++

	return f.count, f.err
}

func (f *fakeCats) Cat(_ context.Context, req cataas.PictureRequest) (*cataas.Image, error) {
	f.calls++
	f.requests = append(f.requests, req)

	return f.image, f.err
}

func (f *fakeCats) TagsURL() string {
	return "https://cataas.com/api/tags"
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer

	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(previous) })

	return &buf
}

func intOption(name string, value int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: float64(value),
	}
}

func stringOption(name string, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

func TestHowManyCats(t *testing.T) {
	cats := &fakeCats{count: 42}
	bot := commands.NewBot(cats)

	reply := bot.HowManyCats(t.Context(), commands.Invocation{})
	require.False(t, reply.Ephemeral)
	require.Len(t, reply.Embed.Fields, 1)
	require.Contains(t, reply.Embed.Fields[0].Value, "42")
	require.Equal(t, 1, cats.calls)
}

func TestRandomCatAttachesBytesUnchanged(t *testing.T) {
	payload := []byte{0xff, 0xd8, 0xff, 0xe0, 0x01, 0x02, 0x03}
	cats := &fakeCats{image: &cataas.Image{Data: payload, MimeType: "image/jpeg", Extension: ".jpg"}}
	bot := commands.NewBot(cats)

	reply := bot.RandomCat(t.Context(), commands.Invocation{})
	require.False(t, reply.Ephemeral)
	require.Len(t, reply.Attachments, 1)
	require.Equal(t, "attachment://cat.jpg", reply.Embed.Image.URL)

	files := reply.Files()
	require.Len(t, files, 1)
	require.Equal(t, "cat.jpg", files[0].Name)

	sent, err := io.ReadAll(files[0].Reader)
	require.NoError(t, err)
	require.Equal(t, payload, sent)

	// Each rendering gets its own reader over the same bytes.
	again, err := io.ReadAll(reply.ResponseData().Files[0].Reader)
	require.NoError(t, err)
	require.Equal(t, payload, again)

	require.True(t, cats.requests[0].Empty())
}

func TestUpstreamFailureIsGeneric(t *testing.T) {
	logs := captureLogs(t)
	upstream := errors.New("dial tcp: connection refused")

	for name, run := range map[string]func(*commands.Bot) *commands.Reply{
		"howmanycats": func(b *commands.Bot) *commands.Reply { return b.HowManyCats(t.Context(), commands.Invocation{}) },
		"randomcat":   func(b *commands.Bot) *commands.Reply { return b.RandomCat(t.Context(), commands.Invocation{}) },
		"customcat":   func(b *commands.Bot) *commands.Reply { return b.CustomCat(t.Context(), commands.Invocation{}) },
	} {
		t.Run(name, func(t *testing.T) {
			logs.Reset()
			cats := &fakeCats{err: upstream}

			reply := run(commands.NewBot(cats))
			require.True(t, reply.Ephemeral)
			require.Equal(t, "Error", reply.Embed.Title)
			require.NotContains(t, reply.Embed.Description, "connection refused")
			require.Empty(t, reply.Attachments)
			require.Equal(t, 1, cats.calls)
			require.Contains(t, logs.String(), "connection refused")
		})
	}
}

func TestCustomCatRejectsBlurWithoutFetching(t *testing.T) {
	for _, blur := range []int{-5, -1, 11, 50} {
		cats := &fakeCats{}
		bot := commands.NewBot(cats)

		reply := bot.CustomCat(t.Context(), commands.Invocation{
			Options: []*discordgo.ApplicationCommandInteractionDataOption{intOption("blur", blur)},
		})
		require.True(t, reply.Ephemeral)
		require.Contains(t, reply.Embed.Description, "blur")
		require.Zero(t, cats.calls)
	}
}

func TestCustomCatRejectsUnknownFilter(t *testing.T) {
	cats := &fakeCats{}
	bot := commands.NewBot(cats)

	reply := bot.CustomCat(t.Context(), commands.Invocation{
		Options: []*discordgo.ApplicationCommandInteractionDataOption{stringOption("filter", "negative")},
	})
	require.True(t, reply.Ephemeral)
	require.Contains(t, reply.Embed.Description, "filter")
	require.Zero(t, cats.calls)
}

func TestCustomCatReportsEveryViolation(t *testing.T) {
	cats := &fakeCats{}
	bot := commands.NewBot(cats)

	reply := bot.CustomCat(t.Context(), commands.Invocation{
		Options: []*discordgo.ApplicationCommandInteractionDataOption{
			intOption("blur", 20),
			intOption("hue", 400),
			intOption("green", 300),
		},
	})
	require.True(t, reply.Ephemeral)
	require.Contains(t, reply.Embed.Description, "blur")
	require.Contains(t, reply.Embed.Description, "hue")
	require.Contains(t, reply.Embed.Description, "green")
	require.Zero(t, cats.calls)
}

func TestCustomCatEchoesParameters(t *testing.T) {
	cats := &fakeCats{image: &cataas.Image{Data: []byte("cat"), MimeType: "image/png", Extension: ".png"}}
	bot := commands.NewBot(cats)

	reply := bot.CustomCat(t.Context(), commands.Invocation{
		Options: []*discordgo.ApplicationCommandInteractionDataOption{
			stringOption("filter", "custom"),
			intOption("red", 255),
			intOption("blur", 0),
		},
	})
	require.False(t, reply.Ephemeral)
	require.Len(t, reply.Embed.Fields, 3)
	require.Equal(t, "filter", reply.Embed.Fields[0].Name)
	require.Equal(t, "custom", reply.Embed.Fields[0].Value)
	require.Equal(t, "255", reply.Embed.Fields[1].Value)
	require.Equal(t, "0", reply.Embed.Fields[2].Value)
	require.Equal(t, "attachment://cat.png", reply.Embed.Image.URL)

	require.Len(t, cats.requests, 1)
	req := cats.requests[0]
	require.Equal(t, cataas.FilterCustom, req.Filter)
	require.Equal(t, 255, *req.Red)
	require.Equal(t, 0, *req.Blur)
	require.Nil(t, req.Width)
}

func TestInfoUptime(t *testing.T) {
	bot := commands.NewBot(&fakeCats{})
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	require.True(t, bot.Start(session.New(start)))
	require.False(t, bot.Start(session.New(start.Add(time.Hour))))

	reply := bot.Info(t.Context(), commands.Invocation{Status: commands.Status{
		Latency: 42 * time.Millisecond,
		Guilds:  3,
		Now:     start.Add(26*time.Hour + 5*time.Second),
	}})

	values := map[string]string{}
	for _, field := range reply.Embed.Fields {
		values[field.Name] = field.Value
	}

	require.Equal(t, "42ms", values["Latency"])
	require.Equal(t, "3", values["Guilds"])
	require.Equal(t, "1d, 2h, 0m, 5s", values["Uptime"])
	require.Equal(t, "1.0.0", values["Version"])
}

func TestPing(t *testing.T) {
	reply := commands.NewBot(&fakeCats{}).Ping(t.Context(), commands.Invocation{Status: commands.Status{Latency: 87 * time.Millisecond}})
	require.Equal(t, "Pong!", reply.Embed.Title)
	require.Equal(t, "Latency: 87ms", reply.Embed.Description)
}

func TestTagsIsStatic(t *testing.T) {
	cats := &fakeCats{}
	reply := commands.NewBot(cats).Tags(t.Context(), commands.Invocation{})
	require.Contains(t, reply.Embed.Description, "https://cataas.com/api/tags")
	require.Zero(t, cats.calls)
}

func TestDefinitions(t *testing.T) {
	definitions := commands.NewBot(nil).Definitions()

	names := make([]string, len(definitions))
	for i, d := range definitions {
		names[i] = d.Name
	}

	require.Equal(t, []string{"ping", "info", "howmanycats", "randomcat", "customcat", "tags"}, names)

	custom := definitions[4]
	require.Len(t, custom.Options, 11)

	for _, opt := range custom.Options {
		require.False(t, opt.Required, opt.Name)

		if opt.Name == "blur" {
			require.InDelta(t, 0, *opt.MinValue, 0)
			require.InDelta(t, 10, opt.MaxValue, 0)
		}
	}
}
