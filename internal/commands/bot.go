package commands

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/latoulicious/justincat/internal/session"
	"github.com/latoulicious/justincat/pkg/cataas"
)

// CatSource is the upstream picture API.
type CatSource interface {
	Count(ctx context.Context) (int, error)
	Cat(ctx context.Context, req cataas.PictureRequest) (*cataas.Image, error)
	TagsURL() string
}

// Status is the gateway state sampled when a command is invoked.
type Status struct {
	Latency time.Duration
	Guilds  int
	Now     time.Time
}

// Invocation carries everything a command needs from the incoming interaction.
type Invocation struct {
	UserID  string
	Options []*discordgo.ApplicationCommandInteractionDataOption
	Status  Status
}

// Command binds a slash command definition to its implementation.
type Command struct {
	Definition *discordgo.ApplicationCommand
	// Deferred commands call the upstream API and acknowledge the interaction before running.
	Deferred bool
	Run      func(ctx context.Context, inv Invocation) *Reply
}

type Bot struct {
	cats    CatSource
	session atomic.Pointer[session.Session]
}

// NewBot creates the command set backed by the given picture source.
func NewBot(cats CatSource) *Bot {
	return &Bot{cats: cats}
}

// Start records the session start. Only the first call has any effect, so gateway reconnects keep the uptime.
func (b *Bot) Start(s session.Session) bool {
	return b.session.CompareAndSwap(nil, &s)
}

// Session returns the active session, if the bot has become ready.
func (b *Bot) Session() (session.Session, bool) {
	s := b.session.Load()
	if s == nil {
		return session.Session{}, false
	}

	return *s, true
}

// Commands lists every slash command in registration order.
func (b *Bot) Commands() []Command {
	return []Command{
		{Definition: pingDefinition, Run: b.Ping},
		{Definition: infoDefinition, Run: b.Info},
		{Definition: howManyCatsDefinition, Deferred: true, Run: b.HowManyCats},
		{Definition: randomCatDefinition, Deferred: true, Run: b.RandomCat},
		{Definition: customCatDefinition(), Deferred: true, Run: b.CustomCat},
		{Definition: tagsDefinition, Run: b.Tags},
	}
}

// Definitions returns the application commands to register with Discord.
func (b *Bot) Definitions() []*discordgo.ApplicationCommand {
	cmds := b.Commands()

	definitions := make([]*discordgo.ApplicationCommand, len(cmds))
	for i, cmd := range cmds {
		definitions[i] = cmd.Definition
	}

	return definitions
}
