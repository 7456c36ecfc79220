package handlers

import (
	"context"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/latoulicious/justincat/internal/commands"
	"github.com/latoulicious/justincat/internal/log"
)

// Responder is the part of the Discord session used to answer interactions.
type Responder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	InteractionResponseDelete(interaction *discordgo.Interaction, options ...discordgo.RequestOption) error
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// SlashCommandHandler routes application command interactions to the bot commands.
type SlashCommandHandler struct {
	ctx      context.Context
	commands map[string]commands.Command
}

// NewSlashCommandHandler builds the routing table. Handlers derive their context from ctx.
func NewSlashCommandHandler(ctx context.Context, cmds []commands.Command) *SlashCommandHandler {
	table := make(map[string]commands.Command, len(cmds))
	for _, cmd := range cmds {
		table[cmd.Definition.Name] = cmd
	}

	return &SlashCommandHandler{ctx: ctx, commands: table}
}

// Handle is registered with discordgo for InteractionCreate events.
func (h *SlashCommandHandler) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	status := commands.Status{
		Latency: s.HeartbeatLatency(),
		Now:     time.Now(),
		Guilds:  GuildCount(s),
	}

	h.Dispatch(s, i.Interaction, status)
}

// GuildCount reads the number of cached guilds under the state lock.
func GuildCount(s *discordgo.Session) int {
	if s.State == nil {
		return 0
	}

	s.State.RLock()
	defer s.State.RUnlock()

	return len(s.State.Guilds)
}

// Dispatch runs the named command and delivers its reply.
func (h *SlashCommandHandler) Dispatch(r Responder, i *discordgo.Interaction, status commands.Status) {
	data := i.ApplicationCommandData()

	cmd, ok := h.commands[data.Name]
	if !ok {
		slog.Warn("Unknown slash command", slog.String("command", data.Name))
		respond(r, i, commands.ErrorReply("Unknown command"))

		return
	}

	inv := commands.Invocation{
		UserID:  userID(i),
		Options: data.Options,
		Status:  status,
	}

	slog.Debug("Slash command invoked", slog.String("command", data.Name), slog.String("user_id", inv.UserID))

	if !cmd.Deferred {
		respond(r, i, cmd.Run(h.ctx, inv))

		return
	}

	// Acknowledge the interaction immediately
	if err := r.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		slog.Error("Error acknowledging interaction", slog.String("command", data.Name), log.ErrAttr(err))

		return
	}

	reply := cmd.Run(h.ctx, inv)

	if reply.Ephemeral {
		// The deferred placeholder is public, so replace it with a private followup.
		if err := r.InteractionResponseDelete(i); err != nil {
			slog.Error("Error deleting deferred response", log.ErrAttr(err))
		}

		if _, err := r.FollowupMessageCreate(i, true, reply.WebhookParams()); err != nil {
			slog.Error("Error sending followup message", slog.String("command", data.Name), log.ErrAttr(err))
		}

		return
	}

	if _, err := r.InteractionResponseEdit(i, reply.WebhookEdit()); err != nil {
		slog.Error("Error sending interaction response", slog.String("command", data.Name), log.ErrAttr(err))
	}
}

func respond(r Responder, i *discordgo.Interaction, reply *commands.Reply) {
	err := r.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: reply.ResponseData(),
	})
	if err != nil {
		slog.Error("Error sending interaction response", log.ErrAttr(err))
	}
}

func userID(i *discordgo.Interaction) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}

	if i.User != nil {
		return i.User.ID
	}

	return ""
}
