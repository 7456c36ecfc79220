package handlers

import (
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/latoulicious/justincat/internal/auth"
	"github.com/latoulicious/justincat/internal/log"
)

const shutdownCommand = "!shutdown"

// MessageHandler serves the owner-only text commands.
type MessageHandler struct {
	owners   []string
	shutdown func()
	send     func(s *discordgo.Session, channelID string, content string) error
}

// NewMessageHandler creates a handler that calls shutdown when an owner sends !shutdown.
func NewMessageHandler(owners []string, shutdown func()) *MessageHandler {
	return &MessageHandler{owners: owners, shutdown: shutdown, send: channelMessageSend}
}

func channelMessageSend(s *discordgo.Session, channelID string, content string) error {
	_, err := s.ChannelMessageSend(channelID, content)

	return err
}

func selfID(s *discordgo.Session) string {
	if s.State == nil {
		return ""
	}

	s.State.RLock()
	defer s.State.RUnlock()

	if s.State.User == nil {
		return ""
	}

	return s.State.User.ID
}

// IsShutdownRequest reports whether the message is a shutdown command from an allowed owner.
func (h *MessageHandler) IsShutdownRequest(authorID string, content string) bool {
	return strings.TrimSpace(content) == shutdownCommand && auth.Authorized(authorID, h.owners)
}

func (h *MessageHandler) Handle(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	// Ignore all messages created by the bot itself
	if id := selfID(s); id != "" && m.Author.ID == id {
		return
	}

	if !h.IsShutdownRequest(m.Author.ID, m.Content) {
		return
	}

	if err := h.send(s, m.ChannelID, "Shutting down..."); err != nil {
		slog.Error("Failed to send shutdown notice", log.ErrAttr(err))
	}

	slog.Info("Shutting down...", slog.String("requested_by", m.Author.ID))
	h.shutdown()
}
