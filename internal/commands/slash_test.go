package commands

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
)

type fakeRegistry struct {
	registered []*discordgo.ApplicationCommand
	deleted    []string
}

func (f *fakeRegistry) ApplicationCommandBulkOverwrite(_ string, _ string, cmds []*discordgo.ApplicationCommand, _ ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
	f.registered = nil
	for i, cmd := range cmds {
		created := *cmd
		created.ID = string(rune('a' + i))
		f.registered = append(f.registered, &created)
	}

	return f.registered, nil
}

func (f *fakeRegistry) ApplicationCommands(_, _ string, _ ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
	return f.registered, nil
}

func (f *fakeRegistry) ApplicationCommandDelete(_, _, cmdID string, _ ...discordgo.RequestOption) error {
	f.deleted = append(f.deleted, cmdID)

	return nil
}

func TestRegisterAndDelete(t *testing.T) {
	registry := &fakeRegistry{}
	definitions := NewBot(nil).Definitions()

	synced, err := RegisterSlashCommands(registry, "app", "", definitions)
	require.NoError(t, err)
	require.Len(t, synced, len(definitions))

	require.NoError(t, DeleteSpecificSlashCommand(registry, "app", "", "randomcat"))
	require.Equal(t, []string{"d"}, registry.deleted)

	require.ErrorIs(t, DeleteSpecificSlashCommand(registry, "app", "", "play"), ErrCommandNotFound)

	registry.deleted = nil
	require.NoError(t, DeleteAllSlashCommands(registry, "app", ""))
	require.Len(t, registry.deleted, len(definitions))
}
