package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

var ErrCommandNotFound = errors.New("command not found")

// CommandRegistry is the part of the Discord session that manages application commands.
type CommandRegistry interface {
	ApplicationCommandBulkOverwrite(appID string, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
	ApplicationCommands(appID, guildID string, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
	ApplicationCommandDelete(appID, guildID, cmdID string, options ...discordgo.RequestOption) error
}

// RegisterSlashCommands replaces the registered commands with definitions in one call. An empty guildID
// registers them globally.
func RegisterSlashCommands(r CommandRegistry, appID string, guildID string, definitions []*discordgo.ApplicationCommand) ([]*discordgo.ApplicationCommand, error) {
	slog.Info("Registering slash commands...", slog.String("guild_id", guildID), slog.Int("count", len(definitions)))

	synced, err := r.ApplicationCommandBulkOverwrite(appID, guildID, definitions)
	if err != nil {
		return nil, fmt.Errorf("failed to register slash commands: %w", err)
	}

	for _, cmd := range synced {
		slog.Debug("Registered command", slog.String("name", cmd.Name), slog.String("id", cmd.ID))
	}

	return synced, nil
}

// ListSlashCommands returns the commands currently registered for the application.
func ListSlashCommands(r CommandRegistry, appID string, guildID string) ([]*discordgo.ApplicationCommand, error) {
	cmds, err := r.ApplicationCommands(appID, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch commands: %w", err)
	}

	return cmds, nil
}

// DeleteAllSlashCommands deletes every registered command
func DeleteAllSlashCommands(r CommandRegistry, appID string, guildID string) error {
	cmds, err := ListSlashCommands(r, appID, guildID)
	if err != nil {
		return err
	}

	for _, cmd := range cmds {
		if err := r.ApplicationCommandDelete(appID, guildID, cmd.ID); err != nil {
			return fmt.Errorf("failed to delete command %s: %w", cmd.Name, err)
		}

		slog.Info("Deleted command", slog.String("name", cmd.Name))
	}

	return nil
}

// DeleteSpecificSlashCommand deletes a specific slash command by name
func DeleteSpecificSlashCommand(r CommandRegistry, appID string, guildID string, commandName string) error {
	cmds, err := ListSlashCommands(r, appID, guildID)
	if err != nil {
		return err
	}

	for _, cmd := range cmds {
		if cmd.Name != commandName {
			continue
		}

		if err := r.ApplicationCommandDelete(appID, guildID, cmd.ID); err != nil {
			return fmt.Errorf("failed to delete command %s: %w", cmd.Name, err)
		}

		slog.Info("Deleted command", slog.String("name", cmd.Name))

		return nil
	}

	return fmt.Errorf("%w: %s", ErrCommandNotFound, commandName)
}
