package main

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/latoulicious/justincat/internal/commands"
	"github.com/latoulicious/justincat/internal/config"
	"github.com/latoulicious/justincat/internal/log"
	"github.com/spf13/cobra"
)

var guildID string

var slashCmd = &cobra.Command{
	Use:   "slash",
	Short: "Manage the registered slash commands",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		log.MustCreateLogger(log.Info, "")
	},
}

var slashRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register every slash command",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return withSession(func(dg *discordgo.Session) error {
			_, err := commands.RegisterSlashCommands(dg, dg.State.User.ID, guildID, commands.NewBot(nil).Definitions())

			return err
		})
	},
}

var slashDeleteAllCmd = &cobra.Command{
	Use:   "delete-all",
	Short: "Delete every registered slash command",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return withSession(func(dg *discordgo.Session) error {
			return commands.DeleteAllSlashCommands(dg, dg.State.User.ID, guildID)
		})
	},
}

var slashDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a single slash command by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withSession(func(dg *discordgo.Session) error {
			return commands.DeleteSpecificSlashCommand(dg, dg.State.User.ID, guildID, args[0])
		})
	},
}

var slashListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered slash commands",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withSession(func(dg *discordgo.Session) error {
			cmds, err := commands.ListSlashCommands(dg, dg.State.User.ID, guildID)
			if err != nil {
				return err
			}

			if len(cmds) == 0 {
				cmd.Println("No commands found.")

				return nil
			}

			for _, c := range cmds {
				cmd.Printf("%s (ID: %s) - %s\n", c.Name, c.ID, c.Description)
			}

			return nil
		})
	},
}

func init() {
	slashCmd.PersistentFlags().StringVar(&guildID, "guild", "", "Guild ID to manage, global commands when empty")
	slashCmd.AddCommand(slashRegisterCmd, slashDeleteAllCmd, slashDeleteCmd, slashListCmd)
	rootCmd.AddCommand(slashCmd)
}

// withSession opens a short-lived gateway connection so the application ID is known.
func withSession(fn func(dg *discordgo.Session) error) error {
	token, err := config.LoadDiscordToken()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer log.Closer(dg)

	if err := fn(dg); err != nil {
		return err
	}

	slog.Info("Done")

	return nil
}
