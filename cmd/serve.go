package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/latoulicious/justincat/internal/commands"
	"github.com/latoulicious/justincat/internal/config"
	"github.com/latoulicious/justincat/internal/handlers"
	"github.com/latoulicious/justincat/internal/log"
	"github.com/latoulicious/justincat/internal/presence"
	"github.com/latoulicious/justincat/internal/session"
	"github.com/latoulicious/justincat/pkg/cataas"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Connect to Discord and serve slash commands",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		closer := log.MustCreateLogger(cfg.LogLevel, cfg.LogFile)
		defer closer()

		if err := serve(cmd.Context(), cfg); err != nil {
			slog.Error("Bot stopped with error", log.ErrAttr(err))

			return err
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(parent context.Context, cfg *config.Config) error {
	if parent == nil {
		parent = context.Background()
	}

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	// Create a new Discord session using the provided token
	dg, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}

	dg.UserAgent = "JustInCat (https://github.com/latoulicious/justincat, " + config.BotVersion + ")"
	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	bot := commands.NewBot(cataas.NewClient(cfg.CataasURL, cfg.HTTPTimeout))
	presenceManager := presence.NewPresenceManager(dg, func() int { return handlers.GuildCount(dg) })

	dg.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		if bot.Start(session.New(time.Now())) {
			presenceManager.StartPeriodicUpdates(ctx, cfg.PresenceInterval)
		}

		slog.Info("Logged in", slog.String("user", r.User.Username), slog.Int("guilds", len(r.Guilds)))
		presenceManager.UpdateDefaultPresence()
	})
	dg.AddHandler(handlers.NewSlashCommandHandler(ctx, bot.Commands()).Handle)
	dg.AddHandler(handlers.NewMessageHandler(cfg.OwnerIDs, stop).Handle)

	// Open a websocket connection to Discord and begin listening.
	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer log.Closer(dg)

	synced, err := commands.RegisterSlashCommands(dg, dg.State.User.ID, cfg.GuildID, bot.Definitions())
	if err != nil {
		return err
	}

	slog.Info("Synced slash commands", slog.Int("count", len(synced)))
	slog.Info("Bot is running. Press CTRL-C to exit.")

	<-ctx.Done()

	slog.Info("Shutting down")

	return nil
}
