package presence

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/latoulicious/justincat/internal/log"
)

// StatusUpdater is the part of the Discord session that sets the bot presence.
type StatusUpdater interface {
	UpdateStatusComplex(usd discordgo.UpdateStatusData) error
}

// PresenceManager keeps the bot status in line with the number of servers it serves.
type PresenceManager struct {
	updater StatusUpdater
	guilds  func() int
}

// NewPresenceManager creates a new presence manager. guilds is sampled on every update.
func NewPresenceManager(updater StatusUpdater, guilds func() int) *PresenceManager {
	return &PresenceManager{
		updater: updater,
		guilds:  guilds,
	}
}

// StatusData builds the presence shown for the given guild count.
func StatusData(guilds int) discordgo.UpdateStatusData {
	servers := "servers"
	if guilds == 1 {
		servers = "server"
	}

	return discordgo.UpdateStatusData{
		Status: string(discordgo.StatusOnline),
		Activities: []*discordgo.Activity{
			{
				Name: "cats in " + strconv.Itoa(guilds) + " " + servers,
				Type: discordgo.ActivityTypeWatching,
			},
		},
	}
}

// UpdateDefaultPresence pushes the current server count to Discord.
func (pm *PresenceManager) UpdateDefaultPresence() {
	if err := pm.updater.UpdateStatusComplex(StatusData(pm.guilds())); err != nil {
		slog.Error("Failed to update bot presence", log.ErrAttr(err))
	}
}

// StartPeriodicUpdates refreshes the presence every interval until ctx is done.
func (pm *PresenceManager) StartPeriodicUpdates(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				pm.UpdateDefaultPresence()
			}
		}
	}()
}
