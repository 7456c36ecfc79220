package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/latoulicious/justincat/internal/log"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	BotName    = "Just In Cat"
	BotVersion = "1.0.0"
)

var (
	ErrDiscordTokenNotSet = errors.New("DISCORD_TOKEN is not set")
	ErrOwnerIDNotSet      = errors.New("OWNER_ID is not set")
	ErrInvalidTimeout     = errors.New("HTTP_TIMEOUT must be positive")
	ErrInvalidPresence    = errors.New("PRESENCE_INTERVAL must be a non-negative duration")
	ErrInvalidLogLevel    = errors.New("LOG_LEVEL must be one of debug, info, warn, error")
)

type Config struct {
	DiscordToken     string
	OwnerIDs         []string
	GuildID          string
	CataasURL        string
	HTTPTimeout      time.Duration
	PresenceInterval time.Duration
	LogLevel         log.Level
	LogFile          string
}

// LoadConfig reads the .env file when present and resolves settings from the environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("CATAAS_URL", "https://cataas.com")
	v.SetDefault("HTTP_TIMEOUT", 10*time.Second)
	v.SetDefault("PRESENCE_INTERVAL", 5*time.Minute)
	v.SetDefault("LOG_LEVEL", string(log.Info))
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("GUILD_ID", "")

	return fromViper(v)
}

// LoadDiscordToken resolves only the bot token, for tools that never check owner identity.
func LoadDiscordToken() (string, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()

	token := strings.TrimSpace(v.GetString("DISCORD_TOKEN"))
	if token == "" {
		return "", ErrDiscordTokenNotSet
	}

	return token, nil
}

func fromViper(v *viper.Viper) (*Config, error) {
	discordToken := strings.TrimSpace(v.GetString("DISCORD_TOKEN"))
	if discordToken == "" {
		return nil, ErrDiscordTokenNotSet
	}

	ownerIDs := splitIDs(v.GetString("OWNER_ID"))
	if len(ownerIDs) == 0 {
		return nil, ErrOwnerIDNotSet
	}

	timeout := v.GetDuration("HTTP_TIMEOUT")
	if timeout <= 0 {
		return nil, ErrInvalidTimeout
	}

	// Zero disables the periodic refresh, so only garbage and negative values are rejected.
	presenceInterval, errInterval := cast.ToDurationE(v.Get("PRESENCE_INTERVAL"))
	if errInterval != nil || presenceInterval < 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPresence, v.GetString("PRESENCE_INTERVAL"))
	}

	logLevel := log.Level(strings.ToLower(strings.TrimSpace(v.GetString("LOG_LEVEL"))))
	if !logLevel.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLogLevel, v.GetString("LOG_LEVEL"))
	}

	return &Config{
		DiscordToken:     discordToken,
		OwnerIDs:         ownerIDs,
		GuildID:          strings.TrimSpace(v.GetString("GUILD_ID")),
		CataasURL:        v.GetString("CATAAS_URL"),
		HTTPTimeout:      timeout,
		PresenceInterval: presenceInterval,
		LogLevel:         logLevel,
		LogFile:          v.GetString("LOG_FILE"),
	}, nil
}

func splitIDs(raw string) []string {
	var ids []string

	for _, part := range strings.Split(raw, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}

	return ids
}
