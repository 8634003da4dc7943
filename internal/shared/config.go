package shared

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Bot      BotConfig      `toml:"bot"`
	Cache    CacheConfig    `toml:"cache"`
	Database DatabaseConfig `toml:"database"`
	Delivery DeliveryConfig `toml:"delivery"`
}

// BotConfig contains Telegram credentials and channel identifiers.
type BotConfig struct {
	Token            string `toml:"token"`
	Username         string `toml:"username"`
	StorageChannelID int64  `toml:"storage_channel_id"`
	SeriesChannelID  int64  `toml:"series_channel_id"`
	AdminUserID      int64  `toml:"admin_user_id"`
}

// CacheConfig contains catalog cache and query limits.
type CacheConfig struct {
	RefreshIntervalSeconds int `toml:"refresh_interval_seconds"`
	MinQueryLength         int `toml:"min_query_length"`
	InlineResultCap        int `toml:"inline_result_cap"`
	BatchSendCap           int `toml:"batch_send_cap"`
}

// RefreshInterval returns the staleness threshold as a [time.Duration].
func (c CacheConfig) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshIntervalSeconds) * time.Second
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// DeliveryConfig contains outbound send settings.
type DeliveryConfig struct {
	RateLimit float64 `toml:"rate_limit"` // messages per second across all chats
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	// Write the embedded example config to the file
	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the settings the bot cannot start without. Channel ids
// are required to be negative: Telegram channels are addressed with
// -100-prefixed ids and a positive value means a user pasted a user id.
func (c *Config) Validate() error {
	if c.Bot.Token == "" {
		return fmt.Errorf("%w: bot.token is required", ErrMissingToken)
	}
	if c.Bot.StorageChannelID >= 0 {
		return fmt.Errorf("%w: bot.storage_channel_id must be negative, got %d", ErrInvalidConfig, c.Bot.StorageChannelID)
	}
	if c.Bot.SeriesChannelID >= 0 {
		return fmt.Errorf("%w: bot.series_channel_id must be negative, got %d", ErrInvalidConfig, c.Bot.SeriesChannelID)
	}
	if c.Cache.MinQueryLength < 1 {
		return fmt.Errorf("%w: cache.min_query_length must be at least 1", ErrInvalidConfig)
	}
	return nil
}
