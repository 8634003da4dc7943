package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig has sane limits", func(t *testing.T) {
		config := DefaultConfig()

		if config.Cache.RefreshInterval() != 300*time.Second {
			t.Errorf("expected 300s refresh interval, got %v", config.Cache.RefreshInterval())
		}
		if config.Cache.MinQueryLength != 2 {
			t.Errorf("expected min query length 2, got %d", config.Cache.MinQueryLength)
		}
		if config.Cache.InlineResultCap != 50 {
			t.Errorf("expected inline cap 50, got %d", config.Cache.InlineResultCap)
		}
		if config.Cache.BatchSendCap != 10 {
			t.Errorf("expected batch cap 10, got %d", config.Cache.BatchSendCap)
		}
		if config.Database.Path == "" {
			t.Error("expected a default database path")
		}
	})

	t.Run("LoadConfig parses a TOML file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
[bot]
token = "123:abc"
storage_channel_id = -1001234

[cache]
refresh_interval_seconds = 60
min_query_length = 3

[database]
path = "test.db"
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}
		if config.Bot.Token != "123:abc" {
			t.Errorf("unexpected token: %q", config.Bot.Token)
		}
		if config.Bot.StorageChannelID != -1001234 {
			t.Errorf("unexpected storage channel: %d", config.Bot.StorageChannelID)
		}
		if config.Cache.RefreshInterval() != time.Minute {
			t.Errorf("unexpected refresh interval: %v", config.Cache.RefreshInterval())
		}
		if config.Database.Path != "test.db" {
			t.Errorf("unexpected database path: %q", config.Database.Path)
		}
	})

	t.Run("LoadConfig missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Fatal("expected error for missing file")
		}
	})

	t.Run("CreateConfigFile writes a loadable template", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := CreateConfigFile(path); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}
		if config.Cache.RefreshIntervalSeconds != 300 {
			t.Errorf("unexpected template refresh interval: %d", config.Cache.RefreshIntervalSeconds)
		}
	})

	t.Run("CreateConfigFile refuses to overwrite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("existing"), 0644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		if err := CreateConfigFile(path); err == nil {
			t.Fatal("expected error when config already exists")
		}
	})

	t.Run("Validate requires a token", func(t *testing.T) {
		config := DefaultConfig()
		config.Bot.StorageChannelID = -1001234

		if err := config.Validate(); !errors.Is(err, ErrMissingToken) {
			t.Errorf("expected ErrMissingToken, got %v", err)
		}

		config.Bot.Token = "123:abc"
		if err := config.Validate(); err != nil {
			t.Errorf("expected valid config, got %v", err)
		}
	})
}

func TestGenerateID(t *testing.T) {
	a := GenerateID()
	b := GenerateID()
	if a == "" || a == b {
		t.Errorf("expected distinct non-empty ids, got %q and %q", a, b)
	}
}

func TestMarshalJSON(t *testing.T) {
	data := map[string]int{"count": 3}

	compact, err := MarshalJSON(data, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(compact) != `{"count":3}` {
		t.Errorf("unexpected compact output: %s", compact)
	}

	pretty, err := MarshalJSON(data, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pretty) <= len(compact) {
		t.Error("expected pretty output to be longer")
	}
}
