package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Database.Path != "./callx.db" {
			t.Errorf("expected database path ./callx.db, got %s", config.Database.Path)
		}

		if config.Display.PageSize != 10 {
			t.Errorf("expected page size 10, got %d", config.Display.PageSize)
		}

		if len(config.Display.Columns) != 8 || config.Display.Columns[0] != "index" {
			t.Errorf("unexpected default columns %v", config.Display.Columns)
		}

		if config.RC.Path != "" {
			t.Errorf("expected empty rc path, got %s", config.RC.Path)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Database.Path != defaultConfig.Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[database]
path = "/custom/path.db"

[display]
columns = ["callid", "state"]
page_size = 5

[rc]
path = "/etc/callxrc"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Database.Path != "/custom/path.db" {
			t.Errorf("expected database path /custom/path.db, got %s", config.Database.Path)
		}

		if config.Display.PageSize != 5 {
			t.Errorf("expected page size 5, got %d", config.Display.PageSize)
		}

		if len(config.Display.Columns) != 2 || config.Display.Columns[1] != "state" {
			t.Errorf("unexpected columns %v", config.Display.Columns)
		}

		if config.RC.Path != "/etc/callxrc" {
			t.Errorf("expected rc path /etc/callxrc, got %s", config.RC.Path)
		}

		if config.Log.Level != "info" {
			t.Errorf("expected omitted log level to keep default info, got %s", config.Log.Level)
		}
	})

	t.Run("LoadConfig rejects bad page size", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(configPath, []byte("[display]\npage_size = 0\n"), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if _, err := LoadConfig(configPath); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("LoadConfig rejects malformed TOML", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(configPath, []byte("[display\n"), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if _, err := LoadConfig(configPath); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("LoadConfigOrDefault", func(t *testing.T) {
		config, err := LoadConfigOrDefault(filepath.Join(t.TempDir(), "absent.toml"))
		if err != nil {
			t.Fatalf("expected defaults, got error %v", err)
		}
		if config.Database.Path != "./callx.db" {
			t.Errorf("expected default database path, got %s", config.Database.Path)
		}
	})
}
