package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/young1lin/cellgrid/internal/border"
	"github.com/young1lin/cellgrid/internal/layout"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig() returned nil")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig() is invalid: %v", err)
	}
	if cfg.BorderWeight() != border.Light {
		t.Errorf("Default border should be light, got %v", cfg.BorderWeight())
	}
	if cfg.TextAlignment() != layout.AlignDefault {
		t.Errorf("Default alignment should be default, got %v", cfg.TextAlignment())
	}
	if cfg.MaxSpan() != layout.DefaultMaxSpan {
		t.Errorf("Default MaxSpan should be %d, got %d", layout.DefaultMaxSpan, cfg.MaxSpan())
	}
	if cfg.MaxSize() != layout.DefaultMaxSize {
		t.Errorf("Default MaxSize should be %d, got %d", layout.DefaultMaxSize, cfg.MaxSize())
	}
	if cfg.PollInterval() != 500*time.Millisecond {
		t.Errorf("Default PollInterval should be 500ms, got %s", cfg.PollInterval())
	}
	if cfg.Source != "" {
		t.Errorf("Default Source should be empty, got %q", cfg.Source)
	}
}

func TestLoadFile(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		name       string
		configYAML string
		wantBorder border.Weight
		wantAlign  layout.Alignment
		wantPad    int
		wantSpan   int
		wantSize   int
		wantPoll   time.Duration
		wantErr    string
	}{
		{
			name: "valid minimal config",
			configYAML: `
defaults:
  border: heavy
`,
			wantBorder: border.Heavy,
			wantAlign:  layout.AlignDefault,
			wantSpan:   layout.DefaultMaxSpan,
			wantSize:   layout.DefaultMaxSize,
			wantPoll:   500 * time.Millisecond,
		},
		{
			name: "valid full config",
			configYAML: `
defaults:
  border: none
  alignment: right
  padding: 2
layout:
  maxSpan: 128
  maxSize: 200
store:
  path: /tmp/layouts.db
watch:
  pollInterval: 2s
`,
			wantBorder: border.None,
			wantAlign:  layout.AlignRight,
			wantPad:    2,
			wantSpan:   128,
			wantSize:   200,
			wantPoll:   2 * time.Second,
		},
		{
			name:       "empty config uses defaults",
			configYAML: `{}`,
			wantBorder: border.Light,
			wantAlign:  layout.AlignDefault,
			wantSpan:   layout.DefaultMaxSpan,
			wantSize:   layout.DefaultMaxSize,
			wantPoll:   500 * time.Millisecond,
		},
		{
			name: "invalid border",
			configYAML: `
defaults:
  border: double
`,
			wantErr: "defaults.border",
		},
		{
			name: "invalid alignment",
			configYAML: `
defaults:
  alignment: justify
`,
			wantErr: "defaults.alignment",
		},
		{
			name: "negative padding",
			configYAML: `
defaults:
  padding: -1
`,
			wantErr: "defaults.padding",
		},
		{
			name: "negative span cap",
			configYAML: `
layout:
  maxSpan: -5
`,
			wantErr: "layout.maxSpan",
		},
		{
			name: "negative size cap",
			configYAML: `
layout:
  maxSize: -1
`,
			wantErr: "layout.maxSize",
		},
		{
			name: "padding past the size cap",
			configYAML: `
defaults:
  padding: 50
layout:
  maxSize: 40
`,
			wantErr: "defaults.padding: must not exceed 40",
		},
		{
			name:       "malformed yaml",
			configYAML: "defaults: [",
			wantErr:    "failed to parse config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(tempDir, strings.ReplaceAll(tt.name, " ", "_")+".yaml")
			if err := os.WriteFile(configPath, []byte(tt.configYAML), 0644); err != nil {
				t.Fatal(err)
			}

			cfg, err := loadFile(configPath)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("loadFile() error = %v, want error containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("loadFile() error = %v", err)
			}

			if cfg.BorderWeight() != tt.wantBorder {
				t.Errorf("BorderWeight() = %v, want %v", cfg.BorderWeight(), tt.wantBorder)
			}
			if cfg.TextAlignment() != tt.wantAlign {
				t.Errorf("TextAlignment() = %v, want %v", cfg.TextAlignment(), tt.wantAlign)
			}
			if cfg.Defaults.Padding != tt.wantPad {
				t.Errorf("Padding = %d, want %d", cfg.Defaults.Padding, tt.wantPad)
			}
			if cfg.MaxSpan() != tt.wantSpan {
				t.Errorf("MaxSpan() = %d, want %d", cfg.MaxSpan(), tt.wantSpan)
			}
			if cfg.MaxSize() != tt.wantSize {
				t.Errorf("MaxSize() = %d, want %d", cfg.MaxSize(), tt.wantSize)
			}
			if cfg.PollInterval() != tt.wantPoll {
				t.Errorf("PollInterval() = %s, want %s", cfg.PollInterval(), tt.wantPoll)
			}
			if cfg.Source != configPath {
				t.Errorf("Source = %q, want %q", cfg.Source, configPath)
			}
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tempHome := t.TempDir()
	tempProject := t.TempDir()
	env := Env{GOOS: "linux", Home: tempHome}

	// Nothing on disk: built-in defaults
	cfg, err := LoadEnv(tempProject, env)
	if err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}
	if cfg.Source != "" {
		t.Errorf("expected defaults, got config from %s", cfg.Source)
	}

	// User config
	userDir := filepath.Join(tempHome, ".config", "cellgrid")
	if err := os.MkdirAll(userDir, 0755); err != nil {
		t.Fatal(err)
	}
	userConfig := filepath.Join(userDir, "cellgrid.yaml")
	if err := os.WriteFile(userConfig, []byte("defaults:\n  border: block\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadEnv(tempProject, env)
	if err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}
	if cfg.BorderWeight() != border.Block || cfg.Source != userConfig {
		t.Errorf("expected user config, got border %v from %q", cfg.BorderWeight(), cfg.Source)
	}

	// Project config wins over user config
	projectConfig := ProjectConfigPath(tempProject)
	if err := os.MkdirAll(filepath.Dir(projectConfig), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(projectConfig, []byte("defaults:\n  border: heavy\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadEnv(tempProject, env)
	if err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}
	if cfg.BorderWeight() != border.Heavy || cfg.Source != projectConfig {
		t.Errorf("expected project config, got border %v from %q", cfg.BorderWeight(), cfg.Source)
	}
}

func TestStorePath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Store.Path = "/data/layouts.db"
	if got := cfg.StorePath(); got != "/data/layouts.db" {
		t.Errorf("StorePath() = %q", got)
	}

	cfg.Store.Path = ""
	if got := cfg.StorePath(); !strings.HasSuffix(got, "layouts.db") {
		t.Errorf("StorePath() = %q, want default database path", got)
	}
}
