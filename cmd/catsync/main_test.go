package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/catsync/internal/adapters/config"
)

func TestRun(t *testing.T) {
	// Save original args
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name         string
		config       string
		args         []string
		expectedExit int
	}{
		{
			name:         "Version without config",
			args:         []string{"catsync", "version"},
			expectedExit: 0,
		},
		{
			name: "Purge with valid config",
			config: `cache_root: .cache
remote:
  base_url: http://127.0.0.1:1
  catalogs: [main]
`,
			args:         []string{"catsync", "purge"},
			expectedExit: 0,
		},
		{
			name:         "Explicit config flag",
			config:       "download:\n  tick_interval: 50ms\n",
			args:         []string{"catsync", "-c", "CONFIG", "version"},
			expectedExit: 0,
		},
		{
			name:         "Invalid config",
			config:       "remote: [\n",
			args:         []string{"catsync", "--config", "CONFIG", "version"},
			expectedExit: 1,
		},
		{
			name:         "Unknown command",
			args:         []string{"catsync", "frobnicate"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			t.Setenv(config.PathEnv, "")
			t.Chdir(tmpDir)

			configPath := filepath.Join(tmpDir, "catsync.yaml")
			if tt.config != "" {
				if err := os.WriteFile(configPath, []byte(tt.config), 0o600); err != nil {
					t.Fatalf("failed to write config: %v", err)
				}
			}

			args := append([]string(nil), tt.args...)
			for i, arg := range args {
				if arg == "CONFIG" {
					args[i] = configPath
				}
			}
			os.Args = args

			assert.Equal(t, tt.expectedExit, run())
		})
	}
}

func TestConfigFlag(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{args: nil, want: ""},
		{args: []string{"check"}, want: ""},
		{args: []string{"--config", "a.yaml", "check"}, want: "a.yaml"},
		{args: []string{"check", "-c", "b.yaml"}, want: "b.yaml"},
		{args: []string{"--config=c.yaml", "check"}, want: "c.yaml"},
		{args: []string{"-c=d.yaml"}, want: "d.yaml"},
		{args: []string{"check", "--config"}, want: ""},
		{args: []string{"load", "--", "--config", "e.yaml"}, want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, configFlag(tt.args), "%v", tt.args)
	}
}
