package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test output defaults
	if cfg.Output.Format != "gltf" {
		t.Errorf("expected format 'gltf', got %s", cfg.Output.Format)
	}
	if cfg.Output.VertexLayout != "interleaved" {
		t.Errorf("expected layout 'interleaved', got %s", cfg.Output.VertexLayout)
	}
	if !cfg.Output.Pretty {
		t.Error("expected pretty to be true by default")
	}
	if cfg.Output.Basename != "buffer" {
		t.Errorf("expected basename 'buffer', got %s", cfg.Output.Basename)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "gltftool.yaml")

	yamlContent := `
output:
  format: glb
  vertex_layout: separate
  pretty: false
  basename: scene

logging:
  level: "debug"
  log_file: "gltftool.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Load config
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Verify values were loaded
	if cfg.Output.Format != "glb" {
		t.Errorf("expected format 'glb', got %s", cfg.Output.Format)
	}
	if cfg.Output.VertexLayout != "separate" {
		t.Errorf("expected layout 'separate', got %s", cfg.Output.VertexLayout)
	}
	if cfg.Output.Pretty {
		t.Error("expected pretty to be false")
	}
	if cfg.Output.Basename != "scene" {
		t.Errorf("expected basename 'scene', got %s", cfg.Output.Basename)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "gltftool.log" {
		t.Errorf("expected log file 'gltftool.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	// Create temporary config file with invalid YAML
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
output:
  pretty: not a bool
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Try to load - should error
	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/gltftool.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Just verify it returns a non-empty path
	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	// Verify path is absolute
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	// Save current directory
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	// Create temp directory and change to it
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	// Create gltftool.yaml in current directory
	configPath := filepath.Join(tmpDir, "gltftool.yaml")
	if err := os.WriteFile(configPath, []byte("output:\n  format: glb\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	// Should find it now
	path = findConfigFile()
	if path == "" {
		t.Error("expected to find gltftool.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "format flag",
			setup: func() {
				*flagFormat = "glb"
			},
			verify: func(cfg *Config) {
				if cfg.Output.Format != "glb" {
					t.Errorf("expected format 'glb', got %s", cfg.Output.Format)
				}
			},
			teardown: func() {
				*flagFormat = ""
			},
		},
		{
			name: "layout flag",
			setup: func() {
				*flagLayout = "separate"
			},
			verify: func(cfg *Config) {
				if cfg.Output.VertexLayout != "separate" {
					t.Errorf("expected layout 'separate', got %s", cfg.Output.VertexLayout)
				}
			},
			teardown: func() {
				*flagLayout = ""
			},
		},
		{
			name: "compact flag",
			setup: func() {
				*flagCompact = true
			},
			verify: func(cfg *Config) {
				if cfg.Output.Pretty {
					t.Error("expected pretty to be false with compact flag")
				}
			},
			teardown: func() {
				*flagCompact = false
			},
		},
		{
			name: "log file flag",
			setup: func() {
				*flagLogFile = "out.log"
			},
			verify: func(cfg *Config) {
				if cfg.Logging.LogFile != "out.log" {
					t.Errorf("expected log file 'out.log', got %s", cfg.Logging.LogFile)
				}
			},
			teardown: func() {
				*flagLogFile = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			tt.setup()
			defer tt.teardown()

			// Apply flags to default config
			cfg := Default()
			applyFlags(cfg)

			// Verify
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "gltftool.yaml")

	yamlContent := `
output:
  format: glb
  vertex_layout: separate
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagFormat = "gltf"
	defer func() {
		*flagConfig = ""
		*flagFormat = ""
	}()

	// Load config
	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Format should be from flag (gltf), not file (glb)
	if cfg.Output.Format != "gltf" {
		t.Errorf("expected format 'gltf' from flag, got %s", cfg.Output.Format)
	}

	// Layout should be from file (separate) since no flag override
	if cfg.Output.VertexLayout != "separate" {
		t.Errorf("expected layout 'separate' from file, got %s", cfg.Output.VertexLayout)
	}
}
