package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Gemini: GeminiConfig{APIKeys: []string{"test-key"}},
				Paths:  PathsConfig{Output: "data/output"},
			},
			wantErr: false,
		},
		{
			name:    "missing gemini key",
			config:  Config{Paths: PathsConfig{Output: "data/output"}},
			wantErr: true,
		},
		{
			name:    "missing output path",
			config:  Config{Gemini: GeminiConfig{APIKeys: []string{"test-key"}}},
			wantErr: true,
		},
		{
			name: "fallback enabled without whisper",
			config: Config{
				Gemini:   GeminiConfig{APIKeys: []string{"test-key"}},
				Paths:    PathsConfig{Output: "data/output"},
				Fallback: FallbackConfig{Enabled: true},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Gemini: GeminiConfig{APIKeys: []string{"test-key"}},
		Paths:  PathsConfig{Output: "data/output"},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %q", cfg.Gemini.Model)
	}
	if cfg.YouTube.Language != "en" {
		t.Errorf("Language = %q, want en", cfg.YouTube.Language)
	}
	if cfg.Performance.MaxConcurrent != 2 {
		t.Errorf("MaxConcurrent = %d, want 2", cfg.Performance.MaxConcurrent)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("Addr() = %q, want :8080", cfg.Addr())
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("GEMINI_API_KEYS", "key-one, key-two")
	t.Setenv("YOUTUBE_API_KEY", "yt-key")

	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
server:
  port: 9090

paths:
  inbox: data/inbox
  output: data/output

logging:
  level: "debug"

gemini:
  model: "gemini-2.5-flash"

youtube:
  language: "en"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Server.Port)
	}
	if len(cfg.Gemini.APIKeys) != 2 || cfg.Gemini.APIKeys[0] != "key-one" {
		t.Errorf("APIKeys = %v", cfg.Gemini.APIKeys)
	}
	if cfg.YouTube.APIKey != "yt-key" {
		t.Errorf("YouTube APIKey = %q", cfg.YouTube.APIKey)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q", cfg.Logging.Level)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
