package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	YouTube     YouTubeConfig     `yaml:"youtube"`
	Performance PerformanceConfig `yaml:"performance"`
	Batch       BatchConfig       `yaml:"batch"`
	Fallback    FallbackConfig    `yaml:"fallback"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type PathsConfig struct {
	Inbox    string `yaml:"inbox"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type GeminiConfig struct {
	Model   string   `yaml:"model"`
	APIKeys []string `yaml:"-"` // from GEMINI_API_KEYS / GOOGLE_API_KEY
}

type YouTubeConfig struct {
	Language string `yaml:"language"`
	APIKey   string `yaml:"-"` // from YOUTUBE_API_KEY
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type BatchConfig struct {
	Style string `yaml:"style"`
}

type FallbackConfig struct {
	Enabled     bool   `yaml:"enabled"`
	YtDlpPath   string `yaml:"ytdlp_path"`
	WhisperPath string `yaml:"whisper_path"`
	ModelPath   string `yaml:"model_path"`
	Threads     int    `yaml:"threads"`
}

// Load reads the YAML config file, merges secrets from the environment
// (a .env file is honored when present), and applies defaults.
func Load(path string) (*Config, error) {
	// Missing .env is fine; real deployments use actual env vars.
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.Gemini.APIKeys = geminiKeysFromEnv()
	cfg.YouTube.APIKey = os.Getenv("YOUTUBE_API_KEY")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func geminiKeysFromEnv() []string {
	raw := os.Getenv("GEMINI_API_KEYS")
	if raw == "" {
		raw = os.Getenv("GOOGLE_API_KEY")
	}

	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

func (c *Config) Validate() error {
	if len(c.Gemini.APIKeys) == 0 {
		return fmt.Errorf("no Gemini API key (set GEMINI_API_KEYS or GOOGLE_API_KEY)")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}
	if c.Fallback.Enabled {
		if c.Fallback.WhisperPath == "" {
			return fmt.Errorf("fallback.whisper_path is required when fallback is enabled")
		}
		if c.Fallback.ModelPath == "" {
			return fmt.Errorf("fallback.model_path is required when fallback is enabled")
		}
	}

	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Paths.Inbox == "" {
		c.Paths.Inbox = "data/inbox"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.YouTube.Language == "" {
		c.YouTube.Language = "en"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Batch.Style == "" {
		c.Batch.Style = "detailed"
	}
	if c.Fallback.YtDlpPath == "" {
		c.Fallback.YtDlpPath = "yt-dlp"
	}
	if c.Fallback.Threads == 0 {
		c.Fallback.Threads = 4
	}

	return nil
}

// Addr is the host:port the HTTP server binds to.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
