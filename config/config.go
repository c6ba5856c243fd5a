package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Config carries everything the app reads from its environment. The Gemini
// key may be empty; the food lookup then runs in its offline fallback mode.
type Config struct {
	GeminiAPIKey string `yaml:"GEMINI_API_KEY"`
	GeminiModel  string `yaml:"GEMINI_MODEL"`
	DataDir      string `yaml:"DATA_DIR"`
}

const defaultGeminiModel = "gemini-3-flash-preview"

// Load reads config.yaml when present, then overlays environment variables
// (a .env file is honored if one exists). Every source is optional.
func Load() Config {
	var cfg Config

	if data, err := os.ReadFile("config.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Printf("config: ignoring malformed config.yaml: %v", err)
			cfg = Config{}
		}
	}

	_ = godotenv.Load()

	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.GeminiAPIKey = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		cfg.GeminiModel = v
	}
	if v := os.Getenv("VITALITY_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}

	if cfg.GeminiModel == "" {
		cfg.GeminiModel = defaultGeminiModel
	}
	if cfg.DataDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.DataDir = filepath.Join(home, ".vitality")
		} else {
			cfg.DataDir = ".vitality"
		}
	}
	return cfg
}
