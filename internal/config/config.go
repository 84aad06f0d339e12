package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SpeechConfig describes the external speech pipeline collaborators.
// These are provider settings handed to the conversational driver; the core
// never interprets them beyond logging.
type SpeechConfig struct {
	STTModel          string `yaml:"stt_model"`
	TTSVoice          string `yaml:"tts_voice"`
	TTSStyle          string `yaml:"tts_style"`
	TurnDetection     string `yaml:"turn_detection"`
	VAD               bool   `yaml:"vad"`
	NoiseCancellation bool   `yaml:"noise_cancellation"`
}

type Config struct {
	Port string `yaml:"port"`

	// HistoryPath is the location of the JSON check-in log. Injected into
	// the file store constructor so tests can point it at a temp dir.
	HistoryPath string `yaml:"history_path"`

	// StorageBackend selects the history backend: "file", "memory" or "sqlite".
	StorageBackend string `yaml:"storage_backend"`
	SQLitePath     string `yaml:"sqlite_path"`

	GCPProjectID string `yaml:"gcp_project"`
	GCPLocation  string `yaml:"gcp_location"`
	ModelName    string `yaml:"model_name"`
	UseMockLLM   bool   `yaml:"use_mock_llm"`

	Speech SpeechConfig `yaml:"speech"`
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if v == "1" || v == "true" || v == "TRUE" {
		return true
	}
	return false
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "wellness_log.json"
	}
	return filepath.Join(home, ".wellness-agent", "wellness_log.json")
}

// Load reads env vars, then overlays an optional YAML file (path taken from
// WELLNESS_CONFIG or the explicit argument), and builds the config.
func Load(configFile string) (*Config, error) {
	cfg := &Config{
		Port: getEnv("WELLNESS_PORT", "8080"),

		HistoryPath:    getEnv("WELLNESS_HISTORY_PATH", defaultHistoryPath()),
		StorageBackend: getEnv("WELLNESS_STORAGE_BACKEND", "file"),
		SQLitePath:     getEnv("WELLNESS_SQLITE_PATH", ""),

		GCPProjectID: getEnv("WELLNESS_GCP_PROJECT", ""),
		GCPLocation:  getEnv("WELLNESS_GCP_LOCATION", "us-central1"),
		ModelName:    getEnv("WELLNESS_MODEL_NAME", "gemini-2.5-flash"),
		UseMockLLM:   getBoolEnv("WELLNESS_USE_MOCK_LLM", true),

		Speech: SpeechConfig{
			STTModel:          getEnv("WELLNESS_STT_MODEL", "nova-3"),
			TTSVoice:          getEnv("WELLNESS_TTS_VOICE", "en-US-natalie"),
			TTSStyle:          getEnv("WELLNESS_TTS_STYLE", "Promo"),
			TurnDetection:     getEnv("WELLNESS_TURN_DETECTION", "multilingual"),
			VAD:               getBoolEnv("WELLNESS_VAD", true),
			NoiseCancellation: getBoolEnv("WELLNESS_NOISE_CANCELLATION", true),
		},
	}

	if configFile == "" {
		configFile = os.Getenv("WELLNESS_CONFIG")
	}
	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if cfg.SQLitePath == "" {
		cfg.SQLitePath = filepath.Join(filepath.Dir(cfg.HistoryPath), "wellness.db")
	}

	if !cfg.UseMockLLM && cfg.GCPProjectID == "" {
		return nil, fmt.Errorf("WELLNESS_GCP_PROJECT must be set when the mock LLM is disabled")
	}

	return cfg, nil
}
