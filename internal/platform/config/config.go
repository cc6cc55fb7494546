package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	appName          = "trainer"
	SettingsFileName = "settings.yaml"

	DefaultDuration     = 10 * time.Second
	DefaultTickInterval = 100 * time.Millisecond
	DefaultLogLevel     = "info"
	DefaultSectionName  = "Main"
)

// SectionSettings seeds one named panel section.
type SectionSettings struct {
	Name    string `yaml:"name"`
	Buttons int    `yaml:"buttons"`
}

// Settings are the user-tunable knobs read from settings.yaml and the environment.
type Settings struct {
	Duration     time.Duration
	TickInterval time.Duration
	LogLevel     string
	Sections     []SectionSettings
}

type Config struct {
	DataDir        string
	DBPath         string
	LogPath        string
	ActiveUserPath string
	Settings       Settings
}

type yamlSettings struct {
	DurationSeconds int               `yaml:"duration_seconds"`
	TickIntervalMS  int               `yaml:"tick_interval_ms"`
	LogLevel        string            `yaml:"log_level"`
	Sections        []SectionSettings `yaml:"sections"`
}

// DefaultSettings is a ten second countdown polled every 100ms.
func DefaultSettings() Settings {
	return Settings{
		Duration:     DefaultDuration,
		TickInterval: DefaultTickInterval,
		LogLevel:     DefaultLogLevel,
		Sections:     []SectionSettings{{Name: DefaultSectionName}},
	}
}

// New resolves the data directory and loads settings. An empty dataDir falls
// back to TRAINER_DATA_DIR, then to the user config directory.
func New(dataDir string) (Config, error) {
	loadDotEnv(".env")

	if dataDir == "" {
		dataDir = os.Getenv("TRAINER_DATA_DIR")
	}
	if dataDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve user config dir: %w", err)
		}
		dataDir = filepath.Join(base, appName)
	}
	loadDotEnv(filepath.Join(dataDir, ".env"))

	settings, err := LoadSettings(filepath.Join(dataDir, SettingsFileName))
	if err != nil {
		return Config{}, err
	}
	applyEnv(&settings)

	return Config{
		DataDir:        dataDir,
		DBPath:         filepath.Join(dataDir, "trainer.db"),
		LogPath:        filepath.Join(dataDir, "trainer.log"),
		ActiveUserPath: filepath.Join(dataDir, "active-user.json"),
		Settings:       settings,
	}, nil
}

// LoadSettings reads settings.yaml. A missing file yields defaults.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(raw, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}
	applyYAML(&settings, fileData)
	return settings, nil
}

// SaveSettings writes settings back as YAML, creating the directory if needed.
func SaveSettings(path string, settings Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	fileData := yamlSettings{
		DurationSeconds: int(settings.Duration / time.Second),
		TickIntervalMS:  int(settings.TickInterval / time.Millisecond),
		LogLevel:        settings.LogLevel,
		Sections:        settings.Sections,
	}
	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}
	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

func applyYAML(settings *Settings, fileData yamlSettings) {
	if fileData.DurationSeconds > 0 {
		settings.Duration = time.Duration(fileData.DurationSeconds) * time.Second
	}
	if fileData.TickIntervalMS > 0 {
		settings.TickInterval = time.Duration(fileData.TickIntervalMS) * time.Millisecond
	}
	if level := strings.TrimSpace(fileData.LogLevel); level != "" {
		settings.LogLevel = level
	}

	var sections []SectionSettings
	for _, s := range fileData.Sections {
		if strings.TrimSpace(s.Name) == "" || s.Buttons < 0 {
			continue
		}
		sections = append(sections, s)
	}
	if len(sections) > 0 {
		settings.Sections = sections
	}
}

func applyEnv(settings *Settings) {
	if secs := envInt("TRAINER_DURATION_SECONDS"); secs > 0 {
		settings.Duration = time.Duration(secs) * time.Second
	}
	if ms := envInt("TRAINER_TICK_MS"); ms > 0 {
		settings.TickInterval = time.Duration(ms) * time.Millisecond
	}
	if level := strings.TrimSpace(os.Getenv("TRAINER_LOG_LEVEL")); level != "" {
		settings.LogLevel = level
	}
}

func envInt(key string) int {
	value, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return 0
	}
	return value
}

// loadDotEnv never overrides variables that are already set.
func loadDotEnv(path string) {
	if _, err := os.Stat(path); err == nil {
		_ = godotenv.Load(path)
	}
}
