package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

const (
	DefaultFile = "refdeck.yaml"
	envPrefix   = "REFDECK_"
)

type Config struct {
	Content   string        `yaml:"content" koanf:"content"`
	Catalogue string        `yaml:"catalogue,omitempty" koanf:"catalogue"`
	About     string        `yaml:"about,omitempty" koanf:"about"`
	DataDir   string        `yaml:"data_dir" koanf:"data_dir"`
	Watch     bool          `yaml:"watch" koanf:"watch"`
	Log       LogConfig     `yaml:"log" koanf:"log"`
	Search    SearchConfig  `yaml:"search" koanf:"search"`
	Preview   PreviewConfig `yaml:"preview" koanf:"preview"`
}

type LogConfig struct {
	Level string `yaml:"level" koanf:"level"`
	File  string `yaml:"file,omitempty" koanf:"file"`
}

type SearchConfig struct {
	Debounce time.Duration `yaml:"debounce" koanf:"debounce"`
}

// MarshalYAML keeps the debounce human readable ("200ms") in saved files.
func (s SearchConfig) MarshalYAML() (any, error) {
	return map[string]string{"debounce": s.Debounce.String()}, nil
}

type PreviewConfig struct {
	Chapters int `yaml:"chapters" koanf:"chapters"`
}

func Default() *Config {
	return &Config{
		Content: "data.json",
		DataDir: ".refdeck",
		Log:     LogConfig{Level: "info"},
		Search:  SearchConfig{Debounce: 200 * time.Millisecond},
		Preview: PreviewConfig{Chapters: 3},
	}
}

// Load starts from defaults, overlays the YAML file when it exists and then
// REFDECK_* environment variables.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("access config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load env overrides: %w", err)
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// envKey maps REFDECK_LOG_LEVEL to log.level and REFDECK_DATA_DIR to data_dir.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	for _, section := range []string{"log_", "search_", "preview_"} {
		if strings.HasPrefix(key, section) {
			return strings.Replace(key, "_", ".", 1)
		}
	}
	return key
}

func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Content) == "" {
		return fmt.Errorf("content is required")
	}
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("data_dir is required")
	}
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("invalid log.level %q: must be one of debug, info, warn, error", c.Log.Level)
	}
	if c.Search.Debounce < 0 {
		return fmt.Errorf("search.debounce must be non-negative")
	}
	if c.Preview.Chapters <= 0 {
		return fmt.Errorf("preview.chapters must be positive")
	}
	return nil
}

func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "refdeck.db")
}

func (c *Config) LogPath() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return filepath.Join(c.DataDir, "refdeck.log")
}
