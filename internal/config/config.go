/*
Package config manages the TOML configuration for the mentions chat.
*/
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

const (
	appDir   = "mentions"
	fileName = "config.toml"
)

// Config holds the entire config structure.
type Config struct {
	Mentions MentionsConfig `toml:"mentions"`
	UI       UIConfig       `toml:"ui"`
	Log      LogConfig      `toml:"log"`
}

// MentionsConfig holds the candidate list and matching options.
type MentionsConfig struct {
	Users           []string `toml:"users"`
	CaseInsensitive bool     `toml:"case_insensitive"`
}

// UIConfig holds chat input options.
type UIConfig struct {
	Username    string `toml:"username"`
	Placeholder string `toml:"placeholder"`
	Multiline   bool   `toml:"multiline"`
	MaxRows     int    `toml:"max_rows"`
}

// LogConfig holds logging options.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// DefaultUsers is the candidate list used when none is configured.
var DefaultUsers = []string{
	"johnsmith",
	"maryjones",
	"davidmiller",
	"lindawilliams",
	"michaelbrown",
	"susanmartinez",
	"williamdavis",
	"sarahrodriguez",
	"robertmartin",
	"patriciathompson",
	"jamesanderson",
	"jenniferlee",
	"charleslopez",
	"elizabethperez",
	"richardharris",
	"mariajackson",
	"josephhernandez",
	"jessicamartinez",
	"thomasgreen",
	"nancywhite",
	"danielhall",
	"karenmiller",
	"matthewadams",
	"lindawright",
	"christopherjames",
	"elizabethmiller",
	"danieljohnson",
	"laurajohnson",
	"williamthomas",
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Mentions: MentionsConfig{
			Users: append([]string(nil), DefaultUsers...),
		},
		UI: UIConfig{
			Username:    "me",
			Placeholder: "Message @MACM",
			Multiline:   true,
			MaxRows:     17,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Dir returns $XDG_CONFIG_HOME/mentions, falling back to ~/.config/mentions.
func Dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appDir), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", appDir), nil
}

// DefaultPath returns the default config.toml location.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// Load resolves the config with priority:
// 1. customPath (must exist)
// 2. the default path, when present
// 3. builtin defaults
//
// It returns the path actually read, or "" for defaults.
func Load(customPath string) (*Config, string, error) {
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return nil, "", err
		}
		log.Debugf("Loaded config from custom path: %s", customPath)
		return cfg, customPath, nil
	}

	path, err := DefaultPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}
	cfg, err := LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), "", nil
	}
	if err != nil {
		return nil, "", err
	}
	log.Debugf("Loaded config from default path: %s", path)
	return cfg, path, nil
}

// LoadFile decodes path on top of the defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		log.Warnf("Ignoring unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate normalizes the candidate list and rejects unusable values.
func (c *Config) Validate() error {
	users := make([]string, 0, len(c.Mentions.Users))
	seen := map[string]struct{}{}
	for _, user := range c.Mentions.Users {
		user = strings.TrimPrefix(strings.TrimSpace(user), "@")
		if user == "" {
			continue
		}
		if strings.ContainsAny(user, " \t\n@") {
			return fmt.Errorf("invalid username %q", user)
		}
		if _, ok := seen[user]; ok {
			continue
		}
		seen[user] = struct{}{}
		users = append(users, user)
	}
	if len(users) == 0 {
		return errors.New("no users configured")
	}
	c.Mentions.Users = users
	if c.UI.MaxRows < 1 {
		c.UI.MaxRows = 1
	}
	return nil
}

// Save writes the config as TOML, creating parent directories.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Init writes the defaults to path unless a file is already there.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config already exists at %s", path)
	}
	return Save(DefaultConfig(), path)
}
