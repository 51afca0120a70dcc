package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/graphvis/pkg/errors"
	"github.com/matzehuels/graphvis/pkg/render/nodelink"
)

// configFileName is the file looked up in the config directory.
const configFileName = "config.toml"

// Config holds user defaults read from config.toml. Command-line flags
// take precedence over every field.
//
//	layout = "circular"
//	node_color = "#ffcc66"
//	edge_color = "black"
//	font_size = 18
type Config struct {
	Layout    string `toml:"layout"`
	NodeColor string `toml:"node_color"`
	EdgeColor string `toml:"edge_color"`
	FontSize  int    `toml:"font_size"`
}

// renderOptions converts the config into renderer options for the given layout.
func (cfg Config) renderOptions(layout string) nodelink.Options {
	return nodelink.Options{
		Layout:    layout,
		NodeColor: cfg.NodeColor,
		EdgeColor: cfg.EdgeColor,
		FontSize:  cfg.FontSize,
	}
}

// configDir returns the config directory using XDG standard (~/.config/graphvis/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// loadConfig reads the config file at path. An empty path means the default
// location, which may be absent; an explicit path must exist.
func loadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return Config{}, nil
		}
		path = filepath.Join(dir, configFileName)
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if cfg.Layout != "" {
		if err := errors.ValidateLayout(cfg.Layout); err != nil {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
	}
	if cfg.FontSize < 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "config %s: font_size must not be negative", path)
	}
	return cfg, nil
}
