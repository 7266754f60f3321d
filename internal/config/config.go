// Package config loads designer settings from a TOML file.
//
// Settings are resolved in order: built-in defaults, then the config file,
// then environment overrides (DESIGNER_STORAGE, DESIGNER_DIR). A missing
// config file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/canvasflow/designer/pkg/canvas"
	"github.com/canvasflow/designer/pkg/errors"
	"github.com/canvasflow/designer/pkg/geom"
	"github.com/canvasflow/designer/pkg/interact"
	"github.com/canvasflow/designer/pkg/layout"
	"github.com/canvasflow/designer/pkg/persist"
)

// AppName names the config and data directories.
const AppName = "designer"

// Storage backends.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendNull   = "null"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
	BackendSQLite = "sqlite"
)

// Backends lists the accepted storage backend names.
var Backends = []string{BackendFile, BackendMemory, BackendNull, BackendRedis, BackendMongo, BackendSQLite}

// Environment overrides.
const (
	EnvStorage = "DESIGNER_STORAGE"
	EnvDir     = "DESIGNER_DIR"
)

// Config holds every tunable setting.
type Config struct {
	SnapThreshold float64 `toml:"snap_threshold"`
	MinSize       float64 `toml:"min_size"`
	GroupPadding  float64 `toml:"group_padding"`
	ZoomMin       float64 `toml:"zoom_min"`
	ZoomMax       float64 `toml:"zoom_max"`

	Storage Storage `toml:"storage"`
}

// Storage selects and configures the persistence backend.
type Storage struct {
	Backend       string `toml:"backend"`
	Dir           string `toml:"dir"`
	Key           string `toml:"key"`
	Prefix        string `toml:"prefix"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	MongoURI      string `toml:"mongo_uri"`
	MongoDatabase string `toml:"mongo_database"`
	SQLitePath    string `toml:"sqlite_path"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		SnapThreshold: geom.DefaultSnapThreshold,
		MinSize:       interact.DefaultMinSize,
		GroupPadding:  layout.DefaultGroupPadding,
		ZoomMin:       canvas.MinZoom,
		ZoomMax:       canvas.MaxZoom,
		Storage: Storage{
			Backend:       BackendFile,
			Key:           persist.DefaultKey,
			RedisAddr:     "localhost:6379",
			MongoURI:      "mongodb://localhost:27017",
			MongoDatabase: AppName,
		},
	}
}

// Load reads path, or the default config file when path is empty.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err) && !explicit:
	case err != nil:
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "read config")
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
		}
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvStorage)); v != "" {
		c.Storage.Backend = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvDir)); v != "" {
		c.Storage.Dir = v
	}
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	if c.SnapThreshold < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "snap_threshold must not be negative")
	}
	if c.MinSize < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "min_size must not be negative")
	}
	if c.GroupPadding < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "group_padding must not be negative")
	}
	if c.ZoomMin <= 0 || c.ZoomMax < c.ZoomMin {
		return errors.New(errors.ErrCodeInvalidInput, "zoom bounds must satisfy 0 < zoom_min <= zoom_max")
	}
	for _, b := range Backends {
		if c.Storage.Backend == b {
			return nil
		}
	}
	return errors.New(errors.ErrCodeInvalidInput, "unknown storage backend %q (want one of %s)",
		c.Storage.Backend, strings.Join(Backends, ", "))
}

// Interaction returns the gesture settings.
func (c Config) Interaction() interact.Config {
	return interact.Config{SnapThreshold: c.SnapThreshold, MinSize: c.MinSize}
}

// DataDir returns the directory canvases are stored in by the file and
// sqlite backends.
func (c Config) DataDir() (string, error) {
	if c.Storage.Dir != "" {
		return c.Storage.Dir, nil
	}
	return dataDir()
}

// SQLitePath returns the sqlite database file.
func (c Config) SQLitePath() (string, error) {
	if c.Storage.SQLitePath != "" {
		return c.Storage.SQLitePath, nil
	}
	dir, err := c.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName+".sqlite"), nil
}

// =============================================================================
// Paths
// =============================================================================

// DefaultPath returns $XDG_CONFIG_HOME/designer/config.toml, falling back
// to ~/.config/designer/config.toml.
func DefaultPath() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}

// dataDir returns $XDG_DATA_HOME/designer, falling back to
// ~/.local/share/designer.
func dataDir() (string, error) {
	if home := os.Getenv("XDG_DATA_HOME"); home != "" {
		return filepath.Join(home, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".local", "share", AppName), nil
}
