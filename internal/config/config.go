package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// CalDAVConfig holds the remote calendar connection settings. An empty
// endpoint disables the remote calendar entirely.
type CalDAVConfig struct {
	Endpoint string `yaml:"endpoint"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	// CalendarID pins a specific collection; empty means auto-discover the
	// first calendar under the principal's home set.
	CalendarID string `yaml:"calendar_id"`
}

// Config is the top-level application configuration. Everything in here is
// machine-local; per-user scheduling options live in the database profile.
type Config struct {
	// DBPath is the SQLite database location.
	DBPath string `yaml:"db_path"`

	CalDAV CalDAVConfig `yaml:"caldav"`

	// NoColor disables ANSI styling in terminal output.
	NoColor bool `yaml:"no_color"`
}

// DefaultPath resolves the config file location: $CADENCE_CONFIG when set,
// otherwise ~/.config/cadence/config.yaml.
func DefaultPath() string {
	if p := os.Getenv("CADENCE_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".config", "cadence", "config.yaml")
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		DBPath: defaultDBPath(),
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "cadence.db"
	}
	return filepath.Join(home, ".local", "share", "cadence", "cadence.db")
}

// Normalize fills in missing values so partially-filled configs from older
// versions still behave.
func (c *Config) Normalize() {
	if c.DBPath == "" {
		c.DBPath = defaultDBPath()
	}
}

// Load reads the YAML config at path. On first run the file does not exist
// yet: a default config is written with 0600 permissions and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return &cfg, nil
}

// Save writes cfg to path atomically (temp file + rename) with 0600
// permissions, creating the parent directory when needed. The password
// field is why the tight mode matters.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".cadence-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

func (c *Config) Save(path string) error {
	return Save(path, c)
}
