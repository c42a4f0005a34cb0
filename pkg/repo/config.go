package repo

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config stores repository-local settings.
type Config struct {
	User UserConfig `json:"user"`
}

// UserConfig is the commit identity.
type UserConfig struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DefaultConfig is the identity written at init time and used whenever no
// config file is present.
func DefaultConfig() *Config {
	return &Config{
		User: UserConfig{
			Name:  "pygit user",
			Email: "user@pygit.local",
		},
	}
}

func (r *Repo) configPath() string {
	return filepath.Join(r.PygitDir, "config")
}

// ReadConfig reads .pygit/config. A missing file yields the defaults.
func (r *Repo) ReadConfig() (*Config, error) {
	data, err := os.ReadFile(r.configPath())
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("read config: unmarshal: %w", err)
	}
	return &cfg, nil
}

// WriteConfig writes .pygit/config.
func (r *Repo) WriteConfig(cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("write config: marshal: %w", err)
	}
	if err := os.WriteFile(r.configPath(), data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Author formats the configured identity as "name <email>".
func (c *Config) Author() string {
	return fmt.Sprintf("%s <%s>", c.User.Name, c.User.Email)
}
