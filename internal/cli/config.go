package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/mythitorium/swagrinth/pkg/errors"
	"github.com/mythitorium/swagrinth/pkg/integrations/modrinth"
)

// Config is the on-disk configuration file.
type Config struct {
	Token     string `toml:"token,omitempty"`
	BaseURL   string `toml:"base_url,omitempty"`
	UserAgent string `toml:"user_agent,omitempty"`
}

// settings are the effective client settings after applying precedence.
type settings struct {
	Token       string
	TokenSource string // flag, env, config or none
	BaseURL     string
	UserAgent   string
}

// defaultConfigPath returns the config file path using XDG standard
// (~/.config/swagrinth/config.toml).
func defaultConfigPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidConfig, err, "locate home directory")
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads path. A missing file (or empty path) yields a zero Config.
func loadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	return cfg, nil
}

// saveConfig writes cfg to path, readable only by the owner since it holds the token.
func saveConfig(path string, cfg Config) error {
	if path == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "no config path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "create config directory")
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "open config %s", path)
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "write config %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "write config %s", path)
	}
	// OpenFile keeps the mode of an existing file.
	if err := os.Chmod(path, 0o600); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "chmod config %s", path)
	}
	return nil
}

// resolveSettings applies precedence: the --token flag beats $MODRINTH_TOKEN,
// which beats the config file. The base URL comes from $MODRINTH_API_URL,
// then the config file, then the production default.
func resolveSettings(flagToken string, cfg Config, getenv func(string) string) (settings, error) {
	s := settings{TokenSource: "none", BaseURL: modrinth.DefaultBaseURL, UserAgent: cfg.UserAgent}

	switch {
	case flagToken != "":
		s.Token, s.TokenSource = flagToken, "flag"
	case getenv(envToken) != "":
		s.Token, s.TokenSource = getenv(envToken), "env"
	case cfg.Token != "":
		s.Token, s.TokenSource = cfg.Token, "config"
	}

	switch {
	case getenv(envBaseURL) != "":
		s.BaseURL = getenv(envBaseURL)
	case cfg.BaseURL != "":
		s.BaseURL = cfg.BaseURL
	}
	if err := errors.ValidateURL(s.BaseURL); err != nil {
		return settings{}, err
	}
	return s, nil
}
