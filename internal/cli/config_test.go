package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mythitorium/swagrinth/pkg/errors"
	"github.com/mythitorium/swagrinth/pkg/integrations/modrinth"
)

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	want := Config{Token: "mrp_abc", BaseURL: "https://staging-api.modrinth.com/v2/", UserAgent: "pack-tool/1.0"}

	if err := saveConfig(path, want); err != nil {
		t.Fatalf("saveConfig() error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("config mode = %o, want 600", perm)
	}

	got, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if got != want {
		t.Errorf("loadConfig() = %+v, want %+v", got, want)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg != (Config{}) {
		t.Errorf("loadConfig() = %+v, want zero value", cfg)
	}

	if _, err := loadConfig(""); err != nil {
		t.Errorf("loadConfig(\"\") error: %v", err)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("token = [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := loadConfig(path)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("loadConfig() error = %v, want INVALID_CONFIG", err)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	path, err := defaultConfigPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/tmp/xdg", "swagrinth", "config.toml"); path != want {
		t.Errorf("defaultConfigPath() = %q, want %q", path, want)
	}
}

func TestResolveSettings(t *testing.T) {
	cfg := Config{Token: "from-config", BaseURL: "https://mirror.example/v2/"}

	tests := []struct {
		name       string
		flag       string
		env        map[string]string
		cfg        Config
		wantToken  string
		wantSource string
		wantURL    string
	}{
		{
			name:       "nothing set",
			wantSource: "none",
			wantURL:    modrinth.DefaultBaseURL,
		},
		{
			name:       "config only",
			cfg:        cfg,
			wantToken:  "from-config",
			wantSource: "config",
			wantURL:    "https://mirror.example/v2/",
		},
		{
			name:       "env beats config",
			cfg:        cfg,
			env:        map[string]string{envToken: "from-env", envBaseURL: "http://localhost:8080/v2/"},
			wantToken:  "from-env",
			wantSource: "env",
			wantURL:    "http://localhost:8080/v2/",
		},
		{
			name:       "flag beats env",
			flag:       "from-flag",
			cfg:        cfg,
			env:        map[string]string{envToken: "from-env"},
			wantToken:  "from-flag",
			wantSource: "flag",
			wantURL:    "https://mirror.example/v2/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getenv := func(k string) string { return tt.env[k] }
			s, err := resolveSettings(tt.flag, tt.cfg, getenv)
			if err != nil {
				t.Fatalf("resolveSettings() error: %v", err)
			}
			if s.Token != tt.wantToken || s.TokenSource != tt.wantSource {
				t.Errorf("token = %q (%s), want %q (%s)", s.Token, s.TokenSource, tt.wantToken, tt.wantSource)
			}
			if s.BaseURL != tt.wantURL {
				t.Errorf("BaseURL = %q, want %q", s.BaseURL, tt.wantURL)
			}
		})
	}
}

func TestResolveSettingsInvalidURL(t *testing.T) {
	_, err := resolveSettings("", Config{BaseURL: "ftp://nope"}, func(string) string { return "" })
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want INVALID_CONFIG", err)
	}
}
