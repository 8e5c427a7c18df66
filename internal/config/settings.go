package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
)

// FileName is the config blob kept in the working directory.
const FileName = "ytgrab_config.json"

// Environment overrides, lower precedence than CLI flags.
const (
	EnvCookies = "YTGRAB_COOKIES"
	EnvProxy   = "YTGRAB_PROXY"
)

// File permissions for the saved config
const configFilePermissions = 0644

// Config is the small cross-run state blob. All fields are optional.
type Config struct {
	LastOutputFolder string `json:"last_output_folder,omitempty"`
	Proxy            string `json:"proxy,omitempty"`
	CookiesPath      string `json:"cookies_path,omitempty"`
}

// Load reads the config blob from path. A missing or corrupt file yields the
// zero Config together with the error, so callers can fall back to defaults
// while keeping the failure inspectable.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Save writes the config blob to path.
func Save(path string, cfg Config) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, configFilePermissions); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// ValidateProxy reports whether s looks like a usable proxy URL, i.e. has a
// scheme and a host.
func ValidateProxy(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// Overrides carries the CLI and environment values competing with the config
// file. Precedence is CLI > env > config file.
type Overrides struct {
	CookiesFlag string
	ProxyFlag   string
	CookiesEnv  string
	ProxyEnv    string
}

// ResolveCookies picks the effective cookies file path. Candidates that do not
// exist on disk are skipped.
func ResolveCookies(cfg Config, o Overrides) string {
	for _, candidate := range []string{o.CookiesFlag, o.CookiesEnv, cfg.CookiesPath} {
		if candidate == "" {
			continue
		}
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// ResolveProxy picks the effective proxy URL.
func ResolveProxy(cfg Config, o Overrides) string {
	for _, candidate := range []string{o.ProxyFlag, o.ProxyEnv, cfg.Proxy} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}
