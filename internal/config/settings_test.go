package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if cfg != (Config{}) {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err == nil {
		t.Fatal("expected error for corrupt file")
	}
	if cfg != (Config{}) {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	saved := Config{
		LastOutputFolder: "Downloads/music",
		Proxy:            "socks5://127.0.0.1:1080",
		CookiesPath:      "/tmp/cookies.txt",
	}

	if err := Save(path, saved); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded != saved {
		t.Errorf("round trip mismatch: saved %+v, loaded %+v", saved, loaded)
	}
}

func TestValidateProxy(t *testing.T) {
	tests := []struct {
		name     string
		proxy    string
		expected bool
	}{
		{
			name:     "should accept http proxy",
			proxy:    "http://proxy.local:8080",
			expected: true,
		},
		{
			name:     "should accept socks5 proxy",
			proxy:    "socks5://127.0.0.1:1080",
			expected: true,
		},
		{
			name:     "should reject bare host",
			proxy:    "proxy.local:8080",
			expected: false,
		},
		{
			name:     "should reject empty string",
			proxy:    "",
			expected: false,
		},
		{
			name:     "should reject scheme without host",
			proxy:    "http://",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateProxy(tt.proxy); got != tt.expected {
				t.Errorf("ValidateProxy(%q) = %v, expected %v", tt.proxy, got, tt.expected)
			}
		})
	}
}

func TestResolveCookies(t *testing.T) {
	dir := t.TempDir()
	flagFile := filepath.Join(dir, "flag.txt")
	envFile := filepath.Join(dir, "env.txt")
	cfgFile := filepath.Join(dir, "cfg.txt")
	for _, f := range []string{flagFile, envFile, cfgFile} {
		if err := os.WriteFile(f, []byte("cookies"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	missing := filepath.Join(dir, "missing.txt")

	tests := []struct {
		name      string
		cfg       Config
		overrides Overrides
		expected  string
	}{
		{
			name:      "should prefer CLI flag",
			cfg:       Config{CookiesPath: cfgFile},
			overrides: Overrides{CookiesFlag: flagFile, CookiesEnv: envFile},
			expected:  flagFile,
		},
		{
			name:      "should fall back to environment",
			cfg:       Config{CookiesPath: cfgFile},
			overrides: Overrides{CookiesEnv: envFile},
			expected:  envFile,
		},
		{
			name:     "should fall back to config",
			cfg:      Config{CookiesPath: cfgFile},
			expected: cfgFile,
		},
		{
			name:      "should skip non-existent candidates",
			cfg:       Config{CookiesPath: cfgFile},
			overrides: Overrides{CookiesFlag: missing},
			expected:  cfgFile,
		},
		{
			name:     "should return empty when nothing usable",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveCookies(tt.cfg, tt.overrides); got != tt.expected {
				t.Errorf("ResolveCookies() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestResolveProxy(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		overrides Overrides
		expected  string
	}{
		{
			name:      "should prefer CLI flag",
			cfg:       Config{Proxy: "http://cfg"},
			overrides: Overrides{ProxyFlag: "http://flag", ProxyEnv: "http://env"},
			expected:  "http://flag",
		},
		{
			name:      "should fall back to environment",
			cfg:       Config{Proxy: "http://cfg"},
			overrides: Overrides{ProxyEnv: "http://env"},
			expected:  "http://env",
		},
		{
			name:     "should fall back to config",
			cfg:      Config{Proxy: "http://cfg"},
			expected: "http://cfg",
		},
		{
			name:     "should return empty when nothing set",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveProxy(tt.cfg, tt.overrides); got != tt.expected {
				t.Errorf("ResolveProxy() = %q, expected %q", got, tt.expected)
			}
		})
	}
}
