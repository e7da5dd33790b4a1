package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.PackageName != DefaultPackageName {
		t.Errorf("PackageName = %q, want %q", cfg.PackageName, DefaultPackageName)
	}
	if cfg.MinNodeVersion != DefaultMinNodeVersion {
		t.Errorf("MinNodeVersion = %q, want %q", cfg.MinNodeVersion, DefaultMinNodeVersion)
	}
	if cfg.Doctor.Timeout != DefaultLookupTimeout {
		t.Errorf("Doctor.Timeout = %v, want %v", cfg.Doctor.Timeout, DefaultLookupTimeout)
	}
	if cfg.AutoSelectSingle {
		t.Error("AutoSelectSingle should default to false")
	}
}

func TestLoadFrom_Missing(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom(missing) error = %v, want nil", err)
	}
	if cfg.PackageName != DefaultPackageName {
		t.Errorf("PackageName = %q, want default", cfg.PackageName)
	}
}

func TestLoadFrom_Values(t *testing.T) {
	path := writeConfig(t, `
package_name = "@acme/rpc"
min_node_version = "20.10"
auto_select_single = true

[doctor]
lookup_timeout = "3s"

[theme]
name = "nord"
mode = "dark"
`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.PackageName != "@acme/rpc" {
		t.Errorf("PackageName = %q, want %q", cfg.PackageName, "@acme/rpc")
	}
	if cfg.MinNodeVersion != "20.10" {
		t.Errorf("MinNodeVersion = %q, want %q", cfg.MinNodeVersion, "20.10")
	}
	if !cfg.AutoSelectSingle {
		t.Error("AutoSelectSingle = false, want true")
	}
	if cfg.Doctor.Timeout != 3*time.Second {
		t.Errorf("Doctor.Timeout = %v, want 3s", cfg.Doctor.Timeout)
	}
	if cfg.Theme.Name != "nord" || cfg.Theme.Mode != "dark" {
		t.Errorf("Theme = %+v, want nord/dark", cfg.Theme)
	}
	if cfg.IssuesURL != DefaultIssuesURL {
		t.Errorf("IssuesURL = %q, want default", cfg.IssuesURL)
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad toml", `package_name = `, "failed to parse"},
		{"bad node version", `min_node_version = "latest"`, "min_node_version"},
		{"bad timeout", "[doctor]\nlookup_timeout = \"soon\"", "lookup_timeout"},
		{"negative timeout", "[doctor]\nlookup_timeout = \"-1s\"", "must be positive"},
		{"bad theme", "[theme]\nname = \"neon\"", "theme.name"},
		{"bad mode", "[theme]\nmode = \"dim\"", "theme.mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFrom(writeConfig(t, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("LoadFrom() error = %v, want containing %q", err, tt.wantErr)
			}
			// Defaults are still usable
			if cfg.PackageName != DefaultPackageName {
				t.Errorf("PackageName = %q, want default after error", cfg.PackageName)
			}
		})
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	t.Setenv("RPC_PACKAGE_NAME", "rpc-fork")
	t.Setenv("RPC_MIN_NODE_VERSION", "22.0.0")

	cfg, err := LoadFrom(writeConfig(t, `package_name = "from-file"`))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.PackageName != "rpc-fork" {
		t.Errorf("PackageName = %q, want env override", cfg.PackageName)
	}
	if cfg.MinNodeVersion != "22.0.0" {
		t.Errorf("MinNodeVersion = %q, want env override", cfg.MinNodeVersion)
	}
}

func TestLoadFrom_InvalidEnvOverride(t *testing.T) {
	t.Setenv("RPC_MIN_NODE_VERSION", "abc")

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(t.TempDir(), "nope.toml")},
		{"valid file", writeConfig(t, `package_name = "from-file"`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFrom(tt.path)
			if err == nil || !strings.Contains(err.Error(), "min_node_version") {
				t.Fatalf("LoadFrom() error = %v, want invalid min_node_version", err)
			}
			if cfg.MinNodeVersion != DefaultMinNodeVersion {
				t.Errorf("MinNodeVersion = %q, want default after error", cfg.MinNodeVersion)
			}
		})
	}
}

func TestLoad_InvalidEnvWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("RPC_MIN_NODE_VERSION", "abc")

	cfg, err := Load()
	if err == nil {
		t.Fatal("Load() error = nil, want invalid min_node_version")
	}
	if cfg.MinNodeVersion != DefaultMinNodeVersion {
		t.Errorf("MinNodeVersion = %q, want default", cfg.MinNodeVersion)
	}
}

func TestLoad_UsesHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "rpc")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`issues_url = "https://example.com/issues"`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.IssuesURL != "https://example.com/issues" {
		t.Errorf("IssuesURL = %q, want value from home config", cfg.IssuesURL)
	}
}

func TestDefaultFileContent_IsValidTOML(t *testing.T) {
	var cfg Config
	if _, err := toml.Decode(DefaultFileContent(), &cfg); err != nil {
		t.Errorf("default config is not valid TOML: %v", err)
	}
}

func TestInitAt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rpc", "config.toml")

	if err := InitAt(path, false); err != nil {
		t.Fatalf("InitAt() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config not written: %v", err)
	}
	if string(data) != DefaultFileContent() {
		t.Error("written config does not match default content")
	}

	if err := InitAt(path, false); !errors.Is(err, ErrExists) {
		t.Errorf("InitAt() on existing file error = %v, want ErrExists", err)
	}
	if err := InitAt(path, true); err != nil {
		t.Errorf("InitAt(force) error = %v, want nil", err)
	}
}

func TestWithConfig_FromContext(t *testing.T) {
	t.Parallel()

	cfg := &Config{PackageName: "x"}
	if got := FromContext(WithConfig(context.Background(), cfg)); got != cfg {
		t.Error("FromContext did not return the stored config")
	}
	if got := FromContext(context.Background()); got != nil {
		t.Errorf("FromContext on empty context = %v, want nil", got)
	}
}

func TestWithWorkDir_FromContext(t *testing.T) {
	t.Parallel()

	if got := WorkDirFromContext(WithWorkDir(context.Background(), "/custom/path")); got != "/custom/path" {
		t.Errorf("WorkDirFromContext = %q, want %q", got, "/custom/path")
	}

	wd, _ := os.Getwd()
	if got := WorkDirFromContext(context.Background()); got != wd {
		t.Errorf("WorkDirFromContext = %q, want %q (os.Getwd)", got, wd)
	}
}
