package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/rpc/internal/storage"
	"github.com/raphi011/rpc/internal/version"
)

// Defaults
const (
	DefaultPackageName    = "run-project-commands"
	DefaultMinNodeVersion = "18.0.0"
	DefaultIssuesURL      = "https://github.com/raphi011/rpc/issues"
	DefaultLookupTimeout  = 10 * time.Second
)

// ValidThemeNames lists the built-in theme presets.
var ValidThemeNames = []string{"default", "dracula", "nord", "none"}

// ValidThemeModes lists the accepted theme modes.
var ValidThemeModes = []string{"auto", "light", "dark"}

// DoctorConfig holds settings for the doctor command
type DoctorConfig struct {
	LookupTimeout string        `toml:"lookup_timeout"` // duration string, e.g. "10s"
	Timeout       time.Duration `toml:"-"`              // parsed LookupTimeout
}

// ThemeConfig holds UI color settings
type ThemeConfig struct {
	Name     string `toml:"name"`     // preset name, see ValidThemeNames
	Mode     string `toml:"mode"`     // auto, light or dark
	Nerdfont bool   `toml:"nerdfont"` // use nerd font status icons
}

// Config holds the rpc configuration
type Config struct {
	PackageName      string       `toml:"package_name"`
	MinNodeVersion   string       `toml:"min_node_version"`
	IssuesURL        string       `toml:"issues_url"`
	AutoSelectSingle bool         `toml:"auto_select_single"`
	Doctor           DoctorConfig `toml:"doctor"`
	Theme            ThemeConfig  `toml:"theme"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		PackageName:    DefaultPackageName,
		MinNodeVersion: DefaultMinNodeVersion,
		IssuesURL:      DefaultIssuesURL,
		Doctor: DoctorConfig{
			LookupTimeout: DefaultLookupTimeout.String(),
			Timeout:       DefaultLookupTimeout,
		},
	}
}

// Path returns the path to the global config file
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "rpc", "config.toml"), nil
}

// Load reads config from ~/.config/rpc/config.toml and applies env overrides.
// Returns Default() with env overrides if the file doesn't exist.
// Returns an error if the file or an env override is invalid; the returned
// config is then still usable.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return withEnv(Default())
	}
	return LoadFrom(path)
}

// LoadFrom reads config from path and applies env overrides.
func LoadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return withEnv(Default())
		}
		return fallback(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return fallback(), fmt.Errorf("failed to parse config file: %w", err)
	}
	return withEnv(cfg)
}

// withEnv applies env overrides to cfg and validates the result.
// On error it returns Default().
func withEnv(cfg Config) (Config, error) {
	cfg = applyEnv(cfg)
	if err := cfg.normalize(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// fallback is the config used when the file cannot be read.
func fallback() Config {
	if cfg, err := withEnv(Default()); err == nil {
		return cfg
	}
	return Default()
}

// applyEnv overrides settings from RPC_* environment variables
func applyEnv(cfg Config) Config {
	if v := strings.TrimSpace(os.Getenv("RPC_PACKAGE_NAME")); v != "" {
		cfg.PackageName = v
	}
	if v := strings.TrimSpace(os.Getenv("RPC_MIN_NODE_VERSION")); v != "" {
		cfg.MinNodeVersion = v
	}
	return cfg
}

// normalize validates the config and fills derived and default values
func (c *Config) normalize() error {
	if c.PackageName == "" {
		c.PackageName = DefaultPackageName
	}
	if c.IssuesURL == "" {
		c.IssuesURL = DefaultIssuesURL
	}

	if c.MinNodeVersion == "" {
		c.MinNodeVersion = DefaultMinNodeVersion
	} else if !version.Valid(c.MinNodeVersion) {
		return fmt.Errorf("invalid min_node_version %q: must be a dotted numeric version like \"18.0.0\"", c.MinNodeVersion)
	}

	if c.Doctor.LookupTimeout == "" {
		c.Doctor.LookupTimeout = DefaultLookupTimeout.String()
	}
	d, err := time.ParseDuration(c.Doctor.LookupTimeout)
	if err != nil {
		return fmt.Errorf("invalid doctor.lookup_timeout %q: %w", c.Doctor.LookupTimeout, err)
	}
	if d <= 0 {
		return fmt.Errorf("invalid doctor.lookup_timeout %q: must be positive", c.Doctor.LookupTimeout)
	}
	c.Doctor.Timeout = d

	if c.Theme.Name != "" && !slices.Contains(ValidThemeNames, c.Theme.Name) {
		return fmt.Errorf("invalid theme.name %q: must be one of %s", c.Theme.Name, strings.Join(ValidThemeNames, ", "))
	}
	if c.Theme.Mode != "" && !slices.Contains(ValidThemeModes, c.Theme.Mode) {
		return fmt.Errorf("invalid theme.mode %q: must be one of %s", c.Theme.Mode, strings.Join(ValidThemeModes, ", "))
	}

	return nil
}

const defaultConfig = `# rpc configuration

# Package name of rpc on the npm registry, used by "rpc doctor" to check
# for updates and global installation
# package_name = "run-project-commands"

# Minimum Node.js version "rpc doctor" expects
# min_node_version = "18.0.0"

# Where "rpc doctor" tells you to report issues
# issues_url = "https://github.com/raphi011/rpc/issues"

# Run the only script without asking when package.json defines exactly one
# auto_select_single = false

# [doctor]
# lookup_timeout = "10s"  # max time for each npm/node lookup

# [theme]
# name = "default"  # default, dracula, nord, none
# mode = "auto"     # auto, light, dark
# nerdfont = false  # use nerd font status icons
`

// DefaultFileContent returns the commented default config file.
func DefaultFileContent() string {
	return defaultConfig
}

// ErrExists is returned by Init when the config file exists and force is false.
var ErrExists = errors.New("config file already exists")

// Init creates a default config file at ~/.config/rpc/config.toml
// If force is true, overwrites existing file
// Returns the path to the created file
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}
	return path, InitAt(path, force)
}

// InitAt writes the default config file to path.
func InitAt(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrExists, path)
		}
	}
	return storage.WriteFileAtomic(path, []byte(defaultConfig), 0o644)
}

type ctxKey struct{}

type workDirKey struct{}

// WithConfig attaches the config to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext retrieves the config from context.
// Returns nil if none is attached.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return cfg
	}
	return nil
}

// WithWorkDir attaches the working directory to the context.
func WithWorkDir(ctx context.Context, dir string) context.Context {
	return context.WithValue(ctx, workDirKey{}, dir)
}

// WorkDirFromContext returns the working directory from context,
// falling back to os.Getwd.
func WorkDirFromContext(ctx context.Context) string {
	if dir, ok := ctx.Value(workDirKey{}).(string); ok && dir != "" {
		return dir
	}
	wd, _ := os.Getwd()
	return wd
}
