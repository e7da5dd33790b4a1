package styles

import (
	"image/color"
	"os"

	"charm.land/lipgloss/v2"

	"github.com/raphi011/rpc/internal/config"
)

// Theme defines the color palette for UI components
type Theme struct {
	Primary color.Color
	Accent  color.Color
	Success color.Color
	Error   color.Color
	Warning color.Color
	Muted   color.Color
	Normal  color.Color
}

// themeFamily groups light and dark variants of a theme
type themeFamily struct {
	Light *Theme
	Dark  *Theme
}

var (
	// DefaultTheme is the default color scheme (dark only)
	DefaultTheme = Theme{
		Primary: lipgloss.Color("62"),
		Accent:  lipgloss.Color("212"),
		Success: lipgloss.Color("82"),
		Error:   lipgloss.Color("196"),
		Warning: lipgloss.Color("214"),
		Muted:   lipgloss.Color("240"),
		Normal:  lipgloss.Color("252"),
	}

	// DraculaTheme is based on the Dracula color scheme (dark only)
	DraculaTheme = Theme{
		Primary: lipgloss.Color("#bd93f9"),
		Accent:  lipgloss.Color("#ff79c6"),
		Success: lipgloss.Color("#50fa7b"),
		Error:   lipgloss.Color("#ff5555"),
		Warning: lipgloss.Color("#ffb86c"),
		Muted:   lipgloss.Color("#6272a4"),
		Normal:  lipgloss.Color("#f8f8f2"),
	}

	// NordTheme is the dark Nord variant
	NordTheme = Theme{
		Primary: lipgloss.Color("#88c0d0"),
		Accent:  lipgloss.Color("#b48ead"),
		Success: lipgloss.Color("#a3be8c"),
		Error:   lipgloss.Color("#bf616a"),
		Warning: lipgloss.Color("#ebcb8b"),
		Muted:   lipgloss.Color("#4c566a"),
		Normal:  lipgloss.Color("#eceff4"),
	}

	// NordLightTheme is the light Nord variant
	NordLightTheme = Theme{
		Primary: lipgloss.Color("#5e81ac"),
		Accent:  lipgloss.Color("#b48ead"),
		Success: lipgloss.Color("#a3be8c"),
		Error:   lipgloss.Color("#bf616a"),
		Warning: lipgloss.Color("#d08770"),
		Muted:   lipgloss.Color("#9a9a9a"),
		Normal:  lipgloss.Color("#2e3440"),
	}

	// NoneTheme renders without colors; bold is preserved
	NoneTheme = Theme{
		Primary: lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
		Muted:   lipgloss.NoColor{},
		Normal:  lipgloss.NoColor{},
	}
)

var themeFamilies = map[string]themeFamily{
	"default": {Dark: &DefaultTheme},
	"dracula": {Dark: &DraculaTheme},
	"nord":    {Light: &NordLightTheme, Dark: &NordTheme},
	"none":    {Light: &NoneTheme, Dark: &NoneTheme},
}

var currentTheme = DefaultTheme

// Current returns the current theme
func Current() Theme {
	return currentTheme
}

// Init selects the theme and symbol set from config.
// Call this after loading config and before displaying any UI.
// The config is expected to be validated already.
func Init(cfg config.ThemeConfig) {
	isDark := func() bool {
		return lipgloss.HasDarkBackground(os.Stdin, os.Stderr)
	}
	Apply(selectTheme(cfg, isDark))
	SetNerdfont(cfg.Nerdfont)
}

// selectTheme picks the variant for cfg. isDark is only consulted in
// auto mode, since querying the terminal background is slow.
func selectTheme(cfg config.ThemeConfig, isDark func() bool) Theme {
	family, ok := themeFamilies[cfg.Name]
	if !ok {
		family = themeFamilies["default"]
	}

	var theme *Theme
	switch cfg.Mode {
	case "light":
		theme = family.Light
	case "dark":
		theme = family.Dark
	default:
		if family.Light == nil || family.Dark == nil {
			break
		}
		if isDark() {
			theme = family.Dark
		} else {
			theme = family.Light
		}
	}

	// Fall back if the requested variant doesn't exist
	if theme == nil {
		if family.Dark != nil {
			theme = family.Dark
		} else {
			theme = family.Light
		}
	}
	return *theme
}

// Apply makes t the active theme and rebuilds the global styles.
func Apply(t Theme) {
	currentTheme = t

	Primary = t.Primary
	Accent = t.Accent
	Success = t.Success
	Error = t.Error
	Warning = t.Warning
	Muted = t.Muted
	Normal = t.Normal

	PrimaryStyle = lipgloss.NewStyle().Foreground(t.Primary)
	HeadingStyle = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	AccentStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(t.Success)
	ErrorStyle = lipgloss.NewStyle().Foreground(t.Error)
	WarningStyle = lipgloss.NewStyle().Foreground(t.Warning)
	MutedStyle = lipgloss.NewStyle().Foreground(t.Muted)
	NormalStyle = lipgloss.NewStyle().Foreground(t.Normal)
}
