package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Bar       lipgloss.Color
	Compare   lipgloss.Color
	Swap      lipgloss.Color
	Sorted    lipgloss.Color
	Warning   lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Primary:   lipgloss.Color("#ff00ff"),
		Secondary: lipgloss.Color("#00ffff"),
		Accent:    lipgloss.Color("#ffff00"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666666"),
		Bar:       lipgloss.Color("#00ffff"),
		Compare:   lipgloss.Color("#ffff00"),
		Swap:      lipgloss.Color("#ff00ff"),
		Sorted:    lipgloss.Color("#00ff00"),
		Warning:   lipgloss.Color("#ff8800"),
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#00ff00"),
		Secondary: lipgloss.Color("#00cc00"),
		Accent:    lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Bar:       lipgloss.Color("#00aa00"),
		Compare:   lipgloss.Color("#ffff00"),
		Swap:      lipgloss.Color("#88ff88"),
		Sorted:    lipgloss.Color("#00ff00"),
		Warning:   lipgloss.Color("#ffff00"),
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Accent:    lipgloss.Color("#0088ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Bar:       lipgloss.Color("#cccccc"),
		Compare:   lipgloss.Color("#0088ff"),
		Swap:      lipgloss.Color("#ff4444"),
		Sorted:    lipgloss.Color("#00ff00"),
		Warning:   lipgloss.Color("#ffaa00"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Primary:   lipgloss.Color("#0077be"),
		Secondary: lipgloss.Color("#00a8cc"),
		Accent:    lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Bar:       lipgloss.Color("#00a8cc"),
		Compare:   lipgloss.Color("#ffd700"),
		Swap:      lipgloss.Color("#ff4444"),
		Sorted:    lipgloss.Color("#00ff88"),
		Warning:   lipgloss.Color("#ffcc00"),
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Primary:   lipgloss.Color("#ff6b6b"),
		Secondary: lipgloss.Color("#feca57"),
		Accent:    lipgloss.Color("#ff9ff3"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Bar:       lipgloss.Color("#feca57"),
		Compare:   lipgloss.Color("#ff9ff3"),
		Swap:      lipgloss.Color("#ff4757"),
		Sorted:    lipgloss.Color("#5fd068"),
		Warning:   lipgloss.Color("#ffc048"),
	}

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to cyberpunk.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
