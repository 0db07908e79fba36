package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name    string
	Alive   lipgloss.Color
	Dead    lipgloss.Color
	Cursor  lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
}

var (
	ThemeMoss = Theme{
		Name:    "moss",
		Alive:   lipgloss.Color("#7bd88f"),
		Dead:    lipgloss.Color("#2a332b"),
		Cursor:  lipgloss.Color("#ffd866"),
		Accent:  lipgloss.Color("#78dce8"),
		Text:    lipgloss.Color("#fcfcfa"),
		Muted:   lipgloss.Color("#727072"),
		Success: lipgloss.Color("#a9dc76"),
		Warning: lipgloss.Color("#fc9867"),
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Alive:   lipgloss.Color("#00ff00"), // Green phosphor
		Dead:    lipgloss.Color("#003300"),
		Cursor:  lipgloss.Color("#88ff88"),
		Accent:  lipgloss.Color("#00cc00"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#005500"),
		Success: lipgloss.Color("#88ff88"),
		Warning: lipgloss.Color("#ffff00"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Alive:   lipgloss.Color("#ffffff"),
		Dead:    lipgloss.Color("#303030"),
		Cursor:  lipgloss.Color("#0088ff"),
		Accent:  lipgloss.Color("#cccccc"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Success: lipgloss.Color("#00ff00"),
		Warning: lipgloss.Color("#ffaa00"),
	}

	ThemeSunset = Theme{
		Name:    "sunset",
		Alive:   lipgloss.Color("#ff6b6b"), // Coral
		Dead:    lipgloss.Color("#3d2b3e"),
		Cursor:  lipgloss.Color("#feca57"),
		Accent:  lipgloss.Color("#ff9ff3"),
		Text:    lipgloss.Color("#fff5f5"),
		Muted:   lipgloss.Color("#8b6b8c"),
		Success: lipgloss.Color("#5fd068"),
		Warning: lipgloss.Color("#ffc048"),
	}

	Themes = []Theme{
		ThemeMoss,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to the first theme.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Themes[0]
}

// NextTheme returns the theme after the named one, wrapping around.
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
