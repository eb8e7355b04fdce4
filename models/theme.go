package models

// ThemePreference is the persisted theme document (theme.json).
type ThemePreference struct {
	DarkMode bool `json:"dark_mode"`
}
