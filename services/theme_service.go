package services

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/DerekRojGar/awa-AquaReminder/models"
)

// ThemeService persists the dark-mode flag (theme.json). Reads never fail:
// anything unreadable means the default light theme.
type ThemeService struct {
	dir string
}

func NewThemeService(dir string) *ThemeService {
	return &ThemeService{dir: dir}
}

func (s *ThemeService) path() string {
	return filepath.Join(s.dir, "theme.json")
}

func (s *ThemeService) Load() bool {
	data, err := os.ReadFile(s.path())
	if err != nil {
		return false
	}
	var pref models.ThemePreference
	if err := json.Unmarshal(data, &pref); err != nil {
		return false
	}
	return pref.DarkMode
}

func (s *ThemeService) Save(darkMode bool) error {
	data, err := json.MarshalIndent(models.ThemePreference{DarkMode: darkMode}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(), data, 0o644)
}

// Toggle flips and persists the preference, returning the new state.
func (s *ThemeService) Toggle() (bool, error) {
	next := !s.Load()
	if err := s.Save(next); err != nil {
		return false, err
	}
	return next, nil
}
