// Package settings keeps the editor's preferences in a small JSON file.
package settings

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const DefaultPath = "penguin_settings.json"

type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

// ParseTheme accepts a theme name in any case.
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(s)) {
	case Dark:
		return Dark, nil
	case Light:
		return Light, nil
	}
	return "", fmt.Errorf("unknown theme %q, want %q or %q", s, Dark, Light)
}

type Settings struct {
	Theme Theme
}

func Default() Settings {
	return Settings{Theme: Dark}
}

// Load reads the settings at path. A missing file is created with the
// defaults; an unknown theme value falls back to dark.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		s := Default()
		return s, s.Save(path)
	}
	if err != nil {
		return Settings{}, fmt.Errorf("reading settings: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return Settings{}, fmt.Errorf("parsing settings %s: invalid JSON", path)
	}

	s := Default()
	if theme, err := ParseTheme(gjson.GetBytes(data, "theme").String()); err == nil {
		s.Theme = theme
	}
	return s, nil
}

// Save writes s to path. Keys other than the ones Settings knows about are
// kept.
func (s Settings) Save(path string) error {
	data, err := os.ReadFile(path)
	if err != nil || !gjson.ValidBytes(data) {
		data = []byte("{}")
	}
	data, err = sjson.SetBytes(data, "theme", string(s.Theme))
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}
