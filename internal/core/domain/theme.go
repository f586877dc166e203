package domain

import (
	"errors"
	"sync"
)

// Theme is the light/dark display preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

var ErrThemeNotReady = errors.New("theme not initialised")
var ErrInvalidTheme = errors.New("invalid theme")

// ParseTheme accepts only "light" or "dark".
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), nil
	}
	return "", ErrInvalidTheme
}

// ThemeFromColorScheme maps an ambient color-scheme hint to a theme.
func ThemeFromColorScheme(hint string) Theme {
	if hint == "dark" {
		return ThemeDark
	}
	return ThemeLight
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ThemeState holds one preference. Init must resolve before Current or
// Toggle succeed, so nothing reads an assumed default.
type ThemeState struct {
	mu     sync.RWMutex
	theme  Theme
	loaded bool
}

// Init resolves the starting theme from the stored value, falling back to
// the ambient hint when nothing valid is stored. Later calls are no-ops.
func (s *ThemeState) Init(stored, ambient string) Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return s.theme
	}
	t, err := ParseTheme(stored)
	if err != nil {
		t = ThemeFromColorScheme(ambient)
	}
	s.theme = t
	s.loaded = true
	return t
}

func (s *ThemeState) Current() (Theme, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return "", ErrThemeNotReady
	}
	return s.theme, nil
}

// Toggle is the only mutation: it flips the theme and returns the new value.
func (s *ThemeState) Toggle() (Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return "", ErrThemeNotReady
	}
	s.theme = s.theme.Toggle()
	return s.theme, nil
}
