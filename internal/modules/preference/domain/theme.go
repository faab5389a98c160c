package domain

import (
	"fmt"
	"strings"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"

	DefaultTheme = ThemeLight
	ThemeKey     = "theme"
)

func (t Theme) Validate() error {
	switch t {
	case ThemeLight, ThemeDark:
		return nil
	default:
		return fmt.Errorf("unsupported theme %q", string(t))
	}
}

func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ParseTheme reads a stored value. Unknown values fall back to the default.
func ParseTheme(value string) Theme {
	t := Theme(strings.ToLower(strings.TrimSpace(value)))
	if t.Validate() != nil {
		return DefaultTheme
	}
	return t
}
