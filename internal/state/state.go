// SPDX-License-Identifier: MIT
package state

import (
	"errors"
	"fmt"

	"github.com/thatcatcamp/themekit/internal/themes"
)

// Cookie and session names shared with the HTTP layer
const (
	CookieTheme  = "djust_theme"
	CookiePreset = "djust_theme_preset"
	CookiePack   = "djust_theme_pack"
	SessionKey   = "djust_theme"
)

// Mode is the requested color scheme
type Mode string

const (
	ModeLight  Mode = "light"
	ModeDark   Mode = "dark"
	ModeSystem Mode = "system"
)

var ErrInvalidMode = errors.New("invalid mode")

// ParseMode validates a mode name
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeLight, ModeDark, ModeSystem:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// Resolved maps system onto light
func (m Mode) Resolved() Mode {
	if m == ModeDark {
		return ModeDark
	}
	return ModeLight
}

// SessionData is the theme namespace of a user's session
type SessionData struct {
	Theme  string `json:"theme,omitempty"`
	Preset string `json:"preset,omitempty"`
	Mode   string `json:"mode,omitempty"`
	Pack   string `json:"pack,omitempty"`
}

// Defaults are the configured fallbacks
type Defaults struct {
	Theme  string
	Preset string
	Mode   string
	Pack   string
}

// DefaultDefaults returns material / default / system with no pack
func DefaultDefaults() Defaults {
	return Defaults{
		Theme:  themes.DefaultDesignName,
		Preset: themes.DefaultPresetName,
		Mode:   string(ModeSystem),
	}
}

// Context holds everything a request offers for resolution.
type Context struct {
	CookieTheme  string
	CookiePreset string
	CookiePack   string
	Session      SessionData
	Defaults     Defaults
}

// ThemeState is a fully resolved selection. Theme and Preset always name
// registered entries; Pack is empty when no pack is active.
type ThemeState struct {
	Theme        string `json:"theme"`
	Preset       string `json:"preset"`
	Mode         Mode   `json:"mode"`
	ResolvedMode Mode   `json:"resolved_mode"`
	Pack         string `json:"pack"`
}

// ETag returns the cache validator for the stylesheet of this state
func (s ThemeState) ETag() string {
	pack := s.Pack
	if pack == "" {
		pack = "none"
	}
	return fmt.Sprintf(`"%s-%s-%s-%s"`, s.Theme, s.Preset, s.Mode, pack)
}

// Resolve computes the effective theme state. For each field the first
// valid source wins: cookie, session, configured default, registry default.
// A pack whose references all resolve overrides Theme and Preset; any
// other pack is dropped. Resolve never fails.
func Resolve(ctx Context, cat *themes.Catalog) ThemeState {
	st := ThemeState{
		Theme:  firstValid(cat.Designs.Has, cat.Designs.DefaultName(), ctx.CookieTheme, ctx.Session.Theme, ctx.Defaults.Theme),
		Preset: firstValid(cat.Presets.Has, cat.Presets.DefaultName(), ctx.CookiePreset, ctx.Session.Preset, ctx.Defaults.Preset),
		Mode:   ModeSystem,
	}

	modeName := ctx.Session.Mode
	if modeName == "" {
		modeName = ctx.Defaults.Mode
	}
	if m, err := ParseMode(modeName); err == nil {
		st.Mode = m
	}
	st.ResolvedMode = st.Mode.Resolved()

	packName := firstValid(cat.Packs.Has, "", ctx.CookiePack, ctx.Session.Pack, ctx.Defaults.Pack)
	if packName != "" {
		if pack, _, _, err := cat.ResolvePack(packName); err == nil {
			st.Pack = pack.Name
			st.Theme = pack.DesignSystem
			st.Preset = pack.ColorPreset
		}
	}
	return st
}

func firstValid(valid func(string) bool, fallback string, candidates ...string) string {
	for _, c := range candidates {
		if c != "" && valid(c) {
			return c
		}
	}
	return fallback
}
