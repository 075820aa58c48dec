// SPDX-License-Identifier: MIT
package state

import (
	"fmt"

	"github.com/thatcatcamp/themekit/internal/themes"
)

// Manager applies theme changes to one request's session data.
// It is not safe for concurrent use.
type Manager struct {
	cat *themes.Catalog
	ctx Context
}

// NewManager returns a manager over ctx. Changes are written to a copy of
// ctx.Session; read it back with Session.
func NewManager(cat *themes.Catalog, ctx Context) *Manager {
	return &Manager{cat: cat, ctx: ctx}
}

// State resolves the current selection including pending changes
func (m *Manager) State() ThemeState {
	return Resolve(m.ctx, m.cat)
}

// Session returns the session data to persist
func (m *Manager) Session() SessionData {
	return m.ctx.Session
}

// SetTheme stores a design system choice in the session and in the pending
// cookie value. The caller writes the cookie.
func (m *Manager) SetTheme(name string) error {
	if !m.cat.Designs.Has(name) {
		return fmt.Errorf("%w: %q", themes.ErrUnknownDesignSystem, name)
	}
	m.ctx.Session.Theme = name
	m.ctx.CookieTheme = name
	return nil
}

func (m *Manager) SetPreset(name string) error {
	if !m.cat.Presets.Has(name) {
		return fmt.Errorf("%w: %q", themes.ErrUnknownColorPreset, name)
	}
	m.ctx.Session.Preset = name
	m.ctx.CookiePreset = name
	return nil
}

// SetPack stores a pack choice. The empty name clears the pack.
func (m *Manager) SetPack(name string) error {
	if name != "" {
		if _, _, _, err := m.cat.ResolvePack(name); err != nil {
			return err
		}
	}
	m.ctx.Session.Pack = name
	m.ctx.CookiePack = name
	return nil
}

func (m *Manager) SetMode(mode string) error {
	md, err := ParseMode(mode)
	if err != nil {
		return err
	}
	m.ctx.Session.Mode = string(md)
	return nil
}

// ToggleMode flips the resolved mode, so system toggles to dark.
func (m *Manager) ToggleMode() Mode {
	next := ModeDark
	if m.State().ResolvedMode == ModeDark {
		next = ModeLight
	}
	m.ctx.Session.Mode = string(next)
	return next
}

// PresetOption is a preset listing entry for pickers
type PresetOption struct {
	themes.Info
	Active       bool   `json:"is_active"`
	PrimaryLight string `json:"primary_hsl_light"`
	PrimaryDark  string `json:"primary_hsl"`
}

// AvailablePresets lists every preset, marking the one in use
func (m *Manager) AvailablePresets() []PresetOption {
	current := m.State().Preset
	presets := m.cat.Presets.All()
	out := make([]PresetOption, 0, len(presets))
	for _, p := range presets {
		out = append(out, PresetOption{
			Info:         themes.Info{Name: p.Name, DisplayName: p.DisplayName, Description: p.Description},
			Active:       p.Name == current,
			PrimaryLight: p.Light.Primary.Func(),
			PrimaryDark:  p.Dark.Primary.Func(),
		})
	}
	return out
}
