// SPDX-License-Identifier: MIT
package state

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thatcatcamp/themekit/internal/themes"
)

func TestResolvePrecedence(t *testing.T) {
	cat := themes.Default()
	defaults := DefaultDefaults()

	tests := []struct {
		name   string
		ctx    Context
		theme  string
		preset string
	}{
		{
			name:   "defaults only",
			ctx:    Context{Defaults: defaults},
			theme:  "material",
			preset: "default",
		},
		{
			name: "cookie beats session",
			ctx: Context{
				CookiePreset: "blue",
				Session:      SessionData{Preset: "green"},
				Defaults:     defaults,
			},
			theme:  "material",
			preset: "blue",
		},
		{
			name:   "session beats default",
			ctx:    Context{Session: SessionData{Theme: "ios", Preset: "green"}, Defaults: defaults},
			theme:  "ios",
			preset: "green",
		},
		{
			name: "invalid cookie falls through to session",
			ctx: Context{
				CookieTheme:  "bogus",
				CookiePreset: "bogus",
				Session:      SessionData{Theme: "fluent", Preset: "rose"},
				Defaults:     defaults,
			},
			theme:  "fluent",
			preset: "rose",
		},
		{
			name:   "invalid default falls back to registry default",
			ctx:    Context{Defaults: Defaults{Theme: "nope", Preset: "nope", Mode: "weird"}},
			theme:  "material",
			preset: "default",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := Resolve(tt.ctx, cat)
			assert.Equal(t, tt.theme, st.Theme)
			assert.Equal(t, tt.preset, st.Preset)
		})
	}
}

func TestResolveMode(t *testing.T) {
	cat := themes.Default()
	tests := []struct {
		session  string
		def      string
		mode     Mode
		resolved Mode
	}{
		{"", "system", ModeSystem, ModeLight},
		{"dark", "system", ModeDark, ModeDark},
		{"light", "dark", ModeLight, ModeLight},
		{"", "dark", ModeDark, ModeDark},
		{"sepia", "dark", ModeSystem, ModeLight},
		{"", "", ModeSystem, ModeLight},
	}
	for _, tt := range tests {
		t.Run(tt.session+"/"+tt.def, func(t *testing.T) {
			st := Resolve(Context{Session: SessionData{Mode: tt.session}, Defaults: Defaults{Mode: tt.def}}, cat)
			assert.Equal(t, tt.mode, st.Mode)
			assert.Equal(t, tt.resolved, st.ResolvedMode)
		})
	}
}

func TestResolvePackOverrides(t *testing.T) {
	cat := themes.Default()
	pack, ok := cat.Packs.Lookup("corporate")
	require.True(t, ok)

	st := Resolve(Context{
		CookieTheme:  "ios",
		CookiePreset: "rose",
		CookiePack:   "corporate",
		Defaults:     DefaultDefaults(),
	}, cat)
	assert.Equal(t, "corporate", st.Pack)
	assert.Equal(t, pack.DesignSystem, st.Theme)
	assert.Equal(t, pack.ColorPreset, st.Preset)

	dropped := Resolve(Context{CookieTheme: "ios", CookiePack: "nonexistent", Defaults: DefaultDefaults()}, cat)
	assert.Equal(t, "", dropped.Pack)
	assert.Equal(t, "ios", dropped.Theme)
}

func TestResolveDropsBrokenPack(t *testing.T) {
	builtin := themes.Default()
	broken := builtin.Packs.All()[0]
	broken.Name = "broken"
	broken.ColorPreset = "cyberpunk"

	cat, err := themes.NewCatalog(builtin.Designs.All(), builtin.Presets.All(), []themes.ThemePack{broken})
	require.NoError(t, err)

	st := Resolve(Context{CookiePack: "broken", CookieTheme: "dense", Defaults: DefaultDefaults()}, cat)
	assert.Equal(t, "", st.Pack)
	assert.Equal(t, "dense", st.Theme)
	assert.Equal(t, "default", st.Preset)
}

func TestETag(t *testing.T) {
	st := ThemeState{Theme: "material", Preset: "blue", Mode: ModeDark}
	assert.Equal(t, `"material-blue-dark-none"`, st.ETag())
	st.Pack = "retro"
	assert.Equal(t, `"material-blue-dark-retro"`, st.ETag())
}

func TestSelect(t *testing.T) {
	cat := themes.Default()

	design, preset, pack, err := Select(DesignColor{Design: "ios", Color: "green"}, cat)
	require.NoError(t, err)
	assert.Equal(t, "ios", design.Name)
	assert.Equal(t, "green", preset.Name)
	assert.Nil(t, pack)

	_, preset, _, err = Select(DesignColor{Design: "ios", Color: "unknown"}, cat)
	require.NoError(t, err)
	assert.Equal(t, "default", preset.Name)

	_, _, _, err = Select(DesignColor{Design: "unknown"}, cat)
	assert.True(t, errors.Is(err, themes.ErrUnknownDesignSystem))

	design, _, pack, err = Select(PackSelection{Pack: "retro"}, cat)
	require.NoError(t, err)
	require.NotNil(t, pack)
	assert.Equal(t, "retro", pack.Name)
	assert.Equal(t, pack.DesignSystem, design.Name)

	_, _, _, err = Select(PackSelection{Pack: "unknown"}, cat)
	assert.True(t, errors.Is(err, themes.ErrUnknownPack))
}

func TestStateSelection(t *testing.T) {
	assert.Equal(t, DesignColor{Design: "ios", Color: "blue"}, ThemeState{Theme: "ios", Preset: "blue"}.Selection())
	assert.Equal(t, PackSelection{Pack: "retro"}, ThemeState{Theme: "retro", Preset: "default", Pack: "retro"}.Selection())
}

func TestManager(t *testing.T) {
	cat := themes.Default()
	m := NewManager(cat, Context{Defaults: DefaultDefaults()})

	require.NoError(t, m.SetTheme("ios"))
	require.NoError(t, m.SetPreset("green"))
	assert.Equal(t, "ios", m.State().Theme)
	assert.Equal(t, "green", m.State().Preset)

	before := m.Session()
	assert.True(t, errors.Is(m.SetTheme("bogus"), themes.ErrUnknownDesignSystem))
	assert.True(t, errors.Is(m.SetPreset("bogus"), themes.ErrUnknownColorPreset))
	assert.True(t, errors.Is(m.SetPack("bogus"), themes.ErrUnknownPack))
	assert.True(t, errors.Is(m.SetMode("sepia"), ErrInvalidMode))
	assert.Equal(t, before, m.Session())

	require.NoError(t, m.SetPack("retro"))
	assert.Equal(t, "retro", m.State().Pack)
	require.NoError(t, m.SetPack(""))
	assert.Equal(t, "", m.State().Pack)
	assert.Equal(t, "ios", m.State().Theme)
}

func TestManagerToggleMode(t *testing.T) {
	m := NewManager(themes.Default(), Context{Defaults: DefaultDefaults()})

	assert.Equal(t, ModeDark, m.ToggleMode())
	assert.Equal(t, "dark", m.Session().Mode)
	assert.Equal(t, ModeLight, m.ToggleMode())
	assert.Equal(t, ModeDark, m.ToggleMode())

	require.NoError(t, m.SetMode("system"))
	assert.Equal(t, ModeDark, m.ToggleMode())
}

func TestAvailablePresets(t *testing.T) {
	m := NewManager(themes.Default(), Context{CookiePreset: "rose", Defaults: DefaultDefaults()})
	opts := m.AvailablePresets()
	require.Len(t, opts, themes.Default().Presets.Len())

	active := 0
	for _, o := range opts {
		if o.Active {
			active++
			assert.Equal(t, "rose", o.Name)
		}
		assert.Contains(t, o.PrimaryDark, "hsl(")
	}
	assert.Equal(t, 1, active)
}
