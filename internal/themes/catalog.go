// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"
	"sync"
)

// Catalog groups the design system, color preset and theme pack registries.
type Catalog struct {
	Designs *Registry[DesignSystem]
	Presets *Registry[ThemePreset]
	Packs   *Registry[ThemePack]
}

// NewCatalog builds a catalog. The first design and first preset are the
// defaults unless entries named DefaultDesignName / DefaultPresetName exist.
func NewCatalog(designs []DesignSystem, presets []ThemePreset, packs []ThemePack) (*Catalog, error) {
	designDefault := pickDefault(designs, DesignSystem.info, DefaultDesignName)
	presetDefault := pickDefault(presets, ThemePreset.info, DefaultPresetName)

	d, err := NewRegistry(designs, DesignSystem.info, designDefault)
	if err != nil {
		return nil, fmt.Errorf("design systems: %w", err)
	}
	p, err := NewRegistry(presets, ThemePreset.info, presetDefault)
	if err != nil {
		return nil, fmt.Errorf("color presets: %w", err)
	}
	k, err := NewRegistry(packs, ThemePack.info, "")
	if err != nil {
		return nil, fmt.Errorf("theme packs: %w", err)
	}
	return &Catalog{Designs: d, Presets: p, Packs: k}, nil
}

func pickDefault[T any](entries []T, info func(T) Info, preferred string) string {
	for _, e := range entries {
		if info(e).Name == preferred {
			return preferred
		}
	}
	if len(entries) > 0 {
		return info(entries[0]).Name
	}
	return ""
}

var (
	defaultCatalog *Catalog
	defaultOnce    sync.Once
)

// Default returns the built-in catalog, constructed on first use.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := NewCatalog(builtinDesigns(), builtinPresets(), builtinPacks())
		if err != nil {
			panic(fmt.Sprintf("themes: invalid built-in catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Design returns a design system by name. Unlike presets it never falls back.
func (c *Catalog) Design(name string) (DesignSystem, error) {
	d, ok := c.Designs.Lookup(name)
	if !ok {
		return DesignSystem{}, fmt.Errorf("%w: %q", ErrUnknownDesignSystem, name)
	}
	return d, nil
}

// Preset returns a color preset by name, falling back to the default preset.
func (c *Catalog) Preset(name string) ThemePreset {
	return c.Presets.Get(name)
}

// ResolvePack looks up a pack and both of the entries it references.
func (c *Catalog) ResolvePack(name string) (ThemePack, DesignSystem, ThemePreset, error) {
	pack, ok := c.Packs.Lookup(name)
	if !ok {
		return ThemePack{}, DesignSystem{}, ThemePreset{}, fmt.Errorf("%w: %q", ErrUnknownPack, name)
	}
	design, ok := c.Designs.Lookup(pack.DesignSystem)
	if !ok {
		return ThemePack{}, DesignSystem{}, ThemePreset{}, fmt.Errorf("%w: pack %q design system %q", ErrBrokenPackReference, name, pack.DesignSystem)
	}
	preset, ok := c.Presets.Lookup(pack.ColorPreset)
	if !ok {
		return ThemePack{}, DesignSystem{}, ThemePreset{}, fmt.Errorf("%w: pack %q color preset %q", ErrBrokenPackReference, name, pack.ColorPreset)
	}
	return pack, design, preset, nil
}

// GetPreset returns a built-in preset by name with fallback to the default
func GetPreset(name string) ThemePreset {
	return Default().Presets.Get(name)
}

// ListPresets returns all built-in presets in order
func ListPresets() []Info {
	return Default().Presets.List()
}

// ListDesignSystems returns all built-in design systems in order
func ListDesignSystems() []Info {
	return Default().Designs.List()
}

// ListPacks returns all built-in theme packs in order
func ListPacks() []Info {
	return Default().Packs.List()
}
