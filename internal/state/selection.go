// SPDX-License-Identifier: MIT
package state

import "github.com/thatcatcamp/themekit/internal/themes"

// Selection is either a DesignColor or a PackSelection.
type Selection interface {
	isSelection()
}

// DesignColor selects a design system and color preset directly
type DesignColor struct {
	Design string
	Color  string
}

// PackSelection selects a theme pack, which names its own design and color
type PackSelection struct {
	Pack string
}

func (DesignColor) isSelection()   {}
func (PackSelection) isSelection() {}

// Selection converts a resolved state into its selection variant
func (s ThemeState) Selection() Selection {
	if s.Pack != "" {
		return PackSelection{Pack: s.Pack}
	}
	return DesignColor{Design: s.Theme, Color: s.Preset}
}

// Select resolves a selection against the catalog. The pack result is nil
// for a DesignColor selection.
func Select(sel Selection, cat *themes.Catalog) (themes.DesignSystem, themes.ThemePreset, *themes.ThemePack, error) {
	switch s := sel.(type) {
	case PackSelection:
		pack, design, preset, err := cat.ResolvePack(s.Pack)
		if err != nil {
			return themes.DesignSystem{}, themes.ThemePreset{}, nil, err
		}
		return design, preset, &pack, nil
	case DesignColor:
		design, err := cat.Design(s.Design)
		if err != nil {
			return themes.DesignSystem{}, themes.ThemePreset{}, nil, err
		}
		return design, cat.Preset(s.Color), nil, nil
	}
	return themes.DesignSystem{}, themes.ThemePreset{}, nil, themes.ErrUnknownDesignSystem
}
