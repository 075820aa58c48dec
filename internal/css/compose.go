// SPDX-License-Identifier: MIT
package css

import (
	"fmt"
	"strings"

	"github.com/thatcatcamp/themekit/internal/themes"
)

// BaseStylesMarker opens the base style section. The bundle builder splits on it.
const BaseStylesMarker = "/* Design System Styles */"

// Options controls which optional sections Compose emits
type Options struct {
	IncludeBaseStyles bool
	IncludeUtilities  bool
	Pack              *themes.ThemePack
}

// DefaultOptions includes base styles and utilities without a pack
func DefaultOptions() Options {
	return Options{IncludeBaseStyles: true, IncludeUtilities: true}
}

// Compose renders the stylesheet for a design system and color preset.
// Output is deterministic: the same inputs always give identical bytes.
//
// Section order:
//  1. :root with design variables and light colors
//  2. .dark / [data-theme="dark"] with dark colors
//  3. prefers-color-scheme: dark, guarded against an explicit light choice
//  4. base styles (optional)
//  5. utility classes (optional)
//  6. pack blocks (when a pack is set)
func Compose(design themes.DesignSystem, preset themes.ThemePreset, opts Options) string {
	sections := []string{
		"/* themekit - Design System CSS */\n" +
			fmt.Sprintf("/* Design System: %s */\n", design.Name) +
			fmt.Sprintf("/* Color Preset: %s */", preset.Name),
		Variables(design, preset),
	}
	if s := Styles(opts.IncludeBaseStyles, opts.IncludeUtilities); s != "" {
		sections = append(sections, s)
	}
	if opts.Pack != nil {
		sections = append(sections, PackCSS(*opts.Pack))
	}
	return strings.Join(sections, "\n\n") + "\n"
}

// ComposeNamed looks both names up in the catalog before composing. An
// unknown design system is an error; an unknown preset falls back to the default.
func ComposeNamed(cat *themes.Catalog, designName, presetName string, opts Options) (string, error) {
	design, err := cat.Design(designName)
	if err != nil {
		return "", err
	}
	return Compose(design, cat.Preset(presetName), opts), nil
}

// ComposePack composes the design system and preset a pack references plus its pack blocks.
func ComposePack(cat *themes.Catalog, packName string, opts Options) (string, error) {
	pack, design, preset, err := cat.ResolvePack(packName)
	if err != nil {
		return "", err
	}
	opts.Pack = &pack
	return Compose(design, preset, opts), nil
}

// Variables renders sections 1-3: the custom property blocks only.
func Variables(design themes.DesignSystem, preset themes.ThemePreset) string {
	return strings.Join([]string{
		rootBlock(design, preset.Light),
		darkBlock(preset.Dark),
		systemPreferenceBlock(preset.Dark),
	}, "\n\n")
}

func rootBlock(design themes.DesignSystem, light themes.ThemeTokens) string {
	return designBlock(":root", design, light)
}

func designBlock(selector string, design themes.DesignSystem, light themes.ThemeTokens) string {
	var b strings.Builder
	w := declWriter{b: &b, indent: "  "}

	b.WriteString(selector + " {\n")
	writeTypography(w, design.Typography)
	w.blank()
	writeLayout(w, design.Layout)
	w.blank()
	writeSurface(w, design.Surface)
	w.blank()
	writeAnimation(w, design.Animation, design.Interaction)
	w.blank()
	writeColors(w, light)
	b.WriteString("}")
	return b.String()
}

func darkBlock(dark themes.ThemeTokens) string {
	return colorBlock(".dark,\n[data-theme=\"dark\"]", dark)
}

func colorBlock(selector string, t themes.ThemeTokens) string {
	var b strings.Builder
	b.WriteString(selector + " {\n")
	writeColors(declWriter{b: &b, indent: "  "}, t)
	b.WriteString("}")
	return b.String()
}

func systemPreferenceBlock(dark themes.ThemeTokens) string {
	return mediaDarkBlock(":root:not([data-theme=\"light\"])", dark)
}

func mediaDarkBlock(selector string, dark themes.ThemeTokens) string {
	var b strings.Builder
	b.WriteString("@media (prefers-color-scheme: dark) {\n  " + selector + " {\n")
	writeColors(declWriter{b: &b, indent: "    "}, dark)
	b.WriteString("  }\n}")
	return b.String()
}

// ScopedVariables renders the custom property blocks under selector instead
// of :root. Dark colors apply when the element or an ancestor has the dark
// class, or when the system prefers dark and neither carries the light class.
func ScopedVariables(selector string, design themes.DesignSystem, preset themes.ThemePreset) string {
	return strings.Join([]string{
		designBlock(selector, design, preset.Light),
		colorBlock(selector+".dark,\n.dark "+selector, preset.Dark),
		mediaDarkBlock(selector+":not(.light):not(.light *)", preset.Dark),
	}, "\n\n")
}

// PresetCSS renders a color-only stylesheet for a preset, with --radius
// taken from the tokens instead of a design system.
func PresetCSS(preset themes.ThemePreset) string {
	var b strings.Builder
	fmt.Fprintf(&b, "/* themekit - Color Preset: %s */\n\n", preset.Name)

	b.WriteString(":root {\n")
	w := declWriter{b: &b, indent: "  "}
	writeColors(w, preset.Light)
	w.decl("radius", num(preset.Light.Radius)+"rem")
	b.WriteString("}\n\n")

	b.WriteString(".dark,\n[data-theme=\"dark\"] {\n")
	writeColors(w, preset.Dark)
	w.decl("radius", num(preset.Dark.Radius)+"rem")
	b.WriteString("}\n\n")

	b.WriteString(systemPreferenceBlock(preset.Dark))
	b.WriteString("\n")
	return b.String()
}
