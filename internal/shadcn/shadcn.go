// SPDX-License-Identifier: MIT

// Package shadcn converts color presets to and from the shadcn/ui theme
// JSON format.
package shadcn

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/goccy/go-json"

	"github.com/thatcatcamp/themekit/internal/themes"
)

// ImportParseError records one field that could not be read and was
// replaced with a fallback value.
type ImportParseError struct {
	Mode  string
	Field string
	Value string
}

func (e *ImportParseError) Error() string {
	if e.Mode == "" {
		return fmt.Sprintf("shadcn import: invalid %s %q", e.Field, e.Value)
	}
	return fmt.Sprintf("shadcn import: invalid %s.%s %q", e.Mode, e.Field, e.Value)
}

// Theme is the shadcn/ui theme document
type Theme struct {
	Name        string            `json:"name"`
	Label       string            `json:"label,omitempty"`
	ActiveColor map[string]string `json:"activeColor,omitempty"`
	CSSVars     CSSVars           `json:"cssVars"`
	Radius      string            `json:"radius,omitempty"`
}

type CSSVars struct {
	Light map[string]string `json:"light"`
	Dark  map[string]string `json:"dark"`
}

// neutralGrey replaces values that cannot be parsed
var neutralGrey = themes.HSL(0, 0, 50)

type field struct {
	name  string
	alias string // read when name is absent
	// optional roles are absent from upstream themes and fall back without an error
	optional bool
	ptr      func(*themes.ThemeTokens) *themes.ColorScale
}

var fields = []field{
	{name: "background", ptr: func(t *themes.ThemeTokens) *themes.ColorScale { return &t.Background }},
	{name: "foreground", ptr: func(t *themes.ThemeTokens) *themes.ColorScale { return &t.Foreground }},
	{name: "card", alias: "background", ptr: func(t *themes.ThemeTokens) *themes.ColorScale { return &t.Card }},
	{name: "card-foreground", alias: "foreground", ptr: func(t *themes.ThemeTokens) *themes.ColorScale { return &t.CardForeground }},
	{name: "popover", alias: "background", ptr: func(t *themes.ThemeTokens) *themes.ColorScale { return &t.Popover }},
	{name: "popover-foreground", alias: "foreground", ptr: func(t *themes.ThemeTokens) *themes.ColorScale { return &t.PopoverForeground }},
	{name: "primary", ptr: func(t *themes.ThemeTokens) *themes.ColorScale { return &t.Primary }},
	{name: "primary-foreground", ptr: func(t *themes.ThemeTokens) *themes.ColorScale { return &t.PrimaryForeground }},
	{name: "secondary", ptr: func(t *themes.ThemeTokens) *themes.ColorScale { return &t.Secondary }},
	{name: "secondary-foreground", ptr: func(t *themes.ThemeTokens) *themes.ColorScale { return &t.SecondaryForeground }},
	{name: "muted", ptr: func(t *themes.ThemeTokens) *themes.ColorScale { return &t.Muted }},
	{name: "muted-foreground", ptr: func(t *themes.ThemeTokens) *themes.ColorScale { return &t.MutedForeground }},
	{name: "accent", ptr: func(t *themes.ThemeTokens) *themes.ColorScale { return &t.Accent }},
	{name: "accent-foreground", ptr: func(t *themes.ThemeTokens) *themes.ColorScale { return &t.AccentForeground }},
	{name: "destructive", ptr: func(t *themes.ThemeTokens) *themes.ColorScale { return &t.Destructive }},
	{name: "destructive-foreground", ptr: func(t *themes.ThemeTokens) *themes.ColorScale { return &t.DestructiveForeground }},
	{name: "success", optional: true, ptr: func(t *themes.ThemeTokens) *themes.ColorScale { return &t.Success }},
	{name: "success-foreground", optional: true, ptr: func(t *themes.ThemeTokens) *themes.ColorScale { return &t.SuccessForeground }},
	{name: "warning", optional: true, ptr: func(t *themes.ThemeTokens) *themes.ColorScale { return &t.Warning }},
	{name: "warning-foreground", optional: true, ptr: func(t *themes.ThemeTokens) *themes.ColorScale { return &t.WarningForeground }},
	{name: "border", ptr: func(t *themes.ThemeTokens) *themes.ColorScale { return &t.Border }},
	{name: "input", ptr: func(t *themes.ThemeTokens) *themes.ColorScale { return &t.Input }},
	{name: "ring", ptr: func(t *themes.ThemeTokens) *themes.ColorScale { return &t.Ring }},
}

// Import reads a shadcn theme. It never fails outright: every missing or
// malformed field takes the matching value of the default preset (an
// unparsable color becomes neutral grey) and is reported in the returned
// slice. Undecodable JSON yields the default preset itself.
func Import(data []byte) (themes.ThemePreset, []error) {
	base := themes.GetPreset(themes.DefaultPresetName)

	var doc Theme
	if err := json.Unmarshal(data, &doc); err != nil {
		return base, []error{&ImportParseError{Field: "document", Value: err.Error()}}
	}

	var errs []error
	name := strings.TrimSpace(doc.Name)
	if name == "" {
		name = "custom"
		errs = append(errs, &ImportParseError{Field: "name"})
	}
	label := doc.Label
	if label == "" {
		label = capitalize(name)
	}

	light, lightErrs := parseVars("light", doc.CSSVars.Light, doc.Radius, base.Light)
	dark, darkErrs := parseVars("dark", doc.CSSVars.Dark, doc.Radius, base.Dark)
	errs = append(errs, lightErrs...)
	errs = append(errs, darkErrs...)

	return themes.NewPreset(name, label, "Imported from shadcn/ui", light, dark), errs
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func parseVars(mode string, vars map[string]string, docRadius string, fallback themes.ThemeTokens) (themes.ThemeTokens, []error) {
	var errs []error
	out := fallback

	for _, f := range fields {
		raw, ok := vars[f.name]
		if !ok && f.alias != "" {
			raw, ok = vars[f.alias]
		}
		if !ok {
			if !f.optional {
				errs = append(errs, &ImportParseError{Mode: mode, Field: f.name})
			}
			continue
		}
		c, err := ParseHSL(raw)
		if err != nil {
			errs = append(errs, &ImportParseError{Mode: mode, Field: f.name, Value: raw})
			c = neutralGrey
		}
		*f.ptr(&out) = c
	}

	rawRadius, ok := vars["radius"]
	if !ok {
		rawRadius, ok = docRadius, docRadius != ""
	}
	if ok {
		r, err := parseRadius(rawRadius)
		if err != nil {
			errs = append(errs, &ImportParseError{Mode: mode, Field: "radius", Value: rawRadius})
		} else {
			out.Radius = r
		}
	}
	return out, errs
}

// ParseHSL reads "H S% L%" (percent signs optional). Fractions are truncated.
func ParseHSL(s string) (themes.ColorScale, error) {
	parts := strings.Fields(s)
	if len(parts) != 3 {
		return themes.ColorScale{}, fmt.Errorf("expected three components in %q", s)
	}
	var v [3]int
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSuffix(p, "%"), 64)
		if err != nil {
			return themes.ColorScale{}, fmt.Errorf("component %d of %q: %w", i+1, s, err)
		}
		v[i] = int(f)
	}
	return themes.HSL(v[0], v[1], v[2]), nil
}

var nonNumeric = regexp.MustCompile(`[^\d.]`)

func parseRadius(s string) (float64, error) {
	return strconv.ParseFloat(nonNumeric.ReplaceAllString(s, ""), 64)
}

// Export renders a preset as an indented shadcn theme document.
// Extension roles have no shadcn equivalent and are left out.
func Export(preset themes.ThemePreset) ([]byte, error) {
	doc := Theme{
		Name:  preset.Name,
		Label: preset.DisplayName,
		ActiveColor: map[string]string{
			"light": preset.Light.Primary.String(),
			"dark":  preset.Dark.Primary.String(),
		},
		CSSVars: CSSVars{
			Light: exportVars(preset.Light),
			Dark:  exportVars(preset.Dark),
		},
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode shadcn theme: %w", err)
	}
	return data, nil
}

func exportVars(t themes.ThemeTokens) map[string]string {
	vars := make(map[string]string, len(fields)+1)
	for _, f := range fields {
		vars[f.name] = f.ptr(&t).String()
	}
	vars["radius"] = strconv.FormatFloat(t.Radius, 'f', -1, 64) + "rem"
	return vars
}
