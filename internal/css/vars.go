// SPDX-License-Identifier: MIT
package css

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/thatcatcamp/themekit/internal/themes"
)

var fontStacks = map[string]string{
	"system-ui": `system-ui, -apple-system, "Segoe UI", Roboto, sans-serif`,
	"serif":     `Georgia, "Times New Roman", serif`,
	"mono":      `ui-monospace, "SF Mono", Menlo, Consolas, monospace`,
	"display":   `"Poppins", system-ui, sans-serif`,
}

var letterSpacing = map[string]string{
	"normal": "normal",
	"tight":  "-0.025em",
	"wide":   "0.025em",
}

func fontStack(keyword string) string {
	if s, ok := fontStacks[keyword]; ok {
		return s
	}
	return keyword
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// shapeRadius maps a component shape onto a radius value
func shapeRadius(shape themes.Shape, layout themes.Layout) string {
	switch shape {
	case themes.ShapeSharp:
		return "0px"
	case themes.ShapeRounded:
		return "var(--radius)"
	case themes.ShapePill:
		return "9999px"
	case themes.ShapeOrganic:
		return "var(--radius-lg)"
	}
	return layout.RadiusMD.String()
}

// declWriter writes "--name: value;" lines at a fixed indent
type declWriter struct {
	b      *strings.Builder
	indent string
}

func (w declWriter) decl(name, value string) {
	fmt.Fprintf(w.b, "%s--%s: %s;\n", w.indent, name, value)
}

func (w declWriter) blank() {
	w.b.WriteString("\n")
}

func writeTypography(w declWriter, t themes.Typography) {
	w.decl("font-sans", fontStack(t.BodyFont))
	w.decl("font-display", fontStack(t.HeadingFont))
	w.decl("text-base", t.BaseSize.String())
	w.decl("leading-normal", num(t.LineHeight))
	w.decl("heading-scale", num(t.HeadingScale))
	w.decl("font-weight-heading", strconv.Itoa(t.HeadingWeight))
	w.decl("font-weight-body", strconv.Itoa(t.BodyWeight))
	spacing, ok := letterSpacing[t.LetterSpacing]
	if !ok {
		spacing = t.LetterSpacing
	}
	w.decl("letter-spacing", spacing)
}

func writeLayout(w declWriter, l themes.Layout) {
	w.decl("space-unit", l.SpaceUnit.String())
	w.decl("space-scale", num(l.SpaceScale))
	w.decl("radius-sm", l.RadiusSM.String())
	w.decl("radius", l.RadiusMD.String())
	w.decl("radius-lg", l.RadiusLG.String())
	w.decl("button-radius", shapeRadius(l.ButtonShape, l))
	w.decl("card-radius", shapeRadius(l.CardShape, l))
	w.decl("input-radius", shapeRadius(l.InputShape, l))
	w.decl("container-width", l.ContainerWidth.String())
	w.decl("grid-gap", l.GridGap.String())
	w.decl("section-spacing", l.SectionSpacing.String())
}

func writeSurface(w declWriter, s themes.Surface) {
	w.decl("shadow-sm", s.ShadowSM)
	w.decl("shadow", s.ShadowMD)
	w.decl("shadow-md", s.ShadowMD)
	w.decl("shadow-lg", s.ShadowLG)
	w.decl("border-width", s.BorderWidth.String())
	w.decl("border-style", s.BorderStyle)
	w.decl("backdrop-blur", s.BackdropBlur.String())
	w.decl("noise-opacity", num(s.NoiseOpacity))
}

func writeAnimation(w declWriter, a themes.AnimationStyle, i themes.InteractionStyle) {
	w.decl("duration-fast", a.DurationFast.String())
	w.decl("duration-normal", a.DurationNormal.String())
	w.decl("duration-slow", a.DurationSlow.String())
	w.decl("easing", a.Easing)
	if a.HoverScale != 1.0 {
		w.decl("hover-scale", num(a.HoverScale))
	}
	if !a.HoverTranslateY.IsZero() {
		w.decl("hover-translate-y", a.HoverTranslateY.String())
	}
	w.decl("focus-ring-width", i.FocusRingWidth.String())
}

// writeColors emits every color role and the shadcn aliases
func writeColors(w declWriter, t themes.ThemeTokens) {
	for _, r := range t.CoreRoles() {
		w.decl(r.Name, r.Color.String())
	}
	for _, r := range t.ExtensionRoles() {
		w.decl(r.Name, r.Color.String())
	}
	for _, r := range t.AliasRoles() {
		w.decl(r.Name, r.Color.String())
	}
}
