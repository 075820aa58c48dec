// SPDX-License-Identifier: MIT
package css

import (
	"fmt"
	"strings"

	"github.com/thatcatcamp/themekit/internal/themes"
)

const svgShapes = "svg path, svg circle, svg rect, svg polygon, svg line"

// PackCSS renders the pack-only blocks: icons, animation, pattern,
// interaction and illustration. Compose appends it after the utilities.
func PackCSS(pack themes.ThemePack) string {
	sections := []string{
		fmt.Sprintf("/* Theme Pack: %s */\n/* %s */", pack.DisplayName, pack.Description),
		"/* Icon Styles */\n" + iconCSS(pack.Icons),
		"/* Animation Styles */\n" + animationCSS(pack.Animation),
	}
	if p := patternCSS(pack.Pattern); p != "" {
		sections = append(sections, "/* Pattern Styles */\n"+p)
	}
	sections = append(sections,
		"/* Interaction Styles */\n"+interactionCSS(pack.Interaction),
		"/* Illustration Styles */\n"+illustrationCSS(pack.Illustration),
	)
	return strings.Join(sections, "\n\n")
}

// rule renders "selector {\n  decl\n  ...\n}". Empty declarations are skipped
// and a rule without any declarations renders as "".
func rule(selector string, decls ...string) string {
	var body []string
	for _, d := range decls {
		if d != "" {
			body = append(body, "  "+d)
		}
	}
	if len(body) == 0 {
		return ""
	}
	return selector + " {\n" + strings.Join(body, "\n") + "\n}"
}

func joinBlocks(blocks ...string) string {
	var out []string
	for _, b := range blocks {
		if b != "" {
			out = append(out, b)
		}
	}
	return strings.Join(out, "\n\n")
}

func iconCSS(icon themes.IconStyle) string {
	stroke := num(icon.StrokeWidth)
	blocks := []string{
		rule(":root",
			"--icon-stroke-width: "+stroke+";",
			"--icon-corner-rounding: "+icon.CornerRounding.String()+";",
			"--icon-size-scale: "+num(icon.SizeScale)+";",
		),
		rule("svg", "stroke-width: "+stroke+";"),
	}

	switch icon.Style {
	case "filled":
		blocks = append(blocks,
			rule("svg", "fill: currentColor !important;", "stroke: none !important;"),
			rule(svgShapes, "fill: currentColor !important;", "stroke: none !important;"),
		)
	case "outlined":
		blocks = append(blocks,
			rule("svg",
				"fill: none !important;",
				"stroke: currentColor !important;",
				"stroke-width: "+stroke+" !important;",
				"stroke-linecap: round !important;",
				"stroke-linejoin: round !important;",
			),
			rule(svgShapes, "fill: none !important;", "stroke: currentColor !important;"),
		)
	case "rounded":
		blocks = append(blocks,
			rule("svg",
				"fill: currentColor !important;",
				"stroke: none !important;",
				"stroke-width: "+stroke+" !important;",
				"stroke-linecap: round !important;",
				"stroke-linejoin: round !important;",
			),
			rule(svgShapes, "fill: currentColor !important;", "stroke: none !important;"),
			rule("svg rect", "rx: 2 !important;"),
		)
	case "sharp":
		blocks = append(blocks,
			rule("svg",
				"fill: currentColor !important;",
				"stroke: currentColor !important;",
				"stroke-width: "+stroke+" !important;",
				"stroke-linecap: square !important;",
				"stroke-linejoin: miter !important;",
			),
			rule(svgShapes,
				"fill: currentColor !important;",
				"stroke: currentColor !important;",
				"stroke-width: "+stroke+" !important;",
			),
		)
	case "thin":
		blocks = append(blocks,
			rule("svg",
				"fill: none !important;",
				"stroke: currentColor !important;",
				"stroke-width: "+stroke+" !important;",
				"stroke-linecap: round !important;",
				"stroke-linejoin: round !important;",
			),
			rule(svgShapes,
				"fill: none !important;",
				"stroke: currentColor !important;",
				"stroke-width: "+stroke+" !important;",
			),
		)
	}
	return joinBlocks(blocks...)
}

func animationCSS(a themes.AnimationStyle) string {
	blocks := []string{
		rule(":root",
			"--anim-duration-fast: "+a.DurationFast.String()+";",
			"--anim-duration-normal: "+a.DurationNormal.String()+";",
			"--anim-duration-slow: "+a.DurationSlow.String()+";",
			"--anim-easing: "+a.Easing+";",
		),
		rule("*",
			"transition-duration: var(--anim-duration-fast);",
			"transition-timing-function: var(--anim-easing);",
		),
	}

	switch a.HoverEffect {
	case "lift":
		blocks = append(blocks, rule(".btn:hover, .card:hover",
			"transform: translateY("+a.HoverTranslateY.String()+");",
			"box-shadow: 0 8px 16px rgba(0,0,0,0.1);",
		))
	case "scale":
		blocks = append(blocks, rule(".btn:hover, .card:hover",
			"transform: scale("+num(a.HoverScale)+");",
		))
	case "glow":
		blocks = append(blocks, rule(".btn:hover, .card:hover",
			"box-shadow: 0 0 20px hsl(var(--primary) / 0.5);",
		))
	}

	switch a.ClickEffect {
	case "ripple":
		blocks = append(blocks,
			rule(".btn:active", "position: relative;", "overflow: hidden;"),
			rule(".btn:active::after",
				"content: '';",
				"position: absolute;",
				"inset: 0;",
				"background: radial-gradient(circle, hsl(var(--primary-foreground) / 0.3) 0%, transparent 70%);",
				"animation: ripple 0.6s ease-out;",
			),
			"@keyframes ripple {\n  to {\n    transform: scale(2);\n    opacity: 0;\n  }\n}",
		)
	case "pulse":
		blocks = append(blocks,
			rule(".btn:active", "animation: pulse 0.3s ease-out;"),
			"@keyframes pulse {\n  0%, 100% { transform: scale(1); }\n  50% { transform: scale(0.95); }\n}",
		)
	case "bounce":
		blocks = append(blocks,
			rule(".btn:active", "animation: bounce 0.4s ease-out;"),
			"@keyframes bounce {\n  0%, 100% { transform: scale(1); }\n  50% { transform: scale(0.9); }\n  75% { transform: scale(1.05); }\n}",
		)
	}

	switch a.EntranceEffect {
	case "fade":
		blocks = append(blocks,
			"@keyframes entrance-fade {\n  from { opacity: 0; }\n  to { opacity: 1; }\n}",
			rule(".animate-in", "animation: entrance-fade "+a.DurationFast.String()+" "+a.Easing+";"),
		)
	case "slide":
		blocks = append(blocks,
			"@keyframes entrance-slide {\n  from {\n    opacity: 0;\n    transform: translateY(20px);\n  }\n  to {\n    opacity: 1;\n    transform: translateY(0);\n  }\n}",
			rule(".animate-in", "animation: entrance-slide "+a.DurationNormal.String()+" "+a.Easing+";"),
		)
	case "scale":
		blocks = append(blocks,
			"@keyframes entrance-scale {\n  from {\n    opacity: 0;\n    transform: scale(0.9);\n  }\n  to {\n    opacity: 1;\n    transform: scale(1);\n  }\n}",
			rule(".animate-in", "animation: entrance-scale "+a.DurationFast.String()+" "+a.Easing+";"),
		)
	}

	blocks = append(blocks,
		rule(".loading-spinner",
			"display: inline-block;",
			"width: 1rem;",
			"height: 1rem;",
			"border: 2px solid hsl(var(--primary) / 0.3);",
			"border-top-color: hsl(var(--primary));",
			"border-radius: 50%;",
			"animation: spin "+a.DurationNormal.String()+" linear infinite;",
		),
		"@keyframes spin {\n  to { transform: rotate(360deg); }\n}",
	)
	return joinBlocks(blocks...)
}

func patternCSS(p themes.PatternStyle) string {
	opacity := num(p.PatternOpacity)
	scale := p.PatternScale.String()
	overlay := []string{"content: '';", "position: fixed;", "inset: 0;"}
	tail := []string{"pointer-events: none;", "z-index: -1;"}

	var background string
	switch p.BackgroundPattern {
	case "dots":
		background = rule("body::before", concat(overlay,
			[]string{
				"background-image: radial-gradient(circle, hsl(var(--foreground)) 1px, transparent 1px);",
				"background-size: " + scale + " " + scale + ";",
				"opacity: " + opacity + ";",
			}, tail)...)
	case "grid":
		background = rule("body::before", concat(overlay,
			[]string{
				"background-image: linear-gradient(hsl(var(--foreground) / " + opacity + ") 1px, transparent 1px), " +
					"linear-gradient(90deg, hsl(var(--foreground) / " + opacity + ") 1px, transparent 1px);",
				"background-size: " + scale + " " + scale + ";",
			}, tail)...)
	case "noise":
		background = rule("body::before", concat(overlay,
			[]string{
				`background-image: url("data:image/svg+xml,%3Csvg viewBox='0 0 200 200' xmlns='http://www.w3.org/2000/svg'%3E%3Cfilter id='noise'%3E%3CfeTurbulence type='fractalNoise' baseFrequency='0.9' numOctaves='4' stitchTiles='stitch'/%3E%3C/filter%3E%3Crect width='100%25' height='100%25' filter='url(%23noise)'/%3E%3C/svg%3E");`,
				"opacity: " + opacity + ";",
			}, tail)...)
	case "gradient":
		background = rule("body::before", concat(overlay,
			[]string{
				"background: linear-gradient(135deg, hsl(var(--primary) / " + opacity + ") 0%, hsl(var(--secondary) / " + opacity + ") 100%);",
			}, tail)...)
	}

	var surface string
	switch p.SurfaceStyle {
	case "glass":
		blur := p.BackdropBlur.String()
		surface = rule(".card, .modal, .dropdown",
			"background: hsl(var(--card) / 0.8);",
			"backdrop-filter: blur("+blur+");",
			"-webkit-backdrop-filter: blur("+blur+");",
		)
	case "neumorphic":
		surface = rule(".card",
			"background: hsl(var(--background));",
			"box-shadow: 8px 8px 16px hsl(var(--foreground) / 0.1), -8px -8px 16px hsl(var(--background) / 1);",
		)
	}
	return joinBlocks(background, surface)
}

func concat(parts ...[]string) []string {
	var out []string
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

var buttonHover = map[string]string{
	"lift":   "transform: translateY(-2px); box-shadow: 0 4px 8px rgba(0,0,0,0.1);",
	"scale":  "transform: scale(1.05);",
	"glow":   "box-shadow: 0 0 16px hsl(var(--primary) / 0.5);",
	"darken": "filter: brightness(0.9);",
}

var linkHover = map[string]string{
	"underline":  "text-decoration: underline;",
	"color":      "color: hsl(var(--primary));",
	"background": "background-color: hsl(var(--primary) / 0.1);",
}

var cardHover = map[string]string{
	"lift":   "transform: translateY(-4px); box-shadow: 0 8px 16px rgba(0,0,0,0.1);",
	"scale":  "transform: scale(1.02);",
	"border": "border-color: hsl(var(--primary));",
	"shadow": "box-shadow: 0 4px 12px rgba(0,0,0,0.1);",
}

func interactionCSS(i themes.PackInteraction) string {
	offset := i.FocusRingOffset.String()
	width := i.FocusRingWidth.String()

	var focus string
	switch i.FocusStyle {
	case "ring":
		focus = rule("*:focus-visible",
			"outline: none;",
			"box-shadow: 0 0 0 "+offset+" hsl(var(--background)), 0 0 0 calc("+offset+" + "+width+") hsl(var(--ring));",
		)
	case "outline":
		focus = rule("*:focus-visible",
			"outline: "+width+" solid hsl(var(--ring));",
			"outline-offset: "+offset+";",
		)
	case "glow":
		focus = rule("*:focus-visible",
			"outline: none;",
			"box-shadow: 0 0 0 3px hsl(var(--ring) / 0.3);",
		)
	case "underline":
		focus = rule("*:focus-visible",
			"outline: none;",
			"text-decoration: underline;",
			"text-decoration-color: hsl(var(--ring));",
			"text-decoration-thickness: 2px;",
			"text-underline-offset: 4px;",
		)
	}

	cursor := i.CursorStyle
	if cursor == "" {
		cursor = "default"
	}
	return joinBlocks(
		rule(".btn:hover", buttonHover[i.ButtonHover]),
		rule("a:hover", linkHover[i.LinkHover]),
		rule(".card:hover", cardHover[i.CardHover]),
		focus,
		rule("button, a, .clickable", "cursor: "+cursor+";"),
	)
}

var imageFilters = map[string]string{
	"grayscale": "filter: grayscale(100%);",
	"sepia":     "filter: sepia(60%);",
	"vibrant":   "filter: saturate(1.3) contrast(1.1);",
	"duotone":   "filter: grayscale(100%) contrast(1.2) brightness(0.9);",
}

func illustrationCSS(il themes.IllustrationStyle) string {
	blocks := []string{
		rule("img, .illustration",
			"border-radius: "+il.ImageBorderRadius.String()+";",
			imageFilters[il.ImageFilter],
		),
	}
	if il.PreferredAspect != "" {
		blocks = append(blocks, rule(".aspect-preferred",
			"aspect-ratio: "+strings.ReplaceAll(il.PreferredAspect, ":", " / ")+";",
		))
	}
	return joinBlocks(blocks...)
}
