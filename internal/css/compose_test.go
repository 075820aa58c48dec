// SPDX-License-Identifier: MIT
package css

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thatcatcamp/themekit/internal/themes"
)

func TestComposeIsDeterministic(t *testing.T) {
	cat := themes.Default()
	for _, d := range cat.Designs.Names() {
		for _, p := range cat.Presets.Names() {
			first, err := ComposeNamed(cat, d, p, DefaultOptions())
			require.NoError(t, err)
			second, err := ComposeNamed(cat, d, p, DefaultOptions())
			require.NoError(t, err)
			if first != second {
				t.Fatalf("%s/%s: output differs between runs", d, p)
			}
		}
	}
}

func TestComposeSectionOrder(t *testing.T) {
	out, err := ComposeNamed(themes.Default(), "material", "default", DefaultOptions())
	require.NoError(t, err)

	root := strings.Index(out, ":root {")
	dark := strings.Index(out, ".dark,\n[data-theme=\"dark\"] {")
	media := strings.Index(out, "@media (prefers-color-scheme: dark)")
	base := strings.Index(out, BaseStylesMarker)
	utils := strings.Index(out, "/* Theme utility classes */")

	require.True(t, root >= 0 && dark >= 0 && media >= 0 && base >= 0 && utils >= 0, "missing section")
	assert.Less(t, root, dark)
	assert.Less(t, dark, media)
	assert.Less(t, media, base)
	assert.Less(t, base, utils)
	assert.Contains(t, out, `:root:not([data-theme="light"])`)
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestComposeContainsVariables(t *testing.T) {
	out, err := ComposeNamed(themes.Default(), "material", "default", DefaultOptions())
	require.NoError(t, err)

	expected := []string{
		"--font-sans: system-ui",
		"--text-base: 16px;",
		"--heading-scale: 1.25;",
		"--radius: 8px;",
		"--radius-lg: 12px;",
		"--button-radius: var(--radius);",
		"--duration-fast: 0.1s;",
		"--hover-scale: 1.02;",
		"--hover-translate-y: -2px;",
		"--background: 0 0% 100%;",
		"--foreground: 240 10% 4%;",
		"--info:",
		"--selection:",
		"--sidebar-background:",
		"--chart-1:",
	}
	for _, want := range expected {
		assert.Contains(t, out, want)
	}
	assert.Equal(t, 1, strings.Count(out, "--radius: "), "design layout owns --radius")
}

func TestComposeLightDiffersFromDark(t *testing.T) {
	preset := themes.GetPreset("blue")
	design, err := themes.Default().Design("material")
	require.NoError(t, err)

	vars := Variables(design, preset)
	assert.Contains(t, vars, "--background: "+preset.Light.Background.String()+";")
	assert.Contains(t, vars, "--background: "+preset.Dark.Background.String()+";")
	assert.NotEqual(t, preset.Light.Background, preset.Dark.Background)
}

func TestScopedVariables(t *testing.T) {
	preset := themes.GetPreset("blue")
	design, err := themes.Default().Design("ios")
	require.NoError(t, err)

	out := ScopedVariables(".brand", design, preset)
	assert.True(t, strings.HasPrefix(out, ".brand {\n  --font-sans: "))
	assert.NotContains(t, out, ":root")
	assert.Contains(t, out, ".brand.dark,\n.dark .brand {\n")
	assert.Contains(t, out, "@media (prefers-color-scheme: dark) {\n  .brand:not(.light):not(.light *) {\n")
	assert.Contains(t, out, "--background: "+preset.Dark.Background.String()+";")
	assert.Equal(t, strings.Count(out, "{"), strings.Count(out, "}"))
}

func TestComposeOptionalSections(t *testing.T) {
	cat := themes.Default()

	bare, err := ComposeNamed(cat, "ios", "green", Options{})
	require.NoError(t, err)
	assert.NotContains(t, bare, BaseStylesMarker)
	assert.NotContains(t, bare, "/* Theme utility classes */")

	utilsOnly, err := ComposeNamed(cat, "ios", "green", Options{IncludeUtilities: true})
	require.NoError(t, err)
	assert.NotContains(t, utilsOnly, BaseStylesMarker)
	assert.Contains(t, utilsOnly, ".bg-primary")
}

func TestComposeUnknownDesignSystem(t *testing.T) {
	_, err := ComposeNamed(themes.Default(), "bogus", "default", DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, themes.ErrUnknownDesignSystem))
}

func TestComposeUnknownPresetFallsBack(t *testing.T) {
	cat := themes.Default()
	fallback, err := ComposeNamed(cat, "material", "nope", DefaultOptions())
	require.NoError(t, err)
	def, err := ComposeNamed(cat, "material", "default", DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, def, fallback)
}

func TestComposePack(t *testing.T) {
	out, err := ComposePack(themes.Default(), "corporate", DefaultOptions())
	require.NoError(t, err)

	assert.Contains(t, out, "/* Design System: corporate */")
	assert.Contains(t, out, "/* Color Preset: blue */")
	assert.Contains(t, out, "/* Theme Pack: Corporate Professional */")
	assert.Contains(t, out, "--icon-stroke-width: 2;")
	assert.Contains(t, out, "stroke-linecap: round !important;")
	assert.Contains(t, out, "hsl(var(--foreground) / 0.03)")
	assert.Contains(t, out, "aspect-ratio: 4 / 3;")
	assert.NotContains(t, out, "hsla(")
	assert.Less(t, strings.Index(out, "/* Theme utility classes */"), strings.Index(out, "/* Theme Pack:"))

	_, err = ComposePack(themes.Default(), "missing", DefaultOptions())
	assert.True(t, errors.Is(err, themes.ErrUnknownPack))
}

func TestEveryPackComposes(t *testing.T) {
	cat := themes.Default()
	for _, name := range cat.Packs.Names() {
		out, err := ComposePack(cat, name, DefaultOptions())
		require.NoError(t, err, name)
		assert.Contains(t, out, "/* Icon Styles */", name)
		assert.Equal(t, strings.Count(out, "{"), strings.Count(out, "}"), "unbalanced braces in %s", name)
	}
}

func TestRuleSkipsEmptyDeclarations(t *testing.T) {
	assert.Equal(t, "", rule(".x", "", ""))
	assert.Equal(t, ".x {\n  color: red;\n}", rule(".x", "", "color: red;"))
}

func TestPresetCSS(t *testing.T) {
	out := PresetCSS(themes.GetPreset("rose"))
	assert.Contains(t, out, "/* themekit - Color Preset: rose */")
	assert.Contains(t, out, "--radius: ")
	assert.NotContains(t, out, "--font-sans")
	assert.Contains(t, out, "@media (prefers-color-scheme: dark)")
}

func TestMinify(t *testing.T) {
	in := "/* header */\n:root {\n  --a: 1px;\n  --b: 2px;\n}\n\n.x , .y {\n  color : red ;\n}\n"
	assert.Equal(t, ":root{--a:1px;--b:2px}.x,.y{color:red}", Minify(in))
}

func TestMinifyComposedOutput(t *testing.T) {
	out, err := ComposeNamed(themes.Default(), "material", "default", DefaultOptions())
	require.NoError(t, err)

	min := Minify(out)
	assert.NotContains(t, min, "/*")
	assert.NotContains(t, min, "\n")
	assert.NotContains(t, min, ";}")
	assert.Less(t, len(min), len(out))
	assert.Contains(t, min, "--background:0 0% 100%")
}
