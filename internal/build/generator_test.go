// SPDX-License-Identifier: MIT
package build

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/thatcatcamp/themekit/internal/css"
	"github.com/thatcatcamp/themekit/internal/themes"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestGenerator() *Generator {
	g := NewGenerator(themes.Default(), zap.NewNop())
	g.Now = func() time.Time { return fixedNow }
	return g
}

func TestBuildWritesEveryCombination(t *testing.T) {
	dir := t.TempDir()
	cat := themes.Default()

	res, err := newTestGenerator().Build(Options{OutputDir: dir, Bundle: true})
	require.NoError(t, err)

	combos := cat.Designs.Len() * cat.Presets.Len()
	assert.Len(t, res.Files, combos+1)
	assert.Len(t, res.Manifest.Themes, combos)
	assert.Len(t, res.Manifest.Files, combos+1)

	for _, d := range cat.Designs.Names() {
		for _, p := range cat.Presets.Names() {
			path := filepath.Join(dir, d+"-"+p+".css")
			data, err := os.ReadFile(path)
			require.NoError(t, err, path)
			want, err := css.ComposeNamed(cat, d, p, css.DefaultOptions())
			require.NoError(t, err)
			assert.Equal(t, want, string(data))
		}
	}
	assert.FileExists(t, filepath.Join(dir, "themekit-bundle.css"))
	assert.FileExists(t, filepath.Join(dir, ManifestName))
	assert.NotContains(t, res.Manifest.Files, ManifestName)
}

func TestBuildManifest(t *testing.T) {
	dir := t.TempDir()
	_, err := newTestGenerator().Build(Options{OutputDir: dir, Minify: true, Bundle: true})
	require.NoError(t, err)

	m, err := ReadManifest(dir)
	require.NoError(t, err)
	assert.Equal(t, "themekit", m.Generator)
	assert.Equal(t, "1.0.0", m.Version)
	assert.Equal(t, "2026-03-01T12:00:00Z", m.GeneratedAt)
	assert.True(t, m.BuildOptions.Minify)
	assert.False(t, m.BuildOptions.SourceMaps)

	theme, ok := m.Themes["material-blue"]
	require.True(t, ok)
	assert.Equal(t, "Material Design + Blue", theme.DisplayName)
	assert.Equal(t, `[data-theme="material-blue"]`, theme.CSSSelector)
	assert.Equal(t, "professional", m.DesignSystems["material"].Category)

	for name, f := range m.Files {
		assert.True(t, strings.HasSuffix(name, ".min.css"), name)
		info, err := os.Stat(f.Path)
		require.NoError(t, err)
		assert.Equal(t, info.Size(), f.Size)
		_, err = time.Parse(time.RFC3339, f.Modified)
		assert.NoError(t, err)
	}
}

func TestBuildMinified(t *testing.T) {
	dir := t.TempDir()
	_, err := newTestGenerator().Build(Options{OutputDir: dir, Minify: true})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "material-default.min.css"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "/*")
	assert.NotContains(t, string(data), "\n")
	assert.NoFileExists(t, filepath.Join(dir, "themekit-bundle.min.css"))
}

func TestBuildSourceMaps(t *testing.T) {
	dir := t.TempDir()
	res, err := newTestGenerator().Build(Options{OutputDir: dir, SourceMaps: true})
	require.NoError(t, err)

	cat := themes.Default()
	assert.Len(t, res.Files, 2*cat.Designs.Len()*cat.Presets.Len())

	data, err := os.ReadFile(filepath.Join(dir, "ios-rose.css"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "/*# sourceMappingURL=ios-rose.css.map */"))

	raw, err := os.ReadFile(filepath.Join(dir, "ios-rose.css.map"))
	require.NoError(t, err)
	var sm sourceMapV3
	require.NoError(t, json.Unmarshal(raw, &sm))
	assert.Equal(t, 3, sm.Version)
	assert.Equal(t, "ios-rose.css", sm.File)
	require.Len(t, sm.SourcesContent, 1)
	assert.Contains(t, sm.SourcesContent[0], ":root {")
}

func TestBuildPacks(t *testing.T) {
	dir := t.TempDir()
	res, err := newTestGenerator().Build(Options{OutputDir: dir, IncludePacks: true})
	require.NoError(t, err)

	cat := themes.Default()
	assert.Len(t, res.Manifest.Packs, cat.Packs.Len())
	for _, name := range cat.Packs.Names() {
		data, err := os.ReadFile(filepath.Join(dir, "pack-"+name+".css"))
		require.NoError(t, err, name)
		assert.Contains(t, string(data), "/* Icon Styles */")
		assert.NotContains(t, string(data), css.BaseStylesMarker)
	}
}

func TestBundle(t *testing.T) {
	cat := themes.Default()
	designs := cat.Designs.All()[:2]
	presets := cat.Presets.All()[:2]

	out := Bundle(designs, presets)
	assert.Contains(t, out, "@layer theme-material-default, theme-material-shadcn, theme-ios-default, theme-ios-shadcn;")
	assert.Contains(t, out, "@layer theme-ios-shadcn {\n[data-theme=\"ios-shadcn\"] {\n  --")
	assert.Contains(t, out, "[data-theme=\"ios-shadcn\"].dark,\n.dark [data-theme=\"ios-shadcn\"] {")
	assert.Contains(t, out, "[data-theme=\"ios-shadcn\"]:not(.light):not(.light *) {")

	layers := out[:strings.Index(out, css.BaseStylesMarker)]
	assert.NotContains(t, layers, ":root {", "combination variables must not nest a :root block")
	assert.Equal(t, 1, strings.Count(out, css.BaseStylesMarker))
	assert.Less(t, strings.LastIndex(out, "@layer theme-"), strings.Index(out, css.BaseStylesMarker))
	assert.Equal(t, strings.Count(out, "{"), strings.Count(out, "}"))
}

func TestBuildFailsOnUnwritableDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	_, err := newTestGenerator().Build(Options{OutputDir: file})
	assert.Error(t, err)
}
