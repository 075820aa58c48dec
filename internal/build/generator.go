// SPDX-License-Identifier: MIT
package build

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/thatcatcamp/themekit/internal/css"
	"github.com/thatcatcamp/themekit/internal/themes"
)

// BundleName is the base name of the layered bundle
const BundleName = "themekit-bundle"

// Options controls what a build writes
type Options struct {
	OutputDir    string
	Minify       bool
	SourceMaps   bool
	IncludePacks bool
	Bundle       bool
}

// Artifact is one file written by a build
type Artifact struct {
	Name     string
	Path     string
	Size     int64
	Modified time.Time
}

// Result lists the artifacts of a build, excluding the manifest itself
type Result struct {
	Files    []Artifact
	Manifest Manifest
}

// Generator writes static CSS for every combination in a catalog.
// Two builds must not target the same output directory at the same time.
type Generator struct {
	Catalog *themes.Catalog
	Logger  *zap.Logger
	Now     func() time.Time
}

// NewGenerator returns a generator over cat using the wall clock
func NewGenerator(cat *themes.Catalog, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{Catalog: cat, Logger: logger, Now: time.Now}
}

// ComboName returns "<design>-<preset>", used for file names, layers and selectors
func ComboName(design, preset string) string {
	return design + "-" + preset
}

func cssFileName(base string, minify bool) string {
	if minify {
		return base + ".min.css"
	}
	return base + ".css"
}

// Build writes per-combination stylesheets, optional pack stylesheets and
// source maps, the layered bundle and manifest.json into opts.OutputDir.
func (g *Generator) Build(opts Options) (*Result, error) {
	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	now := g.Now
	if now == nil {
		now = time.Now
	}

	designs := g.Catalog.Designs.All()
	presets := g.Catalog.Presets.All()
	g.Logger.Info("generating theme combinations",
		zap.Int("combinations", len(designs)*len(presets)),
		zap.String("output_dir", opts.OutputDir),
	)

	res := &Result{Manifest: newManifest(g.Catalog, opts, now())}

	for _, d := range designs {
		for _, p := range presets {
			out := css.Compose(d, p, css.DefaultOptions())
			name := cssFileName(ComboName(d.Name, p.Name), opts.Minify)
			if err := g.writeStylesheet(res, opts, name, out); err != nil {
				return nil, err
			}
		}
	}

	if opts.IncludePacks {
		for _, name := range g.Catalog.Packs.Names() {
			pack, design, preset, err := g.Catalog.ResolvePack(name)
			if err != nil {
				g.Logger.Warn("skipping theme pack", zap.String("pack", name), zap.Error(err))
				continue
			}
			out := css.Compose(design, preset, css.Options{Pack: &pack})
			if err := g.writeStylesheet(res, opts, cssFileName("pack-"+name, opts.Minify), out); err != nil {
				return nil, err
			}
		}
	}

	if opts.Bundle {
		bundle := Bundle(designs, presets)
		if opts.Minify {
			bundle = css.Minify(bundle)
		}
		a, err := writeFile(opts.OutputDir, cssFileName(BundleName, opts.Minify), []byte(bundle))
		if err != nil {
			return nil, err
		}
		res.add(a)
		g.Logger.Info("generated bundle", zap.String("file", a.Name), zap.Int64("size", a.Size))
	}

	if err := writeManifest(opts.OutputDir, res.Manifest); err != nil {
		return nil, err
	}
	g.Logger.Info("build complete", zap.Int("files", len(res.Files)))
	return res, nil
}

func (g *Generator) writeStylesheet(res *Result, opts Options, name, content string) error {
	if opts.Minify {
		content = css.Minify(content)
	}
	if opts.SourceMaps {
		sm, err := sourceMap(name, content)
		if err != nil {
			return err
		}
		a, err := writeFile(opts.OutputDir, name+".map", sm)
		if err != nil {
			return err
		}
		res.add(a)
		content += fmt.Sprintf("\n/*# sourceMappingURL=%s.map */", name)
	}
	a, err := writeFile(opts.OutputDir, name, []byte(content))
	if err != nil {
		return err
	}
	res.add(a)
	g.Logger.Debug("generated stylesheet", zap.String("file", name))
	return nil
}

func (r *Result) add(a Artifact) {
	r.Files = append(r.Files, a)
	r.Manifest.addFile(a)
}

func writeFile(dir, name string, data []byte) (Artifact, error) {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return Artifact{}, fmt.Errorf("failed to write %s: %w", name, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return Artifact{}, fmt.Errorf("failed to stat %s: %w", name, err)
	}
	return Artifact{Name: name, Path: path, Size: info.Size(), Modified: info.ModTime()}, nil
}

type sourceMapV3 struct {
	Version        int      `json:"version"`
	File           string   `json:"file"`
	Sources        []string `json:"sources"`
	Names          []string `json:"names"`
	Mappings       string   `json:"mappings"`
	SourcesContent []string `json:"sourcesContent"`
}

// sourceMap returns a v3 map that embeds the stylesheet as its own source
func sourceMap(name, content string) ([]byte, error) {
	data, err := json.Marshal(sourceMapV3{
		Version:        3,
		File:           name,
		Sources:        []string{name + ".source"},
		Names:          []string{},
		SourcesContent: []string{content},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode source map for %s: %w", name, err)
	}
	return data, nil
}

// Bundle renders every combination into its own cascade layer, scoped by a
// data-theme selector, followed by the shared base styles and utilities.
func Bundle(designs []themes.DesignSystem, presets []themes.ThemePreset) string {
	var layers []string
	for _, d := range designs {
		for _, p := range presets {
			layers = append(layers, "theme-"+ComboName(d.Name, p.Name))
		}
	}

	var b strings.Builder
	b.WriteString("/* themekit - Theme Bundle */\n\n")
	fmt.Fprintf(&b, "@layer %s;\n", strings.Join(layers, ", "))
	for _, d := range designs {
		for _, p := range presets {
			combo := ComboName(d.Name, p.Name)
			selector := fmt.Sprintf("[data-theme=%q]", combo)
			fmt.Fprintf(&b, "\n@layer theme-%s {\n%s\n}\n", combo, css.ScopedVariables(selector, d, p))
		}
	}
	b.WriteString("\n/* Base Styles and Utilities */\n")
	b.WriteString(css.Styles(true, true))
	b.WriteString("\n")
	return b.String()
}
