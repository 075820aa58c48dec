// SPDX-License-Identifier: MIT
package build

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"

	"github.com/thatcatcamp/themekit/internal/themes"
)

const (
	generatorName    = "themekit"
	generatorVersion = "1.0.0"
	ManifestName     = "manifest.json"
)

// Manifest describes one build: options, catalog metadata and every file written
type Manifest struct {
	Generator     string                  `json:"generator"`
	Version       string                  `json:"version"`
	GeneratedAt   string                  `json:"generated_at"`
	BuildOptions  ManifestOptions         `json:"build_options"`
	DesignSystems map[string]DesignEntry  `json:"design_systems"`
	ColorPresets  map[string]PresetEntry  `json:"color_presets"`
	Themes        map[string]ThemeEntry   `json:"themes"`
	Packs         map[string]PackEntry    `json:"packs,omitempty"`
	Files         map[string]ManifestFile `json:"files"`
}

type ManifestOptions struct {
	Minify       bool `json:"minify"`
	SourceMaps   bool `json:"source_maps"`
	IncludePacks bool `json:"include_packs"`
	Bundle       bool `json:"bundle"`
}

type DesignEntry struct {
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type PresetEntry struct {
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
}

// ThemeEntry is one design system and preset combination
type ThemeEntry struct {
	DesignSystem string `json:"design_system"`
	ColorPreset  string `json:"color_preset"`
	DisplayName  string `json:"display_name"`
	CSSSelector  string `json:"css_selector"`
}

type PackEntry struct {
	DisplayName  string `json:"display_name"`
	DesignSystem string `json:"design_system"`
	ColorPreset  string `json:"color_preset"`
}

// ManifestFile is the metadata of one written artifact
type ManifestFile struct {
	Path     string `json:"path"`
	Size     int64  `json:"size"`
	Modified string `json:"modified"`
}

func newManifest(cat *themes.Catalog, opts Options, now time.Time) Manifest {
	m := Manifest{
		Generator:   generatorName,
		Version:     generatorVersion,
		GeneratedAt: now.Format(time.RFC3339),
		BuildOptions: ManifestOptions{
			Minify:       opts.Minify,
			SourceMaps:   opts.SourceMaps,
			IncludePacks: opts.IncludePacks,
			Bundle:       opts.Bundle,
		},
		DesignSystems: make(map[string]DesignEntry),
		ColorPresets:  make(map[string]PresetEntry),
		Themes:        make(map[string]ThemeEntry),
		Files:         make(map[string]ManifestFile),
	}

	designs := cat.Designs.All()
	presets := cat.Presets.All()
	for _, d := range designs {
		m.DesignSystems[d.Name] = DesignEntry{DisplayName: d.DisplayName, Description: d.Description, Category: d.Category}
	}
	for _, p := range presets {
		desc := p.Description
		if desc == "" {
			desc = p.DisplayName + " color preset"
		}
		m.ColorPresets[p.Name] = PresetEntry{DisplayName: p.DisplayName, Description: desc}
	}
	for _, d := range designs {
		for _, p := range presets {
			key := ComboName(d.Name, p.Name)
			m.Themes[key] = ThemeEntry{
				DesignSystem: d.Name,
				ColorPreset:  p.Name,
				DisplayName:  fmt.Sprintf("%s + %s", d.DisplayName, p.DisplayName),
				CSSSelector:  fmt.Sprintf(`[data-theme="%s"]`, key),
			}
		}
	}
	if opts.IncludePacks {
		m.Packs = make(map[string]PackEntry)
		for _, k := range cat.Packs.All() {
			m.Packs[k.Name] = PackEntry{DisplayName: k.DisplayName, DesignSystem: k.DesignSystem, ColorPreset: k.ColorPreset}
		}
	}
	return m
}

func (m *Manifest) addFile(a Artifact) {
	m.Files[a.Name] = ManifestFile{
		Path:     a.Path,
		Size:     a.Size,
		Modified: a.Modified.Format(time.RFC3339),
	}
}

func writeManifest(dir string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ManifestName), data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// ReadManifest loads a manifest written by a previous build
func ReadManifest(dir string) (Manifest, error) {
	var m Manifest
	data, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		return m, err
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("failed to decode manifest: %w", err)
	}
	return m, nil
}
