// SPDX-License-Identifier: MIT
package a11y

import (
	"math"

	"github.com/thatcatcamp/themekit/internal/themes"
)

// WCAG 2.1 contrast thresholds
const (
	AANormal  = 4.5
	AALarge   = 3.0
	AAANormal = 7.0
	AAALarge  = 4.5
)

// Level is the highest WCAG level a ratio reaches for normal text
type Level string

const (
	LevelAAA  Level = "AAA"
	LevelAA   Level = "AA"
	LevelFail Level = "FAIL"
)

// ContrastResult is the outcome of one foreground/background check.
type ContrastResult struct {
	Pair           string  `json:"pair"`
	Foreground     string  `json:"foreground"`
	Background     string  `json:"background"`
	Ratio          float64 `json:"ratio"`
	Level          Level   `json:"level"`
	PassesAA       bool    `json:"passes_aa"`
	PassesAAA      bool    `json:"passes_aaa"`
	PassesAALarge  bool    `json:"passes_aa_large"`
	PassesAAALarge bool    `json:"passes_aaa_large"`
}

func linearize(c float64) float64 {
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// RelativeLuminance returns the WCAG relative luminance in [0,1].
func RelativeLuminance(c themes.ColorScale) float64 {
	r, g, b := c.RGB()
	return 0.2126*linearize(r) + 0.7152*linearize(g) + 0.0722*linearize(b)
}

// ContrastRatio returns (L1 + 0.05) / (L2 + 0.05) with L1 the lighter
// color. The result is symmetric and lies in [1, 21].
func ContrastRatio(a, b themes.ColorScale) float64 {
	la, lb := RelativeLuminance(a), RelativeLuminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// Check measures fg against bg and grades the ratio.
func Check(pair string, fg, bg themes.ColorScale) ContrastResult {
	ratio := ContrastRatio(fg, bg)
	res := ContrastResult{
		Pair:           pair,
		Foreground:     fg.String(),
		Background:     bg.String(),
		Ratio:          ratio,
		PassesAA:       ratio >= AANormal,
		PassesAAA:      ratio >= AAANormal,
		PassesAALarge:  ratio >= AALarge,
		PassesAAALarge: ratio >= AAALarge,
	}
	switch {
	case res.PassesAAA:
		res.Level = LevelAAA
	case res.PassesAA:
		res.Level = LevelAA
	default:
		res.Level = LevelFail
	}
	return res
}

type colorPair struct {
	name   string
	fg, bg themes.ColorScale
}

// criticalPairs lists the foreground/background pairs every mode is checked on
func criticalPairs(t themes.ThemeTokens) []colorPair {
	return []colorPair{
		{"text_on_background", t.Foreground, t.Background},
		{"text_on_card", t.CardForeground, t.Card},
		{"primary_text", t.PrimaryForeground, t.Primary},
		{"secondary_text", t.SecondaryForeground, t.Secondary},
		{"muted_text", t.MutedForeground, t.Muted},
		{"destructive_text", t.DestructiveForeground, t.Destructive},
		{"success_text", t.SuccessForeground, t.Success},
		{"warning_text", t.WarningForeground, t.Warning},
		{"border_contrast", t.Border, t.Background},
		{"input_contrast", t.Input, t.Background},
	}
}
