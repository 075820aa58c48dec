// SPDX-License-Identifier: MIT
package a11y

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/thatcatcamp/themekit/internal/themes"
)

// ErrValidationFailed marks a combination that could not be checked
var ErrValidationFailed = errors.New("accessibility validation failed")

const (
	minFocusRingPx   = 2.0
	maxFastMillis    = 200.0
	maxNormalMillis  = 500.0
	contrastWeight   = 70.0
	focusBonus       = 20.0
	motionBonus      = 10.0
	colorIndepBonus  = 10.0
	issuePenalty     = 5.0
	motionSuggestion = "Consider adding motion reduction support"
)

// Options controls which modes are checked
type Options struct {
	LightOnly bool
}

// Report is the accessibility outcome for one design system and preset.
type Report struct {
	DesignSystem     string                    `json:"design_system"`
	ColorPreset      string                    `json:"color_preset"`
	Score            float64                   `json:"score"`
	Contrast         map[string]ContrastResult `json:"contrast"`
	Passed           int                       `json:"passed"`
	Total            int                       `json:"total"`
	FocusVisible     bool                      `json:"focus_visible"`
	MotionSafe       bool                      `json:"motion_safe"`
	ColorIndependent bool                      `json:"color_independent"`
	Issues           []string                  `json:"issues"`
	Recommendations  []string                  `json:"recommendations"`
}

// Key returns "<design>-<preset>"
func (r Report) Key() string {
	return r.DesignSystem + "-" + r.ColorPreset
}

// Validate checks contrast for the preset in light (and dark) mode and runs
// the design feature checks. A unit error in a feature check is reported as
// ErrValidationFailed.
func Validate(design themes.DesignSystem, preset themes.ThemePreset, opts Options) (Report, error) {
	report := Report{
		DesignSystem:    design.Name,
		ColorPreset:     preset.Name,
		Contrast:        make(map[string]ContrastResult),
		Issues:          []string{},
		Recommendations: []string{},
	}

	modes := []string{"light", "dark"}
	if opts.LightOnly {
		modes = modes[:1]
	}
	for _, mode := range modes {
		prefix := ""
		if len(modes) > 1 {
			prefix = mode + "_"
		}
		title := strings.ToUpper(mode[:1]) + mode[1:]
		for _, p := range criticalPairs(preset.Tokens(mode)) {
			res := Check(p.name, p.fg, p.bg)
			report.Contrast[prefix+p.name] = res
			report.Total++
			switch {
			case !res.PassesAA:
				report.Issues = append(report.Issues, fmt.Sprintf(
					"%s mode: %s contrast %.2f fails WCAG AA (needs %.1f)", title, p.name, res.Ratio, AANormal))
			case !res.PassesAAA:
				report.Passed++
				report.Recommendations = append(report.Recommendations, fmt.Sprintf(
					"%s mode: %s could be improved to meet AAA standard (%.2f current, %.1f needed)", title, p.name, res.Ratio, AAANormal))
			default:
				report.Passed++
			}
		}
	}

	var err error
	if report.FocusVisible, err = focusVisible(design); err != nil {
		return Report{}, err
	}
	if report.MotionSafe, err = motionSafe(design); err != nil {
		return Report{}, err
	}
	if report.ColorIndependent, err = colorIndependent(design); err != nil {
		return Report{}, err
	}

	if !report.FocusVisible {
		report.Issues = append(report.Issues, "Focus states may not be sufficiently visible")
	}
	if !report.MotionSafe {
		report.Recommendations = append(report.Recommendations, motionSuggestion)
	}
	if !report.ColorIndependent {
		report.Issues = append(report.Issues, "Design may rely too heavily on color for meaning")
	}

	report.Score = score(report)
	return report, nil
}

func score(r Report) float64 {
	var passRate float64
	if r.Total > 0 {
		passRate = float64(r.Passed) / float64(r.Total)
	}
	bonus := 0.0
	if r.FocusVisible {
		bonus += focusBonus
	}
	if r.MotionSafe {
		bonus += motionBonus
	}
	if r.ColorIndependent {
		bonus += colorIndepBonus
	}
	s := contrastWeight*passRate + bonus - issuePenalty*float64(len(r.Issues))
	return math.Min(100, math.Max(0, s))
}

func focusVisible(d themes.DesignSystem) (bool, error) {
	px, err := d.Interaction.FocusRingWidth.Pixels()
	if err != nil {
		return false, fmt.Errorf("%w: focus ring width: %w", ErrValidationFailed, err)
	}
	return px >= minFocusRingPx, nil
}

func motionSafe(d themes.DesignSystem) (bool, error) {
	fast, err := d.Animation.DurationFast.Millis()
	if err != nil {
		return false, fmt.Errorf("%w: fast duration: %w", ErrValidationFailed, err)
	}
	normal, err := d.Animation.DurationNormal.Millis()
	if err != nil {
		return false, fmt.Errorf("%w: normal duration: %w", ErrValidationFailed, err)
	}
	return fast <= maxFastMillis && normal <= maxNormalMillis, nil
}

// colorIndependent is a heuristic: shadows, borders or a heading weight
// distinct from body text count as non-color cues.
func colorIndependent(d themes.DesignSystem) (bool, error) {
	border, err := d.Surface.BorderWidth.Pixels()
	if err != nil {
		return false, fmt.Errorf("%w: border width: %w", ErrValidationFailed, err)
	}
	hasShadow := d.Surface.ShadowMD != "none"
	variedType := d.Typography.HeadingWeight != d.Typography.BodyWeight
	return hasShadow || border > 0 || variedType, nil
}

// Validator runs validations against a catalog.
type Validator struct {
	Catalog *themes.Catalog
	Logger  *zap.Logger
}

// NewValidator returns a validator over cat. A nil logger is replaced with a no-op one.
func NewValidator(cat *themes.Catalog, logger *zap.Logger) *Validator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Validator{Catalog: cat, Logger: logger}
}

// ValidateNamed validates a combination by name. An unknown design system
// is an error; an unknown preset falls back to the default. A combination
// that cannot be validated yields a degraded report, not an error.
func (v *Validator) ValidateNamed(designName, presetName string, opts Options) (Report, error) {
	design, err := v.Catalog.Design(designName)
	if err != nil {
		return Report{}, err
	}
	return v.validateOne(design, v.Catalog.Preset(presetName), opts), nil
}

// ValidateAll validates every design system against every preset. A failing
// combination yields a degraded report with a zero score instead of aborting.
func (v *Validator) ValidateAll(opts Options) []Report {
	designs := v.Catalog.Designs.All()
	presets := v.Catalog.Presets.All()
	reports := make([]Report, 0, len(designs)*len(presets))
	for _, d := range designs {
		for _, p := range presets {
			reports = append(reports, v.validateOne(d, p, opts))
		}
	}
	return reports
}

func (v *Validator) validateOne(d themes.DesignSystem, p themes.ThemePreset, opts Options) (report Report) {
	defer func() {
		if r := recover(); r != nil {
			report = v.degraded(d.Name, p.Name, fmt.Errorf("%w: panic: %v", ErrValidationFailed, r))
		}
	}()
	report, err := Validate(d, p, opts)
	if err != nil {
		return v.degraded(d.Name, p.Name, err)
	}
	return report
}

func (v *Validator) degraded(design, preset string, err error) Report {
	v.Logger.Warn("accessibility validation failed",
		zap.String("design_system", design),
		zap.String("color_preset", preset),
		zap.Error(err),
	)
	return Report{
		DesignSystem:    design,
		ColorPreset:     preset,
		Contrast:        map[string]ContrastResult{},
		Issues:          []string{"Validation failed: " + err.Error()},
		Recommendations: []string{},
	}
}
