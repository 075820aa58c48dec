// SPDX-License-Identifier: MIT
package themes

// DefaultDesignName is the design system used when a configured default is missing
const DefaultDesignName = "material"

// Typography describes fonts and the type scale.
// Font fields hold a family keyword: system-ui, serif, mono or display.
type Typography struct {
	HeadingFont   string
	BodyFont      string
	BaseSize      Measure
	HeadingScale  float64
	LineHeight    float64
	HeadingWeight int
	BodyWeight    int
	LetterSpacing string // normal, tight, wide
}

// Shape is the corner treatment of a component
type Shape string

const (
	ShapeSharp   Shape = "sharp"
	ShapeRounded Shape = "rounded"
	ShapePill    Shape = "pill"
	ShapeOrganic Shape = "organic"
)

// Layout describes spacing, radii and component shapes
type Layout struct {
	SpaceUnit      Measure
	SpaceScale     float64
	RadiusSM       Measure
	RadiusMD       Measure
	RadiusLG       Measure
	ButtonShape    Shape
	CardShape      Shape
	InputShape     Shape
	ContainerWidth Measure
	GridGap        Measure
	SectionSpacing Measure
}

// Surface describes elevation and borders
type Surface struct {
	ShadowSM         string
	ShadowMD         string
	ShadowLG         string
	BorderWidth      Measure
	BorderStyle      string
	SurfaceTreatment string // flat, gradient, textured, glass
	BackdropBlur     Measure
	NoiseOpacity     float64
}

// IconStyle describes how SVG icons are drawn
type IconStyle struct {
	Name           string
	Style          string // outlined, filled, rounded, sharp, thin
	Weight         string
	SizeScale      float64
	StrokeWidth    float64
	CornerRounding Measure
}

// AnimationStyle describes motion
type AnimationStyle struct {
	Name            string
	EntranceEffect  string
	ExitEffect      string
	HoverEffect     string // lift, scale, glow, none
	HoverScale      float64
	HoverTranslateY Measure
	ClickEffect     string // ripple, pulse, bounce, none
	LoadingStyle    string
	TransitionStyle string
	DurationFast    Measure
	DurationNormal  Measure
	DurationSlow    Measure
	Easing          string
}

// InteractionStyle describes hover and focus feedback
type InteractionStyle struct {
	ButtonHover    string
	LinkHover      string
	CardHover      string
	FocusStyle     string // ring, outline, glow, underline
	FocusRingWidth Measure
}

// DesignSystem holds every non-color dimension of a theme.
type DesignSystem struct {
	Name        string
	DisplayName string
	Description string
	Category    string
	Typography  Typography
	Layout      Layout
	Surface     Surface
	Icons       IconStyle
	Animation   AnimationStyle
	Interaction InteractionStyle
}

func (d DesignSystem) info() Info {
	return Info{Name: d.Name, DisplayName: d.DisplayName, Description: d.Description}
}
