// SPDX-License-Identifier: MIT
package themes

// PatternStyle describes page background patterns and surface treatment
type PatternStyle struct {
	Name              string
	BackgroundPattern string // none, dots, grid, noise, gradient
	PatternOpacity    float64
	PatternScale      Measure
	SurfaceStyle      string // flat, glass, neumorphic
	BackdropBlur      Measure
	NoiseIntensity    float64
}

// PackInteraction extends InteractionStyle with click, offset and cursor settings
type PackInteraction struct {
	Name string
	InteractionStyle
	ButtonClick     string
	FocusRingOffset Measure
	CursorStyle     string
}

// IllustrationStyle describes image treatment
type IllustrationStyle struct {
	Name              string
	Type              string
	ImageBorderRadius Measure
	ImageFilter       string // none, grayscale, sepia, vibrant, duotone
	PreferredAspect   string // "16:9"
}

// ThemePack bundles a design system and color preset by name with
// pack-only dimensions. Resolving one takes two registry lookups.
type ThemePack struct {
	Name         string
	DisplayName  string
	Description  string
	Category     string
	DesignSystem string
	ColorPreset  string
	Icons        IconStyle
	Animation    AnimationStyle
	Pattern      PatternStyle
	Interaction  PackInteraction
	Illustration IllustrationStyle
}

func (p ThemePack) info() Info {
	return Info{Name: p.Name, DisplayName: p.DisplayName, Description: p.Description}
}

// builtinPacks returns the registered theme packs in listing order
func builtinPacks() []ThemePack {
	return []ThemePack{
		{
			Name:         "corporate",
			DisplayName:  "Corporate Professional",
			Description:  "Clean, professional design for business applications",
			Category:     "professional",
			DesignSystem: "corporate",
			ColorPreset:  "blue",
			Icons:        packIconOutlined,
			Animation:    packAnimSmooth,
			Pattern:      packPatternGrid,
			Interaction:  packInteractSubtle,
			Illustration: packIllustLine,
		},
		{
			Name:         "playful",
			DisplayName:  "Playful Startup",
			Description:  "Fun, energetic design with personality",
			Category:     "playful",
			DesignSystem: "playful",
			ColorPreset:  "purple",
			Icons:        packIconRounded,
			Animation:    packAnimBouncy,
			Pattern:      packPatternDots,
			Interaction:  packInteractPlayful,
			Illustration: packIllust3d,
		},
		{
			Name:         "retro",
			DisplayName:  "Retro Nostalgia",
			Description:  "Classic 90s web aesthetic with pixel-perfect design",
			Category:     "retro",
			DesignSystem: "retro",
			ColorPreset:  "default",
			Icons:        packIconSharp,
			Animation:    packAnimInstant,
			Pattern:      packPatternNoise,
			Interaction:  packInteractMinimal,
			Illustration: packIllustRetro,
		},
		{
			Name:         "elegant",
			DisplayName:  "Elegant Luxury",
			Description:  "Sophisticated, premium design with refined details",
			Category:     "elegant",
			DesignSystem: "elegant",
			ColorPreset:  "default",
			Icons:        packIconThin,
			Animation:    packAnimGentle,
			Pattern:      packPatternGradient,
			Interaction:  packInteractSubtle,
			Illustration: packIllustHandDrawn,
		},
		{
			Name:         "brutalist",
			DisplayName:  "Neo-Brutalist Edge",
			Description:  "Bold, dramatic design with high contrast",
			Category:     "bold",
			DesignSystem: "neo_brutalist",
			ColorPreset:  "default",
			Icons:        packIconSharp,
			Animation:    packAnimSnappy,
			Pattern:      packPatternMinimal,
			Interaction:  packInteractBold,
			Illustration: packIllustFlat,
		},
		{
			Name:         "nature",
			DisplayName:  "Nature Organic",
			Description:  "Soft, natural design inspired by organic forms",
			Category:     "playful",
			DesignSystem: "organic",
			ColorPreset:  "green",
			Icons:        packIconRounded,
			Animation:    packAnimGentle,
			Pattern:      packPatternDots,
			Interaction:  packInteractSubtle,
			Illustration: packIllustHandDrawn,
		},
		{
			Name:         "cyberpunk",
			DisplayName:  "Cyberpunk Future",
			Description:  "Futuristic interface with neon highlights and dark aesthetics",
			Category:     "bold",
			DesignSystem: "neo_brutalist",
			ColorPreset:  "purple",
			Icons:        packIconSharp,
			Animation:    packAnimSnappy,
			Pattern:      packPatternGrid,
			Interaction:  packInteractBold,
			Illustration: packIllustFlat,
		},
		{
			Name:         "sunset",
			DisplayName:  "Golden Sunset",
			Description:  "Warm, inviting design with golden hour color palette",
			Category:     "elegant",
			DesignSystem: "elegant",
			ColorPreset:  "orange",
			Icons:        packIconRounded,
			Animation:    packAnimGentle,
			Pattern:      packPatternGradient,
			Interaction:  packInteractSubtle,
			Illustration: packIllustHandDrawn,
		},
		{
			Name:         "forest",
			DisplayName:  "Forest Explorer",
			Description:  "Natural, earthy design inspired by woodland environments",
			Category:     "playful",
			DesignSystem: "organic",
			ColorPreset:  "green",
			Icons:        packIconRounded,
			Animation:    packAnimSmooth,
			Pattern:      packPatternDots,
			Interaction:  packInteractSubtle,
			Illustration: packIllustHandDrawn,
		},
		{
			Name:         "ocean",
			DisplayName:  "Ocean Depths",
			Description:  "Calming, fluid design with deep blue and teal tones",
			Category:     "minimal",
			DesignSystem: "material",
			ColorPreset:  "blue",
			Icons:        packIconFilled,
			Animation:    packAnimSmooth,
			Pattern:      packPatternMinimal,
			Interaction:  packInteractSubtle,
			Illustration: packIllustFlat,
		},
		{
			Name:         "metallic",
			DisplayName:  "Metallic Industrial",
			Description:  "Sleek, modern design with industrial metallic aesthetics",
			Category:     "professional",
			DesignSystem: "corporate",
			ColorPreset:  "default",
			Icons:        packIconOutlined,
			Animation:    packAnimSmooth,
			Pattern:      packPatternNoise,
			Interaction:  packInteractMinimal,
			Illustration: packIllustLine,
		},
	}
}

var packIconOutlined = IconStyle{
	Name:           "outlined",
	Style:          "outlined",
	Weight:         "regular",
	SizeScale:      1.0,
	StrokeWidth:    2,
	CornerRounding: Px(0),
}

var packIconFilled = IconStyle{
	Name:           "filled",
	Style:          "filled",
	Weight:         "regular",
	SizeScale:      1.0,
	StrokeWidth:    0,
	CornerRounding: Px(0),
}

var packIconRounded = IconStyle{
	Name:           "rounded",
	Style:          "rounded",
	Weight:         "regular",
	SizeScale:      1.0,
	StrokeWidth:    2,
	CornerRounding: Px(4),
}

var packIconSharp = IconStyle{
	Name:           "sharp",
	Style:          "sharp",
	Weight:         "bold",
	SizeScale:      1.0,
	StrokeWidth:    2.5,
	CornerRounding: Px(0),
}

var packIconThin = IconStyle{
	Name:           "thin",
	Style:          "outlined",
	Weight:         "thin",
	SizeScale:      1.0,
	StrokeWidth:    1,
	CornerRounding: Px(0),
}

var packAnimSmooth = AnimationStyle{
	Name:            "smooth",
	EntranceEffect:  "fade",
	ExitEffect:      "fade",
	HoverEffect:     "lift",
	HoverScale:      1.02,
	HoverTranslateY: Px(-2),
	ClickEffect:     "ripple",
	LoadingStyle:    "spinner",
	TransitionStyle: "smooth",
	DurationFast:    Sec(0.15),
	DurationNormal:  Sec(0.3),
	DurationSlow:    Sec(0.5),
	Easing:          "cubic-bezier(0.4, 0, 0.2, 1)",
}

var packAnimSnappy = AnimationStyle{
	Name:            "snappy",
	EntranceEffect:  "scale",
	ExitEffect:      "scale",
	HoverEffect:     "scale",
	HoverScale:      1.05,
	HoverTranslateY: Px(0),
	ClickEffect:     "pulse",
	LoadingStyle:    "progress",
	TransitionStyle: "snappy",
	DurationFast:    Sec(0.08),
	DurationNormal:  Sec(0.12),
	DurationSlow:    Sec(0.2),
	Easing:          "cubic-bezier(0.68, -0.55, 0.265, 1.55)",
}

var packAnimBouncy = AnimationStyle{
	Name:            "bouncy",
	EntranceEffect:  "bounce",
	ExitEffect:      "scale",
	HoverEffect:     "scale",
	HoverScale:      1.1,
	HoverTranslateY: Px(0),
	ClickEffect:     "bounce",
	LoadingStyle:    "pulse",
	TransitionStyle: "bouncy",
	DurationFast:    Sec(0.2),
	DurationNormal:  Sec(0.4),
	DurationSlow:    Sec(0.6),
	Easing:          "cubic-bezier(0.34, 1.56, 0.64, 1)",
}

var packAnimInstant = AnimationStyle{
	Name:            "instant",
	EntranceEffect:  "none",
	ExitEffect:      "none",
	HoverEffect:     "none",
	HoverScale:      1.0,
	HoverTranslateY: Px(0),
	ClickEffect:     "none",
	LoadingStyle:    "spinner",
	TransitionStyle: "instant",
	DurationFast:    Sec(0.05),
	DurationNormal:  Sec(0.1),
	DurationSlow:    Sec(0.15),
	Easing:          "linear",
}

var packAnimGentle = AnimationStyle{
	Name:            "gentle",
	EntranceEffect:  "fade",
	ExitEffect:      "fade",
	HoverEffect:     "glow",
	HoverScale:      1.0,
	HoverTranslateY: Px(0),
	ClickEffect:     "none",
	LoadingStyle:    "skeleton",
	TransitionStyle: "smooth",
	DurationFast:    Sec(0.3),
	DurationNormal:  Sec(0.5),
	DurationSlow:    Sec(0.8),
	Easing:          "cubic-bezier(0.25, 0.46, 0.45, 0.94)",
}

var packPatternMinimal = PatternStyle{
	Name:              "minimal",
	BackgroundPattern: "none",
	PatternOpacity:    0.0,
	PatternScale:      Rem(1),
	SurfaceStyle:      "flat",
	BackdropBlur:      Px(0),
	NoiseIntensity:    0.0,
}

var packPatternDots = PatternStyle{
	Name:              "dots",
	BackgroundPattern: "dots",
	PatternOpacity:    0.05,
	PatternScale:      Rem(1.5),
	SurfaceStyle:      "flat",
	BackdropBlur:      Px(0),
	NoiseIntensity:    0.0,
}

var packPatternGrid = PatternStyle{
	Name:              "grid",
	BackgroundPattern: "grid",
	PatternOpacity:    0.03,
	PatternScale:      Rem(2),
	SurfaceStyle:      "flat",
	BackdropBlur:      Px(0),
	NoiseIntensity:    0.0,
}

var packPatternNoise = PatternStyle{
	Name:              "noise",
	BackgroundPattern: "noise",
	PatternOpacity:    0.02,
	PatternScale:      Rem(1),
	SurfaceStyle:      "flat",
	BackdropBlur:      Px(0),
	NoiseIntensity:    0.15,
}

var packPatternGlass = PatternStyle{
	Name:              "glass",
	BackgroundPattern: "none",
	PatternOpacity:    0.0,
	PatternScale:      Rem(1),
	SurfaceStyle:      "glass",
	BackdropBlur:      Px(12),
	NoiseIntensity:    0.0,
}

var packPatternGradient = PatternStyle{
	Name:              "gradient",
	BackgroundPattern: "gradient",
	PatternOpacity:    0.1,
	PatternScale:      Measure{Value: 100, Unit: UnitPercent},
	SurfaceStyle:      "flat",
	BackdropBlur:      Px(0),
	NoiseIntensity:    0.0,
}

var packInteractSubtle = PackInteraction{
	Name:             "subtle",
	InteractionStyle: InteractionStyle{ButtonHover: "lift", LinkHover: "underline", CardHover: "shadow", FocusStyle: "ring", FocusRingWidth: Px(2)},
	ButtonClick:      "scale",
	FocusRingOffset:  Px(2),
	CursorStyle:      "pointer",
}

var packInteractBold = PackInteraction{
	Name:             "bold",
	InteractionStyle: InteractionStyle{ButtonHover: "scale", LinkHover: "background", CardHover: "lift", FocusStyle: "outline", FocusRingWidth: Px(3)},
	ButtonClick:      "pulse",
	FocusRingOffset:  Px(0),
	CursorStyle:      "pointer",
}

var packInteractMinimal = PackInteraction{
	Name:             "minimal",
	InteractionStyle: InteractionStyle{ButtonHover: "darken", LinkHover: "color", CardHover: "border", FocusStyle: "underline", FocusRingWidth: Px(1)},
	ButtonClick:      "none",
	FocusRingOffset:  Px(0),
	CursorStyle:      "default",
}

var packInteractPlayful = PackInteraction{
	Name:             "playful",
	InteractionStyle: InteractionStyle{ButtonHover: "glow", LinkHover: "background", CardHover: "lift", FocusStyle: "glow", FocusRingWidth: Px(3)},
	ButtonClick:      "ripple",
	FocusRingOffset:  Px(3),
	CursorStyle:      "pointer",
}

var packIllustFlat = IllustrationStyle{
	Name:              "flat",
	Type:              "flat",
	ImageBorderRadius: Rem(0.5),
	ImageFilter:       "none",
	PreferredAspect:   "16:9",
}

var packIllust3d = IllustrationStyle{
	Name:              "3d",
	Type:              "3d",
	ImageBorderRadius: Rem(1),
	ImageFilter:       "vibrant",
	PreferredAspect:   "1:1",
}

var packIllustLine = IllustrationStyle{
	Name:              "line-art",
	Type:              "line-art",
	ImageBorderRadius: Rem(0.25),
	ImageFilter:       "none",
	PreferredAspect:   "4:3",
}

var packIllustHandDrawn = IllustrationStyle{
	Name:              "hand-drawn",
	Type:              "hand-drawn",
	ImageBorderRadius: Rem(1.5),
	ImageFilter:       "none",
	PreferredAspect:   "16:9",
}

var packIllustRetro = IllustrationStyle{
	Name:              "retro",
	Type:              "flat",
	ImageBorderRadius: Px(0),
	ImageFilter:       "none",
	PreferredAspect:   "4:3",
}
