// SPDX-License-Identifier: MIT
package themes

// builtinDesigns returns the registered design systems in listing order.
// Registry keys for the minimal and brutalist systems keep their historical
// names (minimalist, neo_brutalist) so stored selections keep resolving.
func builtinDesigns() []DesignSystem {
	return []DesignSystem{
		{
			Name:        "material",
			DisplayName: "Material Design",
			Description: "Google's Material Design with elevation-based hierarchy",
			Category:    "professional",
			Typography:  typoMaterial,
			Layout:      layoutMaterial,
			Surface:     surfaceMaterial,
			Icons:       iconMaterial,
			Animation:   animMaterial,
			Interaction: interactMaterial,
		},
		{
			Name:        "ios",
			DisplayName: "iOS",
			Description: "Apple's iOS design language with fluid animations",
			Category:    "elegant",
			Typography:  typoIos,
			Layout:      layoutIos,
			Surface:     surfaceIos,
			Icons:       iconIos,
			Animation:   animIos,
			Interaction: interactIos,
		},
		{
			Name:        "fluent",
			DisplayName: "Fluent Design",
			Description: "Microsoft's Fluent Design System with depth and motion",
			Category:    "professional",
			Typography:  typoFluent,
			Layout:      layoutFluent,
			Surface:     surfaceFluent,
			Icons:       iconFluent,
			Animation:   animFluent,
			Interaction: interactFluent,
		},
		{
			Name:        "playful",
			DisplayName: "Playful",
			Description: "Fun, energetic design with bouncy animations and rounded shapes",
			Category:    "playful",
			Typography:  typoPlayful,
			Layout:      layoutPlayful,
			Surface:     surfacePlayful,
			Icons:       iconPlayful,
			Animation:   animPlayful,
			Interaction: interactPlayful,
		},
		{
			Name:        "corporate",
			DisplayName: "Corporate",
			Description: "Professional, clean design for business applications",
			Category:    "professional",
			Typography:  typoCorporate,
			Layout:      layoutCorporate,
			Surface:     surfaceCorporate,
			Icons:       iconCorporate,
			Animation:   animCorporate,
			Interaction: interactCorporate,
		},
		{
			Name:        "dense",
			DisplayName: "Dense",
			Description: "Compact, information-dense design for data-heavy interfaces",
			Category:    "minimal",
			Typography:  typoDense,
			Layout:      layoutDense,
			Surface:     surfaceDense,
			Icons:       iconDense,
			Animation:   animDense,
			Interaction: interactDense,
		},
		{
			Name:        "minimalist",
			DisplayName: "Minimal Clean",
			Description: "Pure, distraction-free design with maximum content focus",
			Category:    "minimal",
			Typography:  typoMinimal,
			Layout:      layoutMinimal,
			Surface:     surfaceMinimal,
			Icons:       iconMinimal,
			Animation:   animMinimal,
			Interaction: interactMinimal,
		},
		{
			Name:        "neo_brutalist",
			DisplayName: "Neo-Brutalist",
			Description: "Bold, aggressive design with sharp edges and high contrast",
			Category:    "bold",
			Typography:  typoBrutalist,
			Layout:      layoutBrutalist,
			Surface:     surfaceBrutalist,
			Icons:       iconBrutalist,
			Animation:   animBrutalist,
			Interaction: interactBrutalist,
		},
		{
			Name:        "elegant",
			DisplayName: "Refined Elegance",
			Description: "Sophisticated typography with generous spacing and subtle details",
			Category:    "elegant",
			Typography:  typoElegant,
			Layout:      layoutElegant,
			Surface:     surfaceElegant,
			Icons:       iconElegant,
			Animation:   animElegant,
			Interaction: interactElegant,
		},
		{
			Name:        "retro",
			DisplayName: "Pixel Perfect",
			Description: "Nostalgic pixel-art aesthetic with sharp edges and chunky shadows",
			Category:    "retro",
			Typography:  typoRetro,
			Layout:      layoutRetro,
			Surface:     surfaceRetro,
			Icons:       iconRetro,
			Animation:   animRetro,
			Interaction: interactRetro,
		},
		{
			Name:        "organic",
			DisplayName: "Natural Flow",
			Description: "Soft, rounded design inspired by natural forms and gentle motion",
			Category:    "playful",
			Typography:  typoOrganic,
			Layout:      layoutOrganic,
			Surface:     surfaceOrganic,
			Icons:       iconOrganic,
			Animation:   animOrganic,
			Interaction: interactOrganic,
		},
	}
}

var typoMaterial = Typography{
	HeadingFont:   "system-ui",
	BodyFont:      "system-ui",
	BaseSize:      Px(16),
	HeadingScale:  1.25,
	LineHeight:    1.5,
	HeadingWeight: 500,
	BodyWeight:    400,
	LetterSpacing: "normal",
}

var typoIos = Typography{
	HeadingFont:   "system-ui",
	BodyFont:      "system-ui",
	BaseSize:      Px(17),
	HeadingScale:  1.3,
	LineHeight:    1.4,
	HeadingWeight: 600,
	BodyWeight:    400,
	LetterSpacing: "tight",
}

var typoFluent = Typography{
	HeadingFont:   "system-ui",
	BodyFont:      "system-ui",
	BaseSize:      Px(14),
	HeadingScale:  1.25,
	LineHeight:    1.5,
	HeadingWeight: 600,
	BodyWeight:    400,
	LetterSpacing: "normal",
}

var typoPlayful = Typography{
	HeadingFont:   "display",
	BodyFont:      "system-ui",
	BaseSize:      Px(16),
	HeadingScale:  1.3,
	LineHeight:    1.75,
	HeadingWeight: 700,
	BodyWeight:    400,
	LetterSpacing: "normal",
}

var typoCorporate = Typography{
	HeadingFont:   "system-ui",
	BodyFont:      "system-ui",
	BaseSize:      Px(16),
	HeadingScale:  1.2,
	LineHeight:    1.6,
	HeadingWeight: 600,
	BodyWeight:    400,
	LetterSpacing: "normal",
}

var typoDense = Typography{
	HeadingFont:   "system-ui",
	BodyFont:      "system-ui",
	BaseSize:      Px(13),
	HeadingScale:  1.15,
	LineHeight:    1.35,
	HeadingWeight: 600,
	BodyWeight:    400,
	LetterSpacing: "tight",
}

var typoMinimal = Typography{
	HeadingFont:   "system-ui",
	BodyFont:      "system-ui",
	BaseSize:      Px(16),
	HeadingScale:  1.2,
	LineHeight:    1.6,
	HeadingWeight: 500,
	BodyWeight:    400,
	LetterSpacing: "normal",
}

var typoBrutalist = Typography{
	HeadingFont:   "system-ui",
	BodyFont:      "system-ui",
	BaseSize:      Px(18),
	HeadingScale:  1.4,
	LineHeight:    1.3,
	HeadingWeight: 900,
	BodyWeight:    500,
	LetterSpacing: "tight",
}

var typoElegant = Typography{
	HeadingFont:   "serif",
	BodyFont:      "system-ui",
	BaseSize:      Px(16),
	HeadingScale:  1.3,
	LineHeight:    1.7,
	HeadingWeight: 400,
	BodyWeight:    400,
	LetterSpacing: "wide",
}

var typoRetro = Typography{
	HeadingFont:   "mono",
	BodyFont:      "system-ui",
	BaseSize:      Px(14),
	HeadingScale:  1.1,
	LineHeight:    1.4,
	HeadingWeight: 700,
	BodyWeight:    400,
	LetterSpacing: "normal",
}

var typoOrganic = Typography{
	HeadingFont:   "system-ui",
	BodyFont:      "system-ui",
	BaseSize:      Px(16),
	HeadingScale:  1.25,
	LineHeight:    1.6,
	HeadingWeight: 600,
	BodyWeight:    400,
	LetterSpacing: "normal",
}

var layoutMaterial = Layout{
	SpaceUnit:      Rem(1),
	SpaceScale:     2.0,
	RadiusSM:       Px(4),
	RadiusMD:       Px(8),
	RadiusLG:       Px(12),
	ButtonShape:    ShapeRounded,
	CardShape:      ShapeRounded,
	InputShape:     ShapeRounded,
	ContainerWidth: Px(1200),
	GridGap:        Rem(1.5),
	SectionSpacing: Rem(3),
}

var layoutIos = Layout{
	SpaceUnit:      Rem(1),
	SpaceScale:     1.5,
	RadiusSM:       Px(8),
	RadiusMD:       Px(12),
	RadiusLG:       Px(16),
	ButtonShape:    ShapeRounded,
	CardShape:      ShapeRounded,
	InputShape:     ShapeRounded,
	ContainerWidth: Px(1100),
	GridGap:        Rem(1.5),
	SectionSpacing: Rem(3),
}

var layoutFluent = Layout{
	SpaceUnit:      Rem(1),
	SpaceScale:     1.5,
	RadiusSM:       Px(2),
	RadiusMD:       Px(4),
	RadiusLG:       Px(8),
	ButtonShape:    ShapeRounded,
	CardShape:      ShapeRounded,
	InputShape:     ShapeRounded,
	ContainerWidth: Px(1200),
	GridGap:        Rem(1.5),
	SectionSpacing: Rem(3),
}

var layoutPlayful = Layout{
	SpaceUnit:      Rem(1),
	SpaceScale:     1.5,
	RadiusSM:       Px(8),
	RadiusMD:       Px(16),
	RadiusLG:       Px(24),
	ButtonShape:    ShapePill,
	CardShape:      ShapeRounded,
	InputShape:     ShapePill,
	ContainerWidth: Px(1200),
	GridGap:        Rem(2),
	SectionSpacing: Rem(4),
}

var layoutCorporate = Layout{
	SpaceUnit:      Rem(1),
	SpaceScale:     1.5,
	RadiusSM:       Px(2),
	RadiusMD:       Px(4),
	RadiusLG:       Px(8),
	ButtonShape:    ShapeRounded,
	CardShape:      ShapeRounded,
	InputShape:     ShapeRounded,
	ContainerWidth: Px(1200),
	GridGap:        Rem(1.5),
	SectionSpacing: Rem(3),
}

var layoutDense = Layout{
	SpaceUnit:      Rem(0.5),
	SpaceScale:     1.5,
	RadiusSM:       Px(2),
	RadiusMD:       Px(2),
	RadiusLG:       Px(4),
	ButtonShape:    ShapeRounded,
	CardShape:      ShapeSharp,
	InputShape:     ShapeRounded,
	ContainerWidth: Px(1400),
	GridGap:        Rem(1),
	SectionSpacing: Rem(2),
}

var layoutMinimal = Layout{
	SpaceUnit:      Rem(1),
	SpaceScale:     1.5,
	RadiusSM:       Px(2),
	RadiusMD:       Px(4),
	RadiusLG:       Px(8),
	ButtonShape:    ShapeRounded,
	CardShape:      ShapeRounded,
	InputShape:     ShapeRounded,
	ContainerWidth: Px(1000),
	GridGap:        Rem(2),
	SectionSpacing: Rem(4),
}

var layoutBrutalist = Layout{
	SpaceUnit:      Rem(1),
	SpaceScale:     2.0,
	RadiusSM:       Px(0),
	RadiusMD:       Px(0),
	RadiusLG:       Px(0),
	ButtonShape:    ShapeSharp,
	CardShape:      ShapeSharp,
	InputShape:     ShapeSharp,
	ContainerWidth: Px(1400),
	GridGap:        Rem(1),
	SectionSpacing: Rem(2),
}

var layoutElegant = Layout{
	SpaceUnit:      Rem(1),
	SpaceScale:     1.618,
	RadiusSM:       Px(6),
	RadiusMD:       Px(12),
	RadiusLG:       Px(20),
	ButtonShape:    ShapeRounded,
	CardShape:      ShapeRounded,
	InputShape:     ShapeRounded,
	ContainerWidth: Px(900),
	GridGap:        Rem(3),
	SectionSpacing: Rem(5),
}

var layoutRetro = Layout{
	SpaceUnit:      Px(8),
	SpaceScale:     2.0,
	RadiusSM:       Px(0),
	RadiusMD:       Px(0),
	RadiusLG:       Px(0),
	ButtonShape:    ShapeSharp,
	CardShape:      ShapeSharp,
	InputShape:     ShapeSharp,
	ContainerWidth: Px(1024),
	GridGap:        Px(16),
	SectionSpacing: Px(32),
}

var layoutOrganic = Layout{
	SpaceUnit:      Rem(1),
	SpaceScale:     1.4,
	RadiusSM:       Px(12),
	RadiusMD:       Px(20),
	RadiusLG:       Px(32),
	ButtonShape:    ShapePill,
	CardShape:      ShapeOrganic,
	InputShape:     ShapePill,
	ContainerWidth: Px(1100),
	GridGap:        Rem(1.5),
	SectionSpacing: Rem(3),
}

var surfaceMaterial = Surface{
	ShadowSM:         "0 2px 4px rgba(0,0,0,0.14), 0 3px 4px rgba(0,0,0,0.12)",
	ShadowMD:         "0 4px 8px rgba(0,0,0,0.14), 0 6px 10px rgba(0,0,0,0.12)",
	ShadowLG:         "0 12px 17px rgba(0,0,0,0.14), 0 5px 22px rgba(0,0,0,0.12)",
	BorderWidth:      Px(1),
	BorderStyle:      "solid",
	SurfaceTreatment: "flat",
	BackdropBlur:     Px(0),
	NoiseOpacity:     0.0,
}

var surfaceIos = Surface{
	ShadowSM:         "0 2px 4px rgba(0,0,0,0.06)",
	ShadowMD:         "0 4px 8px rgba(0,0,0,0.08)",
	ShadowLG:         "0 8px 16px rgba(0,0,0,0.1)",
	BorderWidth:      Px(1),
	BorderStyle:      "solid",
	SurfaceTreatment: "flat",
	BackdropBlur:     Px(0),
	NoiseOpacity:     0.0,
}

var surfaceFluent = Surface{
	ShadowSM:         "0 1.6px 3.6px rgba(0,0,0,0.13), 0 0.3px 0.9px rgba(0,0,0,0.11)",
	ShadowMD:         "0 3.2px 7.2px rgba(0,0,0,0.13), 0 0.6px 1.8px rgba(0,0,0,0.11)",
	ShadowLG:         "0 6.4px 14.4px rgba(0,0,0,0.13), 0 1.2px 3.6px rgba(0,0,0,0.11)",
	BorderWidth:      Px(1),
	BorderStyle:      "solid",
	SurfaceTreatment: "flat",
	BackdropBlur:     Px(0),
	NoiseOpacity:     0.0,
}

var surfacePlayful = Surface{
	ShadowSM:         "0 2px 8px rgba(0,0,0,0.08)",
	ShadowMD:         "0 4px 16px rgba(0,0,0,0.1)",
	ShadowLG:         "0 8px 32px rgba(0,0,0,0.12)",
	BorderWidth:      Px(0),
	BorderStyle:      "none",
	SurfaceTreatment: "flat",
	BackdropBlur:     Px(0),
	NoiseOpacity:     0.0,
}

var surfaceCorporate = Surface{
	ShadowSM:         "0 1px 3px rgba(0,0,0,0.08)",
	ShadowMD:         "0 2px 6px rgba(0,0,0,0.1)",
	ShadowLG:         "0 4px 12px rgba(0,0,0,0.12)",
	BorderWidth:      Px(1),
	BorderStyle:      "solid",
	SurfaceTreatment: "flat",
	BackdropBlur:     Px(0),
	NoiseOpacity:     0.0,
}

var surfaceDense = Surface{
	ShadowSM:         "0 1px 2px rgba(0,0,0,0.06)",
	ShadowMD:         "0 1px 3px rgba(0,0,0,0.08)",
	ShadowLG:         "0 2px 6px rgba(0,0,0,0.1)",
	BorderWidth:      Px(1),
	BorderStyle:      "solid",
	SurfaceTreatment: "flat",
	BackdropBlur:     Px(0),
	NoiseOpacity:     0.0,
}

var surfaceMinimal = Surface{
	ShadowSM:         "0 1px 2px rgba(0,0,0,0.05)",
	ShadowMD:         "0 2px 4px rgba(0,0,0,0.08)",
	ShadowLG:         "0 4px 8px rgba(0,0,0,0.12)",
	BorderWidth:      Px(1),
	BorderStyle:      "solid",
	SurfaceTreatment: "flat",
	BackdropBlur:     Px(0),
	NoiseOpacity:     0.0,
}

var surfaceBrutalist = Surface{
	ShadowSM:         "4px 4px 0px rgba(0,0,0,1)",
	ShadowMD:         "8px 8px 0px rgba(0,0,0,1)",
	ShadowLG:         "12px 12px 0px rgba(0,0,0,1)",
	BorderWidth:      Px(3),
	BorderStyle:      "solid",
	SurfaceTreatment: "flat",
	BackdropBlur:     Px(0),
	NoiseOpacity:     0.0,
}

var surfaceElegant = Surface{
	ShadowSM:         "0 2px 8px rgba(0,0,0,0.08)",
	ShadowMD:         "0 8px 24px rgba(0,0,0,0.12)",
	ShadowLG:         "0 16px 40px rgba(0,0,0,0.16)",
	BorderWidth:      Px(1),
	BorderStyle:      "solid",
	SurfaceTreatment: "gradient",
	BackdropBlur:     Px(0),
	NoiseOpacity:     0.02,
}

var surfaceRetro = Surface{
	ShadowSM:         "2px 2px 0px rgba(0,0,0,0.8)",
	ShadowMD:         "4px 4px 0px rgba(0,0,0,0.8)",
	ShadowLG:         "6px 6px 0px rgba(0,0,0,0.8)",
	BorderWidth:      Px(2),
	BorderStyle:      "solid",
	SurfaceTreatment: "textured",
	BackdropBlur:     Px(0),
	NoiseOpacity:     0.15,
}

var surfaceOrganic = Surface{
	ShadowSM:         "0 3px 6px rgba(0,0,0,0.1)",
	ShadowMD:         "0 6px 12px rgba(0,0,0,0.15)",
	ShadowLG:         "0 12px 24px rgba(0,0,0,0.2)",
	BorderWidth:      Px(0),
	BorderStyle:      "none",
	SurfaceTreatment: "glass",
	BackdropBlur:     Px(8),
	NoiseOpacity:     0.0,
}

var iconMaterial = IconStyle{
	Name:           "material",
	Style:          "filled",
	Weight:         "regular",
	SizeScale:      1.0,
	StrokeWidth:    2,
	CornerRounding: Px(0),
}

var iconIos = IconStyle{
	Name:           "ios",
	Style:          "outlined",
	Weight:         "thin",
	SizeScale:      1.0,
	StrokeWidth:    1.5,
	CornerRounding: Px(4),
}

var iconFluent = IconStyle{
	Name:           "fluent",
	Style:          "outlined",
	Weight:         "regular",
	SizeScale:      1.0,
	StrokeWidth:    2,
	CornerRounding: Px(0),
}

var iconPlayful = IconStyle{
	Name:           "playful",
	Style:          "rounded",
	Weight:         "regular",
	SizeScale:      1.1,
	StrokeWidth:    2,
	CornerRounding: Px(8),
}

var iconCorporate = IconStyle{
	Name:           "corporate",
	Style:          "outlined",
	Weight:         "regular",
	SizeScale:      1.0,
	StrokeWidth:    2,
	CornerRounding: Px(0),
}

var iconDense = IconStyle{
	Name:           "dense",
	Style:          "outlined",
	Weight:         "thin",
	SizeScale:      0.85,
	StrokeWidth:    1.5,
	CornerRounding: Px(0),
}

var iconMinimal = IconStyle{
	Name:           "minimal",
	Style:          "outlined",
	Weight:         "thin",
	SizeScale:      0.9,
	StrokeWidth:    1.5,
	CornerRounding: Px(2),
}

var iconBrutalist = IconStyle{
	Name:           "brutalist",
	Style:          "filled",
	Weight:         "bold",
	SizeScale:      1.2,
	StrokeWidth:    3,
	CornerRounding: Px(0),
}

var iconElegant = IconStyle{
	Name:           "elegant",
	Style:          "outlined",
	Weight:         "thin",
	SizeScale:      1.0,
	StrokeWidth:    1,
	CornerRounding: Px(4),
}

var iconRetro = IconStyle{
	Name:           "retro",
	Style:          "filled",
	Weight:         "regular",
	SizeScale:      1.0,
	StrokeWidth:    2,
	CornerRounding: Px(0),
}

var iconOrganic = IconStyle{
	Name:           "organic",
	Style:          "rounded",
	Weight:         "regular",
	SizeScale:      1.1,
	StrokeWidth:    2,
	CornerRounding: Px(8),
}

var animMaterial = AnimationStyle{
	Name:            "material",
	EntranceEffect:  "fade",
	ExitEffect:      "fade",
	HoverEffect:     "lift",
	HoverScale:      1.02,
	HoverTranslateY: Px(-2),
	ClickEffect:     "ripple",
	LoadingStyle:    "spinner",
	TransitionStyle: "smooth",
	DurationFast:    Sec(0.1),
	DurationNormal:  Sec(0.2),
	DurationSlow:    Sec(0.3),
	Easing:          "cubic-bezier(0.4, 0, 0.2, 1)",
}

var animIos = AnimationStyle{
	Name:            "ios",
	EntranceEffect:  "fade",
	ExitEffect:      "fade",
	HoverEffect:     "scale",
	HoverScale:      1.05,
	HoverTranslateY: Px(0),
	ClickEffect:     "none",
	LoadingStyle:    "spinner",
	TransitionStyle: "snappy",
	DurationFast:    Sec(0.15),
	DurationNormal:  Sec(0.25),
	DurationSlow:    Sec(0.35),
	Easing:          "cubic-bezier(0.42, 0, 0.58, 1)",
}

var animFluent = AnimationStyle{
	Name:            "fluent",
	EntranceEffect:  "fade",
	ExitEffect:      "fade",
	HoverEffect:     "lift",
	HoverScale:      1.02,
	HoverTranslateY: Px(-2),
	ClickEffect:     "ripple",
	LoadingStyle:    "progress",
	TransitionStyle: "smooth",
	DurationFast:    Sec(0.167),
	DurationNormal:  Sec(0.25),
	DurationSlow:    Sec(0.367),
	Easing:          "cubic-bezier(0.1, 0.9, 0.2, 1)",
}

var animPlayful = AnimationStyle{
	Name:            "playful",
	EntranceEffect:  "bounce",
	ExitEffect:      "scale",
	HoverEffect:     "scale",
	HoverScale:      1.05,
	HoverTranslateY: Px(0),
	ClickEffect:     "bounce",
	LoadingStyle:    "pulse",
	TransitionStyle: "bouncy",
	DurationFast:    Sec(0.2),
	DurationNormal:  Sec(0.3),
	DurationSlow:    Sec(0.5),
	Easing:          "cubic-bezier(0.68, -0.55, 0.265, 1.55)",
}

var animCorporate = AnimationStyle{
	Name:            "corporate",
	EntranceEffect:  "fade",
	ExitEffect:      "fade",
	HoverEffect:     "lift",
	HoverScale:      1.01,
	HoverTranslateY: Px(-1),
	ClickEffect:     "none",
	LoadingStyle:    "progress",
	TransitionStyle: "smooth",
	DurationFast:    Sec(0.15),
	DurationNormal:  Sec(0.2),
	DurationSlow:    Sec(0.3),
	Easing:          "cubic-bezier(0.4, 0, 0.2, 1)",
}

var animDense = AnimationStyle{
	Name:            "dense",
	EntranceEffect:  "fade",
	ExitEffect:      "fade",
	HoverEffect:     "none",
	HoverScale:      1.0,
	HoverTranslateY: Px(0),
	ClickEffect:     "none",
	LoadingStyle:    "progress",
	TransitionStyle: "instant",
	DurationFast:    Sec(0.05),
	DurationNormal:  Sec(0.1),
	DurationSlow:    Sec(0.15),
	Easing:          "linear",
}

var animMinimal = AnimationStyle{
	Name:            "minimal",
	EntranceEffect:  "fade",
	ExitEffect:      "fade",
	HoverEffect:     "none",
	HoverScale:      1.0,
	HoverTranslateY: Px(0),
	ClickEffect:     "none",
	LoadingStyle:    "progress",
	TransitionStyle: "smooth",
	DurationFast:    Sec(0.2),
	DurationNormal:  Sec(0.3),
	DurationSlow:    Sec(0.4),
	Easing:          "ease-out",
}

var animBrutalist = AnimationStyle{
	Name:            "brutalist",
	EntranceEffect:  "none",
	ExitEffect:      "none",
	HoverEffect:     "scale",
	HoverScale:      1.05,
	HoverTranslateY: Px(0),
	ClickEffect:     "pulse",
	LoadingStyle:    "spinner",
	TransitionStyle: "instant",
	DurationFast:    Sec(0.05),
	DurationNormal:  Sec(0.1),
	DurationSlow:    Sec(0.15),
	Easing:          "linear",
}

var animElegant = AnimationStyle{
	Name:            "elegant",
	EntranceEffect:  "fade",
	ExitEffect:      "fade",
	HoverEffect:     "lift",
	HoverScale:      1.02,
	HoverTranslateY: Px(-4),
	ClickEffect:     "none",
	LoadingStyle:    "skeleton",
	TransitionStyle: "smooth",
	DurationFast:    Sec(0.4),
	DurationNormal:  Sec(0.6),
	DurationSlow:    Sec(0.8),
	Easing:          "cubic-bezier(0.25, 0.46, 0.45, 0.94)",
}

var animRetro = AnimationStyle{
	Name:            "retro",
	EntranceEffect:  "slide",
	ExitEffect:      "slide",
	HoverEffect:     "glow",
	HoverScale:      1.0,
	HoverTranslateY: Px(0),
	ClickEffect:     "bounce",
	LoadingStyle:    "progress",
	TransitionStyle: "snappy",
	DurationFast:    Sec(0.1),
	DurationNormal:  Sec(0.2),
	DurationSlow:    Sec(0.3),
	Easing:          "cubic-bezier(0.68, -0.55, 0.265, 1.55)",
}

var animOrganic = AnimationStyle{
	Name:            "organic",
	EntranceEffect:  "scale",
	ExitEffect:      "scale",
	HoverEffect:     "glow",
	HoverScale:      1.03,
	HoverTranslateY: Px(-2),
	ClickEffect:     "ripple",
	LoadingStyle:    "pulse",
	TransitionStyle: "bouncy",
	DurationFast:    Sec(0.3),
	DurationNormal:  Sec(0.5),
	DurationSlow:    Sec(0.8),
	Easing:          "cubic-bezier(0.34, 1.56, 0.64, 1)",
}

var interactMaterial = InteractionStyle{
	ButtonHover:    "lift",
	LinkHover:      "underline",
	CardHover:      "lift",
	FocusStyle:     "ring",
	FocusRingWidth: Px(2),
}

var interactIos = InteractionStyle{
	ButtonHover:    "scale",
	LinkHover:      "color",
	CardHover:      "shadow",
	FocusStyle:     "ring",
	FocusRingWidth: Px(2),
}

var interactFluent = InteractionStyle{
	ButtonHover:    "lift",
	LinkHover:      "underline",
	CardHover:      "shadow",
	FocusStyle:     "ring",
	FocusRingWidth: Px(2),
}

var interactPlayful = InteractionStyle{
	ButtonHover:    "glow",
	LinkHover:      "background",
	CardHover:      "lift",
	FocusStyle:     "glow",
	FocusRingWidth: Px(3),
}

var interactCorporate = InteractionStyle{
	ButtonHover:    "darken",
	LinkHover:      "underline",
	CardHover:      "border",
	FocusStyle:     "ring",
	FocusRingWidth: Px(2),
}

var interactDense = InteractionStyle{
	ButtonHover:    "darken",
	LinkHover:      "underline",
	CardHover:      "none",
	FocusStyle:     "outline",
	FocusRingWidth: Px(1),
}

var interactMinimal = InteractionStyle{
	ButtonHover:    "darken",
	LinkHover:      "underline",
	CardHover:      "none",
	FocusStyle:     "underline",
	FocusRingWidth: Px(1),
}

var interactBrutalist = InteractionStyle{
	ButtonHover:    "glow",
	LinkHover:      "background",
	CardHover:      "shadow",
	FocusStyle:     "outline",
	FocusRingWidth: Px(4),
}

var interactElegant = InteractionStyle{
	ButtonHover:    "lift",
	LinkHover:      "color",
	CardHover:      "shadow",
	FocusStyle:     "glow",
	FocusRingWidth: Px(2),
}

var interactRetro = InteractionStyle{
	ButtonHover:    "scale",
	LinkHover:      "background",
	CardHover:      "border",
	FocusStyle:     "outline",
	FocusRingWidth: Px(2),
}

var interactOrganic = InteractionStyle{
	ButtonHover:    "glow",
	LinkHover:      "color",
	CardHover:      "lift",
	FocusStyle:     "glow",
	FocusRingWidth: Px(3),
}
