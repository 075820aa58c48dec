// SPDX-License-Identifier: MIT
package themes

// DefaultPresetName is the preset every unknown name falls back to
const DefaultPresetName = "default"

// builtinPresets returns the registered color presets in listing order
func builtinPresets() []ThemePreset {
	def := NewPreset("default", "Default", "Neutral zinc theme with professional aesthetics", defaultLight, defaultDark)
	return []ThemePreset{
		def,
		NewPreset("shadcn", "Shadcn", "Shadcn-compatible neutral theme", shadcnLight, shadcnDark),
		NewPreset("blue", "Blue", "Professional blue theme for corporate applications", blueLight, blueDark),
		NewPreset("green", "Green", "Nature-inspired green theme for growth and sustainability", greenLight, greenDark),
		NewPreset("purple", "Purple", "Creative purple theme for premium applications", purpleLight, purpleDark),
		NewPreset("orange", "Orange", "Energetic orange theme for warm, engaging interfaces", orangeLight, orangeDark),
		NewPreset("rose", "Rose", "Friendly rose theme for modern, approachable interfaces", roseLight, roseDark),
		HighContrast(def),
		NewPreset("monochrome_hc", "Monochrome High Contrast",
			"Maximum contrast black and white theme for severe visual impairments", monochromeLight, monochromeDark),
	}
}

var defaultLight = ThemeTokens{
	Background:            HSL(0, 0, 100),
	Foreground:            HSL(240, 10, 4),
	Card:                  HSL(0, 0, 100),
	CardForeground:        HSL(240, 10, 4),
	Popover:               HSL(0, 0, 100),
	PopoverForeground:     HSL(240, 10, 4),
	Primary:               HSL(240, 6, 10),
	PrimaryForeground:     HSL(0, 0, 98),
	Secondary:             HSL(240, 5, 96),
	SecondaryForeground:   HSL(240, 6, 10),
	Muted:                 HSL(240, 5, 96),
	MutedForeground:       HSL(240, 4, 46),
	Accent:                HSL(240, 5, 96),
	AccentForeground:      HSL(240, 6, 10),
	Destructive:           HSL(0, 84, 60),
	DestructiveForeground: HSL(0, 0, 98),
	Success:               HSL(142, 76, 36),
	SuccessForeground:     HSL(0, 0, 98),
	Warning:               HSL(38, 92, 50),
	WarningForeground:     HSL(0, 0, 98),
	Border:                HSL(240, 6, 90),
	Input:                 HSL(240, 6, 90),
	Ring:                  HSL(240, 6, 10),
	Radius:                0.5,
}

var defaultDark = ThemeTokens{
	Background:            HSL(240, 10, 4),
	Foreground:            HSL(0, 0, 98),
	Card:                  HSL(240, 10, 4),
	CardForeground:        HSL(0, 0, 98),
	Popover:               HSL(240, 10, 4),
	PopoverForeground:     HSL(0, 0, 98),
	Primary:               HSL(0, 0, 98),
	PrimaryForeground:     HSL(240, 6, 10),
	Secondary:             HSL(240, 4, 16),
	SecondaryForeground:   HSL(0, 0, 98),
	Muted:                 HSL(240, 4, 16),
	MutedForeground:       HSL(240, 5, 65),
	Accent:                HSL(240, 4, 16),
	AccentForeground:      HSL(0, 0, 98),
	Destructive:           HSL(0, 62, 30),
	DestructiveForeground: HSL(0, 0, 98),
	Success:               HSL(142, 69, 28),
	SuccessForeground:     HSL(0, 0, 98),
	Warning:               HSL(38, 92, 40),
	WarningForeground:     HSL(0, 0, 98),
	Border:                HSL(240, 4, 16),
	Input:                 HSL(240, 4, 16),
	Ring:                  HSL(240, 5, 84),
	Radius:                0.5,
}

var shadcnLight = ThemeTokens{
	Background:            HSL(0, 0, 100),
	Foreground:            HSL(240, 10, 4),
	Card:                  HSL(0, 0, 100),
	CardForeground:        HSL(240, 10, 4),
	Popover:               HSL(0, 0, 100),
	PopoverForeground:     HSL(240, 10, 4),
	Primary:               HSL(240, 6, 10),
	PrimaryForeground:     HSL(0, 0, 98),
	Secondary:             HSL(240, 5, 96),
	SecondaryForeground:   HSL(240, 6, 10),
	Muted:                 HSL(240, 5, 96),
	MutedForeground:       HSL(240, 4, 46),
	Accent:                HSL(240, 5, 96),
	AccentForeground:      HSL(240, 6, 10),
	Destructive:           HSL(0, 84, 60),
	DestructiveForeground: HSL(0, 0, 98),
	Success:               HSL(142, 76, 36),
	SuccessForeground:     HSL(0, 0, 98),
	Warning:               HSL(38, 92, 50),
	WarningForeground:     HSL(0, 0, 98),
	Border:                HSL(240, 6, 90),
	Input:                 HSL(240, 6, 90),
	Ring:                  HSL(240, 6, 10),
	Radius:                0.5,
}

var shadcnDark = ThemeTokens{
	Background:            HSL(240, 10, 4),
	Foreground:            HSL(0, 0, 98),
	Card:                  HSL(240, 10, 4),
	CardForeground:        HSL(0, 0, 98),
	Popover:               HSL(240, 10, 4),
	PopoverForeground:     HSL(0, 0, 98),
	Primary:               HSL(0, 0, 98),
	PrimaryForeground:     HSL(240, 6, 10),
	Secondary:             HSL(240, 4, 16),
	SecondaryForeground:   HSL(0, 0, 98),
	Muted:                 HSL(240, 4, 16),
	MutedForeground:       HSL(240, 5, 65),
	Accent:                HSL(240, 4, 16),
	AccentForeground:      HSL(0, 0, 98),
	Destructive:           HSL(0, 62, 30),
	DestructiveForeground: HSL(0, 0, 98),
	Success:               HSL(142, 69, 28),
	SuccessForeground:     HSL(0, 0, 98),
	Warning:               HSL(38, 92, 40),
	WarningForeground:     HSL(0, 0, 98),
	Border:                HSL(240, 4, 16),
	Input:                 HSL(240, 4, 16),
	Ring:                  HSL(240, 5, 84),
	Radius:                0.5,
}

var blueLight = ThemeTokens{
	Background:            HSL(0, 0, 100),
	Foreground:            HSL(222, 47, 11),
	Card:                  HSL(0, 0, 100),
	CardForeground:        HSL(222, 47, 11),
	Popover:               HSL(0, 0, 100),
	PopoverForeground:     HSL(222, 47, 11),
	Primary:               HSL(221, 83, 53),
	PrimaryForeground:     HSL(210, 40, 98),
	Secondary:             HSL(210, 40, 96),
	SecondaryForeground:   HSL(222, 47, 11),
	Muted:                 HSL(210, 40, 96),
	MutedForeground:       HSL(215, 16, 47),
	Accent:                HSL(210, 40, 96),
	AccentForeground:      HSL(222, 47, 11),
	Destructive:           HSL(0, 84, 60),
	DestructiveForeground: HSL(0, 0, 98),
	Success:               HSL(142, 76, 36),
	SuccessForeground:     HSL(0, 0, 98),
	Warning:               HSL(38, 92, 50),
	WarningForeground:     HSL(0, 0, 98),
	Border:                HSL(214, 32, 91),
	Input:                 HSL(214, 32, 91),
	Ring:                  HSL(221, 83, 53),
	Radius:                0.5,
}

var blueDark = ThemeTokens{
	Background:            HSL(222, 47, 11),
	Foreground:            HSL(210, 40, 98),
	Card:                  HSL(222, 47, 11),
	CardForeground:        HSL(210, 40, 98),
	Popover:               HSL(222, 47, 11),
	PopoverForeground:     HSL(210, 40, 98),
	Primary:               HSL(217, 91, 60),
	PrimaryForeground:     HSL(222, 47, 11),
	Secondary:             HSL(217, 33, 17),
	SecondaryForeground:   HSL(210, 40, 98),
	Muted:                 HSL(217, 33, 17),
	MutedForeground:       HSL(215, 20, 65),
	Accent:                HSL(217, 33, 17),
	AccentForeground:      HSL(210, 40, 98),
	Destructive:           HSL(0, 62, 30),
	DestructiveForeground: HSL(0, 0, 98),
	Success:               HSL(142, 69, 28),
	SuccessForeground:     HSL(0, 0, 98),
	Warning:               HSL(38, 92, 40),
	WarningForeground:     HSL(0, 0, 98),
	Border:                HSL(217, 33, 17),
	Input:                 HSL(217, 33, 17),
	Ring:                  HSL(224, 76, 48),
	Radius:                0.5,
}

var greenLight = ThemeTokens{
	Background:            HSL(0, 0, 100),
	Foreground:            HSL(140, 40, 10),
	Card:                  HSL(0, 0, 100),
	CardForeground:        HSL(140, 40, 10),
	Popover:               HSL(0, 0, 100),
	PopoverForeground:     HSL(140, 40, 10),
	Primary:               HSL(142, 76, 36),
	PrimaryForeground:     HSL(138, 76, 97),
	Secondary:             HSL(138, 30, 95),
	SecondaryForeground:   HSL(140, 40, 10),
	Muted:                 HSL(138, 30, 95),
	MutedForeground:       HSL(140, 15, 45),
	Accent:                HSL(138, 30, 95),
	AccentForeground:      HSL(140, 40, 10),
	Destructive:           HSL(0, 84, 60),
	DestructiveForeground: HSL(0, 0, 98),
	Success:               HSL(142, 76, 36),
	SuccessForeground:     HSL(0, 0, 98),
	Warning:               HSL(38, 92, 50),
	WarningForeground:     HSL(0, 0, 98),
	Border:                HSL(140, 20, 88),
	Input:                 HSL(140, 20, 88),
	Ring:                  HSL(142, 76, 36),
	Radius:                0.5,
}

var greenDark = ThemeTokens{
	Background:            HSL(140, 40, 8),
	Foreground:            HSL(138, 76, 97),
	Card:                  HSL(140, 40, 8),
	CardForeground:        HSL(138, 76, 97),
	Popover:               HSL(140, 40, 8),
	PopoverForeground:     HSL(138, 76, 97),
	Primary:               HSL(142, 69, 45),
	PrimaryForeground:     HSL(140, 40, 8),
	Secondary:             HSL(140, 30, 16),
	SecondaryForeground:   HSL(138, 76, 97),
	Muted:                 HSL(140, 30, 16),
	MutedForeground:       HSL(140, 20, 60),
	Accent:                HSL(140, 30, 16),
	AccentForeground:      HSL(138, 76, 97),
	Destructive:           HSL(0, 62, 30),
	DestructiveForeground: HSL(0, 0, 98),
	Success:               HSL(142, 69, 28),
	SuccessForeground:     HSL(0, 0, 98),
	Warning:               HSL(38, 92, 40),
	WarningForeground:     HSL(0, 0, 98),
	Border:                HSL(140, 30, 16),
	Input:                 HSL(140, 30, 16),
	Ring:                  HSL(142, 69, 45),
	Radius:                0.5,
}

var purpleLight = ThemeTokens{
	Background:            HSL(0, 0, 100),
	Foreground:            HSL(270, 50, 11),
	Card:                  HSL(0, 0, 100),
	CardForeground:        HSL(270, 50, 11),
	Popover:               HSL(0, 0, 100),
	PopoverForeground:     HSL(270, 50, 11),
	Primary:               HSL(270, 50, 50),
	PrimaryForeground:     HSL(270, 80, 98),
	Secondary:             HSL(270, 30, 96),
	SecondaryForeground:   HSL(270, 50, 11),
	Muted:                 HSL(270, 30, 96),
	MutedForeground:       HSL(270, 15, 45),
	Accent:                HSL(270, 30, 96),
	AccentForeground:      HSL(270, 50, 11),
	Destructive:           HSL(0, 84, 60),
	DestructiveForeground: HSL(0, 0, 98),
	Success:               HSL(142, 76, 36),
	SuccessForeground:     HSL(0, 0, 98),
	Warning:               HSL(38, 92, 50),
	WarningForeground:     HSL(0, 0, 98),
	Border:                HSL(270, 20, 90),
	Input:                 HSL(270, 20, 90),
	Ring:                  HSL(270, 50, 50),
	Radius:                0.5,
}

var purpleDark = ThemeTokens{
	Background:            HSL(270, 50, 8),
	Foreground:            HSL(270, 80, 98),
	Card:                  HSL(270, 50, 8),
	CardForeground:        HSL(270, 80, 98),
	Popover:               HSL(270, 50, 8),
	PopoverForeground:     HSL(270, 80, 98),
	Primary:               HSL(270, 60, 60),
	PrimaryForeground:     HSL(270, 50, 8),
	Secondary:             HSL(270, 30, 16),
	SecondaryForeground:   HSL(270, 80, 98),
	Muted:                 HSL(270, 30, 16),
	MutedForeground:       HSL(270, 20, 60),
	Accent:                HSL(270, 30, 16),
	AccentForeground:      HSL(270, 80, 98),
	Destructive:           HSL(0, 62, 30),
	DestructiveForeground: HSL(0, 0, 98),
	Success:               HSL(142, 69, 28),
	SuccessForeground:     HSL(0, 0, 98),
	Warning:               HSL(38, 92, 40),
	WarningForeground:     HSL(0, 0, 98),
	Border:                HSL(270, 30, 16),
	Input:                 HSL(270, 30, 16),
	Ring:                  HSL(270, 60, 60),
	Radius:                0.5,
}

var orangeLight = ThemeTokens{
	Background:            HSL(0, 0, 100),
	Foreground:            HSL(20, 50, 10),
	Card:                  HSL(0, 0, 100),
	CardForeground:        HSL(20, 50, 10),
	Popover:               HSL(0, 0, 100),
	PopoverForeground:     HSL(20, 50, 10),
	Primary:               HSL(24, 95, 53),
	PrimaryForeground:     HSL(24, 100, 98),
	Secondary:             HSL(24, 30, 95),
	SecondaryForeground:   HSL(20, 50, 10),
	Muted:                 HSL(24, 30, 95),
	MutedForeground:       HSL(20, 15, 45),
	Accent:                HSL(24, 30, 95),
	AccentForeground:      HSL(20, 50, 10),
	Destructive:           HSL(0, 84, 60),
	DestructiveForeground: HSL(0, 0, 98),
	Success:               HSL(142, 76, 36),
	SuccessForeground:     HSL(0, 0, 98),
	Warning:               HSL(38, 92, 50),
	WarningForeground:     HSL(0, 0, 98),
	Border:                HSL(24, 25, 88),
	Input:                 HSL(24, 25, 88),
	Ring:                  HSL(24, 95, 53),
	Radius:                0.5,
}

var orangeDark = ThemeTokens{
	Background:            HSL(20, 50, 8),
	Foreground:            HSL(24, 100, 98),
	Card:                  HSL(20, 50, 8),
	CardForeground:        HSL(24, 100, 98),
	Popover:               HSL(20, 50, 8),
	PopoverForeground:     HSL(24, 100, 98),
	Primary:               HSL(24, 95, 55),
	PrimaryForeground:     HSL(20, 50, 8),
	Secondary:             HSL(20, 30, 16),
	SecondaryForeground:   HSL(24, 100, 98),
	Muted:                 HSL(20, 30, 16),
	MutedForeground:       HSL(20, 20, 60),
	Accent:                HSL(20, 30, 16),
	AccentForeground:      HSL(24, 100, 98),
	Destructive:           HSL(0, 62, 30),
	DestructiveForeground: HSL(0, 0, 98),
	Success:               HSL(142, 69, 28),
	SuccessForeground:     HSL(0, 0, 98),
	Warning:               HSL(38, 92, 40),
	WarningForeground:     HSL(0, 0, 98),
	Border:                HSL(20, 30, 16),
	Input:                 HSL(20, 30, 16),
	Ring:                  HSL(24, 95, 55),
	Radius:                0.5,
}

var roseLight = ThemeTokens{
	Background:            HSL(0, 0, 100),
	Foreground:            HSL(346, 40, 11),
	Card:                  HSL(0, 0, 100),
	CardForeground:        HSL(346, 40, 11),
	Popover:               HSL(0, 0, 100),
	PopoverForeground:     HSL(346, 40, 11),
	Primary:               HSL(346, 77, 50),
	PrimaryForeground:     HSL(346, 100, 98),
	Secondary:             HSL(346, 30, 96),
	SecondaryForeground:   HSL(346, 40, 11),
	Muted:                 HSL(346, 30, 96),
	MutedForeground:       HSL(346, 15, 45),
	Accent:                HSL(346, 30, 96),
	AccentForeground:      HSL(346, 40, 11),
	Destructive:           HSL(0, 84, 60),
	DestructiveForeground: HSL(0, 0, 98),
	Success:               HSL(142, 76, 36),
	SuccessForeground:     HSL(0, 0, 98),
	Warning:               HSL(38, 92, 50),
	WarningForeground:     HSL(0, 0, 98),
	Border:                HSL(346, 20, 90),
	Input:                 HSL(346, 20, 90),
	Ring:                  HSL(346, 77, 50),
	Radius:                0.5,
}

var roseDark = ThemeTokens{
	Background:            HSL(346, 40, 8),
	Foreground:            HSL(346, 100, 98),
	Card:                  HSL(346, 40, 8),
	CardForeground:        HSL(346, 100, 98),
	Popover:               HSL(346, 40, 8),
	PopoverForeground:     HSL(346, 100, 98),
	Primary:               HSL(346, 77, 55),
	PrimaryForeground:     HSL(346, 40, 8),
	Secondary:             HSL(346, 30, 16),
	SecondaryForeground:   HSL(346, 100, 98),
	Muted:                 HSL(346, 30, 16),
	MutedForeground:       HSL(346, 20, 60),
	Accent:                HSL(346, 30, 16),
	AccentForeground:      HSL(346, 100, 98),
	Destructive:           HSL(0, 62, 30),
	DestructiveForeground: HSL(0, 0, 98),
	Success:               HSL(142, 69, 28),
	SuccessForeground:     HSL(0, 0, 98),
	Warning:               HSL(38, 92, 40),
	WarningForeground:     HSL(0, 0, 98),
	Border:                HSL(346, 30, 16),
	Input:                 HSL(346, 30, 16),
	Ring:                  HSL(346, 77, 55),
	Radius:                0.5,
}
