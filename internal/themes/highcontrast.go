// SPDX-License-Identifier: MIT
package themes

// HighContrast derives a high contrast variant of a preset. Only the primary
// and accent hues survive; everything else is pushed toward black and white.
func HighContrast(base ThemePreset) ThemePreset {
	name := base.Name
	if name == DefaultPresetName {
		name = "high_contrast"
	} else {
		name += "_hc"
	}
	return NewPreset(
		name,
		base.DisplayName+" (High Contrast)",
		"High contrast version of "+base.DisplayName+" for enhanced accessibility",
		highContrastLight(base.Light),
		highContrastDark(base.Dark),
	)
}

func highContrastLight(base ThemeTokens) ThemeTokens {
	return ThemeTokens{
		Background:            HSL(0, 0, 100),
		Foreground:            HSL(0, 0, 0),
		Card:                  HSL(0, 0, 98),
		CardForeground:        HSL(0, 0, 0),
		Popover:               HSL(0, 0, 100),
		PopoverForeground:     HSL(0, 0, 0),
		Primary:               HSL(base.Primary.H, 100, 25),
		PrimaryForeground:     HSL(0, 0, 100),
		Secondary:             HSL(0, 0, 10),
		SecondaryForeground:   HSL(0, 0, 100),
		Muted:                 HSL(0, 0, 90),
		MutedForeground:       HSL(0, 0, 15),
		Accent:                HSL(base.Accent.H, 100, 20),
		AccentForeground:      HSL(0, 0, 100),
		Destructive:           HSL(0, 100, 30),
		DestructiveForeground: HSL(0, 0, 100),
		Success:               HSL(120, 100, 25),
		SuccessForeground:     HSL(0, 0, 100),
		Warning:               HSL(45, 100, 30),
		WarningForeground:     HSL(0, 0, 0),
		Border:                HSL(0, 0, 20),
		Input:                 HSL(0, 0, 95),
		Ring:                  HSL(base.Primary.H, 100, 30),
		Radius:                base.Radius,
	}
}

func highContrastDark(base ThemeTokens) ThemeTokens {
	return ThemeTokens{
		Background:            HSL(0, 0, 0),
		Foreground:            HSL(0, 0, 100),
		Card:                  HSL(0, 0, 3),
		CardForeground:        HSL(0, 0, 100),
		Popover:               HSL(0, 0, 0),
		PopoverForeground:     HSL(0, 0, 100),
		Primary:               HSL(base.Primary.H, 100, 75),
		PrimaryForeground:     HSL(0, 0, 0),
		Secondary:             HSL(0, 0, 90),
		SecondaryForeground:   HSL(0, 0, 0),
		Muted:                 HSL(0, 0, 10),
		MutedForeground:       HSL(0, 0, 85),
		Accent:                HSL(base.Accent.H, 100, 80),
		AccentForeground:      HSL(0, 0, 0),
		Destructive:           HSL(0, 100, 70),
		DestructiveForeground: HSL(0, 0, 0),
		Success:               HSL(120, 100, 75),
		SuccessForeground:     HSL(0, 0, 0),
		Warning:               HSL(45, 100, 70),
		WarningForeground:     HSL(0, 0, 0),
		Border:                HSL(0, 0, 80),
		Input:                 HSL(0, 0, 5),
		Ring:                  HSL(base.Primary.H, 100, 70),
		Radius:                base.Radius,
	}
}

var monochromeLight = ThemeTokens{
	Background:            HSL(0, 0, 100),
	Foreground:            HSL(0, 0, 0),
	Card:                  HSL(0, 0, 100),
	CardForeground:        HSL(0, 0, 0),
	Popover:               HSL(0, 0, 100),
	PopoverForeground:     HSL(0, 0, 0),
	Primary:               HSL(0, 0, 0),
	PrimaryForeground:     HSL(0, 0, 100),
	Secondary:             HSL(0, 0, 20),
	SecondaryForeground:   HSL(0, 0, 100),
	Muted:                 HSL(0, 0, 95),
	MutedForeground:       HSL(0, 0, 0),
	Accent:                HSL(0, 0, 0),
	AccentForeground:      HSL(0, 0, 100),
	Destructive:           HSL(0, 0, 0),
	DestructiveForeground: HSL(0, 0, 100),
	Success:               HSL(0, 0, 0),
	SuccessForeground:     HSL(0, 0, 100),
	Warning:               HSL(0, 0, 0),
	WarningForeground:     HSL(0, 0, 100),
	Border:                HSL(0, 0, 0),
	Input:                 HSL(0, 0, 100),
	Ring:                  HSL(0, 0, 0),
	Radius:                0.5,
}

var monochromeDark = ThemeTokens{
	Background:            HSL(0, 0, 0),
	Foreground:            HSL(0, 0, 100),
	Card:                  HSL(0, 0, 0),
	CardForeground:        HSL(0, 0, 100),
	Popover:               HSL(0, 0, 0),
	PopoverForeground:     HSL(0, 0, 100),
	Primary:               HSL(0, 0, 100),
	PrimaryForeground:     HSL(0, 0, 0),
	Secondary:             HSL(0, 0, 80),
	SecondaryForeground:   HSL(0, 0, 0),
	Muted:                 HSL(0, 0, 5),
	MutedForeground:       HSL(0, 0, 100),
	Accent:                HSL(0, 0, 100),
	AccentForeground:      HSL(0, 0, 0),
	Destructive:           HSL(0, 0, 100),
	DestructiveForeground: HSL(0, 0, 0),
	Success:               HSL(0, 0, 100),
	SuccessForeground:     HSL(0, 0, 0),
	Warning:               HSL(0, 0, 100),
	WarningForeground:     HSL(0, 0, 0),
	Border:                HSL(0, 0, 100),
	Input:                 HSL(0, 0, 0),
	Ring:                  HSL(0, 0, 100),
	Radius:                0.5,
}
