// SPDX-License-Identifier: MIT
package themes

// ThemeTokens is the complete set of color roles for one mode
type ThemeTokens struct {
	Background            ColorScale
	Foreground            ColorScale
	Card                  ColorScale
	CardForeground        ColorScale
	Popover               ColorScale
	PopoverForeground     ColorScale
	Primary               ColorScale
	PrimaryForeground     ColorScale
	Secondary             ColorScale
	SecondaryForeground   ColorScale
	Muted                 ColorScale
	MutedForeground       ColorScale
	Accent                ColorScale
	AccentForeground      ColorScale
	Destructive           ColorScale
	DestructiveForeground ColorScale
	Success               ColorScale
	SuccessForeground     ColorScale
	Warning               ColorScale
	WarningForeground     ColorScale
	Border                ColorScale
	Input                 ColorScale
	Ring                  ColorScale

	// Extension roles, filled in by withExtensions when a preset is registered.
	Info           ColorScale
	InfoForeground ColorScale
	Link           ColorScale
	Code           ColorScale
	CodeForeground ColorScale
	Selection      ColorScale

	Radius float64 // rem
}

// Role is a named color token as it appears in CSS (without the leading --).
type Role struct {
	Name  string
	Color ColorScale
}

// CoreRoles returns the shadcn-compatible roles in emission order.
func (t ThemeTokens) CoreRoles() []Role {
	return []Role{
		{"background", t.Background},
		{"foreground", t.Foreground},
		{"card", t.Card},
		{"card-foreground", t.CardForeground},
		{"popover", t.Popover},
		{"popover-foreground", t.PopoverForeground},
		{"primary", t.Primary},
		{"primary-foreground", t.PrimaryForeground},
		{"secondary", t.Secondary},
		{"secondary-foreground", t.SecondaryForeground},
		{"muted", t.Muted},
		{"muted-foreground", t.MutedForeground},
		{"accent", t.Accent},
		{"accent-foreground", t.AccentForeground},
		{"destructive", t.Destructive},
		{"destructive-foreground", t.DestructiveForeground},
		{"success", t.Success},
		{"success-foreground", t.SuccessForeground},
		{"warning", t.Warning},
		{"warning-foreground", t.WarningForeground},
		{"border", t.Border},
		{"input", t.Input},
		{"ring", t.Ring},
	}
}

// ExtensionRoles returns the roles beyond the shadcn set.
func (t ThemeTokens) ExtensionRoles() []Role {
	return []Role{
		{"info", t.Info},
		{"info-foreground", t.InfoForeground},
		{"link", t.Link},
		{"code", t.Code},
		{"code-foreground", t.CodeForeground},
		{"selection", t.Selection},
	}
}

// AliasRoles returns the shadcn/ui sidebar and chart aliases.
func (t ThemeTokens) AliasRoles() []Role {
	return []Role{
		{"sidebar-background", t.Background},
		{"sidebar-foreground", t.Foreground},
		{"sidebar-primary", t.Primary},
		{"sidebar-primary-foreground", t.PrimaryForeground},
		{"sidebar-accent", t.Accent},
		{"sidebar-accent-foreground", t.AccentForeground},
		{"sidebar-border", t.Border},
		{"sidebar-ring", t.Ring},
		{"chart-1", t.Primary},
		{"chart-2", t.Secondary},
		{"chart-3", t.Accent},
		{"chart-4", t.Success},
		{"chart-5", t.Warning},
	}
}

// Roles returns every color role, core first.
func (t ThemeTokens) Roles() []Role {
	return append(t.CoreRoles(), t.ExtensionRoles()...)
}

// Color looks up a role by its CSS name
func (t ThemeTokens) Color(name string) (ColorScale, bool) {
	for _, r := range t.Roles() {
		if r.Name == name {
			return r.Color, true
		}
	}
	return ColorScale{}, false
}

// withExtensions derives the extension roles from the core roles.
func (t ThemeTokens) withExtensions(dark bool) ThemeTokens {
	if dark {
		t.Info = HSL(217, 91, 65)
		t.InfoForeground = t.Background
		t.Selection = t.Primary.WithLightness(30)
	} else {
		t.Info = HSL(217, 91, 60)
		t.InfoForeground = HSL(0, 0, 100)
		t.Selection = t.Primary.WithLightness(85)
	}
	t.Link = t.Primary
	t.Code = t.Muted
	t.CodeForeground = t.Foreground
	return t
}

// ThemePreset is a named pair of light and dark token sets
type ThemePreset struct {
	Name        string
	DisplayName string
	Description string
	Light       ThemeTokens
	Dark        ThemeTokens
}

// Tokens returns the token set for a mode. Anything other than "dark" is light.
func (p ThemePreset) Tokens(mode string) ThemeTokens {
	if mode == "dark" {
		return p.Dark
	}
	return p.Light
}

func (p ThemePreset) info() Info {
	return Info{Name: p.Name, DisplayName: p.DisplayName, Description: p.Description}
}

// NewPreset registers the derived extension roles on both token sets.
func NewPreset(name, displayName, description string, light, dark ThemeTokens) ThemePreset {
	return ThemePreset{
		Name:        name,
		DisplayName: displayName,
		Description: description,
		Light:       light.withExtensions(false),
		Dark:        dark.withExtensions(true),
	}
}
