// SPDX-License-Identifier: MIT
package themes

import "errors"

var (
	// ErrUnknownDesignSystem is returned when a design system name is not registered.
	ErrUnknownDesignSystem = errors.New("unknown design system")
	// ErrUnknownColorPreset is returned by strict lookups of an unregistered preset.
	ErrUnknownColorPreset = errors.New("unknown color preset")
	// ErrUnknownPack is returned when a theme pack name is not registered.
	ErrUnknownPack = errors.New("unknown theme pack")
	// ErrBrokenPackReference is returned when a pack names a design system or preset that does not exist.
	ErrBrokenPackReference = errors.New("theme pack references unregistered entry")
	ErrUnitMismatch        = errors.New("unit mismatch")
)
