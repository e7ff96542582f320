// Package theme holds the converter window's palette and Fyne theme.
package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Custom theme color names
const (
	ColorNamePanel     fyne.ThemeColorName = "panel"
	ColorNameTextMuted fyne.ThemeColorName = "textMuted"

	// One per action button
	ColorNameConvert fyne.ThemeColorName = "actionConvert"
	ColorNameStrip   fyne.ThemeColorName = "actionStrip"
	ColorNameCopy    fyne.ThemeColorName = "actionCopy"
	ColorNameClear   fyne.ThemeColorName = "actionClear"
	ColorNameOnColor fyne.ThemeColorName = "onColor"
)

// Custom size names
const (
	SizeNamePanelRadius  fyne.ThemeSizeName = "panelRadius"
	SizeNamePanelPadding fyne.ThemeSizeName = "panelPadding"
	SizeNameButtonRadius fyne.ThemeSizeName = "buttonRadius"
)

// TyporaTheme follows the system variant unless one is forced.
type TyporaTheme struct {
	forced  bool
	variant fyne.ThemeVariant
}

var _ fyne.Theme = (*TyporaTheme)(nil)

// New returns a theme for "system", "light" or "dark".
func New(mode string) *TyporaTheme {
	switch mode {
	case "light":
		return &TyporaTheme{forced: true, variant: theme.VariantLight}
	case "dark":
		return &TyporaTheme{forced: true, variant: theme.VariantDark}
	default:
		return &TyporaTheme{}
	}
}

// Color returns the color for the specified name
func (t *TyporaTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.forced {
		variant = t.variant
	}
	dark := variant == theme.VariantDark

	switch name {
	case theme.ColorNameBackground:
		return pick(dark, ColorBackgroundDark, ColorBackground)
	case theme.ColorNameForeground:
		return pick(dark, ColorTextDark, ColorText)
	case theme.ColorNamePrimary, theme.ColorNameFocus, theme.ColorNameHyperlink:
		return pick(dark, ColorInputBorder, ColorFocusBorder)
	case theme.ColorNameButton:
		return ColorConvert
	case theme.ColorNameForegroundOnPrimary:
		return ColorOnColor

	case theme.ColorNameInputBackground, theme.ColorNameMenuBackground,
		theme.ColorNameOverlayBackground, theme.ColorNameHeaderBackground:
		return pick(dark, ColorPanelDark, ColorPanel)
	case theme.ColorNameInputBorder:
		return ColorInputBorder
	case theme.ColorNamePlaceHolder:
		return pick(dark, ColorTextMutedDark, ColorTextMuted)
	case theme.ColorNameSelection:
		return pick(dark, ColorSelectionDark, ColorSelection)

	case theme.ColorNameDisabled:
		return pick(dark, ColorTextMutedDark, ColorTextMuted)
	case theme.ColorNameDisabledButton:
		return pick(dark, ColorDisabledDark, ColorDisabledLight)

	case theme.ColorNameError:
		return ColorClear
	case theme.ColorNameSuccess:
		return ColorCopy

	case ColorNamePanel:
		return pick(dark, ColorPanelDark, ColorPanel)
	case ColorNameTextMuted:
		return pick(dark, ColorTextMutedDark, ColorTextMuted)
	case ColorNameConvert:
		return ColorConvert
	case ColorNameStrip:
		return ColorStrip
	case ColorNameCopy:
		return ColorCopy
	case ColorNameClear:
		return ColorClear
	case ColorNameOnColor:
		return ColorOnColor

	default:
		return theme.DefaultTheme().Color(name, variant)
	}
}

// Font returns the font for the specified style
func (t *TyporaTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns the icon for the specified name
func (t *TyporaTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns the size for the specified name
func (t *TyporaTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 8
	case theme.SizeNameInnerPadding:
		return 8
	case theme.SizeNameText:
		return 14
	case theme.SizeNameSubHeadingText:
		return 16
	case theme.SizeNameInputBorder:
		return 2
	case theme.SizeNameInputRadius:
		return 8

	case SizeNamePanelRadius:
		return 10
	case SizeNamePanelPadding:
		return 15
	case SizeNameButtonRadius:
		return 6

	default:
		return theme.DefaultTheme().Size(name)
	}
}

func pick(dark bool, darkColor, lightColor color.Color) color.Color {
	if dark {
		return darkColor
	}
	return lightColor
}
