package theme

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

func TestNew_ForcedVariant(t *testing.T) {
	dark := New("dark")
	if got := dark.Color(theme.ColorNameBackground, theme.VariantLight); got != ColorBackgroundDark {
		t.Errorf("dark theme background = %v, want %v", got, ColorBackgroundDark)
	}

	light := New("light")
	if got := light.Color(theme.ColorNameBackground, theme.VariantDark); got != ColorBackground {
		t.Errorf("light theme background = %v, want %v", got, ColorBackground)
	}
}

func TestNew_SystemFollowsVariant(t *testing.T) {
	th := New("system")
	if got := th.Color(theme.ColorNameForeground, theme.VariantDark); got != ColorTextDark {
		t.Errorf("foreground(dark) = %v, want %v", got, ColorTextDark)
	}
	if got := th.Color(theme.ColorNameForeground, theme.VariantLight); got != ColorText {
		t.Errorf("foreground(light) = %v, want %v", got, ColorText)
	}
}

func TestActionColors(t *testing.T) {
	th := New("system")
	tests := []struct {
		name fyne.ThemeColorName
		want color.Color
	}{
		{ColorNameConvert, ColorConvert},
		{ColorNameStrip, ColorStrip},
		{ColorNameCopy, ColorCopy},
		{ColorNameClear, ColorClear},
	}
	for _, tt := range tests {
		for _, v := range []fyne.ThemeVariant{theme.VariantLight, theme.VariantDark} {
			if got := th.Color(tt.name, v); got != tt.want {
				t.Errorf("%s variant %d = %v, want %v", tt.name, v, got, tt.want)
			}
		}
	}
}

func TestSizes(t *testing.T) {
	th := New("")
	if got := th.Size(SizeNamePanelRadius); got != 10 {
		t.Errorf("panel radius = %v, want 10", got)
	}
	if got := th.Size(theme.SizeNameScrollBar); got != theme.DefaultTheme().Size(theme.SizeNameScrollBar) {
		t.Errorf("unknown sizes should fall back to the default theme, got %v", got)
	}
}

func TestDarken(t *testing.T) {
	got := Darken(color.NRGBA{R: 200, G: 100, B: 0, A: 255}, 0.5)
	want := color.NRGBA{R: 100, G: 50, B: 0, A: 255}
	if got != want {
		t.Errorf("Darken = %v, want %v", got, want)
	}
}

func TestWithAlpha(t *testing.T) {
	got := WithAlpha(ColorConvert, 128).(color.NRGBA)
	if got.A != 128 || got.R != ColorConvert.R {
		t.Errorf("WithAlpha = %v", got)
	}
}
