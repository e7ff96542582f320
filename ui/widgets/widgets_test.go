package widgets

import (
	"errors"
	"image/color"
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"

	"latex-for-typora/models"
	appTheme "latex-for-typora/ui/theme"
)

func TestActionBar_Callbacks(t *testing.T) {
	test.NewTempApp(t)

	var calls []string
	bar := NewActionBar()
	bar.OnConvert = func() { calls = append(calls, "convert") }
	bar.OnStrip = func() { calls = append(calls, "strip") }
	bar.OnCopy = func() { calls = append(calls, "copy") }
	bar.OnClear = func() { calls = append(calls, "clear") }
	test.NewTempWindow(t, bar)

	for _, b := range bar.Buttons() {
		test.Tap(b)
	}

	want := []string{"convert", "strip", "copy", "clear"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, calls[i], want[i])
		}
	}
}

func TestActionBar_NilCallbacks(t *testing.T) {
	test.NewTempApp(t)
	bar := NewActionBar()

	for _, b := range bar.Buttons() {
		test.Tap(b) // must not panic
	}
}

func TestActionBar_Labels(t *testing.T) {
	test.NewTempApp(t)
	bar := NewActionBar()

	tests := []struct {
		button *ActionButton
		text   string
	}{
		{bar.ConvertButton, "Convert"},
		{bar.StripButton, "Remove blank lines"},
		{bar.CopyButton, "Copy result"},
		{bar.ClearButton, "Clear"},
	}
	for _, tt := range tests {
		if tt.button.Text != tt.text {
			t.Errorf("button text = %q, want %q", tt.button.Text, tt.text)
		}
	}
	if bar.ConvertButton.ColorName != appTheme.ColorNameConvert {
		t.Errorf("convert button color = %q", bar.ConvertButton.ColorName)
	}
}

func TestActionButton_Disabled(t *testing.T) {
	test.NewTempApp(t)

	tapped := 0
	b := NewActionButton("Go", appTheme.ColorNameConvert, func() { tapped++ })
	test.NewTempWindow(t, b)

	b.SetDisabled(true)
	test.Tap(b)
	if tapped != 0 {
		t.Errorf("disabled button fired %d times", tapped)
	}

	b.SetDisabled(false)
	test.Tap(b)
	if tapped != 1 {
		t.Errorf("enabled button fired %d times, want 1", tapped)
	}
	if b.MinSize().Height < 36 {
		t.Errorf("button height %v below 36", b.MinSize().Height)
	}
}

func TestActionButton_DisabledFadesFill(t *testing.T) {
	a := test.NewTempApp(t)
	a.Settings().SetTheme(appTheme.New("light"))

	b := NewActionButton("Go", appTheme.ColorNameConvert, nil)
	test.NewTempWindow(t, b)
	r := test.WidgetRenderer(b).(*actionButtonRenderer)

	b.SetDisabled(true)
	got := color.NRGBAModel.Convert(r.bg.FillColor).(color.NRGBA)
	want := appTheme.ColorConvert
	if got.A != disabledAlpha || got.R != want.R || got.G != want.G || got.B != want.B {
		t.Errorf("disabled fill = %v, want %v at alpha %d", got, want, disabledAlpha)
	}

	b.SetDisabled(false)
	if got := color.NRGBAModel.Convert(r.bg.FillColor).(color.NRGBA); got.A != 255 {
		t.Errorf("enabled fill alpha = %d, want 255", got.A)
	}
}

func TestEditorPanel(t *testing.T) {
	test.NewTempApp(t)

	p := NewEditorPanel("Input LaTeX", "paste here")
	test.NewTempWindow(t, p)

	if !p.Entry.MultiLine {
		t.Error("editor entry should be multi-line")
	}
	if p.Entry.PlaceHolder != "paste here" {
		t.Errorf("placeholder = %q", p.Entry.PlaceHolder)
	}
	entryMin := p.Entry.MinSize()
	if got := p.MinSize(); got.Width <= entryMin.Width || got.Height <= entryMin.Height {
		t.Errorf("panel min size %v should exceed entry min size %v", got, entryMin)
	}
}

func TestActionColor(t *testing.T) {
	tests := []struct {
		action *models.Action
		want   string
	}{
		{models.NewAction(models.ActionConvert, "", ""), string(appTheme.ColorNameConvert)},
		{models.NewAction(models.ActionStripBlank, "", ""), string(appTheme.ColorNameStrip)},
		{models.NewAction(models.ActionCopy, "", ""), string(appTheme.ColorNameCopy)},
		{models.NewAction(models.ActionClear, "", ""), string(appTheme.ColorNameClear)},
	}
	for _, tt := range tests {
		if got := ActionColor(tt.action); string(got) != tt.want {
			t.Errorf("ActionColor(%s) = %q, want %q", tt.action.Kind, got, tt.want)
		}
	}

	failed := models.NewAction(models.ActionCopy, "x", "x")
	failed.Fail(errors.New("locked"))
	if got := ActionColor(failed); got != theme.ColorNameError {
		t.Errorf("failed action color = %q, want error color", got)
	}
}

func TestActionBadge_SetAction(t *testing.T) {
	test.NewTempApp(t)

	badge := NewActionBadge(nil)
	test.NewTempWindow(t, badge)
	empty := badge.MinSize()

	badge.SetAction(models.NewAction(models.ActionStripBlank, "a", "b"))
	if badge.MinSize().Width <= empty.Width {
		t.Error("badge should grow once it shows a status text")
	}
}
