package dialogs

import (
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"latex-for-typora/models"
)

func TestParseHistoryLimit(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"100", 100, false},
		{" 5 ", 5, false},
		{"0", 0, true},
		{"10001", 0, true},
		{"many", 0, true},
	}
	for _, tt := range tests {
		got, err := parseHistoryLimit(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseHistoryLimit(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("parseHistoryLimit(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSettingsDialog_Save(t *testing.T) {
	a := test.NewTempApp(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg, err := models.LoadConfigFrom(path, nil)
	require.NoError(t, err)

	d := NewSettingsDialog(a.NewWindow("test"), cfg)
	d.build()
	d.themeSelect.SetSelected(models.ThemeDark)
	d.autoCopyCheck.SetChecked(true)
	d.historyLimitEntry.SetText("25")
	d.logLevelSelect.SetSelected("debug")

	require.NoError(t, d.saveSettings())

	assert.Equal(t, models.ThemeDark, cfg.Theme)
	assert.True(t, cfg.AutoCopy)
	assert.Equal(t, 25, cfg.HistoryLimit)

	reloaded, err := models.LoadConfigFrom(path, nil)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeDark, reloaded.Theme)
	assert.Equal(t, "debug", reloaded.LogLevel)
	assert.Equal(t, 25, reloaded.HistoryLimit)
}

func TestSettingsDialog_InvalidLimitKeepsConfig(t *testing.T) {
	a := test.NewTempApp(t)
	cfg, err := models.LoadConfigFrom(filepath.Join(t.TempDir(), "config.yaml"), nil)
	require.NoError(t, err)

	d := NewSettingsDialog(a.NewWindow("test"), cfg)
	d.build()
	d.autoCopyCheck.SetChecked(true)
	d.historyLimitEntry.SetText("-3")

	assert.Error(t, d.saveSettings())
	assert.False(t, cfg.AutoCopy, "config must not change when saving fails")
	assert.Error(t, d.historyLimitEntry.Validate())
}

func TestHistoryDetail(t *testing.T) {
	convert := models.NewAction(models.ActionConvert, "", "")
	convert.DisplayPairs = 2
	convert.InlinePairs = 1
	assert.Equal(t, "2 display, 1 inline", HistoryDetail(convert))

	convert.PairsInCode = 1
	assert.Equal(t, "2 display, 1 inline, 1 in code", HistoryDetail(convert))

	strip := models.NewAction(models.ActionStripBlank, "a\n\nb", "a\nb")
	assert.Equal(t, "4 → 3 chars", HistoryDetail(strip))

	assert.Equal(t, "", HistoryDetail(models.NewAction(models.ActionClear, "x", "")))
}

func TestNewHistoryList_Empty(t *testing.T) {
	test.NewTempApp(t)

	obj := NewHistoryList(nil)
	label, ok := obj.(*widget.Label)
	require.True(t, ok, "empty history should render a label")
	assert.Equal(t, "No actions yet.", label.Text)
}

func TestNewHistoryList_SizedList(t *testing.T) {
	test.NewTempApp(t)

	obj := NewHistoryList([]*models.Action{models.NewAction(models.ActionClear, "x", "")})
	_, scrolled := obj.(*container.Scroll)
	assert.False(t, scrolled, "the list scrolls by itself and must not be wrapped in a scroll")

	box, ok := obj.(*fyne.Container)
	require.True(t, ok, "history list should sit in a sized container")
	require.Len(t, box.Objects, 1)
	_, isList := box.Objects[0].(*widget.List)
	assert.True(t, isList, "container should hold the list")
	assert.Equal(t, HistoryListSize, obj.MinSize())
}

func TestShowHistory(t *testing.T) {
	a := test.NewTempApp(t)
	w := a.NewWindow("test")
	w.Resize(fyne.NewSize(600, 500))

	history := []*models.Action{
		models.NewAction(models.ActionConvert, "\\(a\\)", "$a$"),
		models.NewAction(models.ActionCopy, "$a$", "$a$"),
	}
	ShowHistory(w, history)

	assert.NotEmpty(t, w.Canvas().Overlays().List(), "history dialog should be shown as an overlay")
}
