package dialogs

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"latex-for-typora/internal/config"
	"latex-for-typora/models"
)

// SettingsDialog edits the application preferences
type SettingsDialog struct {
	window fyne.Window
	config *models.Config

	// UI elements
	themeSelect       *widget.Select
	autoCopyCheck     *widget.Check
	stripCheck        *widget.Check
	historyLimitEntry *widget.Entry
	logLevelSelect    *widget.Select
	logFormatSelect   *widget.Select
	configPathLabel   *widget.Label

	OnSave func(config *models.Config)
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(window fyne.Window, config *models.Config) *SettingsDialog {
	return &SettingsDialog{
		window: window,
		config: config,
	}
}

// Show displays the settings dialog
func (d *SettingsDialog) Show() {
	content := d.build()

	dialog.ShowCustomConfirm("Settings", "Save", "Cancel", content, func(save bool) {
		if !save {
			return
		}
		if err := d.saveSettings(); err != nil {
			dialog.ShowError(err, d.window)
			return
		}
		if d.OnSave != nil {
			d.OnSave(d.config)
		}
	}, d.window)
}

func (d *SettingsDialog) build() fyne.CanvasObject {
	d.themeSelect = widget.NewSelect([]string{models.ThemeSystem, models.ThemeLight, models.ThemeDark}, nil)
	d.themeSelect.SetSelected(d.config.Theme)

	d.autoCopyCheck = widget.NewCheck("Copy the result after converting", nil)
	d.autoCopyCheck.SetChecked(d.config.AutoCopy)

	d.stripCheck = widget.NewCheck("Remove blank lines after converting", nil)
	d.stripCheck.SetChecked(d.config.StripAfterConvert)

	d.historyLimitEntry = widget.NewEntry()
	d.historyLimitEntry.SetText(strconv.Itoa(d.config.HistoryLimit))
	d.historyLimitEntry.Validator = validateHistoryLimit

	d.logLevelSelect = widget.NewSelect([]string{"debug", "info", "warn", "error"}, nil)
	d.logLevelSelect.SetSelected(d.config.LogLevel)

	d.logFormatSelect = widget.NewSelect([]string{"console", "json"}, nil)
	d.logFormatSelect.SetSelected(d.config.LogFormat)

	d.configPathLabel = widget.NewLabel(d.config.ConfigPath())
	d.configPathLabel.Wrapping = fyne.TextWrapBreak

	form := widget.NewForm(
		widget.NewFormItem("Theme", d.themeSelect),
		widget.NewFormItem("After convert", container.NewVBox(d.autoCopyCheck, d.stripCheck)),
		widget.NewFormItem("History size", d.historyLimitEntry),
		widget.NewFormItem("Log level", d.logLevelSelect),
		widget.NewFormItem("Log format", d.logFormatSelect),
	)

	return container.NewVBox(
		form,
		widget.NewSeparator(),
		container.NewBorder(nil, nil, widget.NewLabel("File:"), nil, d.configPathLabel),
	)
}

// saveSettings copies the form into the config and writes it to disk.
// The config is left untouched when a field is invalid.
func (d *SettingsDialog) saveSettings() error {
	limit, err := parseHistoryLimit(d.historyLimitEntry.Text)
	if err != nil {
		return err
	}

	updated := *d.config
	updated.Theme = d.themeSelect.Selected
	updated.AutoCopy = d.autoCopyCheck.Checked
	updated.StripAfterConvert = d.stripCheck.Checked
	updated.HistoryLimit = limit
	updated.LogLevel = d.logLevelSelect.Selected
	updated.LogFormat = d.logFormatSelect.Selected

	if err := updated.Validate(); err != nil {
		return err
	}
	*d.config = updated

	if err := d.config.Save(); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

func parseHistoryLimit(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("history size must be a number")
	}
	if n < 1 || n > config.MaxHistoryLimit {
		return 0, fmt.Errorf("history size must be between 1 and %d", config.MaxHistoryLimit)
	}
	return n, nil
}

func validateHistoryLimit(s string) error {
	_, err := parseHistoryLimit(s)
	return err
}
