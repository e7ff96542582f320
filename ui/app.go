// Package ui is the desktop window of the converter.
package ui

import (
	"io"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"latex-for-typora/internal/config"
	"latex-for-typora/internal/logger"
	"latex-for-typora/models"
	"latex-for-typora/services"
	"latex-for-typora/ui/dialogs"
	"latex-for-typora/ui/layouts"
	appTheme "latex-for-typora/ui/theme"
	"latex-for-typora/ui/widgets"
)

// Keyboard shortcuts of the window
var (
	ShortcutConvert = &desktop.CustomShortcut{KeyName: fyne.KeyReturn, Modifier: fyne.KeyModifierShortcutDefault}
	ShortcutCopy    = &desktop.CustomShortcut{KeyName: fyne.KeyC, Modifier: fyne.KeyModifierShortcutDefault | fyne.KeyModifierShift}
)

// MainUI is the main application UI
type MainUI struct {
	window    fyne.Window
	config    *models.Config
	workspace *services.Workspace
	log       *logger.Logger
	logOut    io.Writer

	// UI Components
	inputPanel  *widgets.EditorPanel
	outputPanel *widgets.EditorPanel
	actionBar   *widgets.ActionBar
	status      *widget.Label
}

// Run opens the converter window and blocks until it is closed
func Run(cfg *models.Config, log *logger.Logger) {
	a := app.NewWithID(config.AppID)
	a.Settings().SetTheme(appTheme.New(cfg.Theme))

	w := a.NewWindow(config.AppName)
	w.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))

	mainUI := NewMainUI(w, cfg, log)
	w.SetContent(mainUI.Build())
	w.SetMainMenu(mainUI.MainMenu())
	mainUI.RegisterShortcuts()

	log.Info("window opened (%dx%d, theme %s)", cfg.WindowWidth, cfg.WindowHeight, cfg.Theme)
	w.ShowAndRun()
}

// NewMainUI creates the main application UI
func NewMainUI(w fyne.Window, cfg *models.Config, log *logger.Logger) *MainUI {
	if cfg == nil {
		cfg = models.DefaultConfig()
	}
	if log == nil {
		log = logger.Default()
	}

	ui := &MainUI{
		window: w,
		config: cfg,
		log:    log,
		logOut: os.Stderr,
	}
	ui.workspace = services.NewWorkspace(cfg, AppClipboard(), log)
	return ui
}

// AppClipboard copies through the clipboard of the running Fyne app
func AppClipboard() services.Clipboard {
	return services.ClipboardFunc(func(content string) error {
		a := fyne.CurrentApp()
		if a == nil || a.Clipboard() == nil {
			return services.ErrNoClipboard
		}
		a.Clipboard().SetContent(content)
		return nil
	})
}

// Build creates the complete UI layout
func (ui *MainUI) Build() fyne.CanvasObject {
	ui.inputPanel = widgets.NewEditorPanel("Input LaTeX", `Paste text with \[ … \] or \( … \) delimiters`)
	ui.inputPanel.Entry.SetMinRowsVisible(config.MinEditorRows)
	ui.inputPanel.Entry.OnChanged = ui.workspace.SetInput

	ui.outputPanel = widgets.NewEditorPanel("Result", "Converted text appears here")
	ui.outputPanel.Entry.SetMinRowsVisible(config.MinEditorRows)
	ui.outputPanel.Entry.OnChanged = ui.workspace.SetOutput

	ui.actionBar = widgets.NewActionBar()
	ui.actionBar.OnConvert = ui.Convert
	ui.actionBar.OnStrip = ui.StripBlankLines
	ui.actionBar.OnCopy = ui.CopyResult
	ui.actionBar.OnClear = ui.Clear

	ui.status = widget.NewLabel("")
	ui.status.Alignment = fyne.TextAlignCenter
	ui.status.Importance = widget.LowImportance
	ui.status.Truncation = fyne.TextTruncateEllipsis

	return container.New(
		layouts.NewEditorStack(theme.Padding(), 0, 2),
		ui.inputPanel,
		ui.actionBar,
		ui.outputPanel,
		ui.status,
	)
}

// MainMenu mirrors the action bar and adds settings and history
func (ui *MainUI) MainMenu() *fyne.MainMenu {
	convert := fyne.NewMenuItem(widgets.LabelConvert, ui.Convert)
	convert.Shortcut = ShortcutConvert
	copyItem := fyne.NewMenuItem(widgets.LabelCopy, ui.CopyResult)
	copyItem.Shortcut = ShortcutCopy

	settings := fyne.NewMenuItem("Settings…", ui.showSettings)
	settings.Icon = theme.SettingsIcon()
	history := fyne.NewMenuItem("History…", ui.showHistory)
	history.Icon = theme.HistoryIcon()

	return fyne.NewMainMenu(
		fyne.NewMenu("Edit",
			convert,
			fyne.NewMenuItem(widgets.LabelStrip, ui.StripBlankLines),
			copyItem,
			fyne.NewMenuItem(widgets.LabelClear, ui.Clear),
			fyne.NewMenuItemSeparator(),
			settings,
		),
		fyne.NewMenu("View", history),
	)
}

// RegisterShortcuts binds the window-wide keyboard shortcuts
func (ui *MainUI) RegisterShortcuts() {
	c := ui.window.Canvas()
	c.AddShortcut(ShortcutConvert, func(fyne.Shortcut) { ui.Convert() })
	c.AddShortcut(ShortcutCopy, func(fyne.Shortcut) { ui.CopyResult() })
}

// Convert rewrites the input into the result box
func (ui *MainUI) Convert() {
	ui.workspace.Convert()
	ui.render()
}

// StripBlankLines removes blank lines from the result, or from the input
// when the result is empty
func (ui *MainUI) StripBlankLines() {
	ui.workspace.StripBlankLines()
	ui.render()
}

// CopyResult puts the result on the clipboard
func (ui *MainUI) CopyResult() {
	_, err := ui.workspace.CopyResult()
	ui.render()
	if err != nil {
		dialog.ShowError(err, ui.window)
	}
}

// Clear empties both boxes
func (ui *MainUI) Clear() {
	ui.workspace.Clear()
	ui.render()
	ui.window.Canvas().Focus(ui.inputPanel.Entry)
}

// Workspace returns the state behind the window
func (ui *MainUI) Workspace() *services.Workspace {
	return ui.workspace
}

// StatusText returns the text of the status line
func (ui *MainUI) StatusText() string {
	return ui.status.Text
}

// render copies the workspace buffers into the widgets. Actions are only
// triggered from buttons, menus and shortcuts, which run on the UI goroutine.
func (ui *MainUI) render() {
	if ui.inputPanel == nil {
		return
	}
	state := ui.workspace.State()
	if ui.inputPanel.Entry.Text != state.Input {
		ui.inputPanel.Entry.SetText(state.Input)
	}
	if ui.outputPanel.Entry.Text != state.Output {
		ui.outputPanel.Entry.SetText(state.Output)
	}
	ui.status.SetText(state.Status)
}

func (ui *MainUI) showSettings() {
	settingsDialog := dialogs.NewSettingsDialog(ui.window, ui.config)
	settingsDialog.OnSave = func(cfg *models.Config) {
		ui.config = cfg
		ui.applyConfig()
	}
	settingsDialog.Show()
}

// applyConfig carries saved preferences over to the running window.
// The buffers and history survive; the workspace only picks up new behaviour.
func (ui *MainUI) applyConfig() {
	if level, err := logger.ParseLevel(ui.config.LogLevel); err == nil {
		ui.log.SetLevel(level)
	}
	ui.log.SetOutput(logger.Writer(ui.config.LogFormat, ui.logOut))
	fyne.CurrentApp().Settings().SetTheme(appTheme.New(ui.config.Theme))
	ui.workspace.Configure(ui.config)
	ui.log.Info("settings saved to %s", ui.config.ConfigPath())
}

func (ui *MainUI) showHistory() {
	dialogs.ShowHistory(ui.window, ui.workspace.History())
}
