package widgets

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	appTheme "latex-for-typora/ui/theme"
)

// Button labels, also used by tests to find the buttons
const (
	LabelConvert = "Convert"
	LabelStrip   = "Remove blank lines"
	LabelCopy    = "Copy result"
	LabelClear   = "Clear"
)

// ActionBar is the row of buttons between the input and the result
type ActionBar struct {
	widget.BaseWidget

	OnConvert func()
	OnStrip   func()
	OnCopy    func()
	OnClear   func()

	ConvertButton *ActionButton
	StripButton   *ActionButton
	CopyButton    *ActionButton
	ClearButton   *ActionButton
}

// NewActionBar creates the action bar; callbacks are read at tap time
func NewActionBar() *ActionBar {
	b := &ActionBar{}
	b.ConvertButton = NewActionButton(LabelConvert, appTheme.ColorNameConvert, func() { call(b.OnConvert) })
	b.StripButton = NewActionButton(LabelStrip, appTheme.ColorNameStrip, func() { call(b.OnStrip) })
	b.CopyButton = NewActionButton(LabelCopy, appTheme.ColorNameCopy, func() { call(b.OnCopy) })
	b.ClearButton = NewActionButton(LabelClear, appTheme.ColorNameClear, func() { call(b.OnClear) })
	b.ExtendBaseWidget(b)
	return b
}

// Buttons returns the buttons in display order
func (b *ActionBar) Buttons() []*ActionButton {
	return []*ActionButton{b.ConvertButton, b.StripButton, b.CopyButton, b.ClearButton}
}

// CreateRenderer implements fyne.Widget
func (b *ActionBar) CreateRenderer() fyne.WidgetRenderer {
	row := container.NewHBox(layout.NewSpacer())
	for _, btn := range b.Buttons() {
		row.Add(btn)
	}
	row.Add(layout.NewSpacer())
	return widget.NewSimpleRenderer(row)
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}
