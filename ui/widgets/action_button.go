package widgets

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	appTheme "latex-for-typora/ui/theme"
)

// ActionButton is a filled, rounded button painted with one theme color.
// Hover and press darken that color.
type ActionButton struct {
	widget.BaseWidget

	Text      string
	ColorName fyne.ThemeColorName
	OnTapped  func()

	hovered  bool
	pressed  bool
	disabled bool
}

// disabledAlpha fades the fill of a disabled button.
const disabledAlpha = 96

var (
	_ fyne.Tappable     = (*ActionButton)(nil)
	_ desktop.Hoverable = (*ActionButton)(nil)
	_ desktop.Mouseable = (*ActionButton)(nil)
)

// NewActionButton creates a button filled with the given theme color
func NewActionButton(text string, colorName fyne.ThemeColorName, onTapped func()) *ActionButton {
	b := &ActionButton{
		Text:      text,
		ColorName: colorName,
		OnTapped:  onTapped,
	}
	b.ExtendBaseWidget(b)
	return b
}

// SetDisabled sets the disabled state
func (b *ActionButton) SetDisabled(disabled bool) {
	b.disabled = disabled
	b.Refresh()
}

// Disabled reports whether taps are ignored
func (b *ActionButton) Disabled() bool {
	return b.disabled
}

// Tapped handles tap events
func (b *ActionButton) Tapped(_ *fyne.PointEvent) {
	if b.disabled || b.OnTapped == nil {
		return
	}
	b.OnTapped()
}

func (b *ActionButton) MouseIn(_ *desktop.MouseEvent) {
	b.hovered = true
	b.Refresh()
}

func (b *ActionButton) MouseOut() {
	b.hovered = false
	b.pressed = false
	b.Refresh()
}

func (b *ActionButton) MouseMoved(_ *desktop.MouseEvent) {}

func (b *ActionButton) MouseDown(_ *desktop.MouseEvent) {
	b.pressed = true
	b.Refresh()
}

func (b *ActionButton) MouseUp(_ *desktop.MouseEvent) {
	b.pressed = false
	b.Refresh()
}

// CreateRenderer implements fyne.Widget
func (b *ActionButton) CreateRenderer() fyne.WidgetRenderer {
	th := b.Theme()

	bg := canvas.NewRectangle(th.Color(b.ColorName, fyne.CurrentApp().Settings().ThemeVariant()))
	bg.CornerRadius = th.Size(appTheme.SizeNameButtonRadius)

	label := canvas.NewText(b.Text, appTheme.ColorOnColor)
	label.TextStyle = fyne.TextStyle{Bold: true}
	label.Alignment = fyne.TextAlignCenter

	r := &actionButtonRenderer{bg: bg, label: label, widget: b}
	r.Refresh()
	return r
}

type actionButtonRenderer struct {
	bg     *canvas.Rectangle
	label  *canvas.Text
	widget *ActionButton
}

func (r *actionButtonRenderer) Destroy() {}

func (r *actionButtonRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)

	textMin := r.label.MinSize()
	r.label.Resize(textMin)
	r.label.Move(fyne.NewPos((size.Width-textMin.Width)/2, (size.Height-textMin.Height)/2))
}

// MinSize pads the label by 10 vertically and 20 horizontally on each side.
func (r *actionButtonRenderer) MinSize() fyne.Size {
	textMin := r.label.MinSize()
	return fyne.NewSize(textMin.Width+40, fyne.Max(textMin.Height+20, 36))
}

func (r *actionButtonRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bg, r.label}
}

func (r *actionButtonRenderer) Refresh() {
	th := r.widget.Theme()
	variant := fyne.CurrentApp().Settings().ThemeVariant()
	fill := th.Color(r.widget.ColorName, variant)

	switch {
	case r.widget.disabled:
		r.bg.FillColor = appTheme.WithAlpha(fill, disabledAlpha)
		r.label.Color = th.Color(theme.ColorNameDisabled, variant)
	case r.widget.pressed:
		r.bg.FillColor = appTheme.Darken(fill, 0.25)
		r.label.Color = appTheme.ColorOnColor
	case r.widget.hovered:
		r.bg.FillColor = appTheme.Darken(fill, 0.12)
		r.label.Color = appTheme.ColorOnColor
	default:
		r.bg.FillColor = fill
		r.label.Color = appTheme.ColorOnColor
	}

	r.label.Text = r.widget.Text
	r.bg.Refresh()
	r.label.Refresh()
}
