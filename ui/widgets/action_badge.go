package widgets

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"latex-for-typora/models"
	appTheme "latex-for-typora/ui/theme"
)

// ActionBadge shows a history entry as a colored dot and its status text
type ActionBadge struct {
	widget.BaseWidget

	Action *models.Action
}

// NewActionBadge creates a badge for a; a may be nil until SetAction
func NewActionBadge(a *models.Action) *ActionBadge {
	b := &ActionBadge{Action: a}
	b.ExtendBaseWidget(b)
	return b
}

// SetAction updates the displayed action
func (b *ActionBadge) SetAction(a *models.Action) {
	b.Action = a
	b.Refresh()
}

// CreateRenderer implements fyne.Widget
func (b *ActionBadge) CreateRenderer() fyne.WidgetRenderer {
	r := &actionBadgeRenderer{
		dot:    canvas.NewCircle(color.Transparent),
		label:  canvas.NewText("", color.White),
		widget: b,
	}
	r.label.TextSize = 12
	r.Refresh()
	return r
}

type actionBadgeRenderer struct {
	dot    *canvas.Circle
	label  *canvas.Text
	widget *ActionBadge
}

const badgeDot = float32(8)

func (r *actionBadgeRenderer) Destroy() {}

func (r *actionBadgeRenderer) Layout(size fyne.Size) {
	r.dot.Resize(fyne.NewSize(badgeDot, badgeDot))
	r.dot.Move(fyne.NewPos(4, (size.Height-badgeDot)/2))

	labelMin := r.label.MinSize()
	r.label.Resize(labelMin)
	r.label.Move(fyne.NewPos(badgeDot+10, (size.Height-labelMin.Height)/2))
}

func (r *actionBadgeRenderer) MinSize() fyne.Size {
	labelMin := r.label.MinSize()
	return fyne.NewSize(badgeDot+10+labelMin.Width+4, fyne.Max(16, labelMin.Height))
}

func (r *actionBadgeRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.dot, r.label}
}

func (r *actionBadgeRenderer) Refresh() {
	th := r.widget.Theme()
	variant := fyne.CurrentApp().Settings().ThemeVariant()

	a := r.widget.Action
	if a == nil {
		r.dot.FillColor = color.Transparent
		r.label.Text = ""
	} else {
		r.dot.FillColor = th.Color(ActionColor(a), variant)
		r.label.Text = a.StatusText()
	}
	r.label.Color = th.Color(theme.ColorNameForeground, variant)

	r.dot.Refresh()
	r.label.Refresh()
}

// ActionColor returns the theme color for an action; failures use the error color
func ActionColor(a *models.Action) fyne.ThemeColorName {
	if !a.Succeeded() {
		return theme.ColorNameError
	}
	switch a.Kind {
	case models.ActionConvert:
		return appTheme.ColorNameConvert
	case models.ActionStripBlank:
		return appTheme.ColorNameStrip
	case models.ActionCopy:
		return appTheme.ColorNameCopy
	case models.ActionClear:
		return appTheme.ColorNameClear
	default:
		return appTheme.ColorNameTextMuted
	}
}
