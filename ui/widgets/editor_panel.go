package widgets

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	appTheme "latex-for-typora/ui/theme"
)

// EditorPanel is a titled, rounded frame around a multi-line entry
type EditorPanel struct {
	widget.BaseWidget

	Title string
	Entry *widget.Entry
}

// NewEditorPanel creates a panel holding a new multi-line entry
func NewEditorPanel(title, placeholder string) *EditorPanel {
	entry := widget.NewMultiLineEntry()
	entry.Wrapping = fyne.TextWrapWord
	entry.SetPlaceHolder(placeholder)

	p := &EditorPanel{Title: title, Entry: entry}
	p.ExtendBaseWidget(p)
	return p
}

// CreateRenderer implements fyne.Widget
func (p *EditorPanel) CreateRenderer() fyne.WidgetRenderer {
	th := p.Theme()
	variant := fyne.CurrentApp().Settings().ThemeVariant()

	bg := canvas.NewRectangle(th.Color(appTheme.ColorNamePanel, variant))
	bg.CornerRadius = th.Size(appTheme.SizeNamePanelRadius)

	title := canvas.NewText(p.Title, th.Color(theme.ColorNameForeground, variant))
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.TextSize = th.Size(theme.SizeNameSubHeadingText)

	inset := th.Size(appTheme.SizeNamePanelPadding)
	body := container.New(&insetLayout{inset: inset}, container.NewBorder(title, nil, nil, nil, p.Entry))

	return &editorPanelRenderer{
		bg:     bg,
		title:  title,
		body:   body,
		widget: p,
	}
}

type editorPanelRenderer struct {
	bg     *canvas.Rectangle
	title  *canvas.Text
	body   *fyne.Container
	widget *EditorPanel
}

func (r *editorPanelRenderer) Destroy() {}

func (r *editorPanelRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.body.Resize(size)
}

func (r *editorPanelRenderer) MinSize() fyne.Size {
	return r.body.MinSize()
}

func (r *editorPanelRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bg, r.body}
}

func (r *editorPanelRenderer) Refresh() {
	th := r.widget.Theme()
	variant := fyne.CurrentApp().Settings().ThemeVariant()

	r.bg.FillColor = th.Color(appTheme.ColorNamePanel, variant)
	r.title.Color = th.Color(theme.ColorNameForeground, variant)
	r.title.Text = r.widget.Title

	r.bg.Refresh()
	r.title.Refresh()
	r.body.Refresh()
}

// insetLayout gives its single child a fixed margin on every side
type insetLayout struct {
	inset float32
}

func (l *insetLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, o := range objects {
		o.Move(fyne.NewPos(l.inset, l.inset))
		o.Resize(fyne.NewSize(fyne.Max(size.Width-2*l.inset, 0), fyne.Max(size.Height-2*l.inset, 0)))
	}
}

func (l *insetLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var m fyne.Size
	for _, o := range objects {
		m = m.Max(o.MinSize())
	}
	return m.AddWidthHeight(2*l.inset, 2*l.inset)
}
