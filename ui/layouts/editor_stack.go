package layouts

import (
	"fyne.io/fyne/v2"
)

// EditorStack stacks rows vertically. Rows listed in Stretch share the
// height left over after every other row got its minimum height.
type EditorStack struct {
	Padding float32
	Stretch map[int]bool
}

// NewEditorStack creates a stack where the rows at the given indexes stretch
func NewEditorStack(padding float32, stretch ...int) *EditorStack {
	s := &EditorStack{Padding: padding, Stretch: make(map[int]bool, len(stretch))}
	for _, i := range stretch {
		s.Stretch[i] = true
	}
	return s
}

// Layout arranges visible objects top to bottom at full width
func (l *EditorStack) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	visible, fixed, stretched := l.measure(objects)
	if visible == 0 {
		return
	}

	free := size.Height - fixed - l.Padding*float32(visible+1)
	share := float32(0)
	if stretched > 0 && free > 0 {
		share = free / float32(stretched)
	}

	y := l.Padding
	for i, o := range objects {
		if !o.Visible() {
			continue
		}
		h := o.MinSize().Height
		if l.Stretch[i] {
			h += share
		}
		o.Move(fyne.NewPos(l.Padding, y))
		o.Resize(fyne.NewSize(fyne.Max(size.Width-2*l.Padding, 0), h))
		y += h + l.Padding
	}
}

// MinSize is the sum of the visible rows' minimum heights plus padding
func (l *EditorStack) MinSize(objects []fyne.CanvasObject) fyne.Size {
	visible := 0
	var width, height float32
	for _, o := range objects {
		if !o.Visible() {
			continue
		}
		visible++
		m := o.MinSize()
		width = fyne.Max(width, m.Width)
		height += m.Height
	}
	if visible == 0 {
		return fyne.NewSize(0, 0)
	}
	return fyne.NewSize(width+2*l.Padding, height+l.Padding*float32(visible+1))
}

// measure returns the visible row count, the summed minimum height of
// all visible rows and how many of them stretch
func (l *EditorStack) measure(objects []fyne.CanvasObject) (visible int, fixed float32, stretched int) {
	for i, o := range objects {
		if !o.Visible() {
			continue
		}
		visible++
		fixed += o.MinSize().Height
		if l.Stretch[i] {
			stretched++
		}
	}
	return visible, fixed, stretched
}
