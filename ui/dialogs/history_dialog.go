package dialogs

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"latex-for-typora/models"
	"latex-for-typora/ui/widgets"
)

// HistoryListSize is the size of the history list inside the dialog
var HistoryListSize = fyne.NewSize(460, 320)

// ShowHistory lists the actions of this session, newest first
func ShowHistory(window fyne.Window, history []*models.Action) {
	dialog.ShowCustom("History", "Close", NewHistoryList(history), window)
}

// NewHistoryList builds the list shown by ShowHistory
func NewHistoryList(history []*models.Action) fyne.CanvasObject {
	if len(history) == 0 {
		return widget.NewLabel("No actions yet.")
	}

	list := widget.NewList(
		func() int { return len(history) },
		func() fyne.CanvasObject {
			return container.NewBorder(nil, nil, widgets.NewActionBadge(nil), widget.NewLabel(""), widget.NewLabel(""))
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {
			a := history[len(history)-1-id]
			row := item.(*fyne.Container)
			// Border puts the center object first, then left, then right
			row.Objects[0].(*widget.Label).SetText(HistoryDetail(a))
			row.Objects[1].(*widgets.ActionBadge).SetAction(a)
			row.Objects[2].(*widget.Label).SetText(a.CreatedAt.Format("15:04:05"))
		},
	)

	// The list scrolls by itself; the wrap only gives it a size.
	return container.NewGridWrap(HistoryListSize, list)
}

// HistoryDetail summarizes the counters of one action
func HistoryDetail(a *models.Action) string {
	switch a.Kind {
	case models.ActionConvert:
		detail := fmt.Sprintf("%d display, %d inline", a.DisplayPairs, a.InlinePairs)
		if a.PairsInCode > 0 {
			detail += fmt.Sprintf(", %d in code", a.PairsInCode)
		}
		return detail
	case models.ActionStripBlank:
		return fmt.Sprintf("%d → %d chars", a.InputRunes, a.OutputRunes)
	case models.ActionCopy:
		return fmt.Sprintf("%d chars", a.OutputRunes)
	default:
		return ""
	}
}
