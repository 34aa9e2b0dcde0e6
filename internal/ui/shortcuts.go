// Package ui  Shortcuts for keyboard actions
package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// shortcutRows pairs a description with its key binding.
var shortcutRows = [][2]string{
	{"Roll the die", "Space, Enter or R"},
	{"Quit Application", "Ctrl+Q or Q"},
	{"Close dialog", "Esc"},
}

func (a *App) buildKeyboardShortcuts() {
	// ctrl+q to quit application
	a.UI.MainWin.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyQ,
		Modifier: a.UI.mainModKey,
	}, func(_ fyne.Shortcut) { a.app.Quit() })

	a.UI.MainWin.Canvas().SetOnTypedKey(a.handleKey)
}

func (a *App) handleKey(key *fyne.KeyEvent) {
	switch key.Name {
	case fyne.KeySpace, fyne.KeyReturn, fyne.KeyEnter, fyne.KeyR:
		a.roll()
	case fyne.KeyQ:
		a.app.Quit()
	// close dialogs with esc key
	case fyne.KeyEscape:
		if top := a.UI.MainWin.Canvas().Overlays().Top(); top != nil {
			top.Hide()
		}
	}
}

func (a *App) showShortcuts() {
	win := a.app.NewWindow("Keyboard Shortcuts")
	table := widget.NewTable(
		func() (int, int) { return len(shortcutRows) + 1, 2 }, // +1 for header row
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			label := obj.(*widget.Label)
			isHeader := id.Row == 0
			label.TextStyle.Bold = isHeader
			if isHeader {
				label.SetText(ternaryString(id.Col == 0, "Description", "Shortcut"))
			} else {
				label.SetText(shortcutRows[id.Row-1][id.Col])
			}
		},
	)
	table.SetColumnWidth(0, 200)
	table.SetColumnWidth(1, 200)
	win.SetContent(table)
	win.Resize(fyne.NewSize(400, 200))
	win.Show()
}
