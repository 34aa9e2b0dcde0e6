// Package ui  Setup for the Dice Roller application
package ui

import (
	"diceroller/internal/die"
	"diceroller/internal/service"
	"image/color"
	"log"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/lang"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// AppID is the unique application identifier used for packaging.
const AppID = "com.github.diceroller"

// UI holds the window and the widgets the App updates after a roll.
type UI struct {
	MainWin    fyne.Window
	mainModKey fyne.KeyModifier

	dieImage    *dieImage
	rollButton  *widget.Button
	resultLabel *widget.Label

	statusLogLabel   *widget.Label
	statusLogUpBtn   *widget.Button
	statusLogDownBtn *widget.Button
}

// App represents the whole application with its window, widgets and session.
type App struct {
	app fyne.App
	UI  UI
	cfg Config

	isDarkTheme  bool
	logUIManager *LogUIManager
	Service      *service.Service
}

// ternaryString picks trueVal or falseVal.
func ternaryString(condition bool, trueVal, falseVal string) string {
	if condition {
		return trueVal
	}
	return falseVal
}

// addLogMessage adds a message to the status bar log.
func (a *App) addLogMessage(message string) {
	if a.logUIManager == nil {
		log.Printf("LogUIManager not ready, console log: %s", message)
		return
	}
	a.logUIManager.AddLogMessage(message)
}

// roll throws the die and shows the result.
func (a *App) roll() {
	a.showFace(a.Service.Roll())
}

// showFace points the image and the result label at face.
func (a *App) showFace(face die.Face) {
	a.UI.dieImage.SetResource(faceResource(face.Key))
	a.UI.resultLabel.SetText(face.Label)
}

// toggleTheme switches between the light and dark application themes.
func (a *App) toggleTheme() {
	a.isDarkTheme = !a.isDarkTheme
	mode := ternaryString(a.isDarkTheme, ThemeDark, ThemeLight)
	a.app.Settings().SetTheme(NewDiceTheme(theme.DefaultTheme(), mode))
	a.addLogMessage("Theme: " + mode)
}

func (a *App) showAbout() {
	NewAbout(a.UI.MainWin, "About Dice Roller", appIcon()).Show()
}

func (a *App) buildStatusBar() *fyne.Container {
	a.UI.statusLogLabel = widget.NewLabel("")
	a.UI.statusLogLabel.Truncation = fyne.TextTruncateEllipsis
	a.UI.statusLogUpBtn = widget.NewButtonWithIcon("", theme.MoveUpIcon(), func() {
		a.logUIManager.ShowPreviousLogMessage()
	})
	a.UI.statusLogDownBtn = widget.NewButtonWithIcon("", theme.MoveDownIcon(), func() {
		a.logUIManager.ShowNextLogMessage()
	})
	a.logUIManager = NewLogUIManager(a.UI.statusLogLabel, a.UI.statusLogUpBtn, a.UI.statusLogDownBtn, a.cfg.LogSize)

	return container.NewVBox(
		widget.NewSeparator(),
		container.NewBorder(nil, nil,
			container.NewHBox(a.UI.statusLogUpBtn, a.UI.statusLogDownBtn),
			nil,
			a.UI.statusLogLabel,
		),
	)
}

func (a *App) buildMainUI() fyne.CanvasObject {
	a.UI.MainWin.SetMaster()
	// set main mod key to super on darwin hosts, else set it to ctrl
	if runtime.GOOS == "darwin" {
		a.UI.mainModKey = fyne.KeyModifierSuper
	} else {
		a.UI.mainModKey = fyne.KeyModifierControl
	}

	face := a.Service.Current()
	a.UI.dieImage = newDieImage(faceResource(face.Key), a.cfg.FaceSize, a.roll)
	a.UI.rollButton = widget.NewButton(lang.L("Roll"), a.roll)
	a.UI.rollButton.Importance = widget.HighImportance
	a.UI.resultLabel = widget.NewLabelWithStyle(face.Label, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(0, faceSpacing))

	column := container.NewVBox(
		a.UI.dieImage,
		spacer,
		container.NewHBox(layout.NewSpacer(), a.UI.rollButton, layout.NewSpacer()),
		a.UI.resultLabel,
	)

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(lang.L("Die"),
			fyne.NewMenuItem(lang.L("Roll"), a.roll),
		),
		fyne.NewMenu(lang.L("View"),
			fyne.NewMenuItem(lang.L("Toggle Dark Mode"), a.toggleTheme),
		),
		fyne.NewMenu(lang.L("Help"),
			fyne.NewMenuItem(lang.L("Keyboard Shortcuts"), a.showShortcuts),
			fyne.NewMenuItem(lang.L("About"), a.showAbout),
		),
	)
	a.UI.MainWin.SetMainMenu(mainMenu)

	status := a.buildStatusBar()
	a.buildKeyboardShortcuts()

	return container.NewBorder(
		nil,    // Top
		status, // Bottom
		nil,
		nil,
		container.NewCenter(column),
	)
}

// newApp wires the session, theme and window onto fa without showing it.
func newApp(fa fyne.App, cfg Config) *App {
	cfg = cfg.withDefaults()
	a := &App{app: fa, cfg: cfg}
	registerTranslations()

	fa.Settings().SetTheme(NewDiceTheme(theme.DefaultTheme(), cfg.Theme))
	switch cfg.Theme {
	case ThemeDark:
		a.isDarkTheme = true
	case ThemeSystem:
		a.isDarkTheme = fa.Settings().ThemeVariant() == theme.VariantDark
	}

	a.Service = service.NewService(die.NewSource(cfg.Seed), a.addLogMessage)

	a.UI.MainWin = fa.NewWindow("Dice Roller")
	a.UI.MainWin.SetIcon(appIcon())
	a.UI.MainWin.SetContent(a.buildMainUI())
	a.UI.MainWin.Resize(fyne.NewSize(360, 560))
	a.UI.MainWin.CenterOnScreen()

	if cfg.Seed != 0 {
		a.addLogMessage("Seeded rolls enabled")
	}
	a.addLogMessage("Ready")
	return a
}

// CreateApplication is the GUI entrypoint. It blocks until the window closes.
func CreateApplication(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	fa := app.NewWithID(AppID)
	fa.SetIcon(appIcon())

	a := newApp(fa, cfg)
	a.UI.MainWin.ShowAndRun()
	return nil
}
