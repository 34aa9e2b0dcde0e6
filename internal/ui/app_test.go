package ui

import (
	"diceroller/internal/die"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/lang"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, cfg Config) *App {
	t.Helper()
	fa := test.NewApp()
	t.Cleanup(fa.Quit)
	a := newApp(fa, cfg)
	require.NotNil(t, a.UI.rollButton)
	require.NotNil(t, a.UI.dieImage)
	return a
}

// assertShowing checks that the image and label agree with the service.
func assertShowing(t *testing.T, a *App) {
	t.Helper()
	v := a.Service.Value()
	assert.Equal(t, strconv.Itoa(v), a.UI.resultLabel.Text)
	assert.Equal(t, faceResource(die.ResourceKeyFor(v)), a.UI.dieImage.Resource())
}

func TestInitialFaceIsOne(t *testing.T) {
	a := newTestApp(t, DefaultConfig())
	assert.Equal(t, "1", a.UI.resultLabel.Text)
	assert.Equal(t, resourceDice1Svg, a.UI.dieImage.Resource())
	assert.Equal(t, 0, a.Service.Rolls())
}

func TestRollButton(t *testing.T) {
	a := newTestApp(t, Config{Theme: ThemeLight, Seed: 7, FaceSize: 120, LogSize: 10})

	for i := 1; i <= 20; i++ {
		test.Tap(a.UI.rollButton)
		require.Equal(t, i, a.Service.Rolls())
		assertShowing(t, a)
	}

	msgs := a.logUIManager.Messages()
	assert.Len(t, msgs, 10)
	assert.Equal(t, "Rolled "+a.UI.resultLabel.Text, msgs[len(msgs)-1])
}

func TestTappingDieRolls(t *testing.T) {
	a := newTestApp(t, Config{Seed: 3})
	test.Tap(a.UI.dieImage)
	assert.Equal(t, 1, a.Service.Rolls())
	assertShowing(t, a)
}

func TestKeyboardRoll(t *testing.T) {
	a := newTestApp(t, DefaultConfig())

	for _, key := range []fyne.KeyName{fyne.KeySpace, fyne.KeyReturn, fyne.KeyR} {
		a.handleKey(&fyne.KeyEvent{Name: key})
	}
	assert.Equal(t, 3, a.Service.Rolls())
	assertShowing(t, a)

	a.handleKey(&fyne.KeyEvent{Name: fyne.KeyX})
	assert.Equal(t, 3, a.Service.Rolls())
}

func TestSeedMakesRollsRepeatable(t *testing.T) {
	cfg := Config{Seed: 1234}
	first, second := newTestApp(t, cfg), newTestApp(t, cfg)
	for i := 0; i < 10; i++ {
		first.roll()
		second.roll()
		require.Equal(t, first.Service.Value(), second.Service.Value())
	}
}

func TestToggleTheme(t *testing.T) {
	a := newTestApp(t, Config{Theme: ThemeLight})
	require.False(t, a.isDarkTheme)

	a.toggleTheme()
	assert.True(t, a.isDarkTheme)
	assert.Equal(t,
		theme.DefaultTheme().Color(theme.ColorNameBackground, theme.VariantDark),
		a.app.Settings().Theme().Color(theme.ColorNameBackground, theme.VariantLight))

	a.toggleTheme()
	assert.False(t, a.isDarkTheme)
	assert.True(t, strings.HasSuffix(a.UI.statusLogLabel.Text, "Theme: light"), a.UI.statusLogLabel.Text)
}

func TestFaceResource(t *testing.T) {
	seen := make(map[fyne.Resource]bool)
	for v := 1; v <= die.Faces; v++ {
		res := faceResource(die.ResourceKeyFor(v))
		require.NotNil(t, res)
		assert.Equal(t, "dice_"+strconv.Itoa(v)+".svg", res.Name())
		assert.NotEmpty(t, res.Content())
		seen[res] = true
	}
	assert.Len(t, seen, die.Faces)
	assert.Equal(t, resourceDice6Svg, faceResource("face-unknown"))
	assert.Equal(t, resourceDice6Svg, faceResource(die.ResourceKeyFor(0)))
}

func TestDiceTheme(t *testing.T) {
	base := theme.DefaultTheme()

	dark := NewDiceTheme(base, ThemeDark)
	assert.Equal(t,
		base.Color(theme.ColorNameBackground, theme.VariantDark),
		dark.Color(theme.ColorNameBackground, theme.VariantLight))
	assert.Equal(t, primaryColor, dark.Color(theme.ColorNamePrimary, theme.VariantLight))

	system := NewDiceTheme(base, ThemeSystem)
	assert.Equal(t,
		base.Color(theme.ColorNameBackground, theme.VariantLight),
		system.Color(theme.ColorNameBackground, theme.VariantLight))
	assert.Equal(t, base.Size(theme.SizeNamePadding), system.Size(theme.SizeNamePadding))
}

func TestConfig(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, DefaultConfig().Validate())
	})
	t.Run("unknown theme", func(t *testing.T) {
		err := Config{Theme: "sepia"}.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sepia")
	})
	t.Run("out of range sizes are defaulted", func(t *testing.T) {
		c := Config{FaceSize: 10, LogSize: -1}.withDefaults()
		assert.Equal(t, ThemeSystem, c.Theme)
		assert.Equal(t, float32(DefaultFaceSize), c.FaceSize)
		assert.Equal(t, DefaultMaxLogMessages, c.LogSize)
	})
	t.Run("oversized log is defaulted", func(t *testing.T) {
		for _, size := range []int{MaxLogMessages + 1, math.MaxInt} {
			c := Config{FaceSize: DefaultFaceSize, LogSize: size}.withDefaults()
			assert.Equal(t, DefaultMaxLogMessages, c.LogSize, "log size %d", size)
		}
		c := Config{FaceSize: DefaultFaceSize, LogSize: MaxLogMessages}.withDefaults()
		assert.Equal(t, MaxLogMessages, c.LogSize)
	})
	t.Run("non-finite or oversized face is defaulted", func(t *testing.T) {
		nan := float32(math.NaN())
		inf := float32(math.Inf(1))
		for _, size := range []float32{nan, inf, -inf, MaxFaceSize + 1} {
			c := Config{FaceSize: size, LogSize: 1}.withDefaults()
			assert.Equal(t, float32(DefaultFaceSize), c.FaceSize, "face size %g", size)
		}
	})
	t.Run("valid sizes are kept", func(t *testing.T) {
		c := Config{Theme: ThemeDark, FaceSize: 64, LogSize: 5}.withDefaults()
		assert.Equal(t, Config{Theme: ThemeDark, FaceSize: 64, LogSize: 5}, c)
	})
}

func TestLogUIManager(t *testing.T) {
	fa := test.NewApp()
	defer fa.Quit()

	label := widget.NewLabel("")
	prev := widget.NewButton("", nil)
	next := widget.NewButton("", nil)
	lm := NewLogUIManager(label, prev, next, 3)

	assert.Empty(t, label.Text)
	assert.True(t, prev.Disabled())
	assert.True(t, next.Disabled())

	for _, m := range []string{"a", "b", "c", "d"} {
		lm.AddLogMessage(m)
	}
	assert.Equal(t, []string{"b", "c", "d"}, lm.Messages())
	assert.Equal(t, "[3/3] d", label.Text)
	assert.False(t, prev.Disabled())
	assert.True(t, next.Disabled())

	lm.ShowPreviousLogMessage()
	lm.ShowPreviousLogMessage()
	lm.ShowPreviousLogMessage()
	assert.Equal(t, "[1/3] b", label.Text)
	assert.True(t, prev.Disabled())
	assert.False(t, next.Disabled())

	lm.ShowNextLogMessage()
	assert.Equal(t, "[2/3] c", label.Text)
}

func TestLogUIManagerHugeCapacity(t *testing.T) {
	fa := test.NewApp()
	defer fa.Quit()

	label := widget.NewLabel("")
	lm := NewLogUIManager(label, widget.NewButton("", nil), widget.NewButton("", nil), math.MaxInt)
	for i := 0; i < DefaultMaxLogMessages+5; i++ {
		lm.AddLogMessage(strconv.Itoa(i))
	}
	msgs := lm.Messages()
	assert.Len(t, msgs, DefaultMaxLogMessages)
	assert.Equal(t, strconv.Itoa(DefaultMaxLogMessages+4), msgs[len(msgs)-1])
}

func TestRollButtonIsTranslated(t *testing.T) {
	a := newTestApp(t, DefaultConfig())
	assert.Equal(t, lang.L("Roll"), a.UI.rollButton.Text)
	assert.NotEmpty(t, a.UI.rollButton.Text)
}

func TestTranslationsShareKeys(t *testing.T) {
	load := func(name string) map[string]string {
		data, err := translations.ReadFile("translations/" + name)
		require.NoError(t, err)
		var m map[string]string
		require.NoError(t, json.Unmarshal(data, &m))
		return m
	}
	en, pt := load("en.json"), load("pt.json")

	assert.Equal(t, "Roll", en["Roll"])
	assert.Equal(t, "Rolar", pt["Roll"])
	require.Len(t, pt, len(en))
	for key := range en {
		assert.Contains(t, pt, key)
	}
}
