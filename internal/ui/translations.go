package ui

import (
	"embed"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/lang"
)

//go:embed translations
var translations embed.FS

var loadTranslations sync.Once

// registerTranslations adds the bundled UI strings to the lang package once
// per process; lookups fall back to the English key when this fails.
func registerTranslations() {
	loadTranslations.Do(func() {
		if err := lang.AddTranslationsFS(translations, "translations"); err != nil {
			fyne.LogError("Failed to load translations", err)
		}
	})
}
