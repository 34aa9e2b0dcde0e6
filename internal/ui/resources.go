package ui

//go:generate fyne bundle --package ui -o bundled.go assets

import (
	"diceroller/internal/die"

	"fyne.io/fyne/v2"
)

// faceResources maps each resource key to its bundled image.
var faceResources = map[die.ResourceKey]fyne.Resource{
	die.FaceOne:   resourceDice1Svg,
	die.FaceTwo:   resourceDice2Svg,
	die.FaceThree: resourceDice3Svg,
	die.FaceFour:  resourceDice4Svg,
	die.FaceFive:  resourceDice5Svg,
	die.FaceSix:   resourceDice6Svg,
}

// faceResource returns the image for key; unknown keys show face six.
func faceResource(key die.ResourceKey) fyne.Resource {
	if res, ok := faceResources[key]; ok {
		return res
	}
	return resourceDice6Svg
}

// appIcon is the window and launcher icon.
func appIcon() fyne.Resource {
	return resourceDice5Svg
}
