// Main entry point for the application
package main

import (
	"diceroller/internal/ui"
	"log"
)

func main() {
	// Set the logger prefix
	log.SetPrefix("Dice Roller ")

	if err := ui.CreateApplication(ui.DefaultConfig()); err != nil {
		log.Fatal(err)
	}
}
