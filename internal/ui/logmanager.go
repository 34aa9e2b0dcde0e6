package ui

import (
	"fmt"

	"fyne.io/fyne/v2/widget"
)

const (
	// DefaultMaxLogMessages bounds the in-memory status log.
	DefaultMaxLogMessages = 100
	// MaxLogMessages is the largest status log capacity accepted.
	MaxLogMessages = 10000
)

// LogUIManager keeps recent status messages and pages through them in the
// status bar. Nothing is written to disk.
type LogUIManager struct {
	messages []string
	current  int
	max      int

	label   *widget.Label
	prevBtn *widget.Button
	nextBtn *widget.Button
}

// NewLogUIManager binds the manager to its status bar widgets.
func NewLogUIManager(label *widget.Label, prevBtn, nextBtn *widget.Button, maxMessages int) *LogUIManager {
	if maxMessages <= 0 || maxMessages > MaxLogMessages {
		maxMessages = DefaultMaxLogMessages
	}
	lm := &LogUIManager{
		messages: make([]string, 0, min(maxMessages, DefaultMaxLogMessages)),
		current:  -1,
		max:      maxMessages,
		label:    label,
		prevBtn:  prevBtn,
		nextBtn:  nextBtn,
	}
	lm.UpdateLogDisplay()
	return lm
}

// AddLogMessage appends message, drops the oldest past capacity and jumps
// to the newest entry.
func (lm *LogUIManager) AddLogMessage(message string) {
	lm.messages = append(lm.messages, message)
	if len(lm.messages) > lm.max {
		lm.messages = lm.messages[len(lm.messages)-lm.max:]
	}
	lm.current = len(lm.messages) - 1
	lm.UpdateLogDisplay()
}

// UpdateLogDisplay renders the selected message and the button states.
func (lm *LogUIManager) UpdateLogDisplay() {
	if lm.label == nil || lm.prevBtn == nil || lm.nextBtn == nil {
		return
	}
	if len(lm.messages) == 0 {
		lm.label.SetText("")
		lm.prevBtn.Disable()
		lm.nextBtn.Disable()
		return
	}

	lm.current = max(0, min(lm.current, len(lm.messages)-1))
	lm.label.SetText(fmt.Sprintf("[%d/%d] %s", lm.current+1, len(lm.messages), lm.messages[lm.current]))

	if lm.current == 0 {
		lm.prevBtn.Disable()
	} else {
		lm.prevBtn.Enable()
	}
	if lm.current == len(lm.messages)-1 {
		lm.nextBtn.Disable()
	} else {
		lm.nextBtn.Enable()
	}
}

func (lm *LogUIManager) ShowPreviousLogMessage() {
	if lm.current <= 0 {
		return
	}
	lm.current--
	lm.UpdateLogDisplay()
}

func (lm *LogUIManager) ShowNextLogMessage() {
	if lm.current >= len(lm.messages)-1 {
		return
	}
	lm.current++
	lm.UpdateLogDisplay()
}

// Messages returns a copy of the kept messages, oldest first.
func (lm *LogUIManager) Messages() []string {
	return append([]string(nil), lm.messages...)
}
