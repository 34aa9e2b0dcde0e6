// Package service holds the die for a running session and performs rolls
// on behalf of the UI.
package service

import (
	"diceroller/internal/die"
	"fmt"
	"log"
)

// LoggerFunc defines a function signature for logging messages.
// The ui package supplies one that writes to its status log.
type LoggerFunc func(message string)

// Service is the main entry point for session logic.
type Service struct {
	state  die.State
	src    die.Source
	rolls  int
	Logger LoggerFunc
}

// NewService constructs a Service whose die starts at its initial face.
// A nil src uses the process-wide random generator.
func NewService(src die.Source, logger LoggerFunc) *Service {
	if src == nil {
		src = die.NewSource(0)
	}
	return &Service{
		state:  die.New(),
		src:    src,
		Logger: logger,
	}
}

// logMessage uses the configured logger or falls back to the standard log.
func (s *Service) logMessage(format string, args ...interface{}) {
	if s.Logger != nil {
		s.Logger(fmt.Sprintf(format, args...))
	} else {
		log.Printf(format, args...)
	}
}

// Value returns the current face value.
func (s *Service) Value() int {
	return s.state.Value()
}

// Current returns the resource key and label for the face being shown.
func (s *Service) Current() die.Face {
	return s.state.Face()
}

// Roll replaces the held die with a freshly rolled one and returns its face.
func (s *Service) Roll() die.Face {
	s.state = s.state.Roll(s.src)
	s.rolls++
	face := s.state.Face()
	s.logMessage("Rolled %s", face.Label)
	return face
}

// Rolls returns how many times the die was rolled this session.
func (s *Service) Rolls() int {
	return s.rolls
}
