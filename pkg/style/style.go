// Package style defines the humanization intensity levels and writing tones,
// together with the static per-level generation defaults and per-tone style
// directives shared by the rewriter, the prompt builder and the pipeline.
package style

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownLevel is returned by ParseLevel for values outside the known set.
	ErrUnknownLevel = errors.New("unknown level")
	// ErrUnknownTone is returned by ParseTone for values outside the known set.
	ErrUnknownTone = errors.New("unknown tone")
)

// Level is the humanization intensity.
type Level string

const (
	Light      Level = "light"
	Medium     Level = "medium"
	Aggressive Level = "aggressive"
)

// Levels lists every level in ascending intensity.
var Levels = []Level{Light, Medium, Aggressive}

// Valid reports whether l is one of the known levels.
func (l Level) Valid() bool {
	switch l {
	case Light, Medium, Aggressive:
		return true
	}
	return false
}

// String returns the underlying string value of the level.
func (l Level) String() string {
	return string(l)
}

// ParseLevel converts s (case-insensitive, surrounding space ignored) to a Level.
func ParseLevel(s string) (Level, error) {
	l := Level(strings.ToLower(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", fmt.Errorf("%w %q", ErrUnknownLevel, s)
	}
	return l, nil
}

// Tone is the target writing register.
type Tone string

const (
	Conversational Tone = "conversational"
	Professional   Tone = "professional"
	Casual         Tone = "casual"
	Academic       Tone = "academic"
	Creative       Tone = "creative"
)

// Tones lists every tone.
var Tones = []Tone{Conversational, Professional, Casual, Academic, Creative}

// Valid reports whether t is one of the known tones.
func (t Tone) Valid() bool {
	_, ok := toneGuides[t]
	return ok
}

// String returns the underlying string value of the tone.
func (t Tone) String() string {
	return string(t)
}

// Informal reports whether the tone calls for contractions.
func (t Tone) Informal() bool {
	return t == Conversational || t == Casual
}

// Guide returns the style directive for the tone, or an empty string for an
// unknown tone.
func (t Tone) Guide() string {
	return toneGuides[t]
}

// ParseTone converts s (case-insensitive, surrounding space ignored) to a Tone.
func ParseTone(s string) (Tone, error) {
	t := Tone(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w %q", ErrUnknownTone, s)
	}
	return t, nil
}

var toneGuides = map[Tone]string{
	Conversational: "Use contractions, occasional sentence fragments, and light idioms. Vary openers. Avoid stiff transitions.",
	Professional:   "Keep formal grammar while avoiding repetitive sentence starters. Be crisp and precise.",
	Casual:         "Keep it relaxed, friendly, and direct. Sprinkle informal phrasing without slang overload.",
	Academic:       "Maintain academic clarity with varied sentence lengths. Avoid robotic phrasing and template transitions.",
	Creative:       "Lean into vivid phrasing, occasional metaphor, and rhythmic sentence variety.",
}
