// Package notation holds the spelled-pitch value types: letters, accidentals,
// note classes, intervals, notes and note sets.
//
// Every type here is an immutable value. Arithmetic that can fail returns an
// explicit error instead of an invalid value.
//
// Errors:
//
//	ErrDomain   - a letter, accidental, octave or degree is outside its range.
//	ErrSpelling - no accidental in [-2,+2] reconciles an interval's letter
//	              distance with its semitone distance.
package notation

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain is wrapped by every *DomainError.
	ErrDomain = errors.New("notation: value out of range")

	// ErrSpelling is wrapped by every *SpellingError.
	ErrSpelling = errors.New("notation: interval cannot be spelled")

	// ErrParse indicates text that is not a note, note class or interval name.
	ErrParse = errors.New("notation: cannot parse")
)

// DomainError reports a constructor argument outside its valid range.
type DomainError struct {
	Kind  string
	Value int
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("notation: %s %d out of range", e.Kind, e.Value)
}

func (e *DomainError) Unwrap() error { return ErrDomain }

// SpellingError reports a shift whose target cannot be written with a
// double-flat..double-sharp accidental, or whose octave leaves the
// representable range.
type SpellingError struct {
	From     Note
	Interval Interval
	Up       bool
}

func (e *SpellingError) Error() string {
	dir := "down"
	if e.Up {
		dir = "up"
	}
	return fmt.Sprintf("notation: cannot spell %v shifted %s by %v", e.From, dir, e.Interval)
}

func (e *SpellingError) Unwrap() error { return ErrSpelling }
