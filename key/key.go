// Package key builds the spelled note collection of a tonic plus a scale and
// answers spelling and chord questions in that context.
//
// A Key is immutable and safe to share between goroutines.
//
// Errors:
//
//	ErrInvalidKeyName - Parse was given text that is not a key name.
//	ErrInvalidBias    - ParseBias was given something other than sharp or flat.
//
// Construction also returns notation.ErrSpelling when a scale degree cannot
// be spelled from the tonic (B𝄪 lydian, for example).
package key

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/harmondex/notation"
	"github.com/jsphweid/harmondex/scale"
)

// ReferenceOctave is the octave the tonic is placed in when the scale is
// stacked on it.
const ReferenceOctave = 4

var (
	ErrInvalidKeyName = errors.New("key: invalid key name")
	ErrInvalidBias    = errors.New("key: invalid bias")
)

// Bias decides how pitches outside the key are spelled.
type Bias int

const (
	SharpBias Bias = iota
	FlatBias
)

func (b Bias) String() string {
	if b == FlatBias {
		return "flat"
	}
	return "sharp"
}

// ParseBias reads "sharp" or "flat".
func ParseBias(s string) (Bias, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sharp", "#", "♯":
		return SharpBias, nil
	case "flat", "b", "♭":
		return FlatBias, nil
	}
	return SharpBias, fmt.Errorf("%w: %q", ErrInvalidBias, s)
}

type options struct {
	bias    Bias
	hasBias bool
}

type Option func(*options)

// WithBias overrides the bias derived from the key's own spellings.
func WithBias(b Bias) Option {
	return func(o *options) {
		o.bias = b
		o.hasBias = true
	}
}

type Key struct {
	tonic notation.NoteClass
	scale scale.Scale
	bias  Bias
	notes []notation.Note
}

// New stacks every interval of s on the tonic with ShiftUp. Unless WithBias
// is given, the bias follows the tonic: a flat tonic is flat, a sharp tonic is
// sharp, and a natural tonic under a scale with a minor third is flat. A
// natural tonic under any other scale follows the accidentals the key itself
// uses, with a tie going sharp.
func New(tonic notation.NoteClass, s scale.Scale, opts ...Option) (Key, error) {
	if !tonic.Valid() {
		return Key{}, &notation.DomainError{Kind: "tonic", Value: int(tonic.Letter)}
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	root := notation.Note{NoteClass: tonic, Octave: ReferenceOctave}
	notes := make([]notation.Note, 0, s.Count())
	sum := 0
	minorThird := false
	for _, iv := range s.Intervals() {
		n, err := root.ShiftUp(iv)
		if err != nil {
			return Key{}, fmt.Errorf("key %v %s: %w", tonic, s.Name(), err)
		}
		notes = append(notes, n)
		sum += int(n.Accidental)
		if iv == notation.Min3 {
			minorThird = true
		}
	}

	k := Key{tonic: tonic, scale: s, notes: notes}
	switch {
	case o.hasBias:
		k.bias = o.bias
	case tonic.Accidental < notation.Natural:
		k.bias = FlatBias
	case tonic.Accidental > notation.Natural:
		k.bias = SharpBias
	case minorThird, sum < 0:
		k.bias = FlatBias
	default:
		k.bias = SharpBias
	}
	return k, nil
}

func (k Key) Tonic() notation.NoteClass { return k.tonic }

func (k Key) Scale() scale.Scale { return k.scale }

func (k Key) Bias() Bias { return k.bias }

// Notes lists the spelled scale degrees in degree order, starting on the
// tonic in ReferenceOctave.
func (k Key) Notes() []notation.Note {
	res := make([]notation.Note, len(k.notes))
	copy(res, k.notes)
	return res
}

func (k Key) NoteSet() notation.NoteSet {
	// degrees come out of ShiftUp, which only returns valid notes
	res, _ := notation.NewNoteSet(k.notes...)
	return res
}

func (k Key) NoteClasses() notation.NoteClassSet {
	var res notation.NoteClassSet
	for _, n := range k.notes {
		res = res.Add(n.NoteClass)
	}
	return res
}

func (k Key) String() string {
	return fmt.Sprintf("%v %s", k.tonic, k.scale.Name())
}
