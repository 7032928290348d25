// Package scale defines scales as ordered, tonic-relative interval lists and
// the table of named scales.
package scale

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/harmondex/notation"
	"github.com/jsphweid/harmondex/util"
)

var (
	ErrUnknownScale = errors.New("scale: unknown scale")
	ErrEmptyScale   = errors.New("scale: no intervals")
)

// Scale is an ordered list of intervals above a tonic, unison first.
type Scale struct {
	name      string
	intervals []notation.Interval
}

// New copies intervals, so later changes to the caller's slice are not seen.
func New(name string, intervals ...notation.Interval) (Scale, error) {
	if len(intervals) == 0 {
		return Scale{}, fmt.Errorf("%w: %s", ErrEmptyScale, name)
	}
	for _, iv := range intervals {
		if _, err := notation.NewInterval(iv.Degree, iv.Semitones); err != nil {
			return Scale{}, fmt.Errorf("scale %s: %w", name, err)
		}
	}
	ivs := make([]notation.Interval, len(intervals))
	copy(ivs, intervals)
	return Scale{name: name, intervals: ivs}, nil
}

func (s Scale) Name() string { return s.name }

func (s Scale) Intervals() []notation.Interval {
	res := make([]notation.Interval, len(s.intervals))
	copy(res, s.intervals)
	return res
}

// Count is the number of scale degrees.
func (s Scale) Count() int { return len(s.intervals) }

func (s Scale) String() string {
	names := make([]string, len(s.intervals))
	for i, iv := range s.intervals {
		names[i] = iv.String()
	}
	return s.name + " [" + strings.Join(names, " ") + "]"
}

func mustNew(name string, intervals ...notation.Interval) Scale {
	s, err := New(name, intervals...)
	if err != nil {
		panic(err)
	}
	return s
}

func Major() Scale {
	return mustNew("major", notation.P1, notation.Maj2, notation.Maj3, notation.P4, notation.P5, notation.Maj6, notation.Maj7)
}

func NaturalMinor() Scale {
	return mustNew("naturalMinor", notation.P1, notation.Maj2, notation.Min3, notation.P4, notation.P5, notation.Min6, notation.Min7)
}

func HarmonicMinor() Scale {
	return mustNew("harmonicMinor", notation.P1, notation.Maj2, notation.Min3, notation.P4, notation.P5, notation.Min6, notation.Maj7)
}

func MelodicMinor() Scale {
	return mustNew("melodicMinor", notation.P1, notation.Maj2, notation.Min3, notation.P4, notation.P5, notation.Maj6, notation.Maj7)
}

func Ionian() Scale {
	return mustNew("ionian", notation.P1, notation.Maj2, notation.Maj3, notation.P4, notation.P5, notation.Maj6, notation.Maj7)
}

func Dorian() Scale {
	return mustNew("dorian", notation.P1, notation.Maj2, notation.Min3, notation.P4, notation.P5, notation.Maj6, notation.Min7)
}

func Phrygian() Scale {
	return mustNew("phrygian", notation.P1, notation.Min2, notation.Min3, notation.P4, notation.P5, notation.Min6, notation.Min7)
}

func Lydian() Scale {
	return mustNew("lydian", notation.P1, notation.Maj2, notation.Maj3, notation.Aug4, notation.P5, notation.Maj6, notation.Maj7)
}

func Mixolydian() Scale {
	return mustNew("mixolydian", notation.P1, notation.Maj2, notation.Maj3, notation.P4, notation.P5, notation.Maj6, notation.Min7)
}

func Aeolian() Scale {
	return mustNew("aeolian", notation.P1, notation.Maj2, notation.Min3, notation.P4, notation.P5, notation.Min6, notation.Min7)
}

func Locrian() Scale {
	return mustNew("locrian", notation.P1, notation.Min2, notation.Min3, notation.P4, notation.Dim5, notation.Min6, notation.Min7)
}

func LydianDominant() Scale {
	return mustNew("lydianDominant", notation.P1, notation.Maj2, notation.Maj3, notation.Aug4, notation.P5, notation.Maj6, notation.Min7)
}

func PhrygianDominant() Scale {
	return mustNew("phrygianDominant", notation.P1, notation.Min2, notation.Maj3, notation.P4, notation.P5, notation.Min6, notation.Min7)
}

func PentatonicMajor() Scale {
	return mustNew("pentatonicMajor", notation.P1, notation.Maj2, notation.Maj3, notation.P5, notation.Maj6)
}

func PentatonicMinor() Scale {
	return mustNew("pentatonicMinor", notation.P1, notation.Min3, notation.P4, notation.P5, notation.Min7)
}

func Blues() Scale {
	return mustNew("blues", notation.P1, notation.Min3, notation.P4, notation.Dim5, notation.P5, notation.Min7)
}

var named = map[string]func() Scale{
	"major":            Major,
	"naturalMinor":     NaturalMinor,
	"harmonicMinor":    HarmonicMinor,
	"melodicMinor":     MelodicMinor,
	"ionian":           Ionian,
	"dorian":           Dorian,
	"phrygian":         Phrygian,
	"lydian":           Lydian,
	"mixolydian":       Mixolydian,
	"aeolian":          Aeolian,
	"locrian":          Locrian,
	"lydianDominant":   LydianDominant,
	"phrygianDominant": PhrygianDominant,
	"pentatonicMajor":  PentatonicMajor,
	"pentatonicMinor":  PentatonicMinor,
	"blues":            Blues,
}

// Names lists the scales Lookup knows, sorted.
func Names() []string {
	return util.GetKeys(named)
}

// Lookup is case insensitive and also accepts "minor" for the natural minor.
func Lookup(name string) (Scale, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	if want == "minor" {
		return NaturalMinor(), nil
	}
	for k, ctor := range named {
		if strings.ToLower(k) == want {
			return ctor(), nil
		}
	}
	return Scale{}, fmt.Errorf("%w: %q", ErrUnknownScale, name)
}
