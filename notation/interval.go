package notation

import (
	"fmt"
	"strings"
)

// Interval is a tonal distance with two independent parts: Degree counts
// letter steps (1 is a unison, so Degree-1 letters are crossed) and Semitones
// counts the true distance. Spelling arithmetic reconciles the two through the
// target's accidental.
type Interval struct {
	Degree    int
	Semitones int
}

const (
	MinDegree = 1
	MaxDegree = 13
)

// Named intervals used by scales and the chord catalog.
var (
	P1    = Interval{Degree: 1, Semitones: 0}
	Min2  = Interval{Degree: 2, Semitones: 1}
	Maj2  = Interval{Degree: 2, Semitones: 2}
	Min3  = Interval{Degree: 3, Semitones: 3}
	Maj3  = Interval{Degree: 3, Semitones: 4}
	P4    = Interval{Degree: 4, Semitones: 5}
	Aug4  = Interval{Degree: 4, Semitones: 6}
	Dim5  = Interval{Degree: 5, Semitones: 6}
	P5    = Interval{Degree: 5, Semitones: 7}
	Aug5  = Interval{Degree: 5, Semitones: 8}
	Min6  = Interval{Degree: 6, Semitones: 8}
	Maj6  = Interval{Degree: 6, Semitones: 9}
	Dim7  = Interval{Degree: 7, Semitones: 9}
	Min7  = Interval{Degree: 7, Semitones: 10}
	Maj7  = Interval{Degree: 7, Semitones: 11}
	P8    = Interval{Degree: 8, Semitones: 12}
	Min9  = Interval{Degree: 9, Semitones: 13}
	Maj9  = Interval{Degree: 9, Semitones: 14}
	Aug9  = Interval{Degree: 9, Semitones: 15}
	P11   = Interval{Degree: 11, Semitones: 17}
	Aug11 = Interval{Degree: 11, Semitones: 18}
	Min13 = Interval{Degree: 13, Semitones: 20}
	Maj13 = Interval{Degree: 13, Semitones: 21}
)

var intervalNames = []struct {
	name string
	iv   Interval
}{
	{"P1", P1}, {"m2", Min2}, {"M2", Maj2}, {"m3", Min3}, {"M3", Maj3},
	{"P4", P4}, {"A4", Aug4}, {"d5", Dim5}, {"P5", P5}, {"A5", Aug5},
	{"m6", Min6}, {"M6", Maj6}, {"d7", Dim7}, {"m7", Min7}, {"M7", Maj7},
	{"P8", P8}, {"m9", Min9}, {"M9", Maj9}, {"A9", Aug9},
	{"P11", P11}, {"A11", Aug11}, {"m13", Min13}, {"M13", Maj13},
}

func NewInterval(degree, semitones int) (Interval, error) {
	if degree < MinDegree || degree > MaxDegree {
		return Interval{}, &DomainError{Kind: "degree", Value: degree}
	}
	return Interval{Degree: degree, Semitones: semitones}, nil
}

// ParseInterval accepts the quality+number names listed by IntervalNames.
// Names are case sensitive: "m3" is a minor third, "M3" a major third.
func ParseInterval(s string) (Interval, error) {
	s = strings.TrimSpace(s)
	for _, n := range intervalNames {
		if n.name == s {
			return n.iv, nil
		}
	}
	return Interval{}, parseError("interval", s)
}

// IntervalNames lists the recognised interval names from narrowest to widest.
func IntervalNames() []string {
	res := make([]string, len(intervalNames))
	for i, n := range intervalNames {
		res[i] = n.name
	}
	return res
}

// IntervalBetween measures from low up to high. The letter distance sets the
// degree, the pitch distance sets the semitones; high must not sit below low.
func IntervalBetween(low, high Note) (Interval, error) {
	steps := (high.Octave*LetterCount + int(high.Letter)) - (low.Octave*LetterCount + int(low.Letter))
	semitones := low.Pitch().Semitones(high.Pitch())
	if steps < 0 || semitones < 0 {
		return Interval{}, fmt.Errorf("notation: %v is below %v", high, low)
	}
	return NewInterval(steps+1, semitones)
}

func (iv Interval) String() string {
	for _, n := range intervalNames {
		if n.iv == iv {
			return n.name
		}
	}
	return fmt.Sprintf("(%d,%d)", iv.Degree, iv.Semitones)
}
