package scale

import (
	"errors"
	"testing"

	"github.com/jsphweid/harmondex/notation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamedScalesStartOnUnison(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := Lookup(name)
			require.NoError(t, err)
			require.NotZero(t, s.Count())
			assert.Equal(t, notation.P1, s.Intervals()[0])
			assert.Equal(t, name, s.Name())
		})
	}
}

func TestHeptatonicScalesCoverEveryLetter(t *testing.T) {
	for _, s := range []Scale{Major(), NaturalMinor(), HarmonicMinor(), MelodicMinor(), Dorian(), Phrygian(), Lydian(), Mixolydian(), Locrian()} {
		degrees := map[int]bool{}
		for _, iv := range s.Intervals() {
			degrees[iv.Degree] = true
		}
		assert.Len(t, degrees, 7, s.Name())
	}
}

func TestLookup(t *testing.T) {
	assert := assert.New(t)

	s, err := Lookup("HarmonicMinor")
	assert.NoError(err)
	assert.Equal("harmonicMinor", s.Name())

	s, err = Lookup("minor")
	assert.NoError(err)
	assert.Equal("naturalMinor", s.Name())

	_, err = Lookup("bebop")
	assert.True(errors.Is(err, ErrUnknownScale))
}

func TestScaleIsImmutable(t *testing.T) {
	ivs := []notation.Interval{notation.P1, notation.Maj2}
	s, err := New("two", ivs...)
	require.NoError(t, err)

	ivs[1] = notation.Min2
	got := s.Intervals()
	got[0] = notation.P5

	assert.Equal(t, []notation.Interval{notation.P1, notation.Maj2}, s.Intervals())
}

func TestNewRejectsBadScales(t *testing.T) {
	_, err := New("empty")
	assert.True(t, errors.Is(err, ErrEmptyScale))

	_, err = New("wide", notation.Interval{Degree: 15, Semitones: 24})
	assert.True(t, errors.Is(err, notation.ErrDomain))
}

func TestString(t *testing.T) {
	assert.Equal(t, "major [P1 M2 M3 P4 P5 M6 M7]", Major().String())
}
