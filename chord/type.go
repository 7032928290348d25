package chord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/harmondex/notation"
)

// MaxIntervals is the most intervals a chord type can stack above its root.
const MaxIntervals = 6

var ErrInvalidType = errors.New("chord: invalid chord type")

// Type is a named interval set above a root, e.g. {M3, P5} labelled "".
// It is comparable, so chords built from it can be compared with ==.
type Type struct {
	id        string
	label     string
	intervals [MaxIntervals]notation.Interval
	count     int
}

func NewType(id, label string, intervals ...notation.Interval) (Type, error) {
	if id == "" {
		return Type{}, fmt.Errorf("%w: empty id", ErrInvalidType)
	}
	if len(intervals) == 0 || len(intervals) > MaxIntervals {
		return Type{}, fmt.Errorf("%w: %s has %d intervals", ErrInvalidType, id, len(intervals))
	}
	t := Type{id: id, label: label, count: len(intervals)}
	for i, iv := range intervals {
		if _, err := notation.NewInterval(iv.Degree, iv.Semitones); err != nil {
			return Type{}, fmt.Errorf("%w: %s: %v", ErrInvalidType, id, err)
		}
		t.intervals[i] = iv
	}
	return t, nil
}

// parseType builds a Type from space separated interval names like "M3 P5".
func parseType(id, label, intervals string) (Type, error) {
	var ivs []notation.Interval
	for _, name := range strings.Fields(intervals) {
		iv, err := notation.ParseInterval(name)
		if err != nil {
			return Type{}, fmt.Errorf("%w: %s: %v", ErrInvalidType, id, err)
		}
		ivs = append(ivs, iv)
	}
	return NewType(id, label, ivs...)
}

func (t Type) ID() string { return t.id }

// Label is what gets appended to the root name, "m7" for a minor seventh.
func (t Type) Label() string { return t.label }

func (t Type) Intervals() []notation.Interval {
	res := make([]notation.Interval, t.count)
	copy(res, t.intervals[:t.count])
	return res
}

func (t Type) String() string {
	names := make([]string, t.count)
	for i, iv := range t.intervals[:t.count] {
		names[i] = iv.String()
	}
	return fmt.Sprintf("%s [%s]", t.id, strings.Join(names, " "))
}
