package chord

import (
	"sort"
	"strings"

	"github.com/jsphweid/harmondex/notation"
)

// referenceOctave is where chord tones are stacked; it is high enough that a
// thirteenth above any root stays in range.
const referenceOctave = 4

// Chord is a root spelling plus a chord type.
type Chord struct {
	Root notation.NoteClass
	Type Type
}

func New(root notation.NoteClass, t Type) Chord {
	return Chord{Root: root, Type: t}
}

// NoteClasses spells the root followed by one tone per interval, each reached
// with notation.Note.ShiftUp so letters and accidentals stay consistent.
func (c Chord) NoteClasses() ([]notation.NoteClass, error) {
	root := notation.Note{NoteClass: c.Root, Octave: referenceOctave}
	res := []notation.NoteClass{c.Root}
	for _, iv := range c.Type.Intervals() {
		n, err := root.ShiftUp(iv)
		if err != nil {
			return nil, err
		}
		res = append(res, n.NoteClass)
	}
	return res, nil
}

func (c Chord) NoteClassSet() (notation.NoteClassSet, error) {
	classes, err := c.NoteClasses()
	if err != nil {
		return 0, err
	}
	return notation.NewNoteClassSet(classes...), nil
}

func (c Chord) String() string {
	return c.Root.String() + c.Type.Label()
}

// Match builds the chord on root and accepts it when every spelled tone,
// root included, is one of the spellings in inKey. A chord that cannot be
// spelled at all does not match.
func Match(root notation.NoteClass, t Type, inKey notation.NoteClassSet) (Chord, bool) {
	c := New(root, t)
	tones, err := c.NoteClassSet()
	if err != nil {
		return Chord{}, false
	}
	if !tones.IsSubset(inKey) {
		return Chord{}, false
	}
	return c, true
}

// CreateChordKey renders a set of spellings canonically, ordered by letter
// then accidental, duplicates dropped: "C-E♭-G".
func CreateChordKey(classes []notation.NoteClass) string {
	sorted := make([]notation.NoteClass, len(classes))
	copy(sorted, classes)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Less(sorted[j])
	})

	var parts []string
	for i, nc := range sorted {
		if i > 0 && nc == sorted[i-1] {
			continue
		}
		parts = append(parts, nc.String())
	}
	return strings.Join(parts, "-")
}
