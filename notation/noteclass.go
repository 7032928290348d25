package notation

import (
	"strings"

	"github.com/jsphweid/harmondex/util"
)

// NoteClass is a spelled pitch class: a letter plus an accidental.
// The zero value is C natural.
//
// Two note classes with the same pitch class but different spellings (C♯
// and D♭) are different values.
type NoteClass struct {
	Letter     Letter
	Accidental Accidental
}

// NoteClassCount is the number of distinct spellings.
const NoteClassCount = LetterCount * AccidentalCount

func NewNoteClass(l Letter, a Accidental) (NoteClass, error) {
	if !l.Valid() {
		return NoteClass{}, &DomainError{Kind: "letter", Value: int(l)}
	}
	if !a.Valid() {
		return NoteClass{}, &DomainError{Kind: "accidental", Value: int(a)}
	}
	return NoteClass{Letter: l, Accidental: a}, nil
}

// DefaultNoteClass is C natural.
func DefaultNoteClass() NoteClass {
	return NoteClass{Letter: C, Accidental: Natural}
}

// AllNoteClasses returns the 35 spellings ordered by letter then accidental.
func AllNoteClasses() []NoteClass {
	res := make([]NoteClass, 0, NoteClassCount)
	for _, l := range Letters() {
		for _, a := range Accidentals() {
			res = append(res, NoteClass{Letter: l, Accidental: a})
		}
	}
	return res
}

func (nc NoteClass) Valid() bool {
	return nc.Letter.Valid() && nc.Accidental.Valid()
}

// PitchClass is (base semitone + accidental) mod 12.
func (nc NoteClass) PitchClass() int {
	return util.Mod(nc.Letter.BaseSemitone()+int(nc.Accidental), 12)
}

// ordinal packs the spelling into 0..34, letter-major.
func (nc NoteClass) ordinal() int {
	return int(nc.Letter)*AccidentalCount + int(nc.Accidental) + 2
}

// Less orders by letter, then accidental.
func (nc NoteClass) Less(other NoteClass) bool {
	return nc.ordinal() < other.ordinal()
}

// Enharmonic reports whether both spellings denote the same pitch class.
func (nc NoteClass) Enharmonic(other NoteClass) bool {
	return nc.PitchClass() == other.PitchClass()
}

func (nc NoteClass) String() string {
	return nc.Letter.String() + nc.Accidental.String()
}

// ParseNoteClass reads a letter followed by an optional accidental, written
// either with glyphs (♭ ♯ 𝄫 𝄪) or ASCII (b # bb ## x).
func ParseNoteClass(s string) (NoteClass, error) {
	nc, rest, err := parseNoteClassPrefix(s)
	if err != nil {
		return NoteClass{}, err
	}
	if rest != "" {
		return NoteClass{}, parseError("note class", s)
	}
	return nc, nil
}

var accidentalSpellings = []struct {
	text string
	acc  Accidental
}{
	// longest first so "bb" wins over "b"
	{"𝄫", DoubleFlat},
	{"𝄪", DoubleSharp},
	{"♭♭", DoubleFlat},
	{"♯♯", DoubleSharp},
	{"bb", DoubleFlat},
	{"##", DoubleSharp},
	{"x", DoubleSharp},
	{"♭", Flat},
	{"♯", Sharp},
	{"b", Flat},
	{"#", Sharp},
}

func parseNoteClassPrefix(s string) (NoteClass, string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return NoteClass{}, "", parseError("note class", s)
	}
	idx := strings.IndexByte("CDEFGAB", strings.ToUpper(s[:1])[0])
	if idx < 0 {
		return NoteClass{}, "", parseError("note class", s)
	}
	nc := NoteClass{Letter: Letter(idx)}
	rest := s[1:]
	for _, sp := range accidentalSpellings {
		if strings.HasPrefix(rest, sp.text) {
			nc.Accidental = sp.acc
			rest = rest[len(sp.text):]
			break
		}
	}
	return nc, rest, nil
}

// NoteClassSet is a set of exact spellings, ignoring octave.
type NoteClassSet uint64

func NewNoteClassSet(classes ...NoteClass) NoteClassSet {
	var s NoteClassSet
	for _, nc := range classes {
		s = s.Add(nc)
	}
	return s
}

// Add ignores invalid note classes.
func (s NoteClassSet) Add(nc NoteClass) NoteClassSet {
	if !nc.Valid() {
		return s
	}
	return s | 1<<uint(nc.ordinal())
}

func (s NoteClassSet) Contains(nc NoteClass) bool {
	return nc.Valid() && s&(1<<uint(nc.ordinal())) != 0
}

func (s NoteClassSet) IsSubset(of NoteClassSet) bool {
	return s&^of == 0
}

func (s NoteClassSet) Union(other NoteClassSet) NoteClassSet {
	return s | other
}

func (s NoteClassSet) Len() int {
	n := 0
	for v := uint64(s); v != 0; v &= v - 1 {
		n++
	}
	return n
}

// NoteClasses lists members ordered by letter, then accidental.
func (s NoteClassSet) NoteClasses() []NoteClass {
	var res []NoteClass
	for _, nc := range AllNoteClasses() {
		if s.Contains(nc) {
			res = append(res, nc)
		}
	}
	return res
}
