package notation

import (
	"fmt"

	"github.com/jsphweid/harmondex/util"
)

// Octave range covering MIDI notes 0..127.
const (
	MinOctave = -1
	MaxOctave = 9
)

// IndexCount is the size of the dense index domain used by NoteSet.
const IndexCount = (MaxOctave - MinOctave + 1) * NoteClassCount

// Note is a NoteClass placed in an octave. Octave 4 holds middle C.
type Note struct {
	NoteClass
	Octave int
}

func NewNote(l Letter, a Accidental, octave int) (Note, error) {
	nc, err := NewNoteClass(l, a)
	if err != nil {
		return Note{}, err
	}
	if octave < MinOctave || octave > MaxOctave {
		return Note{}, &DomainError{Kind: "octave", Value: octave}
	}
	return Note{NoteClass: nc, Octave: octave}, nil
}

// NoteFromIndex is the inverse of Note.Index.
func NoteFromIndex(index int) (Note, error) {
	if index < 0 || index >= IndexCount {
		return Note{}, &DomainError{Kind: "note index", Value: index}
	}
	octave := index/NoteClassCount + MinOctave
	letter := Letter((index % NoteClassCount) / AccidentalCount)
	accidental := Accidental(index%AccidentalCount - 2)
	return Note{NoteClass: NoteClass{Letter: letter, Accidental: accidental}, Octave: octave}, nil
}

func (n Note) Valid() bool {
	return n.NoteClass.Valid() && n.Octave >= MinOctave && n.Octave <= MaxOctave
}

// Index is unique per exact spelling: (octave+1)*35 + letter*5 + accidental+2.
func (n Note) Index() int {
	return (n.Octave-MinOctave)*NoteClassCount + n.NoteClass.ordinal()
}

// Pitch counts accidentals across the octave line, so C♭4 is 59 and B♯3 is 60.
func (n Note) Pitch() Pitch {
	return Pitch((n.Octave+1)*12 + n.Letter.BaseSemitone() + int(n.Accidental))
}

// Less orders by letter, accidental, then octave.
func (n Note) Less(other Note) bool {
	if n.NoteClass != other.NoteClass {
		return n.NoteClass.Less(other.NoteClass)
	}
	return n.Octave < other.Octave
}

func (n Note) ShiftUp(iv Interval) (Note, error) {
	return n.shift(iv, true)
}

func (n Note) ShiftDown(iv Interval) (Note, error) {
	return n.shift(iv, false)
}

// shift resolves the target letter from the degree and the target pitch from
// the semitones, then picks the one accidental that reconciles them. The
// octave falls out of the target pitch, which keeps letter wraps such as
// B→C♯ or C→B♭ in the right register.
func (n Note) shift(iv Interval, up bool) (Note, error) {
	steps := iv.Degree - 1
	semitones := iv.Semitones
	if !up {
		steps, semitones = -steps, -semitones
	}

	letter := n.Letter.Add(steps)
	target := int(n.Pitch()) + semitones
	targetClass := util.Mod(target, 12)

	for _, acc := range Accidentals() {
		if util.Mod(letter.BaseSemitone()+int(acc), 12) != targetClass {
			continue
		}
		octave := util.FloorDiv(target-letter.BaseSemitone()-int(acc), 12) - 1
		if octave < MinOctave || octave > MaxOctave {
			break
		}
		return Note{NoteClass: NoteClass{Letter: letter, Accidental: acc}, Octave: octave}, nil
	}
	return Note{}, &SpellingError{From: n, Interval: iv, Up: up}
}

func (n Note) String() string {
	return fmt.Sprintf("%v%d", n.NoteClass, n.Octave)
}
