package key

import "github.com/jsphweid/harmondex/notation"

var (
	sharpSpellings = chromatic(notation.Sharp,
		notation.C, notation.C, notation.D, notation.D, notation.E, notation.F,
		notation.F, notation.G, notation.G, notation.A, notation.A, notation.B)
	flatSpellings = chromatic(notation.Flat,
		notation.C, notation.D, notation.D, notation.E, notation.E, notation.F,
		notation.G, notation.G, notation.A, notation.A, notation.B, notation.B)
)

// chromatic builds a pitch-class table where the black keys (1 3 6 8 10)
// carry acc.
func chromatic(acc notation.Accidental, letters ...notation.Letter) [12]notation.NoteClass {
	var res [12]notation.NoteClass
	for pc, l := range letters {
		res[pc] = notation.NoteClass{Letter: l}
		switch pc {
		case 1, 3, 6, 8, 10:
			res[pc].Accidental = acc
		}
	}
	return res
}

// Spell names p in this key. A pitch class the key contains is spelled
// exactly as the key spells it; any other pitch class comes from a fixed
// sharp or flat table picked by the key's bias.
func (k Key) Spell(p notation.Pitch) notation.NoteClass {
	pc := p.PitchClass()
	for _, n := range k.notes {
		if n.PitchClass() == pc {
			return n.NoteClass
		}
	}
	if k.bias == FlatBias {
		return flatSpellings[pc]
	}
	return sharpSpellings[pc]
}

// SpellNote is Spell plus the octave floor(p/12)-1. The octave follows the
// pitch, not the spelling, so 60 spelled B♯ reads B♯4.
func (k Key) SpellNote(p notation.Pitch) notation.Note {
	return notation.Note{NoteClass: k.Spell(p), Octave: p.Octave()}
}

// SpellAll spells a run of pitches in order.
func (k Key) SpellAll(pitches []notation.Pitch) []notation.Note {
	res := make([]notation.Note, len(pitches))
	for i, p := range pitches {
		res[i] = k.SpellNote(p)
	}
	return res
}
