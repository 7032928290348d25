package notation

import "github.com/jsphweid/harmondex/util"

// Pitch is an unspelled MIDI note number, 60 being middle C. Values outside
// 0..127 are allowed so octave arithmetic stays well defined near the edges.
type Pitch int

const (
	MinMIDIPitch Pitch = 0
	MaxMIDIPitch Pitch = 127
)

func (p Pitch) PitchClass() int {
	return util.Mod(int(p), 12)
}

// Octave is floor(p/12)-1, so 60 is in octave 4.
func (p Pitch) Octave() int {
	return util.FloorDiv(int(p), 12) - 1
}

// Semitones is the signed distance from p up to next.
func (p Pitch) Semitones(next Pitch) int {
	return int(next) - int(p)
}
