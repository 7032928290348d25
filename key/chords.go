package key

import (
	"sort"

	"github.com/jsphweid/harmondex/chord"
	"github.com/jsphweid/harmondex/notation"
	"github.com/jsphweid/harmondex/util"
)

// triad qualities by (third, fifth) in semitones above the root
var triadTypes = map[[2]int]string{
	{4, 7}: "major",
	{3, 7}: "minor",
	{3, 6}: "dim",
	{4, 8}: "aug",
}

// PrimaryTriads stacks every scale degree with the notes two and four
// positions above it, wrapping around the scale. The quality is read off the
// result. Degrees whose stack is not a third-and-fifth (as in pentatonic
// scales) or not one of the four triad qualities are skipped.
func (k Key) PrimaryTriads() []chord.Chord {
	cat := chord.StandardCatalog()
	n := len(k.notes)
	var res []chord.Chord
	for i, root := range k.notes {
		third := k.notes[(i+2)%n]
		fifth := k.notes[(i+4)%n]
		if third.Letter != root.Letter.Add(2) || fifth.Letter != root.Letter.Add(4) {
			continue
		}
		shape := [2]int{
			util.Mod(third.PitchClass()-root.PitchClass(), 12),
			util.Mod(fifth.PitchClass()-root.PitchClass(), 12),
		}
		id, ok := triadTypes[shape]
		if !ok {
			continue
		}
		t, _ := cat.Lookup(id)
		res = append(res, chord.New(root.NoteClass, t))
	}
	return res
}

// Chords lists every catalog chord rooted on a scale degree whose spelled
// tones all belong to the key, by degree and then catalog order.
func (k Key) Chords(catalog chord.Catalog) []chord.Chord {
	inKey := k.NoteClasses()
	var res []chord.Chord
	for _, root := range k.notes {
		for _, t := range catalog {
			if c, ok := chord.Match(root.NoteClass, t, inKey); ok {
				res = append(res, c)
			}
		}
	}
	return res
}

// Identify names the sounding pitches as a catalog chord. The lowest pitch is
// tried as the root first, then the other pitch classes upward. Roots are
// spelled by the key and a chord matches when its tones cover exactly the
// sounding pitch classes.
func (k Key) Identify(pitches []notation.Pitch, catalog chord.Catalog) (chord.Chord, bool) {
	if len(pitches) == 0 {
		return chord.Chord{}, false
	}

	var sounding uint16
	bass := pitches[0]
	for _, p := range pitches {
		sounding |= 1 << uint(p.PitchClass())
		if p < bass {
			bass = p
		}
	}

	roots := []int{bass.PitchClass()}
	var rest []int
	for pc := 0; pc < 12; pc++ {
		if sounding&(1<<uint(pc)) != 0 && pc != bass.PitchClass() {
			rest = append(rest, pc)
		}
	}
	sort.Ints(rest)
	roots = append(roots, rest...)

	for _, pc := range roots {
		root := k.Spell(notation.Pitch(pc))
		for _, t := range catalog {
			c := chord.New(root, t)
			classes, err := c.NoteClasses()
			if err != nil {
				continue
			}
			var tones uint16
			for _, nc := range classes {
				tones |= 1 << uint(nc.PitchClass())
			}
			if tones == sounding {
				return c, true
			}
		}
	}
	return chord.Chord{}, false
}
