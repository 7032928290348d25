package notation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNote(t *testing.T, s string) Note {
	t.Helper()
	n, err := ParseNote(s)
	require.NoError(t, err)
	return n
}

func TestLetterAndAccidentalDomain(t *testing.T) {
	assert := assert.New(t)

	l, err := NewLetter(4)
	assert.NoError(err)
	assert.Equal(G, l)

	_, err = NewLetter(7)
	assert.True(errors.Is(err, ErrDomain))
	_, err = NewLetter(-1)
	assert.True(errors.Is(err, ErrDomain))

	_, err = NewAccidental(3)
	var de *DomainError
	assert.True(errors.As(err, &de))
	assert.Equal("accidental", de.Kind)
	assert.Equal(3, de.Value)

	_, err = NewNoteClass(B, Accidental(-3))
	assert.True(errors.Is(err, ErrDomain))
	_, err = NewNote(C, Natural, 10)
	assert.True(errors.Is(err, ErrDomain))
}

func TestLetterAddWraps(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(C, B.Add(1))
	assert.Equal(B, C.Add(-1))
	assert.Equal(A, C.Add(12))
	assert.Equal(D, D.Add(-7))
}

func TestNoteClassPitchClass(t *testing.T) {
	cases := []struct {
		nc   NoteClass
		want int
	}{
		{NoteClass{C, Natural}, 0},
		{NoteClass{C, Flat}, 11},
		{NoteClass{B, Sharp}, 0},
		{NoteClass{E, Sharp}, 5},
		{NoteClass{F, Flat}, 4},
		{NoteClass{G, DoubleSharp}, 9},
		{NoteClass{D, DoubleFlat}, 0},
	}

	for _, c := range cases {
		t.Run(c.nc.String(), func(t *testing.T) {
			assert.Equal(t, c.want, c.nc.PitchClass())
		})
	}
}

func TestEnharmonicSpellingsAreDistinctValues(t *testing.T) {
	cs := NoteClass{C, Sharp}
	db := NoteClass{D, Flat}

	assert := assert.New(t)
	assert.True(cs.Enharmonic(db))
	assert.NotEqual(cs, db)
	assert.Equal("C♯", cs.String())
	assert.Equal("D♭", db.String())
	assert.Equal(NoteClass{}, DefaultNoteClass())
}

func TestNotePitch(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Pitch(60), mustNote(t, "C4").Pitch())
	assert.Equal(Pitch(60), mustNote(t, "B#3").Pitch())
	assert.Equal(Pitch(59), mustNote(t, "Cb4").Pitch())
	assert.Equal(Pitch(0), mustNote(t, "C-1").Pitch())
	assert.Equal(Pitch(127), mustNote(t, "G9").Pitch())
	assert.Equal(Pitch(69), mustNote(t, "A4").Pitch())
}

func TestPitchOctaveAndClass(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(4, Pitch(60).Octave())
	assert.Equal(-1, Pitch(0).Octave())
	assert.Equal(-2, Pitch(-1).Octave())
	assert.Equal(11, Pitch(-1).PitchClass())
	assert.Equal(7, Pitch(127).PitchClass())
	assert.Equal(-3, Pitch(64).Semitones(61))
}

func TestShiftUp(t *testing.T) {
	cases := []struct {
		from string
		iv   Interval
		want string
	}{
		{"C4", Maj3, "E4"},
		{"C4", Min3, "E♭4"},
		{"B3", Min2, "C4"},
		{"B3", Maj2, "C♯4"},
		{"E4", Aug4, "A♯4"},
		{"E4", Dim5, "B♭4"},
		{"G4", Maj7, "F♯5"},
		{"D♭4", Min2, "E𝄫4"},
		{"D♯4", Maj7, "C𝄪5"},
		{"C4", Maj13, "A5"},
		{"A4", P11, "D6"},
		{"C♭4", P1, "C♭4"},
		{"B♯3", Maj2, "C𝄪4"},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%s up %v", c.from, c.iv), func(t *testing.T) {
			n, err := mustNote(t, c.from).ShiftUp(c.iv)
			require.NoError(t, err)
			assert.Equal(t, c.want, n.String())
		})
	}
}

func TestShiftDown(t *testing.T) {
	cases := []struct {
		from string
		iv   Interval
		want string
	}{
		{"C4", Maj2, "B♭3"},
		{"C4", Min2, "B3"},
		{"E4", Maj3, "C4"},
		{"F4", Aug4, "C♭4"},
		{"C5", P8, "C4"},
		{"A5", Maj13, "C4"},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%s down %v", c.from, c.iv), func(t *testing.T) {
			n, err := mustNote(t, c.from).ShiftDown(c.iv)
			require.NoError(t, err)
			assert.Equal(t, c.want, n.String())
		})
	}
}

func TestShiftSpellingErrors(t *testing.T) {
	assert := assert.New(t)

	// A would need a triple sharp.
	_, err := mustNote(t, "B𝄪4").ShiftUp(Maj7)
	assert.True(errors.Is(err, ErrSpelling))

	var se *SpellingError
	assert.True(errors.As(err, &se))
	assert.True(se.Up)
	assert.Equal(Maj7, se.Interval)

	_, err = mustNote(t, "G9").ShiftUp(P8)
	assert.True(errors.Is(err, ErrSpelling))

	_, err = mustNote(t, "C-1").ShiftDown(Min2)
	assert.True(errors.Is(err, ErrSpelling))
}

func TestShiftDownInvertsShiftUp(t *testing.T) {
	var intervals []Interval
	for _, name := range IntervalNames() {
		iv, err := ParseInterval(name)
		require.NoError(t, err)
		intervals = append(intervals, iv)
	}

	for octave := 0; octave <= 7; octave++ {
		for _, nc := range AllNoteClasses() {
			n := Note{NoteClass: nc, Octave: octave}
			for _, iv := range intervals {
				up, err := n.ShiftUp(iv)
				if err != nil {
					assert.True(t, errors.Is(err, ErrSpelling))
					continue
				}
				assert.Equal(t, int(n.Pitch())+iv.Semitones, int(up.Pitch()), "%v up %v", n, iv)
				assert.Equal(t, n.Letter.Add(iv.Degree-1), up.Letter, "%v up %v", n, iv)

				back, err := up.ShiftDown(iv)
				require.NoError(t, err, "%v up %v down", n, iv)
				assert.Equal(t, n, back, "%v up %v down", n, iv)
			}
		}
	}
}

func TestIndexBijection(t *testing.T) {
	for i := 0; i < IndexCount; i++ {
		n, err := NoteFromIndex(i)
		require.NoError(t, err)
		require.True(t, n.Valid())
		require.Equal(t, i, n.Index())
	}

	_, err := NoteFromIndex(IndexCount)
	assert.True(t, errors.Is(err, ErrDomain))
	_, err = NoteFromIndex(-1)
	assert.True(t, errors.Is(err, ErrDomain))
}

func TestIndexFormula(t *testing.T) {
	n := mustNote(t, "E♭4")
	assert.Equal(t, (4+1)*35+int(E)*5+(-1+2), n.Index())
}

func TestIntervalBetween(t *testing.T) {
	cases := []struct {
		low, high string
		want      Interval
	}{
		{"C4", "E4", Maj3},
		{"B3", "C4", Min2},
		{"C4", "D5", Maj9},
		{"E4", "A♯4", Aug4},
		{"C4", "C4", P1},
	}

	for _, c := range cases {
		t.Run(c.low+"-"+c.high, func(t *testing.T) {
			iv, err := IntervalBetween(mustNote(t, c.low), mustNote(t, c.high))
			require.NoError(t, err)
			assert.Equal(t, c.want, iv)
		})
	}

	_, err := IntervalBetween(mustNote(t, "E4"), mustNote(t, "C4"))
	assert.Error(t, err)
}
