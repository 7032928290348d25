package midi

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/jsphweid/harmondex/chord"
	"github.com/jsphweid/harmondex/key"
	"github.com/jsphweid/harmondex/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const ticksPerQuarter = 96

// two chords, a quarter note each: C E G then D F A, with a drum hit that
// must be ignored
func createTrack() smf.Track {
	var tr smf.Track
	tr.Add(0, midi.NoteOn(0, 60, 100))
	tr.Add(0, midi.NoteOn(0, 64, 100))
	tr.Add(0, midi.NoteOn(1, 67, 100))
	tr.Add(ticksPerQuarter, midi.NoteOff(0, 60))
	tr.Add(0, midi.NoteOff(0, 64))
	tr.Add(0, midi.NoteOff(1, 67))
	tr.Add(0, midi.NoteOn(0, 62, 100))
	tr.Add(0, midi.NoteOn(0, 65, 100))
	tr.Add(0, midi.NoteOn(0, 69, 100))
	tr.Add(0, midi.NoteOn(9, 36, 100))
	tr.Add(ticksPerQuarter, midi.NoteOff(0, 62))
	tr.Add(0, midi.NoteOff(0, 65))
	tr.Add(0, midi.NoteOff(0, 69))
	tr.Add(0, midi.NoteOff(9, 36))
	tr.Close(0)
	return tr
}

// roundTrip encodes and decodes s so timing information is computed the way
// it is for files on disk.
func roundTrip(t *testing.T, s *smf.SMF) *smf.SMF {
	t.Helper()
	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	require.NoError(t, err)
	res, err := Read(&buf)
	require.NoError(t, err)
	return res
}

func createSMF(t *testing.T) *smf.SMF {
	var s smf.SMF
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)
	s.Tracks = append(s.Tracks, createTrack())
	return roundTrip(t, &s)
}

func TestGetSonorities(t *testing.T) {
	sonorities := GetSonorities(createSMF(t))

	assert := assert.New(t)
	require.Len(t, sonorities, 2)
	assert.Equal(int64(0), sonorities[0].Ticks)
	assert.Equal(model.Pitches{60, 64, 67}, sonorities[0].Pitches)
	assert.Equal(int64(ticksPerQuarter), sonorities[1].Ticks)
	assert.Equal(model.Pitches{62, 65, 69}, sonorities[1].Pitches)

	// 120 bpm by default, so a quarter is half a second
	assert.Equal(int64(500000), sonorities[1].Offset)
}

func TestGetSonoritiesCountsDoubledKeysOnce(t *testing.T) {
	var tr smf.Track
	tr.Add(0, midi.NoteOn(0, 60, 100))
	tr.Add(0, midi.NoteOn(1, 60, 100))
	tr.Add(10, midi.NoteOff(0, 60))
	tr.Add(0, midi.NoteOn(0, 64, 100))
	tr.Add(10, midi.NoteOff(1, 60))
	tr.Add(0, midi.NoteOff(0, 64))
	tr.Close(0)

	var s smf.SMF
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)
	s.Tracks = append(s.Tracks, tr)

	sonorities := GetSonorities(roundTrip(t, &s))
	require.Len(t, sonorities, 2)
	assert.Equal(t, model.Pitches{60}, sonorities[0].Pitches)
	// the second channel still holds 60
	assert.Equal(t, model.Pitches{60, 64}, sonorities[1].Pitches)
}

func TestTranscribe(t *testing.T) {
	k, err := key.Parse("C")
	require.NoError(t, err)

	got := Transcribe(createSMF(t), k, chord.StandardCatalog())

	assert := assert.New(t)
	require.Len(t, got, 2)
	assert.Equal([]string{"C4", "E4", "G4"}, got[0].Notes)
	assert.Equal("C", got[0].Chord)
	assert.Equal([]string{"D4", "F4", "A4"}, got[1].Notes)
	assert.Equal("Dm", got[1].Chord)
	assert.InDelta(0.5, got[1].Seconds, 1e-9)
}

func TestSpellUsesKeyContext(t *testing.T) {
	son := model.Sonority{Pitches: model.Pitches{61, 65, 68}}
	cat := chord.StandardCatalog()

	aFlat, err := key.Parse("Ab")
	require.NoError(t, err)
	e, err := key.Parse("E")
	require.NoError(t, err)

	assert.Equal(t, []string{"D♭4", "F4", "A♭4"}, Spell(son, aFlat, cat).Notes)
	assert.Equal(t, []string{"C♯4", "F4", "G♯4"}, Spell(son, e, cat).Notes)
	assert.Equal(t, "C♯", Spell(son, e, cat).Chord)

	// no chord in the catalog
	cluster := Spell(model.Sonority{Pitches: model.Pitches{60, 61}}, e, cat)
	assert.Empty(t, cluster.Chord)
}

func TestExcerpt(t *testing.T) {
	s := createSMF(t)

	assert := assert.New(t)

	whole := roundTrip(t, Excerpt(s, 0, 0))
	assert.Equal(GetSonorities(s), GetSonorities(whole))

	part := roundTrip(t, Excerpt(s, ticksPerQuarter, 6))
	sonorities := GetSonorities(part)
	require.Len(t, sonorities, 1)
	assert.Equal(int64(0), sonorities[0].Ticks)
	assert.Equal(model.Pitches{62, 65, 69}, sonorities[0].Pitches)
}

func TestExcerptDropsNoteOffsOfCutNotes(t *testing.T) {
	part := roundTrip(t, Excerpt(createSMF(t), ticksPerQuarter, 0))

	var channel, key, velocity uint8
	var offs []uint8
	for _, evt := range part.Tracks[0] {
		if evt.Message.GetNoteOff(&channel, &key, &velocity) {
			offs = append(offs, key)
		}
		if evt.Message.GetNoteOn(&channel, &key, &velocity) && velocity == 0 {
			offs = append(offs, key)
		}
	}
	// 60, 64 and 67 start before the cut
	assert.ElementsMatch(t, []uint8{62, 65, 69, 36}, offs)
}

func TestTranscribeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.mid")
	require.NoError(t, WriteMidiFile(path, createSMF(t)))

	k, err := key.Parse("C")
	require.NoError(t, err)
	tr, err := TranscribeFile(path, k, chord.StandardCatalog())
	require.NoError(t, err)

	assert.Equal(t, path, tr.File)
	assert.Equal(t, "C", tr.Key)
	assert.Len(t, tr.Sonorities, 2)
}

func TestReadRejectsGarbage(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte("definitely not midi")))
	assert.True(t, errors.Is(err, ErrInvalidMidi))

	_, err = ReadMidiFile(filepath.Join(t.TempDir(), "missing.mid"))
	assert.Error(t, err)
}
