package midi

import (
	"github.com/jsphweid/harmondex/chord"
	"github.com/jsphweid/harmondex/key"
	"github.com/jsphweid/harmondex/model"
	"github.com/jsphweid/harmondex/notation"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Spell names every pitch of a sonority in k and, when the catalog has a
// match, the chord it forms.
func Spell(son model.Sonority, k key.Key, catalog chord.Catalog) model.SpelledSonority {
	pitches := make([]notation.Pitch, len(son.Pitches))
	for i, p := range son.Pitches {
		pitches[i] = notation.Pitch(p)
	}

	res := model.SpelledSonority{
		Ticks:   son.Ticks,
		Seconds: float64(son.Offset) / 1e6,
	}
	for _, n := range k.SpellAll(pitches) {
		res.Notes = append(res.Notes, n.String())
	}
	if c, ok := k.Identify(pitches, catalog); ok {
		res.Chord = c.String()
	}
	return res
}

func Transcribe(s *smf.SMF, k key.Key, catalog chord.Catalog) []model.SpelledSonority {
	sonorities := GetSonorities(s)
	res := make([]model.SpelledSonority, len(sonorities))
	for i, son := range sonorities {
		res[i] = Spell(son, k, catalog)
	}
	return res
}

func TranscribeFile(path string, k key.Key, catalog chord.Catalog) (model.Transcription, error) {
	s, err := ReadMidiFile(path)
	if err != nil {
		return model.Transcription{}, err
	}
	return model.Transcription{
		File:       path,
		Key:        k.Name(),
		Sonorities: Transcribe(s, k, catalog),
	}, nil
}
