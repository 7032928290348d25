package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gitlab.com/gomidi/midi/v2/smf"
)

var ErrInvalidMidi = errors.New("midi: cannot parse file")

// Read parses a standard MIDI file. The smf reader can panic on malformed
// input (https://github.com/gomidi/midi/issues/20); that is reported as
// ErrInvalidMidi.
func Read(r io.Reader) (s *smf.SMF, e error) {
	defer func() {
		if rec := recover(); rec != nil {
			s, e = nil, fmt.Errorf("%w: %v", ErrInvalidMidi, rec)
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMidi, err)
	}
	return res, nil
}

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error reading midi file: %w", err)
	}
	return Read(bytes.NewReader(dat))
}

func WriteMidiFile(filepath string, s *smf.SMF) error {
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return fmt.Errorf("error encoding midi file: %w", err)
	}
	return os.WriteFile(filepath, buf.Bytes(), 0644)
}
