package notation

import (
	"fmt"
	"strconv"
)

func parseError(what, s string) error {
	return fmt.Errorf("%w %s %q", ErrParse, what, s)
}

// ParseNote reads scientific pitch notation such as "C4", "F#3", "B♭-1".
func ParseNote(s string) (Note, error) {
	nc, rest, err := parseNoteClassPrefix(s)
	if err != nil {
		return Note{}, err
	}
	octave, err := strconv.Atoi(rest)
	if err != nil {
		return Note{}, parseError("note", s)
	}
	return NewNote(nc.Letter, nc.Accidental, octave)
}
