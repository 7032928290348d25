package key

import (
	"fmt"
	"strings"

	"github.com/jsphweid/harmondex/notation"
	"github.com/jsphweid/harmondex/scale"
)

// Parse reads "G", "F#m" (natural minor) or "Eb dorian".
func Parse(name string, opts ...Option) (Key, error) {
	fields := strings.Fields(name)
	var tonicName string
	s := scale.Major()

	switch len(fields) {
	case 1:
		tonicName = fields[0]
		if len(tonicName) > 1 && strings.HasSuffix(tonicName, "m") {
			tonicName = strings.TrimSuffix(tonicName, "m")
			s = scale.NaturalMinor()
		}
	case 2:
		tonicName = fields[0]
		var err error
		if s, err = scale.Lookup(fields[1]); err != nil {
			return Key{}, fmt.Errorf("%w %q: %v", ErrInvalidKeyName, name, err)
		}
	default:
		return Key{}, fmt.Errorf("%w %q", ErrInvalidKeyName, name)
	}

	tonic, err := notation.ParseNoteClass(tonicName)
	if err != nil {
		return Key{}, fmt.Errorf("%w %q: %v", ErrInvalidKeyName, name, err)
	}
	return New(tonic, s, opts...)
}

// Name is the short form Parse reads back: "G", "F♯m" or "E♭ dorian".
func (k Key) Name() string {
	switch k.scale.Name() {
	case scale.Major().Name():
		return k.tonic.String()
	case scale.NaturalMinor().Name():
		return k.tonic.String() + "m"
	}
	return k.String()
}
