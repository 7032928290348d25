package model

type Pitches = []uint8

// ReducedEvent is a note on or off stripped of channel and velocity.
type ReducedEvent struct {
	Ticks     int64
	Offset    int64 // microseconds
	IsNoteOff bool
	Note      uint8
}

// Sonority is the set of keys held down right after one or more notes start.
type Sonority struct {
	Ticks   int64
	Offset  int64 // microseconds
	Pitches Pitches
}

type SpelledSonority struct {
	Ticks   int64    `json:"ticks"`
	Seconds float64  `json:"seconds"`
	Notes   []string `json:"notes"`
	Chord   string   `json:"chord,omitempty"`
}

type Transcription struct {
	File       string            `json:"file"`
	Key        string            `json:"key"`
	Sonorities []SpelledSonority `json:"sonorities"`
}
