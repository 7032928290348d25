package notation

import (
	"github.com/jsphweid/harmondex/util"
)

// Letter is one of the seven natural note names, C=0 through B=6.
type Letter int

const (
	C Letter = iota
	D
	E
	F
	G
	A
	B
)

// LetterCount is the period of letter arithmetic.
const LetterCount = 7

var baseSemitones = [LetterCount]int{0, 2, 4, 5, 7, 9, 11}

var letterNames = [LetterCount]string{"C", "D", "E", "F", "G", "A", "B"}

func NewLetter(i int) (Letter, error) {
	if i < int(C) || i > int(B) {
		return C, &DomainError{Kind: "letter", Value: i}
	}
	return Letter(i), nil
}

// Letters returns C through B in order.
func Letters() []Letter {
	return []Letter{C, D, E, F, G, A, B}
}

func (l Letter) Valid() bool {
	return l >= C && l <= B
}

// BaseSemitone is the pitch class of the natural note on this letter.
func (l Letter) BaseSemitone() int {
	return baseSemitones[l]
}

// Add moves steps letters up (or down when negative), wrapping mod 7.
func (l Letter) Add(steps int) Letter {
	return Letter(util.Mod(int(l)+steps, LetterCount))
}

func (l Letter) String() string {
	if !l.Valid() {
		return "?"
	}
	return letterNames[l]
}
