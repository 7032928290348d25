package notation

// Accidental is a semitone offset applied to a letter, -2 through +2.
type Accidental int

const (
	DoubleFlat  Accidental = -2
	Flat        Accidental = -1
	Natural     Accidental = 0
	Sharp       Accidental = 1
	DoubleSharp Accidental = 2
)

// AccidentalCount is the number of representable accidentals.
const AccidentalCount = 5

func NewAccidental(i int) (Accidental, error) {
	if i < int(DoubleFlat) || i > int(DoubleSharp) {
		return Natural, &DomainError{Kind: "accidental", Value: i}
	}
	return Accidental(i), nil
}

// Accidentals returns the accidentals in the order spelling searches them.
func Accidentals() []Accidental {
	return []Accidental{DoubleFlat, Flat, Natural, Sharp, DoubleSharp}
}

func (a Accidental) Valid() bool {
	return a >= DoubleFlat && a <= DoubleSharp
}

func (a Accidental) String() string {
	switch a {
	case DoubleFlat:
		return "𝄫"
	case Flat:
		return "♭"
	case Natural:
		return ""
	case Sharp:
		return "♯"
	case DoubleSharp:
		return "𝄪"
	}
	return "?"
}
