package notation

import (
	"math/bits"
	"sort"
	"strings"
)

const noteSetWords = (IndexCount + 63) / 64

// NoteSet is a set of spelled notes keyed by Note.Index. It is a plain value:
// copying a NoteSet copies its contents and every operation returns a new set.
//
// Membership is by exact spelling, so C♯4 and D♭4 are distinct elements.
type NoteSet struct {
	bits [noteSetWords]uint64
}

// NewNoteSet fails on the first note outside the representable range.
func NewNoteSet(notes ...Note) (NoteSet, error) {
	var s NoteSet
	for _, n := range notes {
		var err error
		if s, err = s.Add(n); err != nil {
			return NoteSet{}, err
		}
	}
	return s, nil
}

func (s NoteSet) Add(n Note) (NoteSet, error) {
	if !n.Valid() {
		return s, &DomainError{Kind: "note index", Value: n.Index()}
	}
	i := n.Index()
	s.bits[i/64] |= 1 << uint(i%64)
	return s, nil
}

func (s NoteSet) Remove(n Note) NoteSet {
	if !n.Valid() {
		return s
	}
	i := n.Index()
	s.bits[i/64] &^= 1 << uint(i%64)
	return s
}

func (s NoteSet) Contains(n Note) bool {
	if !n.Valid() {
		return false
	}
	i := n.Index()
	return s.bits[i/64]&(1<<uint(i%64)) != 0
}

func (s NoteSet) Len() int {
	n := 0
	for _, w := range s.bits {
		n += bits.OnesCount64(w)
	}
	return n
}

func (s NoteSet) IsEmpty() bool {
	return s == NoteSet{}
}

func (s NoteSet) Equal(other NoteSet) bool {
	return s == other
}

func (s NoteSet) Union(other NoteSet) NoteSet {
	for i := range s.bits {
		s.bits[i] |= other.bits[i]
	}
	return s
}

func (s NoteSet) Intersection(other NoteSet) NoteSet {
	for i := range s.bits {
		s.bits[i] &= other.bits[i]
	}
	return s
}

// Difference keeps the members of s that are not in other.
func (s NoteSet) Difference(other NoteSet) NoteSet {
	for i := range s.bits {
		s.bits[i] &^= other.bits[i]
	}
	return s
}

func (s NoteSet) SymmetricDifference(other NoteSet) NoteSet {
	for i := range s.bits {
		s.bits[i] ^= other.bits[i]
	}
	return s
}

func (s NoteSet) IsSubset(of NoteSet) bool {
	return s.Difference(of).IsEmpty()
}

// Notes lists members in index order (octave, then letter, then accidental).
func (s NoteSet) Notes() []Note {
	res := make([]Note, 0, s.Len())
	for wi, w := range s.bits {
		for w != 0 {
			bit := bits.TrailingZeros64(w)
			n, _ := NoteFromIndex(wi*64 + bit)
			res = append(res, n)
			w &= w - 1
		}
	}
	return res
}

// Sorted lists members by letter, accidental, then octave.
func (s NoteSet) Sorted() []Note {
	res := s.Notes()
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Less(res[j])
	})
	return res
}

// NoteClasses drops octaves.
func (s NoteSet) NoteClasses() NoteClassSet {
	var res NoteClassSet
	for _, n := range s.Notes() {
		res = res.Add(n.NoteClass)
	}
	return res
}

func (s NoteSet) String() string {
	names := make([]string, 0, s.Len())
	for _, n := range s.Sorted() {
		names = append(names, n.String())
	}
	return "{" + strings.Join(names, " ") + "}"
}
