package chord

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsphweid/harmondex/notation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nc(t *testing.T, s string) notation.NoteClass {
	t.Helper()
	res, err := notation.ParseNoteClass(s)
	require.NoError(t, err)
	return res
}

func lookup(t *testing.T, c Catalog, id string) Type {
	t.Helper()
	res, ok := c.Lookup(id)
	require.True(t, ok, id)
	return res
}

func spellings(classes []notation.NoteClass) []string {
	res := make([]string, len(classes))
	for i, c := range classes {
		res[i] = c.String()
	}
	return res
}

func TestCatalogs(t *testing.T) {
	std := StandardCatalog()
	ext := ExtendedCatalog()

	assert := assert.New(t)
	assert.Len(std, 40)
	assert.Len(ext, 142)
	assert.Equal("major", std[0].ID())
	assert.Equal(standardLast, std[len(std)-1].ID())
	assert.Equal(ext[:len(std)], std)

	seen := map[string]bool{}
	for _, typ := range ext {
		assert.False(seen[typ.ID()], typ.ID())
		seen[typ.ID()] = true
	}

	// appending to the standard catalog must not write into a shared table
	more := append(std, ext[len(ext)-1])
	assert.Len(more, 41)
	assert.Equal(ext[len(std)], ExtendedCatalog()[len(std)])
}

func TestChordNoteClasses(t *testing.T) {
	cat := ExtendedCatalog()
	cases := []struct {
		root, id string
		want     []string
		label    string
	}{
		{"C", "major", []string{"C", "E", "G"}, "C"},
		{"A", "minor", []string{"A", "C", "E"}, "Am"},
		{"F#", "dim", []string{"F♯", "A", "C"}, "F♯°"},
		{"Eb", "aug", []string{"E♭", "G", "B"}, "E♭⁺"},
		{"G", "dom7", []string{"G", "B", "D", "F"}, "G7"},
		{"Db", "maj7", []string{"D♭", "F", "A♭", "C"}, "D♭maj7"},
		{"B", "dim7", []string{"B", "D", "F", "A♭"}, "B°7"},
		{"C", "dom13", []string{"C", "E", "G", "B♭", "D", "F", "A"}, "C13"},
		{"Ebb", "major", []string{"E𝄫", "G♭", "B𝄫"}, "E𝄫"},
	}

	for _, c := range cases {
		t.Run(c.label, func(t *testing.T) {
			ch := New(nc(t, c.root), lookup(t, cat, c.id))
			classes, err := ch.NoteClasses()
			require.NoError(t, err)
			assert.Equal(t, c.want, spellings(classes))
			assert.Equal(t, c.label, ch.String())
		})
	}
}

func TestChordSpellingFailure(t *testing.T) {
	ch := New(nc(t, "Bx"), lookup(t, StandardCatalog(), "maj7"))
	_, err := ch.NoteClasses()
	assert.True(t, errors.Is(err, notation.ErrSpelling))
}

func TestMatch(t *testing.T) {
	cMajor := notation.NewNoteClassSet(
		nc(t, "C"), nc(t, "D"), nc(t, "E"), nc(t, "F"), nc(t, "G"), nc(t, "A"), nc(t, "B"),
	)
	cat := StandardCatalog()

	assert := assert.New(t)

	c, ok := Match(nc(t, "G"), lookup(t, cat, "dom7"), cMajor)
	assert.True(ok)
	assert.Equal("G7", c.String())

	_, ok = Match(nc(t, "G"), lookup(t, cat, "maj7"), cMajor)
	assert.False(ok)

	// same pitches, wrong spelling
	_, ok = Match(nc(t, "D"), lookup(t, cat, "major"), notation.NewNoteClassSet(nc(t, "D"), nc(t, "G♭"), nc(t, "A")))
	assert.False(ok)

	_, ok = Match(nc(t, "Bx"), lookup(t, cat, "maj7"), cMajor)
	assert.False(ok)
}

func TestChordsAreComparable(t *testing.T) {
	cat := StandardCatalog()
	a := New(nc(t, "G"), lookup(t, cat, "major"))
	b := New(nc(t, "G"), lookup(t, StandardCatalog(), "major"))
	assert.True(t, a == b)
	assert.False(t, a == New(nc(t, "G"), lookup(t, cat, "minor")))
}

func TestCreateChordKey(t *testing.T) {
	classes := []notation.NoteClass{nc(t, "G"), nc(t, "Eb"), nc(t, "C"), nc(t, "G"), nc(t, "E")}

	assert := assert.New(t)
	assert.Equal("C-E♭-E-G", CreateChordKey(classes))
	assert.Equal("G", classes[0].String(), "input must not be reordered")
	assert.Equal("", CreateChordKey(nil))
}

func TestNewTypeValidates(t *testing.T) {
	_, err := NewType("", "x", notation.Maj3)
	assert.True(t, errors.Is(err, ErrInvalidType))

	_, err = NewType("none", "x")
	assert.True(t, errors.Is(err, ErrInvalidType))

	ivs := []notation.Interval{notation.Maj3, notation.P5, notation.Min7, notation.Maj9, notation.P11, notation.Maj13, notation.P8}
	_, err = NewType("huge", "x", ivs...)
	assert.True(t, errors.Is(err, ErrInvalidType))

	typ, err := NewType("power", "5", notation.P5)
	require.NoError(t, err)
	assert.Equal(t, "power [P5]", typ.String())
}

func TestCatalogTOMLRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeCatalog(&buf, StandardCatalog()))

	decoded, err := DecodeCatalog(&buf)
	require.NoError(t, err)
	assert.Equal(t, StandardCatalog(), decoded)
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chords.toml")
	data := `
[[chord]]
id = "power"
label = "5"
intervals = ["P5"]

[[chord]]
id = "minor"
label = "m"
intervals = ["m3", "P5"]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cat, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"power", "minor"}, cat.IDs())
	assert.Equal(t, []notation.Interval{notation.Min3, notation.P5}, lookup(t, cat, "minor").Intervals())

	resolved, err := ResolveCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, cat, resolved)
}

func TestDecodeCatalogRejects(t *testing.T) {
	_, err := DecodeCatalog(strings.NewReader("[[chord]]\nid = \"x\"\nintervals = [\"M4\"]\n"))
	assert.True(t, errors.Is(err, ErrInvalidType))

	_, err = DecodeCatalog(strings.NewReader("[[chord]]\nid = \"x\"\nintervals = [\"M3\"]\n[[chord]]\nid = \"x\"\nintervals = [\"P5\"]\n"))
	assert.True(t, errors.Is(err, ErrInvalidType))

	_, err = DecodeCatalog(strings.NewReader("[[chord"))
	assert.Error(t, err)

	_, err = ResolveCatalog(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestResolveCatalogNames(t *testing.T) {
	std, err := ResolveCatalog("standard")
	require.NoError(t, err)
	assert.Len(t, std, 40)

	ext, err := ResolveCatalog("extended")
	require.NoError(t, err)
	assert.Len(t, ext, 142)
}
