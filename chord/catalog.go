package chord

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

type entry struct {
	id        string
	label     string
	intervals string
}

// standardLast closes the standard catalog: triads, sixths, sevenths and the
// ninths through the minor add-nine.
const standardLast = "min_add9"

// Catalog is an ordered list of chord types. Order matters: Key.Chords lists
// matches per root in catalog order.
type Catalog []Type

// ExtendedCatalog holds every known chord type, elevenths and thirteenths
// included. Each call returns a fresh slice.
func ExtendedCatalog() Catalog {
	res := make(Catalog, 0, len(catalogEntries))
	for _, e := range catalogEntries {
		t, err := parseType(e.id, e.label, e.intervals)
		if err != nil {
			panic(err)
		}
		res = append(res, t)
	}
	return res
}

// StandardCatalog is the catalog used unless another one is configured.
func StandardCatalog() Catalog {
	all := ExtendedCatalog()
	for i, t := range all {
		if t.ID() == standardLast {
			return all[:i+1:i+1]
		}
	}
	return all
}

func (c Catalog) Lookup(id string) (Type, bool) {
	for _, t := range c {
		if t.id == id {
			return t, true
		}
	}
	return Type{}, false
}

func (c Catalog) IDs() []string {
	res := make([]string, len(c))
	for i, t := range c {
		res[i] = t.id
	}
	return res
}

type catalogEntry struct {
	ID        string   `toml:"id"`
	Label     string   `toml:"label"`
	Intervals []string `toml:"intervals"`
}

type catalogFile struct {
	Chords []catalogEntry `toml:"chord"`
}

// DecodeCatalog reads a TOML catalog:
//
//	[[chord]]
//	id = "minor"
//	label = "m"
//	intervals = ["m3", "P5"]
func DecodeCatalog(r io.Reader) (Catalog, error) {
	var f catalogFile
	if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse chord catalog: %w", err)
	}

	seen := make(map[string]bool)
	res := make(Catalog, 0, len(f.Chords))
	for _, e := range f.Chords {
		if seen[e.ID] {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidType, e.ID)
		}
		seen[e.ID] = true

		t, err := parseType(e.ID, e.Label, strings.Join(e.Intervals, " "))
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, nil
}

func LoadCatalog(path string) (Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open chord catalog: %w", err)
	}
	defer f.Close()
	return DecodeCatalog(f)
}

// EncodeCatalog writes c in the format DecodeCatalog reads.
func EncodeCatalog(w io.Writer, c Catalog) error {
	var f catalogFile
	for _, t := range c {
		e := catalogEntry{ID: t.id, Label: t.label}
		for _, iv := range t.Intervals() {
			e.Intervals = append(e.Intervals, iv.String())
		}
		f.Chords = append(f.Chords, e)
	}
	if err := toml.NewEncoder(w).Encode(f); err != nil {
		return fmt.Errorf("failed to encode chord catalog: %w", err)
	}
	return nil
}

// ResolveCatalog maps a configured catalog name to a catalog: "standard",
// "extended", or a path to a TOML file.
func ResolveCatalog(name string) (Catalog, error) {
	switch name {
	case "", "standard":
		return StandardCatalog(), nil
	case "extended":
		return ExtendedCatalog(), nil
	}
	return LoadCatalog(name)
}
