package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/harmondex/chord"
	"github.com/jsphweid/harmondex/key"
	"github.com/spf13/cobra"
)

var (
	keyChords  bool
	keyCatalog string
)

func init() {
	keyCmd.Flags().BoolVar(&keyChords, "chords", false, "also list every catalog chord in the key")
	keyCmd.Flags().StringVar(&keyCatalog, "catalog", "", "chord catalog: standard, extended or a TOML file")
	rootCmd.AddCommand(keyCmd)
}

var keyCmd = &cobra.Command{
	Use:   "key [name]",
	Short: "Shows the notes and chords of a key",
	Long:  `Shows the spelled notes, primary triads and optionally all catalog chords of a key.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var name string
		if len(args) == 1 {
			name = args[0]
		}
		k, err := resolveKey(name, "")
		if err != nil {
			return err
		}

		var cat chord.Catalog
		if keyChords {
			if cat, err = loadCatalog(keyCatalog); err != nil {
				return err
			}
		}
		return report(cmd.OutOrStdout(), k, cat)
	},
}

func loadCatalog(name string) (chord.Catalog, error) {
	if name == "" {
		return cfg.Spelling.LoadCatalog()
	}
	return chord.ResolveCatalog(name)
}

func chordNames(chords []chord.Chord) []string {
	res := make([]string, len(chords))
	for i, c := range chords {
		res[i] = c.String()
	}
	return res
}

func report(w io.Writer, k key.Key, cat chord.Catalog) error {
	var notes []string
	for _, n := range k.Notes() {
		notes = append(notes, n.NoteClass.String())
	}

	fmt.Fprintf(w, "key:    %v (%s bias)\n", k, k.Bias())
	fmt.Fprintf(w, "notes:  %s\n", strings.Join(notes, " "))
	fmt.Fprintf(w, "triads: %s\n", strings.Join(chordNames(k.PrimaryTriads()), " "))
	if cat == nil {
		return nil
	}

	chords := k.Chords(cat)
	fmt.Fprintf(w, "chords: %d\n", len(chords))
	for _, c := range chords {
		classes, err := c.NoteClasses()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %-12s %s\n", c, chord.CreateChordKey(classes))
	}
	return nil
}
