package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/harmondex/key"
	"github.com/jsphweid/harmondex/notation"
	"github.com/spf13/cobra"
)

var (
	spellKey  string
	spellBias string
)

func init() {
	spellCmd.Flags().StringVarP(&spellKey, "key", "k", "", `key to spell in, e.g. "D", "F#m", "Eb dorian"`)
	spellCmd.Flags().StringVar(&spellBias, "bias", "", "force sharp or flat spellings outside the key")
	rootCmd.AddCommand(spellCmd)
}

var spellCmd = &cobra.Command{
	Use:   "spell <pitch>...",
	Short: "Spells MIDI pitches",
	Long:  `Spells MIDI note numbers (0-127) in a key, e.g. "harmondex spell -k D 61 66".`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pitches, err := parsePitches(args)
		if err != nil {
			return err
		}
		k, err := resolveKey(spellKey, spellBias)
		if err != nil {
			return err
		}

		var names []string
		for _, n := range k.SpellAll(pitches) {
			names = append(names, n.String())
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, " "))
		return nil
	},
}

func parsePitch(i int) (notation.Pitch, error) {
	p := notation.Pitch(i)
	if p < notation.MinMIDIPitch || p > notation.MaxMIDIPitch {
		return 0, fmt.Errorf("pitch %d is outside %d..%d", i, notation.MinMIDIPitch, notation.MaxMIDIPitch)
	}
	return p, nil
}

func parsePitches(args []string) ([]notation.Pitch, error) {
	res := make([]notation.Pitch, 0, len(args))
	for _, arg := range args {
		i, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("not a MIDI pitch: %q", arg)
		}
		p, err := parsePitch(i)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, nil
}

// resolveKey parses name (the configured default when empty), with bias
// taking precedence over the configured bias.
func resolveKey(name, bias string) (key.Key, error) {
	spelling := cfg.Spelling
	if bias != "" {
		spelling.Bias = bias
	}
	return spelling.ParseKey(name)
}
