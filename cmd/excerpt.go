package cmd

import (
	"github.com/jsphweid/harmondex/midi"
	"github.com/spf13/cobra"
)

var (
	excerptOffset   uint64
	excerptMaxNotes int
)

func init() {
	excerptCmd.Flags().Uint64Var(&excerptOffset, "offset", 0, "first tick to keep")
	excerptCmd.Flags().IntVar(&excerptMaxNotes, "max-notes", 10, "note events to keep per track (0 for all)")
	rootCmd.AddCommand(excerptCmd)
}

var excerptCmd = &cobra.Command{
	Use:   "excerpt <in.mid> <out.mid>",
	Short: "Cuts a short excerpt out of a MIDI file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := midi.ReadMidiFile(args[0])
		if err != nil {
			return err
		}
		if err := midi.WriteMidiFile(args[1], midi.Excerpt(s, excerptOffset, excerptMaxNotes)); err != nil {
			return err
		}
		logger.WithField("path", args[1]).Info("Wrote excerpt")
		return nil
	},
}
