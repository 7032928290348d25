package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jsphweid/harmondex/chord"
	"github.com/jsphweid/harmondex/key"
	"github.com/jsphweid/harmondex/midi"
	"github.com/jsphweid/harmondex/model"
	"github.com/jsphweid/harmondex/util"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	transcribeKey      string
	transcribeCatalog  string
	transcribeMaxFiles int
	transcribeOutDir   string
	transcribeJSON     bool
)

func init() {
	transcribeCmd.Flags().StringVarP(&transcribeKey, "key", "k", "", "key to spell in")
	transcribeCmd.Flags().StringVar(&transcribeCatalog, "catalog", "", "chord catalog: standard, extended or a TOML file")
	transcribeCmd.Flags().IntVar(&transcribeMaxFiles, "max-files", 0, "stop after this many files (0 for all)")
	transcribeCmd.Flags().StringVarP(&transcribeOutDir, "out", "o", "", "write one JSON file per MIDI file into this directory")
	transcribeCmd.Flags().BoolVar(&transcribeJSON, "json", false, "print JSON instead of text")
	rootCmd.AddCommand(transcribeCmd)
}

var transcribeCmd = &cobra.Command{
	Use:   "transcribe <file or directory>",
	Short: "Spells the sonorities of MIDI files",
	Long: `Reads a MIDI file, or every .mid/.midi file under a directory, and prints
each sonority as spelled notes with the chord it forms.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := resolveKey(transcribeKey, "")
		if err != nil {
			return err
		}
		cat, err := loadCatalog(transcribeCatalog)
		if err != nil {
			return err
		}

		paths, err := util.GatherAllMidiPaths(args[0], transcribeMaxFiles)
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			return fmt.Errorf("no MIDI files found at %s", args[0])
		}

		t := transcriber{key: k, catalog: cat, outDir: transcribeOutDir, json: transcribeJSON, logger: logger}
		failed := t.processAll(paths, cmd.OutOrStdout())
		if failed == len(paths) {
			return fmt.Errorf("could not transcribe any of %d files", len(paths))
		}
		return nil
	},
}

type transcriber struct {
	key     key.Key
	catalog chord.Catalog
	outDir  string
	json    bool
	logger  logrus.FieldLogger
}

// processAll keeps going past unreadable files and returns how many failed.
func (t transcriber) processAll(paths []string, w io.Writer) int {
	failed := 0
	for i, path := range paths {
		t.logger.WithFields(logrus.Fields{
			"file":  path,
			"index": i + 1,
			"total": len(paths),
		}).Debug("Transcribing midi file")
		if err := t.process(path, w); err != nil {
			t.logger.WithError(err).WithField("file", path).Warn("Skipping midi file")
			failed++
		}
	}
	return failed
}

func (t transcriber) process(path string, w io.Writer) error {
	tr, err := midi.TranscribeFile(path, t.key, t.catalog)
	if err != nil {
		return err
	}
	if t.outDir != "" {
		out, err := writeTranscription(t.outDir, tr)
		if err != nil {
			return err
		}
		t.logger.WithFields(logrus.Fields{
			"file":       path,
			"output":     out,
			"sonorities": len(tr.Sonorities),
		}).Info("Wrote transcription")
		return nil
	}
	if t.json {
		return json.NewEncoder(w).Encode(tr)
	}
	printTranscription(w, tr)
	return nil
}

// writeTranscription stores tr as <dir>/<file name without extension>.json.
func writeTranscription(dir string, tr model.Transcription) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	base := strings.TrimSuffix(filepath.Base(tr.File), filepath.Ext(tr.File))
	out := filepath.Join(dir, base+".json")

	data, err := json.MarshalIndent(tr, "", "  ")
	if err != nil {
		return "", err
	}
	return out, os.WriteFile(out, data, 0644)
}

func printTranscription(w io.Writer, tr model.Transcription) {
	fmt.Fprintf(w, "%s (%s)\n", tr.File, tr.Key)
	for _, s := range tr.Sonorities {
		fmt.Fprintf(w, "  %8.3fs  %-24s %s\n", s.Seconds, strings.Join(s.Notes, " "), s.Chord)
	}
}
