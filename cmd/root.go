package cmd

import (
	"os"

	"github.com/jsphweid/harmondex/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath string
	cfg        *config.Config
	logger     *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:   "harmondex",
	Short: "Spells pitches in their key",
	Long: `harmondex names MIDI pitches the way a key spells them, lists the
notes, triads and chords of a key, and transcribes MIDI files into spelled
notes and chord symbols.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.toml", "path to the TOML config file")
}

func setup() error {
	var err error
	cfg, err = config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	logger, err = cfg.Logging.NewLogger(os.Stderr)
	return err
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
