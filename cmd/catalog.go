package cmd

import (
	"fmt"
	"os"

	"github.com/jsphweid/harmondex/chord"
	"github.com/spf13/cobra"
)

var catalogExport string

func init() {
	catalogCmd.Flags().StringVar(&catalogExport, "export", "", "write the catalog as TOML to this file")
	rootCmd.AddCommand(catalogCmd)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog [standard|extended|file.toml]",
	Short: "Lists chord types",
	Long:  `Lists the chord types of a catalog, or exports it as an editable TOML file.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var name string
		if len(args) == 1 {
			name = args[0]
		}
		cat, err := loadCatalog(name)
		if err != nil {
			return err
		}

		if catalogExport != "" {
			return exportCatalog(catalogExport, cat)
		}
		for _, t := range cat {
			fmt.Fprintf(cmd.OutOrStdout(), "%-18s %-14q %v\n", t.ID(), t.Label(), t.Intervals())
		}
		return nil
	},
}

func exportCatalog(path string, cat chord.Catalog) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create catalog file: %w", err)
	}
	defer f.Close()

	if err := chord.EncodeCatalog(f, cat); err != nil {
		return err
	}
	logger.WithField("path", path).WithField("types", len(cat)).Info("Exported chord catalog")
	return nil
}
