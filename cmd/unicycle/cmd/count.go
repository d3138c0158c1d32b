package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrdmnd/unicycle/internal/rides"
)

// countCmd builds the bikeshare ride-count table from whatever is already
// cached, without downloading anything.
var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Count rides per system per month from the local cache",
	RunE: func(cmd *cobra.Command, _ []string) error {
		registry, err := loadRegistry()
		if err != nil {
			return err
		}
		months, err := monthRange()
		if err != nil {
			return err
		}

		counter := rides.NewCounter(viper.GetString("cache-dir"))
		table, err := rides.BuildTable(counter, registry, months)
		if err != nil {
			return err
		}
		return writeTable(cmd, table)
	},
}

func init() {
	addOutputFlags(countCmd)
	rootCmd.AddCommand(countCmd)
}
