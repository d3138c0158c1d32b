package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrdmnd/unicycle/internal/cache"
	"github.com/mrdmnd/unicycle/internal/ntd"
	"github.com/mrdmnd/unicycle/internal/rides"
	"github.com/mrdmnd/unicycle/internal/transport"
	"github.com/mrdmnd/unicycle/pkg/dataset"
)

// updateCmd runs the full pipeline: NTD download, cache sync, ride
// counting, merge, export.
var updateCmd = &cobra.Command{
	Use:   "update <ntd-url>",
	Short: "Sync the trip-log cache and merge ride counts into the NTD",
	Long: `Update downloads the NTD raw database from the given URL, fills in any
missing months of the local trip-log cache, counts rides per system per
month, and appends the bikeshare rows to the NTD table, keeping only the
month columns the two tables share.`,
	Example: `  unicycle update https://www.transit.dot.gov/sites/fta.dot.gov/files/2021-11/September%202021%20Raw%20Database_0.xlsx`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		registry, err := loadRegistry()
		if err != nil {
			return err
		}
		months, err := monthRange()
		if err != nil {
			return err
		}

		client := transport.New()
		reference, err := ntd.Load(ctx, client, args[0])
		if err != nil {
			return err
		}

		cacheDir := viper.GetString("cache-dir")
		syncer := cache.New(cacheDir, client)
		syncer.Sync(ctx, registry, months, viper.GetInt("concurrency"))

		counter := rides.NewCounter(cacheDir)
		table, err := rides.BuildTable(counter, registry, months)
		if err != nil {
			return err
		}

		merged := dataset.Merge(reference, table)
		return writeTable(cmd, merged)
	},
}

func init() {
	addOutputFlags(updateCmd)
	rootCmd.AddCommand(updateCmd)
}
