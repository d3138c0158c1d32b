package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrdmnd/unicycle/internal/cache"
	"github.com/mrdmnd/unicycle/internal/transport"
)

// fetchCmd fills in the local trip-log cache without touching the NTD.
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download missing trip-log archives into the local cache",
	Long: `Fetch ensures the local cache holds a trip-log file for every
(provider, month) pair in the configured range. Months already cached are
skipped without any network access; months the provider never published
are logged and skipped.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		registry, err := loadRegistry()
		if err != nil {
			return err
		}
		months, err := monthRange()
		if err != nil {
			return err
		}

		syncer := cache.New(viper.GetString("cache-dir"), transport.New())
		syncer.Sync(cmd.Context(), registry, months, viper.GetInt("concurrency"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}
