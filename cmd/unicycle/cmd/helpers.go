package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrdmnd/unicycle/internal/export"
	"github.com/mrdmnd/unicycle/pkg/constants"
	"github.com/mrdmnd/unicycle/pkg/dataset"
	"github.com/mrdmnd/unicycle/pkg/errors"
	"github.com/mrdmnd/unicycle/pkg/logging"
	"github.com/mrdmnd/unicycle/pkg/month"
	"github.com/mrdmnd/unicycle/pkg/providers"
)

// loadRegistry returns the provider registry: a user-supplied YAML file
// if --providers was given, otherwise the built-in definitions.
func loadRegistry() (*providers.Registry, error) {
	if path := viper.GetString("providers"); path != "" {
		return providers.LoadFile(path)
	}
	return providers.Default()
}

// monthRange returns the inclusive month range from the --start and
// --end flags.
func monthRange() ([]month.Month, error) {
	start, err := month.Parse(viper.GetString("start"))
	if err != nil {
		return nil, err
	}
	end, err := month.Parse(viper.GetString("end"))
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end month %s is before start month %s",
			errors.ErrInvalidInput, end, start)
	}
	return month.Range(start, end), nil
}

// addOutputFlags registers the shared table-output flags.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", constants.DefaultOutputFile, "CSV file to write the table to")
	cmd.Flags().Bool("clipboard", true, "also copy the table to the clipboard as TSV")
}

// writeTable prints the frame and exports it per the output flags.
// A clipboard failure (e.g. headless host) is logged, not fatal.
func writeTable(cmd *cobra.Command, frame *dataset.Frame) error {
	fmt.Fprint(cmd.OutOrStdout(), export.TSV(frame))

	output, _ := cmd.Flags().GetString("output")
	if err := export.WriteCSV(output, frame); err != nil {
		return err
	}
	logging.Info().Str("path", output).Int("rows", len(frame.Rows)).Msg("Wrote table")

	if useClipboard, _ := cmd.Flags().GetBool("clipboard"); useClipboard {
		if err := export.CopyTSV(frame); err != nil {
			logging.Warn().Err(err).Msg("Could not copy table to clipboard")
		} else {
			logging.Info().Msg("Copied table to clipboard as TSV; paste into a spreadsheet if you want")
		}
	}
	return nil
}
