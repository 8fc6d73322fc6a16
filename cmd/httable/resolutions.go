package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hicdata/httable/convert"
)

var resolutionsCmd = &cobra.Command{
	Use:   "resolutions [bin-size]",
	Short: "Print the standard resolution ladder",
	Long: `Resolutions prints the standard multi-resolution bin sizes, descending.
With a bin size argument, only the rungs a table of that resolution can
populate (every standard size at or above it) are printed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ladder := convert.Resolutions
		if len(args) == 1 {
			res, err := strconv.ParseInt(args[0], 10, 32)
			if err != nil || res <= 0 {
				return fmt.Errorf("bin size must be a positive integer, got %q", args[0])
			}
			ladder = convert.Candidates(int32(res))
		}

		for _, r := range ladder {
			fmt.Fprintln(cmd.OutOrStdout(), r)
		}

		return nil
	},
}
