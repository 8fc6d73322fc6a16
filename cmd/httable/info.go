package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hicdata/httable/convert"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Summarize a contact table",
	Long: `Info reads the file into the canonical contact table and prints its
metadata, record count and chromosome set.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := convert.Detect(args[0])
		if err != nil {
			return err
		}

		t, err := readTable(cmd, args[0])
		if err != nil {
			return err
		}

		meta := t.Meta()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "format:      %s\n", format)
		fmt.Fprintf(out, "resolution:  %d\n", meta.Resolution)
		fmt.Fprintf(out, "type:        %s\n", meta.Type)
		fmt.Fprintf(out, "norm:        %s\n", meta.Norm)
		if meta.Genome != "" {
			fmt.Fprintf(out, "genome:      %s\n", meta.Genome)
		}
		if meta.Sample != "" {
			fmt.Fprintf(out, "sample:      %s\n", meta.Sample)
		}
		fmt.Fprintf(out, "records:     %d\n", t.Len())
		fmt.Fprintf(out, "chromosomes: %s\n", strings.Join(t.Chromosomes(), ", "))

		return nil
	},
}
