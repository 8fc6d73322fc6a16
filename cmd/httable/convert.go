package main

import (
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input> <output>",
	Short: "Convert a contact table between formats",
	Long: `Convert reads the input into the canonical contact table and writes it
back out in the format named by the output file's extension. Text formats
(.short, .ht) are handled directly; .hic and .cool go through the external
tools configured in the TOML file or HTTABLE_* environment variables.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := readTable(cmd, args[0])
		if err != nil {
			return err
		}

		return writeTable(cmd, t, args[1])
	},
}
