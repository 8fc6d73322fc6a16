package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hicdata/httable/builder"
	"github.com/hicdata/httable/convert"
	"github.com/hicdata/httable/core"
)

var (
	cfgPath string
	cfg     Config

	flagResolution int32
	flagType       string
	flagNorm       string
	flagGenome     string
	flagSample     string
	flagChrom      string
)

var rootCmd = &cobra.Command{
	Use:   "httable",
	Short: "Convert and inspect tabular Hi-C contact data",
	Long: `httable moves sparse chromatin contact tables between formats:
the short pre-ingest listing, the interval text table, and the binary
.hic/.cool containers (through their external tools).`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		var err error
		cfg, err = loadConfig(cfgPath)

		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to TOML config file")

	for _, cmd := range []*cobra.Command{convertCmd, infoCmd} {
		cmd.Flags().Int32Var(&flagResolution, "resolution", 0, "bin size in bp (inferred when omitted)")
		cmd.Flags().StringVar(&flagType, "type", "", "score type (observed|oe|expected|pearson|cofrag; default observed)")
		cmd.Flags().StringVar(&flagNorm, "norm", "", "normalization label (NONE|KR|VC|VC_SQRT|SCALE; default NONE)")
		cmd.Flags().StringVar(&flagGenome, "genome", "", "genome assembly name")
		cmd.Flags().StringVar(&flagSample, "sample", "", "sample identifier")
		cmd.Flags().StringVar(&flagChrom, "chrom", "", "chromosome (required when reading .hic)")
	}

	rootCmd.AddCommand(convertCmd, infoCmd, resolutionsCmd)
}

// flagMeta assembles the metadata template from flags; Type/Norm are
// validated by the builder, not here.
func flagMeta() core.Metadata {
	return core.Metadata{
		Resolution: flagResolution,
		Type:       core.TableType(flagType),
		Norm:       core.Norm(flagNorm),
		Genome:     flagGenome,
		Sample:     flagSample,
	}
}

// withDefaults fills the score semantics when neither flags nor the input
// carried them: raw observed counts, no normalization.
func withDefaults(tpl core.Metadata) core.Metadata {
	return tpl.Merge(core.Metadata{Type: core.Observed, Norm: core.NormNone})
}

// buildOpts translates the template into builder options.
func buildOpts(tpl core.Metadata) []builder.Option {
	opts := []builder.Option{builder.WithTemplate(tpl)}
	if tpl.Resolution > 0 {
		opts = append(opts, builder.WithResolution(tpl.Resolution))
	}

	return opts
}

// readTable loads any supported input into the canonical table.
func readTable(cmd *cobra.Command, path string) (*core.Table, error) {
	format, err := convert.Detect(path)
	if err != nil {
		return nil, err
	}

	tpl := flagMeta()
	switch format {
	case convert.FormatShort:
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		rows, err := convert.ReadShort(f)
		if err != nil {
			return nil, err
		}
		tpl = withDefaults(tpl)

		return builder.Build(rows, tpl.Type, tpl.Norm, buildOpts(tpl)...)

	case convert.FormatInterval:
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		rows, meta, err := convert.ReadInterval(f)
		if err != nil {
			return nil, err
		}
		// File metadata fills whatever the flags left unset.
		tpl = withDefaults(tpl.Merge(meta))

		return builder.Build(rows, tpl.Type, tpl.Norm, buildOpts(tpl)...)

	case convert.FormatHic:
		if flagChrom == "" {
			return nil, fmt.Errorf("reading %s requires --chrom", path)
		}

		return hicTool().Load(cmd.Context(), path, flagChrom, tpl)

	case convert.FormatCool:
		return coolTool().Load(cmd.Context(), path, tpl)
	}

	return nil, fmt.Errorf("reading %s files is not supported", format)
}

func hicTool() convert.HicTool {
	return convert.HicTool{
		Runner: convert.ExecRunner{Stdout: os.Stderr},
		Java:   cfg.Tools.Java,
		Jar:    cfg.Tools.JuicerJar,
	}
}

func coolTool() convert.CoolTool {
	return convert.CoolTool{
		Runner: convert.ExecRunner{Stdout: os.Stderr},
		Cooler: cfg.Tools.Cooler,
	}
}

// writeTable renders the table into any supported output.
func writeTable(cmd *cobra.Command, t *core.Table, path string) error {
	format, err := convert.Detect(path)
	if err != nil {
		return err
	}

	switch format {
	case convert.FormatShort, convert.FormatInterval:
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if format == convert.FormatShort {
			err = convert.WriteShort(f, t)
		} else {
			err = convert.WriteInterval(f, t, time.Now())
		}
		if cerr := f.Close(); err == nil {
			err = cerr
		}

		return err

	case convert.FormatHic:
		return hicTool().Export(cmd.Context(), t, path)

	case convert.FormatCool:
		if cfg.Tools.ChromSizes == "" {
			return fmt.Errorf("writing %s requires tools.chrom_sizes in the config", path)
		}

		return coolTool().Export(cmd.Context(), t, cfg.Tools.ChromSizes, path)
	}

	return fmt.Errorf("writing %s files is not supported", format)
}
