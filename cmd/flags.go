package cmd

import (
	"log/slog"
	"os"

	"github.com/gnames/kvdata/pkg/config"
	"github.com/spf13/cobra"
)

func outputFlag(cmd *cobra.Command) {
	s, _ := cmd.Flags().GetString("output")
	if s != "" {
		opts = append(opts, config.OptOutputPath(s))
	}
}

func inputFlag(cmd *cobra.Command) {
	s, _ := cmd.Flags().GetString("input")
	if s != "" {
		opts = append(opts, config.OptOutputPath(s))
	}
}

func recordsFlag(cmd *cobra.Command) {
	if !cmd.Flags().Changed("records") {
		return
	}
	i, _ := cmd.Flags().GetInt("records")
	if i < 0 {
		slog.Error("Number of records cannot be negative", "records", i)
		os.Exit(1)
	}
	opts = append(opts, config.OptRecordsNum(i))
}

func seedFlag(cmd *cobra.Command) {
	if !cmd.Flags().Changed("seed") {
		return
	}
	i, _ := cmd.Flags().GetInt64("seed")
	opts = append(opts, config.OptSeed(i))
}

func byteOrderFlag(cmd *cobra.Command) {
	s, _ := cmd.Flags().GetString("byte-order")
	if s != "" {
		opts = append(opts, config.OptByteOrder(s))
	}
}

func progressFlag(cmd *cobra.Command) {
	i, _ := cmd.Flags().GetInt("progress-every")
	if i > 0 {
		opts = append(opts, config.OptProgressEvery(i))
	}
}

func quietFlag(cmd *cobra.Command) {
	b, _ := cmd.Flags().GetBool("quiet")
	if b {
		opts = append(opts, config.OptQuiet(true))
	}
}
