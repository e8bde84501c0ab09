/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"bufio"
	"log/slog"
	"os"

	"github.com/gnames/kvdata/internal/ent/record"
	"github.com/gnames/kvdata/internal/io/genio"
	kvdata "github.com/gnames/kvdata/pkg"
	"github.com/gnames/kvdata/pkg/config"
	"github.com/spf13/cobra"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Creates a binary file with random key-value records",
	Long: `Creates a binary file with random key-value records.

Each record consists of a key length, key bytes, a value length and value
bytes. Lengths are 4-byte unsigned integers. Keys and values are random
alphanumeric strings. A progress line '<index> <total>' is printed to
STDOUT.`,
	Run: func(cmd *cobra.Command, _ []string) {
		outputFlag(cmd)
		recordsFlag(cmd)
		seedFlag(cmd)
		byteOrderFlag(cmd)
		progressFlag(cmd)
		quietFlag(cmd)

		cfg := config.New(opts...)
		kvd := kvdata.New(cfg)

		out := bufio.NewWriter(os.Stdout)
		defer out.Flush()

		g, err := genio.New(cfg, record.NewRand(cfg.Seed), out)
		if err != nil {
			slog.Error("Cannot create generator", "error", err)
			os.Exit(1)
		}

		err = kvd.Generate(g)
		if err != nil {
			out.Flush()
			slog.Error("Cannot generate data file", "error", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("output", "o", "", "path to the data file")
	generateCmd.Flags().IntP("records", "n", 0, "number of records")
	generateCmd.Flags().Int64P("seed", "s", 0,
		"seed for random generator, the same seed gives the same file")
	generateCmd.Flags().StringP("byte-order", "b", "",
		"byte order of length prefixes: little, big, native")
	generateCmd.Flags().IntP("progress-every", "p", 0,
		"print progress after every N records")
	generateCmd.Flags().BoolP("quiet", "q", false, "do not print progress")
}
