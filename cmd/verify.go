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
	"fmt"
	"log/slog"
	"os"

	"github.com/gnames/gnfmt"
	"github.com/gnames/kvdata/internal/io/kvio"
	"github.com/gnames/kvdata/internal/io/verio"
	kvdata "github.com/gnames/kvdata/pkg"
	"github.com/gnames/kvdata/pkg/config"
	"github.com/spf13/cobra"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Checks records of a generated data file",
	Long: `Reads a data file created by 'kvdata generate' and checks that
every record has lengths within limits, contains only alphanumeric symbols,
and that the file ends exactly after the expected number of records.
A report in JSON format is printed to STDOUT.`,
	Run: func(cmd *cobra.Command, _ []string) {
		inputFlag(cmd)
		recordsFlag(cmd)
		byteOrderFlag(cmd)

		cfg := config.New(opts...)
		kvd := kvdata.New(cfg)

		keys, err := kvio.New(cfg.KVDir)
		if err != nil {
			slog.Error("Cannot create key-value store", "error", err)
			os.Exit(1)
		}

		v, err := verio.New(cfg, keys)
		if err != nil {
			slog.Error("Cannot create verifier", "error", err)
			os.Exit(1)
		}

		res, err := kvd.Verify(v)
		if err != nil {
			slog.Error("Data file is not valid", "error", err)
			os.Exit(1)
		}

		enc := gnfmt.GNjson{Pretty: true}
		out, err := enc.Encode(res)
		if err != nil {
			slog.Error("Cannot encode report", "error", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringP("input", "i", "", "path to the data file")
	verifyCmd.Flags().IntP("records", "n", 0, "expected number of records")
	verifyCmd.Flags().StringP("byte-order", "b", "",
		"byte order of length prefixes: little, big, native")
}
