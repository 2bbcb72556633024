// Package main provides the CLI entrypoint for whengen.
//
// whengen is a source preprocessor that rewrites `when { ... }` clause
// blocks in .whengo files into plain Go if/else chains:
//   - `when { guard => body, ... }` expands to a statement chain
//   - `when[T] { ..., _ => body }` expands to a value-producing expression
//   - `let x = expr => body` guards use the host's comma-ok forms
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"whengen/internal/config"
)

const version = "0.3.0"

var rootCmd = &cobra.Command{
	Use:           "whengen",
	Short:         "Expand when-clause blocks into Go conditional chains",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logrus.SetLevel(logrus.WarnLevel)

		if globalOpts.verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}

		if globalOpts.dump {
			// Trace also dumps each parsed clause list.
			logrus.SetLevel(logrus.TraceLevel)
		}
	},
}

var globalOpts struct {
	configPath string
	verbose    bool
	dump       bool
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&globalOpts.configPath, "config", "c", "", "path to whengen.yaml")
	flags.BoolVarP(&globalOpts.verbose, "verbose", "v", false, "print debug information")
	flags.BoolVar(&globalOpts.dump, "dump", false, "dump parsed clause lists (implies --verbose)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration: an explicit --config file,
// else a whengen.yaml in the working directory, else defaults.
func loadConfig() (config.Config, error) {
	if globalOpts.configPath != "" {
		return config.LoadFile(globalOpts.configPath)
	}

	if _, err := os.Stat(config.DefaultFileName); err == nil {
		return config.LoadFile(config.DefaultFileName)
	}

	return config.Default(), nil
}

// collectInputs expands the path arguments into the list of input files:
// directories are walked recursively, plain files are taken as-is.
func collectInputs(args []string, cfg config.Config) ([]string, error) {
	if len(args) == 0 {
		args = []string{"."}
	}

	var inputs []string

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			// An explicitly named file must still carry the input suffix:
			// OutputName derives the output path from it, so a stray .go
			// argument would be overwritten with its own ".go.go" sibling.
			if !cfg.IsInput(arg) {
				return nil, fmt.Errorf("%s: input files must end in %q", arg, cfg.InputSuffix)
			}

			inputs = append(inputs, arg)
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if !d.IsDir() && cfg.IsInput(path) {
				inputs = append(inputs, path)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(inputs)

	return inputs, nil
}
