package main

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"whengen/internal/rewrite"
)

type expandOptions struct {
	stdout  bool
	keyword string
	suffix  string
	header  string
}

func init() {
	var opts expandOptions

	expandCommand := &cobra.Command{
		Use:   "expand [paths...]",
		Short: "Expand when blocks and write the generated .go files",
		Long: `Expand processes the given files (or all input files under the given
directories) and writes a sibling .go file for each one. A failure in one
file does not stop the others.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return expandCmd(args, opts)
		},
		Example: `  whengen expand .
  whengen expand --stdout examples/thermostat/main.whengo`,
	}

	flags := expandCommand.Flags()
	flags.BoolVar(&opts.stdout, "stdout", false, "print generated code instead of writing files")
	flags.StringVar(&opts.keyword, "keyword", "", "override the clause-block keyword")
	flags.StringVar(&opts.suffix, "suffix", "", "override the input file suffix")
	flags.StringVar(&opts.header, "header", "", "override the generated-code header")

	rootCmd.AddCommand(expandCommand)
}

func expandCmd(args []string, opts expandOptions) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if opts.keyword != "" {
		cfg.Keyword = opts.keyword
	}

	if opts.suffix != "" {
		cfg.InputSuffix = opts.suffix
	}

	if opts.header != "" {
		cfg.Header = opts.header
	}

	inputs, err := collectInputs(args, cfg)
	if err != nil {
		return err
	}

	if len(inputs) == 0 {
		logrus.Warn("no input files found")
		return nil
	}

	var merr *multierror.Error

	for _, path := range inputs {
		res, err := rewrite.ProcessFile(path, cfg)
		if err != nil {
			merr = multierror.Append(merr, err)
			continue
		}

		if opts.stdout {
			fmt.Print(string(res.Content))
			continue
		}

		if err := rewrite.WriteResult(res); err != nil {
			merr = multierror.Append(merr, err)
			continue
		}

		logrus.WithFields(logrus.Fields{
			"input":  res.InputPath,
			"output": res.OutputPath,
			"sites":  res.Sites,
		}).Info("expanded")
	}

	return merr.ErrorOrNil()
}
