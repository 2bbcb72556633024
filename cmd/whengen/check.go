package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"whengen/internal/diagnostic"
	"whengen/internal/rewrite"
)

// codeNoSites marks an input file that parses fine but contains no clause
// blocks, which usually means a stale or misnamed input.
const codeNoSites = "WHEN_NO_SITES"

func init() {
	checkCommand := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Parse and expand when blocks without writing anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkCmd(args)
		},
	}

	rootCmd.AddCommand(checkCommand)
}

func checkCmd(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	inputs, err := collectInputs(args, cfg)
	if err != nil {
		return err
	}

	var diags diagnostic.Diagnostics

	checked := 0

	for _, path := range inputs {
		checked++

		sites, err := rewrite.CheckFile(path, cfg)
		if err != nil {
			diags.AddErr(path, err)
			continue
		}

		if sites == 0 {
			diags.AddWarning(codeNoSites,
				fmt.Sprintf("no `%s` blocks found", cfg.Keyword), path, 0, 0)
		}
	}

	for _, d := range diags.Warnings {
		fmt.Fprintln(os.Stderr, d.String())
	}

	for _, d := range diags.Errors {
		fmt.Fprintln(os.Stderr, d.String())
	}

	if diags.HasErrors() {
		return fmt.Errorf("%d of %d files failed", len(diags.Errors), checked)
	}

	fmt.Printf("%d files ok\n", checked)

	return nil
}
