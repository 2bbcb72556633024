package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	versionCommand := &cobra.Command{
		Use:   "version",
		Short: "Print the whengen version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("whengen %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCommand)
}
