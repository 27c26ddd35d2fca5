package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkovordanyi/leafleter"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of leafleter",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("leafleter version %s\n", leafleter.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
