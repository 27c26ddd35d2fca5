package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import [path]",
	Short: "Import a document from a file",
	Long: `Import parses and validates the file at path, then wholly replaces the
persisted document. Invalid entities inside a valid document are dropped;
a file that is not a JSON object is rejected.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, _ := openService()

		if err := svc.Import(context.Background(), args[0]); err != nil {
			fatal("Failed to import document", err)
		}
		fmt.Println("Import completed.")
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
