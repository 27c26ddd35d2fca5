package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Export the document to a file",
	Long: `Export writes the full document, pretty-printed, to the given path.
Omitting the path cancels the export (mirrors a cancelled save dialog).`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var path string
		if len(args) > 0 {
			path = args[0]
		}
		svc, _ := openService()

		dest, err := svc.Export(context.Background(), path)
		if err != nil {
			fatal("Failed to export document", err)
		}
		if dest == "" {
			fmt.Println("Export cancelled.")
			return
		}
		fmt.Printf("Exported to: %s\n", dest)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
