package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print document store state",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc, _ := openService()

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		if comp, ok := svc.Store().(introspection.Component); ok {
			fmt.Printf("store: %s\n", comp.ComponentType())
		}
		if intro, ok := svc.Store().(introspection.Introspectable); ok {
			if err := encoder.Encode(intro.State()); err != nil {
				fatal("Failed to encode state", err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
