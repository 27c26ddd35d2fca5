package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkovordanyi/leafleter"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the built-in street list",
	Long: `Seed upserts the built-in initial streets. Seeding is idempotent: streets
already present are left untouched.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc, _ := openService()

		ids, err := svc.Seed(context.Background(), leafleter.DefaultStreets())
		if err != nil {
			fatal("Failed to seed streets", err)
		}
		fmt.Printf("Seeded %d streets.\n", len(ids))
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
