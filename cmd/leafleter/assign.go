package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var assignClear bool

var assignCmd = &cobra.Command{
	Use:   "assign [street-id] [sector-id]",
	Short: "Assign a street to a sector",
	Long: `Assign maps a street to at most one sector. The sector must exist.
Use --clear to remove an existing assignment.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		streetID := args[0]
		svc, _ := openService()
		ctx := context.Background()

		if assignClear {
			if err := svc.AssignSector(ctx, streetID, ""); err != nil {
				fatal("Failed to clear assignment", err)
			}
			fmt.Printf("Assignment cleared for street %s\n", streetID)
			return
		}

		if len(args) < 2 {
			fatal("Missing sector id", fmt.Errorf("pass a sector id or --clear"))
		}
		if err := svc.AssignSector(ctx, streetID, args[1]); err != nil {
			fatal("Failed to assign sector", err)
		}
		fmt.Printf("Street %s assigned to sector %s\n", streetID, args[1])
	},
}

func init() {
	rootCmd.AddCommand(assignCmd)
	assignCmd.Flags().BoolVar(&assignClear, "clear", false, "Clear the street's sector assignment")
}
