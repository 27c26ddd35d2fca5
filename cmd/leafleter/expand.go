package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkovordanyi/leafleter/pkg/resolve"
)

var (
	manualStart int
	manualEnd   int
)

var expandCmd = &cobra.Command{
	Use:   "expand [street-id]",
	Short: "Resolve and print the house numbers of a street",
	Long: `Expand resolves the street's house numbers: a previously resolved set is
used verbatim, a bounded range is generated locally, and an open-ended street
is looked up in the OSM address dataset. When nothing is found, pass --start
and --end to enter the range manually.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		streetID := args[0]
		svc, cfg := openService()
		resolver := openResolver(svc, cfg)
		ctx := context.Background()

		street, err := svc.Street(ctx, streetID)
		if err != nil {
			fatal("Failed to find street", err)
		}

		if cmd.Flags().Changed("start") || cmd.Flags().Changed("end") {
			numbers, err := resolver.ApplyManualRange(ctx, streetID, manualStart, manualEnd)
			if err != nil {
				fatal("Invalid manual range", err)
			}
			printNumbers(street.Name, numbers)
			return
		}

		res, err := resolver.Resolve(ctx, street)
		if err != nil {
			fatal("Failed to resolve house numbers", err)
		}

		switch res.State {
		case resolve.StateResolved:
			printNumbers(street.Name, res.Numbers)
		case resolve.StateManualEntry:
			if res.LookupErr != nil {
				fmt.Printf("House-number lookup failed (%v); retry, or use --start/--end for manual entry.\n", res.LookupErr)
				return
			}
			fmt.Printf("No house numbers found for %s; use --start/--end for manual entry.\n", street.Name)
		}
	},
}

func printNumbers(name string, numbers []int) {
	fmt.Printf("%s:", name)
	for _, n := range numbers {
		fmt.Printf(" %d", n)
	}
	fmt.Println()
}

func init() {
	rootCmd.AddCommand(expandCmd)
	expandCmd.Flags().IntVar(&manualStart, "start", 0, "Manual range start")
	expandCmd.Flags().IntVar(&manualEnd, "end", 0, "Manual range end")
}
