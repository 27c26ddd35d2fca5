package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/dkovordanyi/leafleter"
	"github.com/dkovordanyi/leafleter/pkg/core"
)

var (
	streetName         string
	streetMunicipality string
	streetStart        int
	streetEnd          int
	streetInterval     string
	listJSON           bool
	listMatch          string
)

var streetCmd = &cobra.Command{
	Use:   "street",
	Short: "Manage streets",
}

var streetAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a street",
	Long: `Add a street to the document. Adding the same street twice is a no-op:
identity derives from (municipality, name, start, end, interval).`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc, _ := openService()

		st := leafleter.Street{
			Name:         streetName,
			Municipality: streetMunicipality,
			Interval:     leafleter.Interval(streetInterval),
		}
		if cmd.Flags().Changed("start") {
			st.Start = &streetStart
		}
		if cmd.Flags().Changed("end") {
			st.End = &streetEnd
		}

		id, err := svc.AddStreet(context.Background(), st)
		if err != nil {
			fatal("Failed to add street", err)
		}
		fmt.Printf("Street added: %s\n", id)
	},
}

var streetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List streets grouped by municipality",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc, _ := openService()
		ctx := context.Background()

		groups, err := svc.Streets(ctx)
		if err != nil {
			fatal("Failed to list streets", err)
		}

		if listMatch != "" {
			groups = filterGroups(groups, listMatch)
		}

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(groups); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, g := range groups {
			fmt.Printf("%s\n", g.Municipality)
			for _, st := range g.Streets {
				sectorID, err := svc.StreetSector(ctx, st.ID)
				if err != nil {
					fatal("Failed to read sector assignment", err)
				}
				line := fmt.Sprintf("  %s  %s %s", st.ID, st.Name, st.RangeText())
				if sectorID != "" {
					line += fmt.Sprintf(" [sector %s]", sectorID)
				}
				fmt.Println(line)
			}
		}
	},
}

// filterGroups keeps streets whose name matches the glob pattern; empty
// buckets are dropped.
func filterGroups(groups []core.MunicipalityGroup, pattern string) []core.MunicipalityGroup {
	out := []core.MunicipalityGroup{}
	for _, g := range groups {
		var kept []core.Street
		for _, st := range g.Streets {
			if ok, err := doublestar.Match(pattern, st.Name); err == nil && ok {
				kept = append(kept, st)
			}
		}
		if len(kept) > 0 {
			out = append(out, core.MunicipalityGroup{Municipality: g.Municipality, Streets: kept})
		}
	}
	return out
}

func init() {
	rootCmd.AddCommand(streetCmd)
	streetCmd.AddCommand(streetAddCmd)
	streetCmd.AddCommand(streetListCmd)

	streetAddCmd.Flags().StringVar(&streetName, "name", "", "Street name")
	streetAddCmd.Flags().StringVar(&streetMunicipality, "municipality", "", "Municipality the street belongs to")
	streetAddCmd.Flags().IntVar(&streetStart, "start", 0, "First house number")
	streetAddCmd.Flags().IntVar(&streetEnd, "end", 0, "Last house number (omit for an open-ended street)")
	streetAddCmd.Flags().StringVar(&streetInterval, "interval", "all", "Parity filter: all, even or odd")
	streetAddCmd.MarkFlagRequired("name")
	streetAddCmd.MarkFlagRequired("municipality")

	streetListCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	streetListCmd.Flags().StringVar(&listMatch, "match", "", "Filter street names by glob pattern")
}
