package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dkovordanyi/leafleter/pkg/osm"
)

var locateCmd = &cobra.Command{
	Use:   "locate [street-id] [number]",
	Short: "Geocode a street or an exact address",
	Long: `Locate resolves coordinates via Nominatim. With a house number it tries
the exact address first and falls back to the street center.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		svc, cfg := openService()
		ctx := context.Background()

		street, err := svc.Street(ctx, args[0])
		if err != nil {
			fatal("Failed to find street", err)
		}

		geocoder := osm.NewGeocoder(cfg.NominatimURL, cfg.LookupTimeout())

		if len(args) == 2 {
			number, err := strconv.Atoi(args[1])
			if err != nil {
				fatal("Invalid house number", err)
			}
			coords, found, err := geocoder.GeocodeAddress(ctx, street.Name, number, street.Municipality)
			if err != nil {
				fatal("Geocoding failed", err)
			}
			if found {
				fmt.Printf("%s %d, %s: %f, %f\n", street.Name, number, street.Municipality, coords.Lat, coords.Lon)
				return
			}
			// exact address unknown, fall back to the street center
		}

		coords, found, err := geocoder.GeocodeStreet(ctx, street.Name, street.Municipality)
		if err != nil {
			fatal("Geocoding failed", err)
		}
		if !found {
			fmt.Printf("No match for %s, %s\n", street.Name, street.Municipality)
			return
		}
		fmt.Printf("%s, %s: %f, %f\n", street.Name, street.Municipality, coords.Lat, coords.Lon)
	},
}

func init() {
	rootCmd.AddCommand(locateCmd)
}
