package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	sectorName  string
	sectorNote  string
	sectorColor string
)

var sectorCmd = &cobra.Command{
	Use:   "sector",
	Short: "Manage distribution sectors",
}

var sectorAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add or update a sector",
	Long: `Add upserts a sector. Identity derives from (name, note): re-adding the
same pair updates the color in place instead of creating a duplicate.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc, _ := openService()

		id, err := svc.AddOrUpdateSector(context.Background(), sectorName, sectorNote, sectorColor)
		if err != nil {
			fatal("Failed to add sector", err)
		}
		fmt.Printf("Sector saved: %s\n", id)
	},
}

var sectorListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all sectors",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc, _ := openService()

		sectors, err := svc.Sectors(context.Background())
		if err != nil {
			fatal("Failed to list sectors", err)
		}
		for _, s := range sectors {
			line := fmt.Sprintf("%s  %s", s.ID, s.Name)
			if s.Color != "" {
				line += fmt.Sprintf(" (%s)", s.Color)
			}
			if s.Note != "" {
				line += "  " + s.Note
			}
			fmt.Println(line)
		}
	},
}

var sectorDeleteCmd = &cobra.Command{
	Use:   "delete [sector-id]",
	Short: "Delete a sector",
	Long:  `Delete removes the sector and clears every street assignment pointing to it.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, _ := openService()

		if err := svc.DeleteSector(context.Background(), args[0]); err != nil {
			fatal("Failed to delete sector", err)
		}
		fmt.Printf("Sector deleted: %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(sectorCmd)
	sectorCmd.AddCommand(sectorAddCmd)
	sectorCmd.AddCommand(sectorListCmd)
	sectorCmd.AddCommand(sectorDeleteCmd)

	sectorAddCmd.Flags().StringVar(&sectorName, "name", "", "Sector name")
	sectorAddCmd.Flags().StringVar(&sectorNote, "note", "", "Sector note")
	sectorAddCmd.Flags().StringVar(&sectorColor, "color", "", "Display color, e.g. #ff0000")
	sectorAddCmd.MarkFlagRequired("name")
}
