package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var streetNoteCmd = &cobra.Command{
	Use:   "streetnote",
	Short: "Manage notes scoped to a whole street",
}

var streetNoteAddCmd = &cobra.Command{
	Use:   "add [street-id] [text...]",
	Short: "Attach a note to a street",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		svc, _ := openService()

		id, err := svc.AddStreetNote(context.Background(), args[0], strings.Join(args[1:], " "))
		if err != nil {
			fatal("Failed to add street note", err)
		}
		fmt.Printf("Street note added: %s\n", id)
	},
}

var streetNoteListCmd = &cobra.Command{
	Use:   "list [street-id]",
	Short: "List the notes of a street",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, _ := openService()

		notes, err := svc.StreetNotes(context.Background(), args[0])
		if err != nil {
			fatal("Failed to list street notes", err)
		}
		for _, n := range notes {
			fmt.Printf("%s  %s  %s\n", n.ID, n.CreatedAt.Format("2006-01-02 15:04"), n.Text)
		}
	},
}

var streetNoteDeleteCmd = &cobra.Command{
	Use:   "delete [note-id]",
	Short: "Delete a street note by id",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, _ := openService()

		if err := svc.DeleteStreetNote(context.Background(), args[0]); err != nil {
			fatal("Failed to delete street note", err)
		}
		fmt.Printf("Street note deleted: %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(streetNoteCmd)
	streetNoteCmd.AddCommand(streetNoteAddCmd)
	streetNoteCmd.AddCommand(streetNoteListCmd)
	streetNoteCmd.AddCommand(streetNoteDeleteCmd)
}
