package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage notes on individual addresses",
}

var noteAddCmd = &cobra.Command{
	Use:   "add [street-id] [number] [text...]",
	Short: "Attach a note to an address",
	Args:  cobra.MinimumNArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		number, err := strconv.Atoi(args[1])
		if err != nil {
			fatal("Invalid house number", err)
		}
		svc, _ := openService()

		id, err := svc.AddNote(context.Background(), args[0], number, strings.Join(args[2:], " "))
		if err != nil {
			fatal("Failed to add note", err)
		}
		fmt.Printf("Note added: %s\n", id)
	},
}

var noteListCmd = &cobra.Command{
	Use:   "list [street-id] [number]",
	Short: "List the notes of an address",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		number, err := strconv.Atoi(args[1])
		if err != nil {
			fatal("Invalid house number", err)
		}
		svc, _ := openService()

		notes, err := svc.Notes(context.Background(), args[0], number)
		if err != nil {
			fatal("Failed to list notes", err)
		}
		for _, n := range notes {
			fmt.Printf("%s  %s  %s\n", n.ID, n.CreatedAt.Format("2006-01-02 15:04"), n.Text)
		}
	},
}

var noteDeleteCmd = &cobra.Command{
	Use:   "delete [note-id]",
	Short: "Delete a note by id",
	Long:  `Delete removes a note by exact id. Deleting an unknown id is a no-op.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, _ := openService()

		if err := svc.DeleteNote(context.Background(), args[0]); err != nil {
			fatal("Failed to delete note", err)
		}
		fmt.Printf("Note deleted: %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(noteCmd)
	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteListCmd)
	noteCmd.AddCommand(noteDeleteCmd)
}
