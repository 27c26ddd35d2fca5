package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	lcadapter "github.com/dkovordanyi/leafleter/pkg/adapters/lifecycle"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the document file for external changes",
	Long: `Watch prints an event whenever the backing document file is rewritten by
another process. Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc, _ := openService()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		events, err := svc.Watch(ctx)
		if err != nil {
			fatal("Failed to start watching", err)
		}

		// The lifecycle source lets a host supervise the watcher alongside
		// its other components; here it just feeds the print loop.
		source := lcadapter.NewSource(events)
		if err := source.Start(ctx); err != nil {
			fatal("Failed to start event source", err)
		}

		fmt.Println("Watching for document changes (Ctrl-C to stop)...")
		for ev := range source.Events() {
			fmt.Println(ev.String())
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
