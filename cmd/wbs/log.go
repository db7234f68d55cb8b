package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the action log, failed actions included",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		store, err := openStore(ctx)
		if err != nil {
			FatalError("%v", err)
		}
		defer store.Close()

		records, err := store.ListRecords(ctx)
		if err != nil {
			FatalError("%v", err)
		}

		failuresOnly, _ := cmd.Flags().GetBool("failures")

		if jsonOutput() {
			if failuresOnly {
				filtered := records[:0]
				for _, rec := range records {
					if !rec.OK() {
						filtered = append(filtered, rec)
					}
				}
				records = filtered
			}
			outputJSON(records)
			return
		}

		for _, rec := range records {
			if failuresOnly && rec.OK() {
				continue
			}
			actor := rec.Action.Actor
			if actor == "" {
				actor = "-"
			}
			when := rec.AppliedAt.Local().Format(time.RFC3339)
			if rec.OK() {
				fmt.Printf("%s  r%d  %-20s %s\n", when, rec.Revision, rec.Action.Type, actor)
				continue
			}
			fmt.Printf("%s  FAIL %-20s %s: %s\n", when, rec.Action.Type, actor, rec.Error)
		}

		total, err := store.CountActions(ctx)
		if err != nil {
			FatalError("%v", err)
		}
		fmt.Printf("%d actions\n", total)
	},
}

func init() {
	logCmd.Flags().Bool("failures", false, "Only show failed actions")
	rootCmd.AddCommand(logCmd)
}
