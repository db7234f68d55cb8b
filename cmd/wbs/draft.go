package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/steveyegge/wbs/internal/dispatch"
)

var draftCmd = &cobra.Command{
	Use:   "draft <id>",
	Short: "Mark a goal as a draft",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doc := mustApply(context.Background(), dispatch.ActionMarkAsDraft, dispatch.GoalIDArgs{ID: args[0]})
		if jsonOutput() {
			outputJSON(doc.FindGoal(args[0]))
			return
		}
		fmt.Printf("%s is now a draft\n", args[0])
	},
}

var readyCmd = &cobra.Command{
	Use:   "ready <id>",
	Short: "Mark a draft goal as ready",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doc := mustApply(context.Background(), dispatch.ActionMarkAsReady, dispatch.GoalIDArgs{ID: args[0]})
		if jsonOutput() {
			outputJSON(doc.FindGoal(args[0]))
			return
		}
		fmt.Printf("%s is now ready\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(draftCmd)
	rootCmd.AddCommand(readyCmd)
}
