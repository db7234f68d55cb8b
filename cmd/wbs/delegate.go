package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/steveyegge/wbs/internal/dispatch"
)

var delegateCmd = &cobra.Command{
	Use:   "delegate <id> <assignee>",
	Short: "Hand a leaf goal to an assignee",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		doc := mustApply(context.Background(), dispatch.ActionDelegateGoal, dispatch.DelegateGoalArgs{
			ID:       args[0],
			Assignee: args[1],
		})
		if jsonOutput() {
			outputJSON(doc.FindGoal(args[0]))
			return
		}
		fmt.Printf("Delegated %s to %s\n", args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(delegateCmd)
}
