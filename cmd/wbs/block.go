package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/steveyegge/wbs/internal/config"
	"github.com/steveyegge/wbs/internal/dispatch"
	"github.com/steveyegge/wbs/internal/types"
)

var blockCmd = &cobra.Command{
	Use:   "block <id> <question>",
	Short: "Mark a goal blocked with the question that blocks it",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		doc := mustApply(context.Background(), dispatch.ActionReportBlocked, dispatch.ReportBlockedArgs{
			ID: args[0],
			Question: &types.Note{
				ID:     newNoteID(),
				Note:   args[1],
				Author: config.GetString("actor"),
			},
		})
		if jsonOutput() {
			outputJSON(doc.FindGoal(args[0]))
			return
		}
		fmt.Printf("%s is now BLOCKED\n", args[0])
	},
}

var unblockCmd = &cobra.Command{
	Use:   "unblock <id> <answer>",
	Short: "Answer a blocked goal and return it to TODO",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		doc := mustApply(context.Background(), dispatch.ActionUnblockGoal, dispatch.UnblockGoalArgs{
			ID: args[0],
			Response: &types.Note{
				ID:     newNoteID(),
				Note:   args[1],
				Author: config.GetString("actor"),
			},
		})
		if jsonOutput() {
			outputJSON(doc.FindGoal(args[0]))
			return
		}
		fmt.Printf("%s is now TODO\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(blockCmd)
	rootCmd.AddCommand(unblockCmd)
}
