package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/steveyegge/wbs/internal/config"
	"github.com/steveyegge/wbs/internal/dispatch"
	"github.com/steveyegge/wbs/internal/types"
)

var reportCmd = &cobra.Command{
	Use:   "report <id> <note>",
	Short: "Report progress on a delegated goal",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		review, _ := cmd.Flags().GetBool("review")
		doc := mustApply(context.Background(), dispatch.ActionReportOnGoal, dispatch.ReportOnGoalArgs{
			ID: args[0],
			Note: &types.Note{
				ID:     newNoteID(),
				Note:   args[1],
				Author: config.GetString("actor"),
			},
			MoveInReview: review,
		})
		if jsonOutput() {
			outputJSON(doc.FindGoal(args[0]))
			return
		}
		if review {
			fmt.Printf("Reported on %s, now in review\n", args[0])
			return
		}
		fmt.Printf("Reported on %s\n", args[0])
	},
}

func init() {
	reportCmd.Flags().Bool("review", false, "Move the goal to IN_REVIEW")
	rootCmd.AddCommand(reportCmd)
}
