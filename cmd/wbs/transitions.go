package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/steveyegge/wbs/internal/config"
	"github.com/steveyegge/wbs/internal/dispatch"
	"github.com/steveyegge/wbs/internal/types"
)

// noteFromFlag reads the optional --note flag into a note, nil when unset.
func noteFromFlag(cmd *cobra.Command) *types.Note {
	text, _ := cmd.Flags().GetString("note")
	if text == "" {
		return nil
	}
	return &types.Note{
		ID:     newNoteID(),
		Note:   text,
		Author: config.GetString("actor"),
	}
}

// transitionCmd builds a status-change command that takes a goal ID and an
// optional note.
func transitionCmd(use, short string, typ dispatch.ActionType) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doc := mustApply(context.Background(), typ, dispatch.StatusChangeArgs{
				ID:   args[0],
				Note: noteFromFlag(cmd),
			})
			goal := doc.FindGoal(args[0])
			if jsonOutput() {
				outputJSON(goal)
				return
			}
			fmt.Printf("%s is now %s\n", goal.ID, goal.Status)
		},
	}
	cmd.Flags().String("note", "", "Note recorded with the transition")
	return cmd
}

var wontdoCmd = &cobra.Command{
	Use:   "wontdo <id>",
	Short: "Abandon a goal and its unfinished subtree",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doc := mustApply(context.Background(), dispatch.ActionMarkWontDo, dispatch.GoalIDArgs{ID: args[0]})
		goal := doc.FindGoal(args[0])
		if jsonOutput() {
			outputJSON(goal)
			return
		}
		fmt.Printf("%s is now %s\n", goal.ID, goal.Status)
	},
}

func init() {
	rootCmd.AddCommand(transitionCmd("progress", "Mark a goal in progress", dispatch.ActionMarkInProgress))
	rootCmd.AddCommand(transitionCmd("done", "Complete a goal and cascade", dispatch.ActionMarkCompleted))
	rootCmd.AddCommand(transitionCmd("todo", "Reset a goal to TODO", dispatch.ActionMarkTodo))
	rootCmd.AddCommand(wontdoCmd)
}
