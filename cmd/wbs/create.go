package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/steveyegge/wbs/internal/config"
	"github.com/steveyegge/wbs/internal/dispatch"
	"github.com/steveyegge/wbs/internal/types"
)

var createCmd = &cobra.Command{
	Use:     "create <description>",
	Aliases: []string{"new"},
	Short:   "Create a new goal",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, _ := cmd.Flags().GetString("id")
		if id == "" {
			id = uuid.NewString()
		}
		assignee, _ := cmd.Flags().GetString("assignee")
		parentID, _ := cmd.Flags().GetString("parent")
		before, _ := cmd.Flags().GetString("before")
		ready, _ := cmd.Flags().GetBool("ready")
		deps, _ := cmd.Flags().GetStringSlice("deps")
		noteText, _ := cmd.Flags().GetString("note")
		instructions, _ := cmd.Flags().GetString("instructions")

		createArgs := dispatch.CreateGoalArgs{
			ID:           id,
			Description:  args[0],
			Assignee:     assignee,
			ParentID:     parentID,
			InsertBefore: before,
			DependsOn:    deps,
			Instructions: instructions,
		}
		if ready {
			draft := false
			createArgs.Draft = &draft
		}
		if noteText != "" {
			createArgs.InitialNote = &types.Note{
				ID:     newNoteID(),
				Note:   noteText,
				Author: config.GetString("actor"),
			}
		}

		doc := mustApply(context.Background(), dispatch.ActionCreateGoal, createArgs)
		goal := doc.FindGoal(id)
		if jsonOutput() {
			outputJSON(goal)
			return
		}
		fmt.Printf("Created goal %s (%s)\n", goal.ID, goal.Status)
	},
}

func init() {
	createCmd.Flags().String("id", "", "Goal ID (generated when omitted)")
	createCmd.Flags().String("assignee", "", "Delegate the goal at creation")
	createCmd.Flags().String("parent", "", "Parent goal ID")
	createCmd.Flags().String("before", "", "Insert before this goal ID")
	createCmd.Flags().Bool("ready", false, "Create as ready instead of draft")
	createCmd.Flags().StringSlice("deps", nil, "Goal IDs this goal depends on")
	createCmd.Flags().String("note", "", "Initial note text")
	createCmd.Flags().String("instructions", "", "Instructions for whoever works the goal")
	rootCmd.AddCommand(createCmd)
}
