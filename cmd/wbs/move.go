package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/steveyegge/wbs/internal/dispatch"
)

var moveCmd = &cobra.Command{
	Use:   "move <id>",
	Short: "Move a goal to a new parent or position",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		before, _ := cmd.Flags().GetString("before")
		toRoot, _ := cmd.Flags().GetBool("root")
		parent, _ := cmd.Flags().GetString("parent")
		if toRoot && parent != "" {
			FatalError("cannot pass both --parent and --root")
		}

		moveArgs := dispatch.ReorderGoalArgs{ID: args[0], InsertBefore: before}
		switch {
		case toRoot:
			root := ""
			moveArgs.ParentID = &root
		case parent != "":
			moveArgs.ParentID = &parent
		default:
			// Neither flag: the goal becomes a root, matching a null parent.
		}

		doc := mustApply(context.Background(), dispatch.ActionReorderGoal, moveArgs)
		if jsonOutput() {
			outputJSON(doc.FindGoal(args[0]))
			return
		}
		fmt.Printf("Moved %s\n", args[0])
	},
}

func init() {
	moveCmd.Flags().String("parent", "", "New parent goal ID")
	moveCmd.Flags().Bool("root", false, "Move the goal to the root")
	moveCmd.Flags().String("before", "", "Insert before this sibling ID")
	rootCmd.AddCommand(moveCmd)
}
