package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/steveyegge/wbs/internal/dispatch"
)

var depCmd = &cobra.Command{
	Use:   "dep",
	Short: "Manage goal dependencies",
}

var depAddCmd = &cobra.Command{
	Use:   "add <id> <depends-on>...",
	Short: "Record that a goal depends on others",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		doc := mustApply(context.Background(), dispatch.ActionAddDependencies, dispatch.DependenciesArgs{
			ID:  args[0],
			IDs: args[1:],
		})
		if jsonOutput() {
			outputJSON(doc.FindGoal(args[0]))
			return
		}
		fmt.Printf("%s now depends on %s\n", args[0], strings.Join(args[1:], ", "))
	},
}

var depRemoveCmd = &cobra.Command{
	Use:   "remove <id> <depends-on>...",
	Short: "Remove dependency edges from a goal",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		doc := mustApply(context.Background(), dispatch.ActionRemoveDependencies, dispatch.DependenciesArgs{
			ID:  args[0],
			IDs: args[1:],
		})
		if jsonOutput() {
			outputJSON(doc.FindGoal(args[0]))
			return
		}
		fmt.Printf("Removed %s from %s dependencies\n", strings.Join(args[1:], ", "), args[0])
	},
}

func init() {
	depCmd.AddCommand(depAddCmd)
	depCmd.AddCommand(depRemoveCmd)
	rootCmd.AddCommand(depCmd)
}
