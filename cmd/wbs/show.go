package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one goal in full",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		store, err := openStore(ctx)
		if err != nil {
			FatalError("%v", err)
		}
		defer store.Close()

		doc, err := loadDocument(ctx, store)
		if err != nil {
			FatalError("%v", err)
		}
		goal := doc.FindGoal(args[0])
		if goal == nil {
			FatalError("goal %s not found", args[0])
		}

		if jsonOutput() {
			outputJSON(goal)
			return
		}

		fmt.Printf("%s  %s\n", goal.ID, goal.Status)
		fmt.Printf("  %s\n", goal.Description)
		if goal.Instructions != "" {
			fmt.Printf("  Instructions: %s\n", goal.Instructions)
		}
		if goal.ParentID != "" {
			fmt.Printf("  Parent: %s\n", goal.ParentID)
		}
		if goal.Assignee != "" {
			fmt.Printf("  Assignee: %s\n", goal.Assignee)
		}
		if goal.IsDraft {
			fmt.Println("  Draft")
		}
		if len(goal.Dependencies) > 0 {
			fmt.Printf("  Depends on: %s\n", strings.Join(goal.Dependencies, ", "))
		}
		if children := doc.Children(goal.ID); len(children) > 0 {
			var ids []string
			for _, c := range children {
				ids = append(ids, c.ID)
			}
			fmt.Printf("  Children: %s\n", strings.Join(ids, ", "))
		}
		for _, n := range goal.Notes {
			author := n.Author
			if author == "" {
				author = "unknown"
			}
			fmt.Printf("  [%s] %s: %s\n", n.ID, author, n.Note)
		}
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
