package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/steveyegge/wbs/internal/dispatch"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a goal's description or instructions",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		description, _ := cmd.Flags().GetString("description")
		instructions, _ := cmd.Flags().GetString("instructions")
		clearInstructions, _ := cmd.Flags().GetBool("clear-instructions")

		if description == "" && instructions == "" && !clearInstructions {
			FatalError("nothing to edit: pass --description, --instructions, or --clear-instructions")
		}
		if instructions != "" && clearInstructions {
			FatalError("cannot set and clear instructions in the same edit")
		}

		if description != "" {
			mustApply(ctx, dispatch.ActionUpdateDescription, dispatch.UpdateDescriptionArgs{
				ID:          args[0],
				Description: description,
			})
		}
		if instructions != "" {
			mustApply(ctx, dispatch.ActionUpdateInstructions, dispatch.UpdateInstructionsArgs{
				ID:           args[0],
				Instructions: instructions,
			})
		}
		if clearInstructions {
			mustApply(ctx, dispatch.ActionClearInstructions, dispatch.GoalIDArgs{ID: args[0]})
		}

		if jsonOutput() {
			store, err := openStore(ctx)
			if err != nil {
				FatalError("%v", err)
			}
			defer store.Close()
			doc, err := loadDocument(ctx, store)
			if err != nil {
				FatalError("%v", err)
			}
			outputJSON(doc.FindGoal(args[0]))
			return
		}
		fmt.Printf("Updated %s\n", args[0])
	},
}

func init() {
	editCmd.Flags().String("description", "", "New description")
	editCmd.Flags().String("instructions", "", "New instructions")
	editCmd.Flags().Bool("clear-instructions", false, "Remove the goal's instructions")
	rootCmd.AddCommand(editCmd)
}
