package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/steveyegge/wbs/internal/config"
	"github.com/steveyegge/wbs/internal/dispatch"
	"github.com/steveyegge/wbs/internal/types"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage notes on a goal",
}

var noteAddCmd = &cobra.Command{
	Use:   "add <id> <text>",
	Short: "Add a note to a goal",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		note := &types.Note{
			ID:     newNoteID(),
			Note:   args[1],
			Author: config.GetString("actor"),
		}
		mustApply(context.Background(), dispatch.ActionAddNote, dispatch.AddNoteArgs{
			ID:   args[0],
			Note: note,
		})
		if jsonOutput() {
			outputJSON(note)
			return
		}
		fmt.Printf("Added note %s to %s\n", note.ID, args[0])
	},
}

var noteRemoveCmd = &cobra.Command{
	Use:   "remove <id> <note-id>",
	Short: "Remove a note from a goal",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		mustApply(context.Background(), dispatch.ActionRemoveNote, dispatch.RemoveNoteArgs{
			ID:     args[0],
			NoteID: args[1],
		})
		if jsonOutput() {
			outputJSON(map[string]string{"id": args[0], "removed": args[1]})
			return
		}
		fmt.Printf("Removed note %s from %s\n", args[1], args[0])
	},
}

var noteClearCmd = &cobra.Command{
	Use:   "clear <id>",
	Short: "Remove every note from a goal",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		mustApply(context.Background(), dispatch.ActionClearNotes, dispatch.GoalIDArgs{ID: args[0]})
		if jsonOutput() {
			outputJSON(map[string]string{"id": args[0], "notes": "cleared"})
			return
		}
		fmt.Printf("Cleared notes on %s\n", args[0])
	},
}

func init() {
	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteRemoveCmd)
	noteCmd.AddCommand(noteClearCmd)
	rootCmd.AddCommand(noteCmd)
}
