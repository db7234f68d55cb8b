package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/steveyegge/wbs/internal/types"
	"github.com/steveyegge/wbs/internal/wbs"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List goals as a tree",
	Args:    cobra.NoArgs,
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

		statusFilter, _ := cmd.Flags().GetString("status")
		all, _ := cmd.Flags().GetBool("all")

		if jsonOutput() {
			outputJSON(filterGoals(doc, statusFilter, all))
			return
		}
		renderTree(doc, statusFilter, all)
	},
}

func filterGoals(doc *wbs.Document, statusFilter string, all bool) []*types.Goal {
	var out []*types.Goal
	for _, g := range doc.Goals {
		if !goalVisible(g, statusFilter, all) {
			continue
		}
		out = append(out, g)
	}
	return out
}

func goalVisible(g *types.Goal, statusFilter string, all bool) bool {
	if statusFilter != "" {
		return string(g.Status) == strings.ToUpper(statusFilter)
	}
	if !all && g.Status.IsFinished() {
		return false
	}
	return true
}

// renderTree prints the goals in canonical order, indented by depth, one
// line per goal, truncated to the terminal width.
func renderTree(doc *wbs.Document, statusFilter string, all bool) {
	width := 0
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil {
			width = w
		}
	}

	if doc.IsBlocked {
		fmt.Println("⚠ document has blocked goals")
	}
	count := 0
	for _, g := range doc.Goals {
		if !goalVisible(g, statusFilter, all) {
			continue
		}
		count++
		indent := strings.Repeat("  ", len(doc.Ancestors(g.ID)))
		marker := ""
		if g.IsDraft {
			marker = " (draft)"
		}
		assignee := ""
		if g.Assignee != "" {
			assignee = " @" + g.Assignee
		}
		line := fmt.Sprintf("%s%-12s %s  %s%s%s", indent, g.Status, g.ID, g.Description, assignee, marker)
		if width > 0 && len(line) > width {
			line = line[:width-1] + "…"
		}
		fmt.Println(line)
	}
	if count == 0 {
		fmt.Println("No goals to show")
	}
}

func init() {
	listCmd.Flags().String("status", "", "Only show goals with this status")
	listCmd.Flags().Bool("all", false, "Include completed and abandoned goals")
	rootCmd.AddCommand(listCmd)
}
