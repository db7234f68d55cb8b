package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/steveyegge/wbs/internal/dispatch"
)

var ownerCmd = &cobra.Command{
	Use:   "owner <owner>",
	Short: "Set the document owner",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doc := mustApply(context.Background(), dispatch.ActionSetOwner, dispatch.SetOwnerArgs{Owner: args[0]})
		if jsonOutput() {
			outputJSON(map[string]string{"owner": doc.Owner})
			return
		}
		fmt.Printf("Owner set to %s\n", doc.Owner)
	},
}

var refsCmd = &cobra.Command{
	Use:   "refs <url>...",
	Short: "Replace the document's reference URLs",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doc := mustApply(context.Background(), dispatch.ActionSetReferences, dispatch.SetReferencesArgs{URLs: args})
		if jsonOutput() {
			outputJSON(map[string][]string{"references": doc.References})
			return
		}
		fmt.Printf("References set: %s\n", strings.Join(doc.References, ", "))
	},
}

var metaCmd = &cobra.Command{
	Use:   "meta <format> <data>",
	Short: "Replace the document's metadata blob",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		doc := mustApply(context.Background(), dispatch.ActionSetMetaData, dispatch.SetMetaDataArgs{
			Format: args[0],
			Data:   args[1],
		})
		if jsonOutput() {
			outputJSON(doc.MetaData)
			return
		}
		fmt.Printf("Metadata set (%s)\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(ownerCmd)
	rootCmd.AddCommand(refsCmd)
	rootCmd.AddCommand(metaCmd)
}
