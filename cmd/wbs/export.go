package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the current document",
	Args:  cobra.NoArgs,
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

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "json":
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(doc); err != nil {
				FatalError("encoding document: %v", err)
			}
		case "yaml":
			data, err := yaml.Marshal(doc)
			if err != nil {
				FatalError("encoding document: %v", err)
			}
			fmt.Print(string(data))
		default:
			FatalError("unknown format %q (want json or yaml)", format)
		}
	},
}

func init() {
	exportCmd.Flags().String("format", "json", "Output format: json or yaml")
	rootCmd.AddCommand(exportCmd)
}
