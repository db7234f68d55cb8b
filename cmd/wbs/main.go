// wbs is a command-line work breakdown structure tracker. Goals live in a
// tree, every change is an action appended to a local log, and the current
// document is rebuilt by replaying that log.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/steveyegge/wbs/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "wbs",
	Short: "Track goals in a work breakdown structure",
	Long: `wbs tracks hierarchical goals: create them, delegate them, report
progress, and let completion cascade through the tree. Every change is
recorded in a local action log.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return err
		}
		// Explicit flags override config file and environment.
		if cmd.Flags().Changed("json") {
			jsonFlag, _ := cmd.Flags().GetBool("json")
			config.Set("json", jsonFlag)
		}
		if cmd.Flags().Changed("db") {
			dbFlag, _ := cmd.Flags().GetString("db")
			config.Set("db", dbFlag)
		}
		if cmd.Flags().Changed("actor") {
			actorFlag, _ := cmd.Flags().GetString("actor")
			config.Set("actor", actorFlag)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	rootCmd.PersistentFlags().String("db", "", "Path to the action log database")
	rootCmd.PersistentFlags().String("actor", "", "Actor recorded on actions")
}

// jsonOutput reports whether machine-readable output was requested.
func jsonOutput() bool {
	return config.GetBool("json")
}

// FatalError prints an error message and exits with code 1. Honors --json.
func FatalError(format string, args ...interface{}) {
	if jsonOutput() {
		outputJSONError(fmt.Errorf(format, args...), "")
	}
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// outputJSON outputs data as pretty-printed JSON
func outputJSON(v interface{}) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
}

// outputJSONError outputs an error as JSON to stderr and exits with code 1.
// The code parameter is optional (pass "" to omit).
func outputJSONError(err error, code string) {
	errObj := map[string]string{"error": err.Error()}
	if code != "" {
		errObj["code"] = code
	}
	encoder := json.NewEncoder(os.Stderr)
	encoder.SetIndent("", "  ")
	_ = encoder.Encode(errObj)
	os.Exit(1)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
