package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/steveyegge/wbs/internal/config"
	"github.com/steveyegge/wbs/internal/storage/sqlite"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a .wbs directory and action log in the current directory",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		wbsDir := ".wbs"
		if err := os.MkdirAll(wbsDir, 0o755); err != nil {
			FatalError("creating %s: %v", wbsDir, err)
		}

		configPath := filepath.Join(wbsDir, "config.yaml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			cfg := map[string]interface{}{"actor": config.GetString("actor")}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				FatalError("encoding config: %v", err)
			}
			if err := os.WriteFile(configPath, data, 0o644); err != nil {
				FatalError("writing %s: %v", configPath, err)
			}
		}

		dbPath := filepath.Join(wbsDir, "wbs.db")
		store, err := sqlite.New(context.Background(), dbPath)
		if err != nil {
			FatalError("creating database: %v", err)
		}
		if err := store.Close(); err != nil {
			FatalError("closing database: %v", err)
		}

		if jsonOutput() {
			outputJSON(map[string]string{"config": configPath, "database": dbPath})
			return
		}
		fmt.Printf("Initialized wbs in %s\n", wbsDir)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
