package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/qLib/core/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show and validate the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := loadStore()
		if err != nil {
			printError("cannot load configuration", err)
			return err
		}

		source := store.FilePath()
		if source == "" {
			source = "(built-in defaults)"
		}
		fmt.Printf("Configuration source: %s\n\n", source)

		for _, key := range store.Keys() {
			fmt.Printf("  %-32s = %s\n", key, store.GetString(key))
		}

		result := store.Validate(config.DefaultRules())
		fmt.Println()
		if result.Valid {
			fmt.Println("Validation: OK")
			return nil
		}
		fmt.Println("Validation: FAILED")
		for _, msg := range result.Errors {
			fmt.Printf("  - %s\n", msg)
		}
		return fmt.Errorf("configuration validation failed")
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
