// ABOUTME: CLI commands for exporting and importing deskflow data.
// ABOUTME: Supports JSON and YAML snapshots.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/deskflow/internal/storage"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:       "export <format>",
	Short:     "Export all data",
	Long:      "Export your profile and session log as json or yaml.",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		data, err := repo.GetAllData()
		if err != nil {
			return fmt.Errorf("failed to collect data: %w", err)
		}

		out, err := data.Marshal(format)
		if err != nil {
			return err
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, out, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported %d session(s) to %s", len(data.Sessions), exportOutput)
			return nil
		}

		fmt.Print(string(out))
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import data from an export file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		data, err := storage.UnmarshalExport(raw)
		if err != nil {
			return err
		}

		if err := repo.ImportData(data); err != nil {
			return fmt.Errorf("failed to import data: %w", err)
		}

		color.Green("✓ Imported %d session(s)", len(data.Sessions))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
