package main

import (
	"arctic-chronicler/internal/catalog"

	"github.com/spf13/cobra"
)

var catalogPath string

var rootCmd = &cobra.Command{
	Use:   "chronicler",
	Short: "Arctic expedition simulator",
	Long: `Chronicler serves the Arctic expedition API and offers offline tools
for the mission content: ask the assistant a question or check an answer
without starting the server.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "path to a content YAML file (defaults to the bundled content)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(checkCmd)
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Load()
	}
	return catalog.LoadFile(path)
}
