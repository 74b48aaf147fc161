package main

import (
	"fmt"
	"strings"

	"arctic-chronicler/internal/domain"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the expedition assistant a question",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(catalogPath)
		if err != nil {
			return err
		}
		reply := domain.Respond(strings.Join(args, " "), cat.Keywords(), cat.Fallback())
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", cat.AssistantName(), reply)
		return nil
	},
}
