package main

import (
	"fmt"
	"os"

	_ "arctic-chronicler/cmd/chronicler/docs"
)

// @title Arctic Chronicler API
// @version 1.0
// @description Educational Arctic expedition simulator: role missions over climate data, an assistant that answers by keyword, and a climate timeline.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
