package main

import (
	"fmt"
	"os"

	"github.com/joestump/worklog/internal/build"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "worklog",
		Short:   "A single-user work journal API",
		Long:    "Worklog stores short tagged notes behind a bearer-token JSON API.",
		Version: build.String(),
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newTokenCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
