package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information - will be set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "waypost",
		Short: "Collection+JSON hypermedia tooling",
		Long: `Waypost inspects route tables and resolves hypermedia transitions,
printing the links, queries, and templates a Collection+JSON API would emit.`,
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(routesCmd)
	rootCmd.AddCommand(resolveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
