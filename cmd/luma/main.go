package main

import (
	"os"

	"github.com/spf13/cobra"

	"luma/internal/interfaces/cli/admin"
	"luma/internal/interfaces/cli/migrate"
	"luma/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "luma",
		Short: "Luma - streaming service backend",
		Long:  `Luma serves the subscription plan catalog and the local offline download store.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		admin.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
