package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sevendesk/helpdesk/internal/interfaces/cli/migrate"
	"github.com/sevendesk/helpdesk/internal/interfaces/cli/seed"
	"github.com/sevendesk/helpdesk/internal/interfaces/cli/server"
	"github.com/sevendesk/helpdesk/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "helpdesk",
		Short:   "Helpdesk API",
		Long:    `Helpdesk API server with ticketing, live event streams, migration and seed tools.`,
		Version: version.Version,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
