package main

import (
	"os"

	"github.com/spf13/cobra"

	"helpdesk/internal/interfaces/cli/migrate"
	"helpdesk/internal/interfaces/cli/server"
	"helpdesk/internal/interfaces/cli/smartassign"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "helpdesk",
		Short: "Helpdesk - customer support ticketing service",
		Long:  `Helpdesk is a customer support ticketing service with skill-based routing, queues and LLM-assisted triage.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		smartassign.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
