package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Bassir-Elhoussein/gymapp/internal/interfaces/cli/migrate"
	"github.com/Bassir-Elhoussein/gymapp/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gymapp",
		Short: "Gymapp - gym membership and access management",
		Long:  `Gymapp manages gym clients, subscription plans, payments, and fingerprint-based door access, with built-in server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
