package main

import (
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the operator tool.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "authtool",
		Short:         "Operator tooling for the auth service",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.AddCommand(NewHashCmd())
	cmd.AddCommand(NewTokenCmd())
	cmd.AddCommand(NewSeedCmd())

	return cmd
}

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
