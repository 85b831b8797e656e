package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nexthire/auth-service/internal/infrastructure/security"
)

// NewHashCmd prints a bcrypt hash, e.g. for inserting an account by hand.
func NewHashCmd() *cobra.Command {
	var cost int

	cmd := &cobra.Command{
		Use:   "hash <password>",
		Short: "Print the bcrypt hash of a password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := security.NewBcryptHasher(cost).Hash(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), h)
			return err
		},
	}

	cmd.Flags().IntVar(&cost, "cost", security.DefaultBcryptCost, "bcrypt cost factor")
	return cmd
}
