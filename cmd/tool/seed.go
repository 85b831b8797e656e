package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nexthire/auth-service/internal/config"
	"github.com/nexthire/auth-service/internal/infrastructure/db/postgres"
	"github.com/nexthire/auth-service/internal/infrastructure/security"
	"github.com/nexthire/auth-service/internal/logger"
)

const defaultSeedTimeout = 30 * time.Second

type seedConfig struct {
	dsn     string
	cost    int
	timeout time.Duration
}

// NewSeedCmd creates the seed subcommand.
func NewSeedCmd() *cobra.Command {
	cfg := &seedConfig{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert the development accounts into Postgres",
		Long: `Creates one job-seeker and one recruiter account.
Existing accounts are left alone, so the command can be re-run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.dsn, "dsn", os.Getenv("DB_ADDR"), "postgres DSN (defaults to DB_ADDR)")
	cmd.Flags().IntVar(&cfg.cost, "cost", security.DefaultBcryptCost, "bcrypt cost factor")
	cmd.Flags().DurationVar(&cfg.timeout, "timeout", defaultSeedTimeout, "timeout for database operations")
	return cmd
}

func runSeed(cmd *cobra.Command, cfg *seedConfig) error {
	if cfg.dsn == "" {
		return errors.New("DB_ADDR (or --dsn) is required")
	}

	logger.Init()

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.timeout)
	defer cancel()

	db, err := config.NewDB(cfg.dsn, false, logger.Logger)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := postgres.EnsureSchema(ctx, db); err != nil {
		return err
	}

	n := postgres.SeedUsers(ctx, postgres.NewUserRepo(db), security.NewBcryptHasher(cfg.cost), postgres.DevSeeds, logger.Logger)
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "seeded %d user(s)\n", n)
	return err
}
