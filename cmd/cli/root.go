package main

import (
	"context"
	"fmt"
	"os"

	"itinerary-service/internal/infrastructure/config"
	"itinerary-service/internal/infrastructure/persistence"
	"itinerary-service/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:   "itinerary",
	Short: "Search flight and ferry itineraries from the command line",
	Long: `itinerary queries the schedule store directly, using the same search
engine as the HTTP service. Connection settings come from the environment
or a .env file.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// session is what every subcommand needs to talk to the schedule store
type session struct {
	cfg    *config.Config
	db     *gorm.DB
	logger *logger.ZapLogger
}

func openSession(ctx context.Context, cmd *cobra.Command) (*session, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if dsn, _ := cmd.Flags().GetString("dsn"); dsn != "" {
		cfg.PostgresDSN = dsn
	}

	level := "warn"
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = "debug"
	}

	db, err := persistence.NewPostgresDB(ctx, cfg.PostgresDSN, persistence.DefaultPostgresOptions())
	if err != nil {
		return nil, err
	}
	return &session{cfg: cfg, db: db, logger: logger.NewLogger(level)}, nil
}

func (s *session) Close() {
	s.logger.Sync()
	persistence.ClosePostgresDB(s.db)
}

func init() {
	rootCmd.PersistentFlags().String("dsn", "", "PostgreSQL DSN (overrides POSTGRES_DSN)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log search internals")
}
