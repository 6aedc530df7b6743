package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rpupo63/portfolio-backend/catalog"
	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/models"
)

// Execute runs the root command
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var (
		envFile string
		cfg     config.Config
	)

	rootCmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Bilingual portfolio catalog service",
		Long: `portfolio serves the project catalog of a bilingual (English/Arabic) portfolio site.
It exposes localized project listings, SEO metadata and a contact endpoint over HTTP,
and can validate or inspect the catalog from the command line.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(envFile)
			if err != nil {
				return err
			}
			cfg = loaded
			setupLogging(cfg)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to an optional .env file")

	// Add all commands
	rootCmd.AddCommand(newServeCmd(&cfg))
	rootCmd.AddCommand(newValidateCmd(&cfg))
	rootCmd.AddCommand(newProjectsCmd(&cfg))
	rootCmd.AddCommand(newProfileCmd(&cfg))

	return rootCmd
}

// setupLogging configures the global zerolog logger from LOG_LEVEL and LOG_FORMAT
func setupLogging(cfg config.Config) {
	zerolog.SetGlobalLevel(cfg.Level())
	zerolog.TimeFieldFormat = time.RFC3339

	if cfg.JSONLogs() {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}

// loadProfile returns the owner profile from file when one is given, or the
// embedded profile otherwise.
func loadProfile(file string) (models.Profile, error) {
	if file == "" {
		return catalog.DefaultProfile(), nil
	}
	profile, err := catalog.LoadProfileFile(file)
	if err != nil {
		return models.Profile{}, fmt.Errorf("load profile: %w", err)
	}
	return profile, nil
}

// loadStore returns the catalog from file when one is given, or the embedded
// catalog otherwise.
func loadStore(file string) (*catalog.Store, error) {
	if file == "" {
		return catalog.Default(), nil
	}
	store, err := catalog.LoadFile(file)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return store, nil
}
