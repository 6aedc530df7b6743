package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rpupo63/portfolio-backend/api"
	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/services"
)

func newServeCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long:  "Load the catalog, then serve the localized project API until SIGINT or SIGTERM",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadStore(cfg.CatalogFile)
			if err != nil {
				return err
			}
			log.Info().Int("projects", store.Len()).Str("source", catalogSource(cfg.CatalogFile)).Msg("Catalog loaded")

			profile, err := loadProfile(cfg.ProfileFile)
			if err != nil {
				return err
			}

			sender, err := newContactSender(*cfg)
			if err != nil {
				return err
			}

			server, err := api.NewServer(*cfg, store, profile, sender)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			g, gctx := errgroup.WithContext(ctx)
			g.Go(server.Start)
			g.Go(func() error {
				<-gctx.Done()
				return server.ShutdownGracefully(cfg.ShutdownTimeout())
			})
			return g.Wait()
		},
	}
}

// newContactSender uses Resend when it is configured and logs messages otherwise
func newContactSender(cfg config.Config) (services.ContactSender, error) {
	if !cfg.Contact.ResendEnabled() {
		log.Warn().Msg("Resend is not configured, contact messages will only be logged")
		return services.NewLogSender(log.Logger), nil
	}
	return services.NewResendSender(services.ResendConfig{
		APIKey:     cfg.Contact.ResendAPIKey,
		From:       cfg.Contact.FromEmail,
		Recipients: cfg.Contact.Recipients,
		Timeout:    cfg.Contact.Timeout(),
		MaxRetries: cfg.Contact.MaxRetries,
	}, log.Logger)
}

func catalogSource(file string) string {
	if file == "" {
		return "embedded"
	}
	return file
}
