package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dental-clinical-records/internal/adapters/llm/openai"
	pg "dental-clinical-records/internal/adapters/storage/postgres"
	"dental-clinical-records/internal/config"
	"dental-clinical-records/internal/domain/followup"
	"dental-clinical-records/internal/platform/logger"
	"dental-clinical-records/internal/router"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "api",
		Short:         "Dental clinical records API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return runServer(cfg)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cfg.UsesPostgres() {
				return errors.New("DATABASE_URL is required to run migrations")
			}

			db, err := pg.Open(cfg.DatabaseURL, pg.PoolOptions{
				MaxOpenConns: cfg.DBMaxOpenConns,
				MaxIdleConns: cfg.DBMaxIdleConns,
			})
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}
			defer db.Close()

			count, err := pg.Migrate(cmd.Context(), db)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
}

func runServer(cfg *config.Config) error {
	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	// Storage: Postgres si hay DSN, si no in-memory (el router decide con DB == nil).
	var db *sql.DB
	if cfg.UsesPostgres() {
		opened, err := pg.Open(cfg.DatabaseURL, pg.PoolOptions{
			MaxOpenConns: cfg.DBMaxOpenConns,
			MaxIdleConns: cfg.DBMaxIdleConns,
		})
		if err != nil {
			log.Error().Err(err).Msg("failed to connect to database")
			return err
		}
		defer opened.Close()
		db = opened
		log.Info().Msg("connected to database")

		if cfg.AutoMigrate {
			n, err := pg.Migrate(context.Background(), db)
			if err != nil {
				log.Error().Err(err).Msg("migration failed")
				return err
			}
			log.Info().Int("applied", n).Msg("migrations up to date")
		}
	} else {
		log.Warn().Msg("DATABASE_URL not set, using in-memory storage")
	}

	tg := textGenerator(cfg, log)

	srv := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: router.NewRouter(router.Options{
			DB:            db,
			Logger:        log,
			TextGenerator: tg,
			CORSOrigins:   cfg.CORSOrigins,
		}),
		ReadTimeout: 5 * time.Second,
		// El análisis de riesgo espera al LLM.
		WriteTimeout: cfg.LLMTimeout + 10*time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err, ok := <-errCh:
		if ok {
			log.Error().Err(err).Msg("server error")
			return err
		}
		return nil
	case <-quit:
	}

	log.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}

// textGenerator devuelve nil (interfaz nil, no puntero nil) cuando no hay
// credencial: el generador queda deshabilitado para toda la vida del proceso.
func textGenerator(cfg *config.Config, log zerolog.Logger) followup.TextGenerator {
	client, err := openai.NewClient(openai.Config{
		APIKey:      cfg.LLMAPIKey,
		BaseURL:     cfg.LLMBaseURL,
		Model:       cfg.LLMModel,
		Temperature: cfg.LLMTemperature,
		Timeout:     cfg.LLMTimeout,
	}, log)
	if err != nil {
		log.Warn().Err(err).Msg("risk analysis disabled")
		return nil
	}
	log.Info().Str("model", cfg.LLMModel).Msg("risk analysis enabled")
	return client
}
