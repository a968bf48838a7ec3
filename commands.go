package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/envelope-zero/expenses/internal/config"
	"github.com/envelope-zero/expenses/pkg/controllers"
	"github.com/envelope-zero/expenses/pkg/kv"
	"github.com/envelope-zero/expenses/pkg/kv/cache"
	"github.com/envelope-zero/expenses/pkg/kv/memory"
	"github.com/envelope-zero/expenses/pkg/kv/pebble"
	"github.com/envelope-zero/expenses/pkg/kv/sqlite"
	"github.com/envelope-zero/expenses/pkg/router"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func serveCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			store, err := openStore(*cfg)
			if err != nil {
				return err
			}
			defer closeStore(store, &err)

			co := controllers.New(store, cfg.Now, cfg.Currency)
			if cfg.SeedOnStart {
				if err := co.Seed(cmd.Context()); err != nil {
					return fmt.Errorf("seeding: %w", err)
				}
			}

			opts := router.Options{
				Version:          version,
				CORSAllowOrigins: cfg.CORSAllowOrigins,
				EnablePprof:      cfg.EnablePprof,
			}

			r, teardown, err := router.Config(cfg.APIURL, opts)
			if err != nil {
				return err
			}
			defer teardown()
			router.AttachRoutes(co, r.Group(cfg.APIURL.Path), opts)

			return listen(cmd.Context(), &http.Server{
				Addr:              ":" + strconv.Itoa(cfg.Port),
				Handler:           r,
				ReadHeaderTimeout: 5 * time.Second,
			})
		},
	}
}

// listen serves until ctx is cancelled and then shuts the server down.
func listen(ctx context.Context, srv *http.Server) error {
	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func seedCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Store the sample data if no categories or expenses exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			store, err := openStore(*cfg)
			if err != nil {
				return err
			}
			defer closeStore(store, &err)

			if err := controllers.New(store, cfg.Now, cfg.Currency).Seed(cmd.Context()); err != nil {
				return err
			}

			log.Info().Msg("Seeded")
			return nil
		},
	}
}

func repairCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "repair",
		Short: "Rebuild the indexes from the stored records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			store, err := openStore(*cfg)
			if err != nil {
				return err
			}
			defer closeStore(store, &err)

			reports, err := controllers.New(store, cfg.Now, cfg.Currency).Repair(cmd.Context())
			if err != nil {
				return err
			}

			for _, r := range reports {
				if !r.Changed() {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: index is consistent\n", r.Entity)
					continue
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s: removed %v, added %v, dropped %d duplicates\n", r.Entity, r.Removed, r.Added, r.Duplicates)
			}
			return nil
		},
	}
}

// openStore opens the configured backend and wraps it in the read cache.
func openStore(cfg config.Config) (kv.Store, error) {
	var (
		store kv.Store
		err   error
	)

	switch cfg.StoreBackend {
	case config.BackendPebble:
		store, err = pebble.Open(cfg.StorePath)
	case config.BackendSQLite:
		if err = os.MkdirAll(filepath.Dir(cfg.StorePath), os.ModePerm); err == nil {
			store, err = sqlite.Open(cfg.StorePath)
		}
	case config.BackendMemory:
		store = memory.New()
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}

	if err != nil {
		return nil, fmt.Errorf("opening %s store: %w", cfg.StoreBackend, err)
	}
	log.Debug().Str("backend", cfg.StoreBackend).Str("path", cfg.StorePath).Msg("Store")

	if cfg.CacheSize == 0 {
		return store, nil
	}

	cached, err := cache.New(store, cfg.CacheSize)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return cached, nil
}
