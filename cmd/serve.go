package cmd

import (
	"context"
	"errors"

	"collection-manager/core/index"
	"collection-manager/core/loader"
	"collection-manager/core/logger"
	"collection-manager/core/middleware/auth"
	"collection-manager/core/middleware/rayid"
	"collection-manager/core/server"
	"collection-manager/feature/collection"
	"collection-manager/feature/lookup"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd runs the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the collection manager server",
	Long:  `Starts the HTTP server exposing card lookup and collection aggregation.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := bootstrap()
		if err != nil {
			return err
		}
		logg := s.log
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// The database only backs stored collections, so the API still starts without it.
		var store *collection.Store
		if st, err := s.openStore(); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			store = st
			logg.Info("Connected to collection database", zap.String("driver", s.cfg.Database.Driver))
		}

		src, err := s.catalogSource()
		if err != nil {
			return err
		}
		provider := index.Cached(index.NewCache(s.cfg.Catalog.CacheTTL()), src)
		if _, err := provider.Index(cmd.Context()); err != nil {
			return err
		}
		logg.Info("Catalog loaded", zap.String("source", src.Key()))

		tables := s.cfg.ResolverTables()
		mgr := loader.NewManager(logg)
		mgr.Register(lookup.NewFeature(provider, tables, logg))
		mgr.Register(collection.NewFeature(collection.NewService(provider, tables, store, logg, s.cfg.Collection)))

		app := server.NewApp(s.cfg.Server)

		app.Use(rayid.New())
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})

		if !s.cfg.Server.AuthEnabled() {
			logg.Warn("API key not set, requests are not authenticated")
		}
		app.Use(auth.New(auth.Config{ApiKey: s.cfg.Server.ApiKey, Skip: []string{"/health"}}))

		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		listenErr := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("address", s.cfg.Server.Address()))
			listenErr <- app.Listen(s.cfg.Server.Address())
		}()

		select {
		case err := <-listenErr:
			return err
		case <-cmd.Context().Done():
		}

		logg.Info("Shutting down server...")
		if err := app.ShutdownWithTimeout(s.cfg.Server.ShutdownTimeout()); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
