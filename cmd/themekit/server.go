// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/thatcatcamp/themekit/internal/config"
	"github.com/thatcatcamp/themekit/internal/db"
	"github.com/thatcatcamp/themekit/internal/handlers"
	"github.com/thatcatcamp/themekit/internal/middleware"
	"github.com/thatcatcamp/themekit/internal/sessions"
	"github.com/thatcatcamp/themekit/internal/themes"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server operations",
	Long:  "Start the themekit HTTP server",
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fail("%v", err)
		}

		logger, err := config.NewLogger()
		if err != nil {
			fail("%v", err)
		}
		defer logger.Sync()

		port := config.GetString("server.http_port")
		if p, _ := cmd.Flags().GetString("port"); p != "" {
			port = p
		}
		if !config.GetBool("log.development") {
			gin.SetMode(gin.ReleaseMode)
		}
		if maxAge := config.GetInt("server.cookie_max_age"); maxAge > 0 {
			middleware.CookieMaxAge = maxAge
		}

		store := sessions.NewStore(db.GetDB())

		// Purge idle sessions in the background
		scheduler := sessions.NewScheduler(store, config.GetDuration("server.session_ttl"), logger)
		schedulerDone := scheduler.Start()

		r := handlers.NewRouter(handlers.RouterConfig{
			Catalog:           themes.Default(),
			Store:             store,
			Defaults:          config.ThemeDefaults(),
			Logger:            logger,
			RateLimit:         config.GetInt("server.rate_limit"),
			CSRF:              config.GetBool("server.csrf_protection"),
			HSTS:              config.GetBool("server.hsts"),
			BlockedIPs:        config.GetStringSlice("server.blocked_ips"),
			MetricsAllowedIPs: config.GetStringSlice("server.metrics_allowed_ips"),
			TrustedProxies:    config.GetStringSlice("server.trusted_proxies"),
			Ping:              db.Ping,
		})

		httpAddr := fmt.Sprintf(":%s", port)
		server := &http.Server{
			Addr:         httpAddr,
			Handler:      r,
			ReadTimeout:  config.GetDuration("server.read_timeout"),
			WriteTimeout: config.GetDuration("server.write_timeout"),
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		serveErr := make(chan error, 1)
		go func() {
			logger.Info("starting HTTP server", zap.String("addr", httpAddr))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serveErr <- err
			}
			close(serveErr)
		}()

		select {
		case err := <-serveErr:
			if err != nil {
				scheduler.Stop()
				fail("server error: %v", err)
			}
		case <-ctx.Done():
			logger.Info("shutting down")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", zap.Error(err))
		}

		scheduler.Stop()
		<-schedulerDone
	},
}

// initSystemDB loads the config and opens the session database
func initSystemDB() error {
	if err := initConfig(); err != nil {
		return err
	}

	dbType := config.GetString("database.type")
	dbPath := config.GetString("database.path")
	if dbType == "sqlite" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	return db.InitDB(dbType, dbPath)
}

func init() {
	serverStartCmd.Flags().String("port", "", "HTTP port (overrides server.http_port)")
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)
}
