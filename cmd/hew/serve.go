package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hewgo/hew/internal/config"
	"github.com/hewgo/hew/pkg/preview"
)

func serveCmd() *cobra.Command {
	var (
		port     int
		host     string
		siteDir  string
		noReload bool
		metrics  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Preview a rendered site with live reload",
		Long: `Serve a rendered site directory locally.

The server watches the site directory and refreshes connected
browsers when files change. CSS changes swap stylesheets in
place without a full reload.

Examples:
  hew serve
  hew serve --port=8080
  hew serve --site=public --no-reload`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port, host, siteDir, noReload, metrics)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from hew.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from hew.json)")
	cmd.Flags().StringVarP(&siteDir, "site", "s", "", "Site directory to serve (default from hew.json)")
	cmd.Flags().BoolVar(&noReload, "no-reload", false, "Disable live reload")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "Expose Prometheus metrics on /metrics")

	return cmd
}

func runServe(port int, host, siteDir string, noReload, metrics bool) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	if port > 0 {
		cfg.Serve.Port = port
	}
	if host != "" {
		cfg.Serve.Host = host
	}
	if siteDir != "" {
		cfg.SiteDir = siteDir
	}
	if metrics {
		cfg.Serve.Metrics = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	liveReload := !noReload
	if cfg.Serve.LiveReload != nil && !*cfg.Serve.LiveReload {
		liveReload = false
	}

	printBanner()
	fmt.Println("  serve")
	fmt.Println()

	server := preview.NewServer(preview.Options{
		SiteDir:    cfg.SiteDir,
		Host:       cfg.Serve.Host,
		Port:       cfg.Serve.Port,
		LiveReload: liveReload,
		Metrics:    cfg.Serve.Metrics,
		OnReload: func(clients int) {
			success("Reloaded %d browsers", clients)
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println("\n\n  Shutting down...")
		cancel()
	}()

	info("Serving %s at http://%s", cfg.SiteDir, server.Addr())
	if liveReload {
		info("Live reload enabled")
	}
	fmt.Println()

	return server.Start(ctx)
}
