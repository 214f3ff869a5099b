package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/raykavin/goplotly/pkg/plot"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

// Serve command flags
var (
	servePort  int
	serveDebug bool
)

func buildServeCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve [plot.json...]",
		Short: "Run the preview server, optionally preloading documents",
		RunE:  runServe,
	}

	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Listening port (default PLOTLY_PORT)")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Serve unminified scripts")

	return serveCmd
}

func runServe(cmd *cobra.Command, args []string) error {
	store, err := cfg.Preview.OpenStore()
	if err != nil {
		return err
	}
	defer store.Close()

	for _, path := range args {
		p, _, err := readPlot(path)
		if err != nil {
			return err
		}
		id, err := store.Put(p)
		if err != nil {
			return err
		}
		log.WithFields(map[string]any{"id": id, "file": path}).Info("Plot loaded")
	}

	port := cfg.Preview.Port
	if servePort > 0 {
		port = servePort
	}

	options := []plot.ServerOption{
		plot.WithPort(port),
		plot.WithCacheSize(cfg.Preview.CacheSize),
		plot.WithLogger(log),
	}
	if serveDebug {
		options = append(options, plot.WithDebug())
	}

	server, err := plot.NewPreviewServer(store, options...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errs := make(chan error, 1)
	go func() {
		errs <- server.Start()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down preview server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
