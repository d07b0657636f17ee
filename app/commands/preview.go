package commands

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lysyi3m/ai-digest/app/api"
	"github.com/lysyi3m/ai-digest/app/cfg"
)

type PreviewCommand struct {
	File string `long:"file" required:"true" description:"Markdown digest to preview"`
	Port string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
}

func (c *PreviewCommand) Execute(args []string) error {
	if _, err := os.Stat(c.File); err != nil {
		return fmt.Errorf("failed to open digest file: %w", err)
	}

	handler := api.NewHandler(c.File, cfg.Get().Version)

	httpServer := &http.Server{
		Addr:         ":" + c.Port,
		Handler:      api.NewServer(handler),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Preview server started", "url", fmt.Sprintf("http://localhost:%s/", c.Port), "file", c.File)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig)
	case err := <-serverErrChan:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown error: %w", err)
	}

	slog.Info("Preview server stopped")
	return nil
}
