package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/go-drift/inplace/cmd/inplace/internal/config"
	"github.com/go-drift/inplace/cmd/inplace/internal/demo"
	inerrors "github.com/go-drift/inplace/pkg/errors"
	"github.com/go-drift/inplace/pkg/metrics"
	"github.com/go-drift/inplace/pkg/terminal"
)

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the interactive terminal demo",
		Long: `Runs a small form in the terminal: a name input bound to the greeting
below it and a color list that flashes the current choice.

Tab moves focus, arrow keys pick a color, Esc quits.`,
		Args: cobra.NoArgs,
		RunE: runDemo,
	}
	cmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on host:port (overrides metrics.addr)")
	cmd.Flags().String("log", "", "Write debug logs to this file")
	return cmd
}

func runDemo(cmd *cobra.Command, _ []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	cfg, err := config.Resolve(dir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if addr, _ := cmd.Flags().GetString("metrics-addr"); addr != "" {
		cfg.MetricsAddr = addr
	}

	logPath, _ := cmd.Flags().GetString("log")
	logger, closeLog, err := openLog(logPath)
	if err != nil {
		return err
	}
	defer closeLog()
	inerrors.SetHandler(&inerrors.LogHandler{Logger: logger, Verbose: true})
	defer inerrors.SetHandler(nil)

	if accent := tcell.GetColor(cfg.Accent); accent != tcell.ColorDefault {
		terminal.Accent = accent
	}

	collector := metrics.New("inplace")
	reg := prometheus.NewRegistry()
	reg.MustRegister(collector)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.MetricsAddr != "" {
		_, shutdown, err := serveMetrics(cfg.MetricsAddr, reg, logger)
		if err != nil {
			return err
		}
		defer shutdown()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	app := terminal.NewApp(screen, demo.New(cfg.Title, cfg.Padding).Render,
		terminal.WithLogger(logger),
		terminal.WithHooks(collector.Hooks()),
	)
	return app.Run(ctx)
}

// openLog returns a debug logger writing to path, or a discarding logger when
// path is empty. The terminal owns stdout while the demo runs.
func openLog(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { f.Close() }, nil
}

// serveMetrics starts the metrics endpoint in the background. It returns the
// bound address and a function that shuts the server down.
func serveMetrics(addr string, g prometheus.Gatherer, logger *slog.Logger) (string, func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return "", nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(g))
	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("serving metrics", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "error", err)
		}
	}()

	return ln.Addr().String(), func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("metrics server shutdown", "error", err)
			srv.Close()
		}
	}, nil
}
