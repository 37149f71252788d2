package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/philipp01105/tslog/config"
	"github.com/philipp01105/tslog/core"
	"github.com/philipp01105/tslog/handler"
	"github.com/philipp01105/tslog/handler/consolehandler"
	"github.com/philipp01105/tslog/handler/filehandler"
	"github.com/philipp01105/tslog/handler/multihandler"
	"github.com/philipp01105/tslog/logger"
	"github.com/philipp01105/tslog/metrics"
	"github.com/philipp01105/tslog/sink"
)

type runOptions struct {
	producers   int
	count       int
	category    string
	console     string
	tee         string
	metricsAddr string
	linger      time.Duration
}

func newRunCmd() *cobra.Command {
	opts := runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Log from concurrent producers, then shut the sink down",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("config")
			return runDemo(cmd, path, opts)
		},
	}
	f := cmd.Flags()
	f.IntVarP(&opts.producers, "producers", "p", 4, "number of producer goroutines")
	f.IntVarP(&opts.count, "count", "n", 1000, "entries per producer")
	f.StringVar(&opts.category, "category", "INFO", "category name or code the producers log under")
	f.StringVar(&opts.console, "console", "auto", "console mirroring: auto (only on a terminal), always or never")
	f.StringVar(&opts.tee, "tee", "", "also append the console lines to this file")
	f.StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9464")
	f.DurationVar(&opts.linger, "linger", 0, "keep the metrics endpoint up this long after the run")
	return cmd
}

// consoleEnabled resolves the --console mode against the settings
func consoleEnabled(mode string, out io.Writer, settingsDisabled bool) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		if settingsDisabled {
			return false, nil
		}
		f, ok := out.(*os.File)
		return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())), nil
	default:
		return false, fmt.Errorf("unknown console mode %q", mode)
	}
}

func runDemo(cmd *cobra.Command, configPath string, opts runOptions) error {
	if opts.producers <= 0 || opts.count < 0 {
		return fmt.Errorf("producers must be positive and count non-negative")
	}

	settings, err := config.Load(configPath)
	if err != nil {
		return err
	}
	// SinkConfig registers the custom categories --category may name
	cfg, err := settings.SinkConfig()
	if err != nil {
		return err
	}
	cat, ok := core.ParseCategory(opts.category)
	if !ok {
		return fmt.Errorf("unknown category %q", opts.category)
	}

	echo, err := consoleEnabled(opts.console, cmd.OutOrStdout(), settings.DisableConsole)
	if err != nil {
		return err
	}
	cfg.DisableConsole = !echo

	var console handler.Handler = consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer: cmd.OutOrStdout(),
	})
	if opts.tee != "" {
		tee, err := filehandler.NewFileHandler(filehandler.FileConfig{Filename: opts.tee})
		if err != nil {
			return err
		}
		console = multihandler.NewMultiHandler(console, tee)
	}
	cfg.Console = console

	s := sink.New(cfg)
	log := logger.New(s).With("tsldemo")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.metricsAddr != "" {
		srv, err := serveMetrics(opts.metricsAddr, s)
		if err != nil {
			if s.Shutdown() == nil {
				_ = console.Close()
			}
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	log.Infof("starting %d producers x %d %s entries", opts.producers, opts.count, cat)
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	for p := 0; p < opts.producers; p++ {
		p := p
		g.Go(func() error {
			for i := 0; i < opts.count; i++ {
				if err := s.LogContext(gctx, cat, fmt.Sprintf("producer=%d seq=%d", p, i)); err != nil {
					return err
				}
			}
			return nil
		})
	}
	runErr := g.Wait()

	log.Resultsf("producers=%d entries=%d elapsed=%s", opts.producers, opts.producers*opts.count, time.Since(start).Round(time.Millisecond))
	if runErr != nil {
		log.Exception(runErr)
	}

	shutdownErr := s.ShutdownContext(ctx)
	stats := s.Stats()
	fmt.Fprintf(cmd.ErrOrStderr(), "processed=%d dropped=%d filtered=%d blocked=%d write_failures=%d\n",
		stats.ProcessedTotal, stats.DroppedTotal, stats.FilteredTotal, stats.BlockedTotal, stats.WriteFailures)

	// The worker writes to console until Done; only then is the tee safe to close
	select {
	case <-s.Done():
		_ = console.Close()
	default:
	}

	if opts.metricsAddr != "" && opts.linger > 0 {
		select {
		case <-time.After(opts.linger):
		case <-ctx.Done():
		}
	}

	if runErr != nil {
		return runErr
	}
	if shutdownErr != nil && !errors.Is(shutdownErr, sink.ErrGraceExpired) {
		return shutdownErr
	}
	return nil
}

func serveMetrics(addr string, s *sink.Sink) (*http.Server, error) {
	reg := prometheus.NewRegistry()
	if _, err := metrics.Register(reg, s, prometheus.Labels{"app": "tsldemo"}); err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintln(os.Stderr, "metrics server:", err)
		}
	}()
	return srv, nil
}
