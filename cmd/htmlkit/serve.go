package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/htmlkit-dev/htmlkit/pkg/web"
)

func serveCmd() *cobra.Command {
	var (
		addr string
		poll time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve [dir]",
		Short: "Preview generated output",
		Long: `Serve a directory of generated HTML with live reload.

Connected browsers are told to reload whenever a file in the directory
changes. Prometheus metrics are exposed at /metrics.

Examples:
  htmlkit serve dist
  htmlkit serve dist --addr=:8080`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runServe(dir, addr, poll)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "localhost:3000", "Listen address")
	cmd.Flags().DurationVar(&poll, "poll", 500*time.Millisecond, "Change-detection poll interval")

	return cmd
}

func runServe(dir, addr string, poll time.Duration) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	info("serving %s on http://%s", dir, addr)
	srv := web.NewPreviewServer(dir, web.WithPollInterval(poll))
	return srv.ListenAndServe(ctx, addr)
}
