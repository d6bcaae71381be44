package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/echoslam/gsi"
	"github.com/echoslam/gsi/config"
	"github.com/echoslam/gsi/dispatch"
	"github.com/echoslam/gsi/gamestate"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var (
		addr        string
		metricsAddr string
		maxBody     int
		raw         bool
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Listen for game state snapshots and echo them",
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)

			cfg := config.Default()
			cfg.Body.MaxSize = maxBody

			if metricsAddr != "" {
				registry := prometheus.NewRegistry()
				cfg.Metrics.Registry = registry

				go func() {
					mux := http.NewServeMux()
					mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

					if err := http.ListenAndServe(metricsAddr, mux); err != nil {
						logger.Error("metrics endpoint failed", "err", err)
					}
				}()
			}

			var handler dispatch.Handler = dispatch.Typed(echo)
			if raw {
				handler = dispatch.Func(echoRaw)
			}

			return gsi.New(addr).
				Tune(cfg).
				Log(logger).
				Register(handler).
				Run()
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "127.0.0.1:3000", "Address to listen on; must match the uri in the game's cfg file")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Expose prometheus metrics on this address (disabled when empty)")
	cmd.Flags().IntVar(&maxBody, "max-body", config.Default().Body.MaxSize, "Largest accepted snapshot, in bytes")
	cmd.Flags().BoolVarP(&raw, "raw", "r", false, "Echo raw JSON events as received, without decoding")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

// echoRaw prints the snapshot exactly as the game sent it.
func echoRaw(event []byte) {
	fmt.Println(string(event))
}

func echo(state gamestate.GameState) {
	attrs := make([]any, 0, 8)

	if state.Provider != nil {
		attrs = append(attrs, "game", state.Provider.Name)
	}
	if state.Map != nil {
		attrs = append(attrs, "state", state.Map.GameState, "clock", state.Map.ClockTime)
	}
	if state.Hero != nil {
		attrs = append(attrs, "hero", state.Hero.Name, "level", state.Hero.Level)
	}
	if state.Player != nil {
		attrs = append(attrs, "kda", [3]int{state.Player.Kills, state.Player.Deaths, state.Player.Assists})
	}

	slog.Info("snapshot", attrs...)
}
