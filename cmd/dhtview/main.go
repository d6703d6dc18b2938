// DHT11 viewer: asks for a serial port and baud rate, then redraws a live
// dashboard from the Arduino's CSV lines until interrupted.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"dhtview/internal/config"
	"dhtview/internal/core"
	"dhtview/internal/dashboard"
	"dhtview/internal/util"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}

	logger, logCloser, err := util.NewLogger(cfg, version, "dhtview")
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		return 1
	}
	defer logCloser.Close()
	slog.SetDefault(logger)

	sys := core.NewSystem(os.Stdin, os.Stdout, dashboard.NewRenderer(os.Stdout))
	if err := sys.Setup(); err != nil {
		// the prompter already printed the no-ports message
		if !errors.Is(err, core.ErrNoPorts) {
			fmt.Fprintln(os.Stderr, err)
		}
		slog.Error("setup failed", "err", err)
		return 1
	}
	defer func() {
		if cerr := sys.Close(); cerr != nil {
			slog.Warn("close serial failed", "port", sys.Port, "err", cerr)
		}
	}()

	// graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := sys.Viewer(core.Options{}).Run(ctx); err != nil {
		slog.Error("viewer stopped", "err", err)
		return 1
	}
	return 0
}
