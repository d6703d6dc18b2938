// DHT11 sketch simulator: writes the lines the Arduino would print into a
// serial device. Use this for local testing when you don't have the board.
//
// With -socat it first creates a virtual serial pair and writes into the left
// link; point the viewer at the right one.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"dhtview/internal/config"
	"dhtview/internal/device"
	"dhtview/internal/model"
	"dhtview/internal/util"
)

var version = "dev"

type flags struct {
	scenario string
	dev      string
	baud     int
	interval int
	socat    string
}

func main() {
	var f flags
	flag.StringVar(&f.scenario, "scenario", "", "optional YAML scenario file")
	flag.StringVar(&f.dev, "dev", "", "serial device to write readings into (overrides scenario)")
	flag.IntVar(&f.baud, "baud", 0, "baud rate (overrides scenario)")
	flag.IntVar(&f.interval, "interval", 0, "ms between readings (overrides scenario)")
	flag.StringVar(&f.socat, "socat", "", "create a socat pair LEFT:RIGHT and write into LEFT")
	flag.Parse()

	os.Exit(run(f))
}

func run(f flags) int {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}
	// progress lines are the simulator's only output
	cfg.LogLevel = min(cfg.LogLevel, slog.LevelInfo)
	logger, logCloser, err := util.NewLogger(cfg, version, "dhtview-sim")
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		return 1
	}
	defer logCloser.Close()
	slog.SetDefault(logger)

	sc := config.DefaultScenario()
	if f.scenario != "" {
		if sc, err = config.LoadScenario(f.scenario); err != nil {
			slog.Error("load scenario", "path", f.scenario, "err", err)
			return 1
		}
	}
	if err := applyFlags(&sc, f); err != nil {
		slog.Error("invalid flags", "err", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if sc.Socat != nil {
		socat := util.NewSocatManager()
		defer socat.Cleanup()

		waitCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := socat.CreatePair(waitCtx, sc.Socat.Left, sc.Socat.Right)
		cancel()
		if err != nil {
			slog.Error("create socat pair", "err", err)
			return 1
		}
		sc.Device = sc.Socat.Left
		slog.Info("viewer can open the right link", "port", sc.Socat.Right)
	}

	arduino := device.NewArduinoDevice(sc.Device, sc.Baud)
	if err := arduino.StartSimulation(ctx, sc); err != nil {
		slog.Error("simulation failed", "device", sc.Device, "err", err)
		return 1
	}
	return 0
}

func applyFlags(sc *model.Scenario, f flags) error {
	if f.dev != "" {
		sc.Device = f.dev
	}
	if f.baud > 0 {
		sc.Baud = f.baud
	}
	if f.interval > 0 {
		sc.IntervalMs = f.interval
	}
	if f.socat != "" {
		left, right, ok := strings.Cut(f.socat, ":")
		if !ok || left == "" || right == "" {
			return fmt.Errorf("socat pair %q must be LEFT:RIGHT", f.socat)
		}
		sc.Socat = &model.SocatPair{Left: left, Right: right}
	}
	return nil
}
