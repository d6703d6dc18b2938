package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"dhtview/internal/model"
)

// DefaultScenario mirrors the sketch: 9600 baud, a reading every two seconds,
// indoor climate.
func DefaultScenario() model.Scenario {
	return model.Scenario{
		Device:     "/tmp/ttyDHT0",
		Baud:       9600,
		IntervalMs: 2000,
		Base:       model.Climate{Temperature: 23.5, Humidity: 45},
		Jitter:     model.Climate{Temperature: 0.5, Humidity: 2},
	}
}

// LoadScenario reads a YAML scenario. Fields left out keep their defaults.
// An empty path returns the defaults.
func LoadScenario(path string) (model.Scenario, error) {
	sc := DefaultScenario()
	if path == "" {
		return sc, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return model.Scenario{}, err
	}
	if err := yaml.Unmarshal(b, &sc); err != nil {
		return model.Scenario{}, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if err := validateScenario(sc); err != nil {
		return model.Scenario{}, fmt.Errorf("scenario %s: %w", path, err)
	}
	return sc, nil
}

func validateScenario(sc model.Scenario) error {
	switch {
	case sc.Device == "" && sc.Socat == nil:
		return fmt.Errorf("device is required")
	case sc.Baud <= 0:
		return fmt.Errorf("baud must be positive, got %d", sc.Baud)
	case sc.IntervalMs <= 0:
		return fmt.Errorf("interval_ms must be positive, got %d", sc.IntervalMs)
	case sc.FailEvery < 0 || sc.GarbleEvery < 0:
		return fmt.Errorf("fail_every and garble_every must not be negative")
	case sc.Socat != nil && (sc.Socat.Left == "" || sc.Socat.Right == ""):
		return fmt.Errorf("socat needs both left and right links")
	}
	return nil
}
