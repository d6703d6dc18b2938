package device

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"dhtview/internal/model"
	"dhtview/internal/parser"
	"dhtview/internal/sensor"
)

// ArduinoDevice represents a serial-connected Arduino running the DHT11 sketch.
type ArduinoDevice struct {
	Device  string
	Baud    int
	Timeout time.Duration
	Serial  Device
}

// NewArduinoDevice creates a new Arduino device handler.
func NewArduinoDevice(device string, baud int) *ArduinoDevice {
	return &ArduinoDevice{Device: device, Baud: baud, Timeout: DefaultReadTimeout}
}

// --- Implementation of Device interface ---

// Open initializes the Arduino serial connection.
func (arduino *ArduinoDevice) Open() error {
	if arduino.Serial != nil {
		return nil
	}
	serialDevice, err := NewSerialDevice(arduino.Device, arduino.Baud, arduino.Timeout)
	if err != nil {
		return fmt.Errorf("open arduino serial failed: %w", err)
	}
	arduino.Serial = serialDevice
	return nil
}

// Close terminates the serial connection safely.
func (arduino *ArduinoDevice) Close() error {
	if arduino.Serial == nil {
		return nil
	}
	err := arduino.Serial.Close()
	arduino.Serial = nil
	return err
}

// ReadLine reads a single line of data from the Arduino.
func (arduino *ArduinoDevice) ReadLine() (string, error) {
	if arduino.Serial == nil {
		return "", errors.New("arduino serial not open")
	}
	return arduino.Serial.ReadLine()
}

// WriteLine writes a line to the Arduino.
func (arduino *ArduinoDevice) WriteLine(line string) error {
	if arduino.Serial == nil {
		return errors.New("arduino serial not open")
	}
	return arduino.Serial.WriteLine(line)
}

// --- Simulation ---

// Simulator produces the lines the sketch would print for a scenario.
type Simulator struct {
	sc  model.Scenario
	rng *rand.Rand
	n   int
}

// NewSimulator creates a Simulator. A zero seed is replaced by the clock.
func NewSimulator(sc model.Scenario) *Simulator {
	seed := sc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Simulator{sc: sc, rng: rand.New(rand.NewSource(seed))}
}

// Next returns the next line without its terminator.
func (s *Simulator) Next() string {
	s.n++
	if s.sc.FailEvery > 0 && s.n%s.sc.FailEvery == 0 {
		return parser.FailedReadLine()
	}

	temp := s.sc.Base.Temperature + (s.rng.Float64()*2-1)*s.sc.Jitter.Temperature
	hum := s.sc.Base.Humidity + (s.rng.Float64()*2-1)*s.sc.Jitter.Humidity
	hum = min(max(hum, 0), 100)
	line := parser.EncodeReading(sensor.Derive(temp, hum))

	if s.sc.GarbleEvery > 0 && s.n%s.sc.GarbleEvery == 0 {
		return line[:len(line)/2]
	}
	return line
}

// StartSimulation writes simulated sketch output to the Arduino's serial
// device until ctx is done.
func (arduino *ArduinoDevice) StartSimulation(ctx context.Context, sc model.Scenario) error {
	if err := arduino.Open(); err != nil {
		return err
	}
	defer func() {
		if err := arduino.Close(); err != nil {
			slog.Warn("failed to close arduino device", "device", arduino.Device, "err", err)
		}
	}()

	slog.Info("simulator started", "device", arduino.Device, "baud", arduino.Baud, "interval_ms", sc.IntervalMs)

	sim := NewSimulator(sc)
	ticker := time.NewTicker(time.Duration(sc.IntervalMs) * time.Millisecond)
	defer ticker.Stop()

	for {
		line := sim.Next()
		if err := arduino.WriteLine(line); err != nil {
			slog.Error("simulate write error", "device", arduino.Device, "err", err)
		} else {
			slog.Debug("simulate write", "device", arduino.Device, "line", line)
		}

		select {
		case <-ctx.Done():
			slog.Info("simulation stopped", "device", arduino.Device)
			return nil
		case <-ticker.C:
		}
	}
}
