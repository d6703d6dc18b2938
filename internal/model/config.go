// Package model defines the scenario structure that drives the sketch simulator.
package model

// Scenario is loaded from a YAML file given to cmd/simulation.
// Zero values are replaced by defaults in config.LoadScenario.
type Scenario struct {
	Device      string     `yaml:"device"`       // serial device to write into
	Baud        int        `yaml:"baud"`         // default 9600
	IntervalMs  int        `yaml:"interval_ms"`  // delay between lines, sketch uses 2000
	Seed        int64      `yaml:"seed"`         // 0 picks a time based seed
	Base        Climate    `yaml:"base"`         // centre of the random walk
	Jitter      Climate    `yaml:"jitter"`       // max random deviation per line
	FailEvery   int        `yaml:"fail_every"`   // every Nth line is a failed read (nan); 0 disables
	GarbleEvery int        `yaml:"garble_every"` // every Nth line is truncated; 0 disables
	Socat       *SocatPair `yaml:"socat,omitempty"`
}

// Climate is a temperature/humidity pair in °C and %RH.
type Climate struct {
	Temperature float64 `yaml:"temperature"`
	Humidity    float64 `yaml:"humidity"`
}

// SocatPair names the two PTY links created before the simulator starts.
// The simulator writes into Left; the viewer opens Right.
type SocatPair struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}
