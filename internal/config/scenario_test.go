package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write scenario: %v", err)
	}
	return path
}

func TestLoadScenario_Empty(t *testing.T) {
	got, err := LoadScenario("")
	if err != nil {
		t.Fatalf("LoadScenario(\"\") error = %v", err)
	}
	if got != DefaultScenario() {
		t.Errorf("LoadScenario(\"\") = %+v, want defaults", got)
	}
}

func TestLoadScenario_Overrides(t *testing.T) {
	path := writeScenario(t, `
device: /dev/pts/7
interval_ms: 500
seed: 99
base:
  temperature: 30
jitter:
  humidity: 10
fail_every: 5
socat:
  left: /tmp/ttyA
  right: /tmp/ttyB
`)

	got, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("LoadScenario() error = %v", err)
	}
	if got.Device != "/dev/pts/7" || got.IntervalMs != 500 || got.Seed != 99 || got.FailEvery != 5 {
		t.Errorf("scenario = %+v", got)
	}
	if got.Baud != 9600 {
		t.Errorf("Baud = %d, want default 9600", got.Baud)
	}
	if got.Base.Temperature != 30 || got.Base.Humidity != 45 {
		t.Errorf("Base = %+v, want temperature override and default humidity", got.Base)
	}
	if got.Jitter.Humidity != 10 || got.Jitter.Temperature != 0.5 {
		t.Errorf("Jitter = %+v", got.Jitter)
	}
	if got.Socat == nil || got.Socat.Left != "/tmp/ttyA" || got.Socat.Right != "/tmp/ttyB" {
		t.Errorf("Socat = %+v", got.Socat)
	}
}

func TestLoadScenario_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "bad yaml", body: "baud: [", wantErr: "parse scenario"},
		{name: "zero baud", body: "baud: 0", wantErr: "baud must be positive"},
		{name: "negative interval", body: "interval_ms: -1", wantErr: "interval_ms must be positive"},
		{name: "negative fail", body: "fail_every: -2", wantErr: "must not be negative"},
		{name: "half socat", body: "socat:\n  left: /tmp/a", wantErr: "both left and right"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenario(writeScenario(t, tt.body))
			if err == nil {
				t.Fatal("LoadScenario() error = nil, want non-nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}

	if _, err := LoadScenario(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("LoadScenario(missing) error = nil, want non-nil")
	}
}
