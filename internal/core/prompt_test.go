package core

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"dhtview/internal/dashboard"
	"dhtview/internal/device"
)

func testStyles() dashboard.Styles {
	r := dashboard.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return r.Styles()
}

var testPorts = []device.PortInfo{
	{Name: "/dev/ttyACM0", Description: "Arduino Uno"},
	{Name: "/dev/ttyUSB0", Description: "n/a"},
}

func TestSelectPort(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        string
		wantInvalid int
	}{
		{name: "empty selects first", input: "\n", want: "/dev/ttyACM0"},
		{name: "explicit second", input: "2\n", want: "/dev/ttyUSB0"},
		{name: "surrounding spaces", input: "  2 \n", want: "/dev/ttyUSB0"},
		{name: "reprompts out of range", input: "0\n3\n2\n", want: "/dev/ttyUSB0", wantInvalid: 2},
		{name: "reprompts non numeric", input: "abc\n1\n", want: "/dev/ttyACM0", wantInvalid: 1},
		{name: "last line without newline", input: "2", want: "/dev/ttyUSB0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompter(strings.NewReader(tt.input), &out, testStyles())

			got, err := p.SelectPort(testPorts)
			if err != nil {
				t.Fatalf("SelectPort() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("SelectPort() = %q; want %q", got, tt.want)
			}
			if n := strings.Count(out.String(), "Invalid selection. Try again."); n != tt.wantInvalid {
				t.Errorf("invalid messages = %d; want %d", n, tt.wantInvalid)
			}
			if !strings.Contains(out.String(), "  1: /dev/ttyACM0 (Arduino Uno)") {
				t.Errorf("port list missing from output:\n%s", out.String())
			}
			if !strings.Contains(out.String(), "Select port [1-2] (default 1): ") {
				t.Errorf("prompt missing from output:\n%s", out.String())
			}
		})
	}
}

func TestSelectPort_NoPorts(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader(""), &out, testStyles())

	_, err := p.SelectPort(nil)
	if !errors.Is(err, ErrNoPorts) {
		t.Fatalf("SelectPort(nil) error = %v; want ErrNoPorts", err)
	}
	if !strings.Contains(out.String(), "No serial ports found.") {
		t.Errorf("output = %q; want no ports message", out.String())
	}
}

func TestSelectPort_InputClosed(t *testing.T) {
	p := NewPrompter(strings.NewReader("9\n"), io.Discard, testStyles())

	_, err := p.SelectPort(testPorts)
	if !errors.Is(err, io.EOF) {
		t.Fatalf("SelectPort() error = %v; want io.EOF", err)
	}
}

func TestSelectBaud(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        int
		wantInvalid bool
	}{
		{name: "empty uses default", input: "\n", want: 9600},
		{name: "closed input uses default", input: "", want: 9600},
		{name: "explicit", input: "115200\n", want: 115200},
		{name: "invalid falls back", input: "fast\n", want: 9600, wantInvalid: true},
		{name: "never reprompts", input: "fast\n57600\n", want: 9600, wantInvalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompter(strings.NewReader(tt.input), &out, testStyles())

			if got := p.SelectBaud(DefaultBaud); got != tt.want {
				t.Errorf("SelectBaud() = %d; want %d", got, tt.want)
			}
			if got := strings.Contains(out.String(), "Invalid baud rate, using default."); got != tt.wantInvalid {
				t.Errorf("invalid message shown = %v; want %v", got, tt.wantInvalid)
			}
			if n := strings.Count(out.String(), "Enter baud rate (default 9600): "); n != 1 {
				t.Errorf("prompt shown %d times; want 1", n)
			}
		})
	}
}
