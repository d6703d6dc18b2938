package parser

import (
	"math"
	"strings"
	"testing"

	"dhtview/internal/model"
)

const sampleLine = "23.50,45.00,24.10,16.80,9.80,0.00850,8.60,1123.00,2450.00,18.20,24.90,52.30"

func TestParseReading_Valid(t *testing.T) {
	got, err := ParseReading(sampleLine)
	if err != nil {
		t.Fatalf("ParseReading() error = %v, want nil", err)
	}

	want := [model.ReadingFields]float64{23.50, 45.00, 24.10, 16.80, 9.80, 0.00850, 8.60, 1123.00, 2450.00, 18.20, 24.90, 52.30}
	if got.Values() != want {
		t.Errorf("Values() = %v, want %v", got.Values(), want)
	}
	if got.Temperature != 23.50 {
		t.Errorf("Temperature = %v, want 23.50", got.Temperature)
	}
	if got.Enthalpy != 52.30 {
		t.Errorf("Enthalpy = %v, want 52.30", got.Enthalpy)
	}
}

func TestParseReading_Whitespace(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "trailing CRLF", line: sampleLine + "\r\n"},
		{name: "spaces around tokens", line: strings.ReplaceAll(sampleLine, ",", " , ")},
		{name: "leading spaces", line: "   " + sampleLine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReading(tt.line)
			if err != nil {
				t.Fatalf("ParseReading(%q) error = %v, want nil", tt.line, err)
			}
			if got.Humidity != 45.00 {
				t.Errorf("Humidity = %v, want 45.00", got.Humidity)
			}
		})
	}
}

func TestParseReading_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr string
	}{
		{name: "two fields", line: "abc,45.00", wantErr: "expected 12 fields, got 2"},
		{name: "eleven fields", line: "1,2,3,4,5,6,7,8,9,10,11", wantErr: "expected 12 fields, got 11"},
		{name: "thirteen fields", line: "1,2,3,4,5,6,7,8,9,10,11,12,13", wantErr: "expected 12 fields, got 13"},
		{name: "non numeric", line: "1,2,3,x,5,6,7,8,9,10,11,12", wantErr: "invalid dew_point"},
		{name: "empty token", line: "1,2,3,4,5,6,7,8,9,10,11,", wantErr: "invalid enthalpy"},
		{name: "empty line", line: "", wantErr: "expected 12 fields, got 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReading(tt.line)
			if err == nil {
				t.Fatalf("ParseReading(%q) error = nil, want non-nil", tt.line)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
			if got != (model.Reading{}) {
				t.Errorf("reading = %+v, want zero value", got)
			}
		})
	}
}

func TestParseReading_FailedRead(t *testing.T) {
	got, err := ParseReading(FailedReadLine())
	if err != nil {
		t.Fatalf("ParseReading(nan line) error = %v, want nil", err)
	}
	for i, v := range got.Values() {
		if !math.IsNaN(v) {
			t.Errorf("field %d = %v, want NaN", i, v)
		}
	}
}

func TestEncodeReading(t *testing.T) {
	r, err := ParseReading(sampleLine)
	if err != nil {
		t.Fatalf("ParseReading() error = %v", err)
	}
	if got := EncodeReading(r); got != sampleLine {
		t.Errorf("EncodeReading() = %q, want %q", got, sampleLine)
	}
}
