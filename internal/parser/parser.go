// Package parser converts the sketch's CSV wire format to model.Reading and back.
//
// Wire format (microcontroller -> viewer), one line per reading:
//
//	TEMP,HUM,HEAT_INDEX,DEW_POINT,ABS_HUM,SPEC_HUM,MIX_RATIO,VP,SVP,WET_BULB,HUMIDEX,ENTHALPY
//
// All values are decimal numbers. The sketch prints two decimals for every
// field except specific humidity, which gets five.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"dhtview/internal/model"
)

var fieldNames = [model.ReadingFields]string{
	"temperature", "humidity", "heat_index", "dew_point",
	"abs_humidity", "specific_humidity", "mixing_ratio", "vapor_pressure",
	"sat_vapor_pressure", "wet_bulb", "humidex", "enthalpy",
}

// ParseReading parses a CSV line into model.Reading.
// The line must hold exactly 12 float tokens; nothing is returned on error.
func ParseReading(line string) (model.Reading, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) != model.ReadingFields {
		return model.Reading{}, fmt.Errorf("expected %d fields, got %d", model.ReadingFields, len(fields))
	}

	var v [model.ReadingFields]float64
	for i, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return model.Reading{}, fmt.Errorf("invalid %s: %w", fieldNames[i], err)
		}
		v[i] = x
	}
	return model.ReadingFromValues(v), nil
}

// EncodeReading formats a Reading the way the sketch prints it.
func EncodeReading(r model.Reading) string {
	return fmt.Sprintf("%.2f,%.2f,%.2f,%.2f,%.2f,%.5f,%.2f,%.2f,%.2f,%.2f,%.2f,%.2f",
		r.Temperature, r.Humidity, r.HeatIndex, r.DewPoint,
		r.AbsHumidity, r.SpecificHumidity, r.MixingRatio, r.VaporPressure,
		r.SatVaporPressure, r.WetBulb, r.Humidex, r.Enthalpy)
}

// FailedReadLine is what the sketch sends when the DHT read returns NaN.
func FailedReadLine() string {
	return strings.TrimSuffix(strings.Repeat("nan,", model.ReadingFields), ",")
}
