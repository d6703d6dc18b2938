// Package model defines the data shapes shared by the viewer and the simulator.
package model

// Reading is one line of sketch output: twelve values in wire order.
type Reading struct {
	Temperature      float64 `json:"temperature_c"`
	Humidity         float64 `json:"humidity_pct"`
	HeatIndex        float64 `json:"heat_index_c"`
	DewPoint         float64 `json:"dew_point_c"`
	AbsHumidity      float64 `json:"abs_humidity_gm3"`
	SpecificHumidity float64 `json:"specific_humidity"`
	MixingRatio      float64 `json:"mixing_ratio_gkg"`
	VaporPressure    float64 `json:"vapor_pressure_hpa"`
	SatVaporPressure float64 `json:"sat_vapor_pressure_hpa"`
	WetBulb          float64 `json:"wet_bulb_c"`
	Humidex          float64 `json:"humidex"`
	Enthalpy         float64 `json:"enthalpy_kjkg"`
}

// ReadingFields is the number of comma-separated values in one wire line.
const ReadingFields = 12

// Values returns the fields in wire order.
func (r Reading) Values() [ReadingFields]float64 {
	return [ReadingFields]float64{
		r.Temperature, r.Humidity, r.HeatIndex, r.DewPoint,
		r.AbsHumidity, r.SpecificHumidity, r.MixingRatio, r.VaporPressure,
		r.SatVaporPressure, r.WetBulb, r.Humidex, r.Enthalpy,
	}
}

// ReadingFromValues builds a Reading from values in wire order.
func ReadingFromValues(v [ReadingFields]float64) Reading {
	return Reading{
		Temperature:      v[0],
		Humidity:         v[1],
		HeatIndex:        v[2],
		DewPoint:         v[3],
		AbsHumidity:      v[4],
		SpecificHumidity: v[5],
		MixingRatio:      v[6],
		VaporPressure:    v[7],
		SatVaporPressure: v[8],
		WetBulb:          v[9],
		Humidex:          v[10],
		Enthalpy:         v[11],
	}
}

// LogKind selects the color a log entry is displayed in.
type LogKind int

const (
	LogPlain LogKind = iota
	LogInfo
	LogSuccess
	LogError
)

func (k LogKind) String() string {
	switch k {
	case LogInfo:
		return "info"
	case LogSuccess:
		return "success"
	case LogError:
		return "error"
	default:
		return "plain"
	}
}

// LogEntry is one row of the rolling status log.
type LogEntry struct {
	Time    string  `json:"time"` // HH:MM:SS
	Message string  `json:"message"`
	Kind    LogKind `json:"kind"`
}
