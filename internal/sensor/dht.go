// Package sensor reproduces the quantities the DHT11 sketch derives from a raw
// temperature and humidity sample. Only the simulator uses it; the viewer
// displays whatever the board sends.
package sensor

import (
	"math"

	"dhtview/internal/model"
)

// Derive computes the full sketch output for temp (°C) and hum (%RH).
func Derive(temp, hum float64) model.Reading {
	rh := hum / 100.0
	svp := SatVaporPressure(temp)
	vp := rh * svp

	return model.Reading{
		Temperature:      temp,
		Humidity:         hum,
		HeatIndex:        HeatIndex(temp, hum),
		DewPoint:         temp - ((100 - hum) / 5.0),
		AbsHumidity:      216.7 * (vp / (273.15 + temp)),
		SpecificHumidity: (0.622 * rh) / (1 + (0.622 * rh)),
		MixingRatio:      (622 * rh) / (1000 - rh),
		VaporPressure:    vp,
		SatVaporPressure: svp,
		WetBulb:          WetBulb(temp, hum),
		Humidex:          temp + 0.5555*(vp-10.0),
		Enthalpy:         1.006*temp + (2501+1.86*temp)*rh,
	}
}

// SatVaporPressure is the Magnus approximation in hPa.
func SatVaporPressure(temp float64) float64 {
	return 6.112 * math.Exp((17.62*temp)/(243.12+temp))
}

// WetBulb is Stull's (2011) empirical fit.
func WetBulb(temp, hum float64) float64 {
	return temp*math.Atan(0.151977*math.Sqrt(hum+8.313659)) +
		math.Atan(temp+hum) - math.Atan(hum-1.676331) +
		0.00391838*math.Pow(hum, 1.5)*math.Atan(0.023101*hum) - 4.686035
}

// HeatIndex follows the Adafruit DHT library: Steadman's simple formula,
// switching to the Rothfusz regression with its low/high humidity
// adjustments above 79 °F. Input and output are °C.
func HeatIndex(temp, hum float64) float64 {
	t := temp*1.8 + 32
	hi := 0.5 * (t + 61.0 + ((t - 68.0) * 1.2) + (hum * 0.094))

	if hi > 79 {
		hi = -42.379 +
			2.04901523*t +
			10.14333127*hum +
			-0.22475541*t*hum +
			-0.00683783*t*t +
			-0.05481717*hum*hum +
			0.00122874*t*t*hum +
			0.00085282*t*hum*hum +
			-0.00000199*t*t*hum*hum

		switch {
		case hum < 13 && t >= 80 && t <= 112:
			hi -= ((13.0 - hum) * 0.25) * math.Sqrt((17.0-math.Abs(t-95.0))*0.05882)
		case hum > 85 && t >= 80 && t <= 87:
			hi += ((hum - 85.0) * 0.1) * ((87.0 - t) * 0.2)
		}
	}
	return (hi - 32) * 0.55555
}
