// Package dashboard draws the live feed panel: a bordered block of the latest
// reading followed by the rolling status log.
package dashboard

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"dhtview/internal/model"
)

const (
	innerWidth = 54
	labelWidth = 22
	logWidth   = 50

	// LogRows is the fixed height of the log section.
	LogRows = 6

	tempApprox = "±2.00"
	humApprox  = "±5.00"
)

// Frame is everything one repaint shows.
type Frame struct {
	Reading model.Reading
	Now     time.Time
	Uptime  time.Duration
	Log     []model.LogEntry
}

// Renderer writes frames and banners to a terminal.
type Renderer struct {
	w      io.Writer
	term   *termenv.Output
	lip    *lipgloss.Renderer
	styles Styles
}

// NewRenderer creates a Renderer writing to w. The color profile is detected
// from w.
func NewRenderer(w io.Writer) *Renderer {
	lip := lipgloss.NewRenderer(w)
	return &Renderer{
		w:      w,
		term:   termenv.NewOutput(w),
		lip:    lip,
		styles: newStyles(lip),
	}
}

// SetColorProfile overrides the detected color profile.
func (r *Renderer) SetColorProfile(p termenv.Profile) {
	r.lip.SetColorProfile(p)
}

// Styles returns the palette used by the renderer.
func (r *Renderer) Styles() Styles { return r.styles }

// Clear erases the screen and homes the cursor.
func (r *Renderer) Clear() {
	r.term.ClearScreen()
}

// Render draws the reading panel, the log section and the instructions banner.
func (r *Renderer) Render(f Frame) error {
	var b strings.Builder
	s := r.styles
	v := f.Reading

	line := func(st lipgloss.Style, text string) {
		b.WriteString(st.Render(text))
		b.WriteByte('\n')
	}
	field := func(st lipgloss.Style, label string, value float64, decimals int, suffix string) {
		text := fmt.Sprintf("║ %-*s %8.*f", labelWidth, label, decimals, value)
		if suffix != "" {
			text += "  (approx " + suffix + ")"
		}
		line(st, text)
	}
	blank := func(st lipgloss.Style) { line(st, "║"+strings.Repeat(" ", innerWidth-2)) }

	line(s.Border, topBorder())
	b.WriteString(s.Border.Render("║") +
		s.Title.Render(titleCell("Arduino Weather Station Live Feed")) +
		s.Border.Render("║") + "\n")
	line(s.Border, fmt.Sprintf("║   Latest update at %s               ║", f.Now.Format("2006-01-02 15:04:05")))
	line(s.Border, "║   Uptime: "+FormatUptime(f.Uptime))
	line(s.Border, topBorder())

	field(s.Comfort, "Temp (°C):", v.Temperature, 2, tempApprox)
	field(s.Comfort, "Humidity (%):", v.Humidity, 2, humApprox)
	field(s.Comfort, "Heat Index (°C):", v.HeatIndex, 2, "")
	field(s.Comfort, "Humidex:", v.Humidex, 2, "")
	field(s.Comfort, "Dew Point (°C):", v.DewPoint, 2, "")
	field(s.Comfort, "Wet Bulb Temp (°C):", v.WetBulb, 2, "")
	field(s.Comfort, "Enthalpy (kJ/kg):", v.Enthalpy, 2, "")
	blank(s.Comfort)

	field(s.Moisture, "Abs Humidity (g/m³):", v.AbsHumidity, 2, "")
	field(s.Moisture, "Specific Humidity:", v.SpecificHumidity, 5, "")
	field(s.Moisture, "Mixing Ratio (g/kg):", v.MixingRatio, 2, "")
	blank(s.Moisture)

	field(s.Pressure, "Vapor Pressure (hPa):", v.VaporPressure, 2, "")
	field(s.Pressure, "Sat Vapor Press.:", v.SatVaporPressure, 2, "")
	line(s.Border, bottomBorder())

	r.writeLog(&b, f.Log)
	r.writeBanner(&b)

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *Renderer) writeLog(b *strings.Builder, entries []model.LogEntry) {
	s := r.styles
	blank := s.Log.Render("║"+strings.Repeat(" ", innerWidth-2)) + "\n"

	b.WriteString(blank)
	b.WriteString(s.Log.Render("║") + s.LogTitle.Render("   Log & Status:") + "\n")
	for _, e := range entries {
		text := runewidth.FillRight(fmt.Sprintf("[%s] %s", e.Time, e.Message), logWidth)
		b.WriteString(s.Log.Render("║ ") + s.ForKind(e.Kind).Render(text) + "\n")
	}
	for i := len(entries); i < LogRows; i++ {
		b.WriteString(blank)
	}
	b.WriteString(blank)
}

// Instructions writes the exit hint banner on its own.
func (r *Renderer) Instructions() error {
	var b strings.Builder
	r.writeBanner(&b)
	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *Renderer) writeBanner(b *strings.Builder) {
	st := r.styles.Banner
	b.WriteString(st.Render(topBorder()) + "\n")
	b.WriteString(st.Render("║"+runewidth.FillRight("  Press Ctrl+C at any time to exit the program.", innerWidth)+"║") + "\n")
	b.WriteString(st.Render(bottomBorder()) + "\n")
}

func topBorder() string    { return "╔" + strings.Repeat("═", innerWidth) + "╗" }
func bottomBorder() string { return "╚" + strings.Repeat("═", innerWidth) + "╝" }

func titleCell(title string) string {
	const indent = 9
	return strings.Repeat(" ", indent) + runewidth.FillRight(title, innerWidth-indent)
}

// FormatUptime renders d as HH:MM:SS. Hours wrap at 24.
func FormatUptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return time.Unix(0, 0).UTC().Add(d).Format("15:04:05")
}
