// Package core runs the viewer: setup prompts, the read/parse/display loop and
// the state that loop carries between iterations.
package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"dhtview/internal/dashboard"
	"dhtview/internal/device"
	"dhtview/internal/model"
	"dhtview/internal/parser"
)

const (
	displayPause = 500 * time.Millisecond
	errorPause   = time.Second
	startupPause = 2 * time.Second
)

var spinner = []string{"|", "/", "-", "\\"}

// Outcome tags what a single loop iteration did.
type Outcome int

const (
	Waiting Outcome = iota
	Displayed
	ReadFailed
	ParseFailed
)

func (o Outcome) String() string {
	switch o {
	case Displayed:
		return "displayed"
	case ReadFailed:
		return "read_failed"
	case ParseFailed:
		return "parse_failed"
	default:
		return "waiting"
	}
}

// StepResult reports one iteration and how long to wait before the next.
type StepResult struct {
	Outcome Outcome
	Reading model.Reading
	Err     error // *ReadError or *ParseError
	Pause   time.Duration
}

// Options overrides the viewer's clock and pacing. Zero values use defaults.
type Options struct {
	Now          func() time.Time
	Sleep        func(ctx context.Context, d time.Duration) error
	StartupPause time.Duration
}

// Viewer owns the rolling log, the error slot and the uptime clock.
type Viewer struct {
	dev      device.Device
	out      io.Writer
	renderer *dashboard.Renderer
	history  *History
	uptime   *Uptime
	now      func() time.Time
	sleep    func(ctx context.Context, d time.Duration) error
	startup  time.Duration

	spin    int
	lastErr string
	last    *model.Reading
}

// NewViewer creates a viewer reading from dev and drawing through r onto out.
func NewViewer(dev device.Device, out io.Writer, r *dashboard.Renderer, opts Options) *Viewer {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	sleep := opts.Sleep
	if sleep == nil {
		sleep = sleepContext
	}
	startup := opts.StartupPause
	if startup == 0 {
		startup = startupPause
	}
	return &Viewer{
		dev:      dev,
		out:      out,
		renderer: r,
		history:  NewHistory(DefaultHistorySize, now),
		uptime:   NewUptime(now),
		now:      now,
		sleep:    sleep,
		startup:  startup,
	}
}

// Step runs one iteration: read a line, parse it, and repaint on success.
// Errors never escape; they land in the rolling log and in the result.
func (v *Viewer) Step() StepResult {
	s := v.renderer.Styles()

	frame := spinner[v.spin%len(spinner)]
	v.spin++
	v.history.Add(model.LogInfo, "Waiting for data "+frame)
	fmt.Fprint(v.out, s.Info.Render("\rWaiting for data "+frame))

	var res StepResult
	line, err := v.dev.ReadLine()
	if err != nil {
		line = ""
		res.Outcome = ReadFailed
		res.Err = &ReadError{Err: err}
		v.history.Add(model.LogError, res.Err.Error())
	}

	line = strings.TrimSpace(line)
	if line != "" {
		v.history.Add(model.LogSuccess, "Data received, parsing...")
		reading, perr := parser.ParseReading(line)
		if perr == nil {
			v.display(reading)
			res.Outcome = Displayed
			res.Reading = reading
			res.Pause = displayPause
		} else {
			res.Outcome = ParseFailed
			res.Err = &ParseError{Line: line, Err: perr}
			v.history.Add(model.LogError, res.Err.Error())
		}
	}

	if res.Err != nil {
		if msg := res.Err.Error(); msg != v.lastErr {
			v.history.Add(model.LogError, msg)
			v.lastErr = msg
		}
		res.Pause = errorPause
	}
	return res
}

func (v *Viewer) display(r model.Reading) {
	v.renderer.Clear()
	frame := dashboard.Frame{
		Reading: r,
		Now:     v.now(),
		Uptime:  v.uptime.Elapsed(),
		Log:     v.history.Entries(),
	}
	if err := v.renderer.Render(frame); err != nil {
		slog.Debug("render failed", "err", err)
	}
	v.last = &r

	if v.lastErr != "" {
		v.history.Add(model.LogSuccess, "Operation back to normal. Previous error resolved.")
		v.lastErr = ""
	}
	v.history.Add(model.LogInfo, "Measurement received and displayed.")
}

// Run shows the instructions, then steps until ctx is cancelled, and finally
// prints the farewell with the uptime.
func (v *Viewer) Run(ctx context.Context) error {
	if err := v.renderer.Instructions(); err != nil {
		return fmt.Errorf("write instructions: %w", err)
	}

	if v.sleep(ctx, v.startup) == nil {
		for ctx.Err() == nil {
			res := v.Step()
			slog.Debug("step", "outcome", res.Outcome.String(), "err", res.Err, "pause", res.Pause)
			if err := v.sleep(ctx, res.Pause); err != nil {
				break
			}
		}
	}

	v.Farewell()
	return nil
}

// Farewell prints the goodbye line and the uptime.
func (v *Viewer) Farewell() {
	s := v.renderer.Styles()
	fmt.Fprintln(v.out)
	fmt.Fprintln(v.out, s.Banner.Render("Exiting. Goodbye!"))
	fmt.Fprintln(v.out, s.Log.Render("Uptime: "+dashboard.FormatUptime(v.uptime.Elapsed())))
}

// History returns the rolling log entries, oldest first.
func (v *Viewer) History() []model.LogEntry { return v.history.Entries() }

// LastError returns the message held in the error slot, if any.
func (v *Viewer) LastError() string { return v.lastErr }

// Last returns the most recently displayed reading.
func (v *Viewer) Last() (model.Reading, bool) {
	if v.last == nil {
		return model.Reading{}, false
	}
	return *v.last, true
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
