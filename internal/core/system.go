package core

import (
	"fmt"
	"io"
	"log/slog"

	"dhtview/internal/dashboard"
	"dhtview/internal/device"
)

// System holds the setup phase: the chosen port, the baud rate and the open
// device the viewer reads from.
type System struct {
	Port   string
	Baud   int
	Device device.Device

	prompter  *Prompter
	out       io.Writer
	renderer  *dashboard.Renderer
	listPorts func() ([]device.PortInfo, error)
	open      func(name string, baud int) (device.Device, error)
}

// NewSystem creates a System that prompts on in/out and opens real serial ports.
func NewSystem(in io.Reader, out io.Writer, r *dashboard.Renderer) *System {
	return &System{
		prompter:  NewPrompter(in, out, r.Styles()),
		out:       out,
		renderer:  r,
		listPorts: device.ListPorts,
		open:      openArduino,
	}
}

func openArduino(name string, baud int) (device.Device, error) {
	a := device.NewArduinoDevice(name, baud)
	if err := a.Open(); err != nil {
		return nil, err
	}
	return a, nil
}

// Setup lists the ports, asks for a port and a baud rate and opens the
// connection. It returns ErrNoPorts when nothing is attached.
func (s *System) Setup() error {
	ports, err := s.listPorts()
	if err != nil {
		return err
	}
	slog.Debug("serial ports enumerated", "count", len(ports))

	port, err := s.prompter.SelectPort(ports)
	if err != nil {
		return err
	}
	baud := s.prompter.SelectBaud(DefaultBaud)

	dev, err := s.open(port, baud)
	if err != nil {
		return fmt.Errorf("open %s at %d baud: %w", port, baud, err)
	}
	s.Port, s.Baud, s.Device = port, baud, dev
	slog.Info("serial port opened", "port", port, "baud", baud)
	return nil
}

// Viewer builds the run loop on the opened device.
func (s *System) Viewer(opts Options) *Viewer {
	return NewViewer(s.Device, s.out, s.renderer, opts)
}

// Close releases the device, if one was opened.
func (s *System) Close() error {
	if s.Device == nil {
		return nil
	}
	err := s.Device.Close()
	s.Device = nil
	return err
}
