package device

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	serial "go.bug.st/serial"
)

// DefaultReadTimeout bounds a single ReadLine call.
const DefaultReadTimeout = time.Second

// port is the part of serial.Port that SerialDevice uses.
type port interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	SetReadTimeout(t time.Duration) error
	Close() error
}

// SerialDevice implements Device on top of a serial port in 8N1 mode.
type SerialDevice struct {
	port    port
	dev     string
	baud    int
	timeout time.Duration
	buf     []byte
	chunk   []byte
	now     func() time.Time
}

// NewSerialDevice opens dev at baud with the given read timeout.
func NewSerialDevice(dev string, baud int, timeout time.Duration) (*SerialDevice, error) {
	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	p, err := serial.Open(dev, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial %s: %w", dev, err)
	}
	return newSerialDevice(p, dev, baud, timeout), nil
}

func newSerialDevice(p port, dev string, baud int, timeout time.Duration) *SerialDevice {
	if timeout <= 0 {
		timeout = DefaultReadTimeout
	}
	return &SerialDevice{
		port:    p,
		dev:     dev,
		baud:    baud,
		timeout: timeout,
		chunk:   make([]byte, 256),
		now:     time.Now,
	}
}

// Name returns the device path the port was opened on.
func (s *SerialDevice) Name() string { return s.dev }

// Baud returns the configured baud rate.
func (s *SerialDevice) Baud() int { return s.baud }

// ReadLine reads until '\n' or until the timeout expires, whichever is first.
// On timeout the partial line is returned with a nil error. Bytes that are
// not valid UTF-8 are dropped.
func (s *SerialDevice) ReadLine() (string, error) {
	if s.port == nil {
		return "", errors.New("serial port not open")
	}

	deadline := s.now().Add(s.timeout)
	for {
		if i := bytes.IndexByte(s.buf, '\n'); i >= 0 {
			return s.take(i + 1), nil
		}

		remaining := deadline.Sub(s.now())
		if remaining <= 0 {
			return s.take(len(s.buf)), nil
		}
		if err := s.port.SetReadTimeout(remaining); err != nil {
			return "", fmt.Errorf("set read timeout on %s: %w", s.dev, err)
		}

		n, err := s.port.Read(s.chunk)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", s.dev, err)
		}
		if n == 0 {
			return s.take(len(s.buf)), nil
		}
		s.buf = append(s.buf, s.chunk[:n]...)
	}
}

func (s *SerialDevice) take(n int) string {
	line := strings.ToValidUTF8(string(s.buf[:n]), "")
	s.buf = append(s.buf[:0], s.buf[n:]...)
	return line
}

// WriteLine writes a single line followed by '\n' to the serial port.
func (s *SerialDevice) WriteLine(line string) error {
	if s.port == nil {
		return errors.New("serial port not open")
	}
	_, err := s.port.Write(append([]byte(line), '\n'))
	return err
}

// Close closes the underlying serial connection.
func (s *SerialDevice) Close() error {
	if s.port == nil {
		return nil
	}
	err := s.port.Close()
	s.port = nil
	return err
}
