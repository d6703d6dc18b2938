// Package device defines a line-oriented interface for serial-attached boards
// and its go.bug.st/serial implementation.
package device

// Device is a newline-framed byte stream such as a USB serial port.
type Device interface {
	// ReadLine returns one line including its terminator. When the read
	// timeout expires first it returns whatever arrived so far, which may be
	// empty, and a nil error.
	ReadLine() (string, error)

	// WriteLine writes s followed by '\n' to the device.
	WriteLine(s string) error

	// Close closes the device and releases underlying resources.
	Close() error
}
