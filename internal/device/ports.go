package device

import (
	"fmt"

	"go.bug.st/serial/enumerator"
)

// PortInfo is a serial port as shown in the selection list.
type PortInfo struct {
	Name        string
	Description string
}

// ListPorts enumerates the serial ports currently present on the host.
func ListPorts() ([]PortInfo, error) {
	details, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, fmt.Errorf("enumerate serial ports: %w", err)
	}
	ports := make([]PortInfo, 0, len(details))
	for _, d := range details {
		ports = append(ports, PortInfo{Name: d.Name, Description: describePort(d)})
	}
	return ports, nil
}

func describePort(d *enumerator.PortDetails) string {
	switch {
	case d.Product != "":
		return d.Product
	case d.IsUSB:
		return fmt.Sprintf("USB VID:PID=%s:%s", d.VID, d.PID)
	default:
		return "n/a"
	}
}
