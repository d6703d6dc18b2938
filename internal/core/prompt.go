package core

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dhtview/internal/dashboard"
	"dhtview/internal/device"
)

// DefaultBaud is used when the baud prompt is left empty or is not a number.
const DefaultBaud = 9600

// ErrNoPorts is returned by SelectPort when the host has no serial ports.
var ErrNoPorts = errors.New("no serial ports found")

// Prompter asks the setup questions on a line-oriented terminal.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	styles dashboard.Styles
}

// NewPrompter reads answers from in and writes prompts to out.
func NewPrompter(in io.Reader, out io.Writer, styles dashboard.Styles) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, styles: styles}
}

// SelectPort lists ports and asks for a 1-based index until a valid one is
// given. An empty answer selects the first port.
func (p *Prompter) SelectPort(ports []device.PortInfo) (string, error) {
	s := p.styles
	if len(ports) == 0 {
		p.println(s.Error, "No serial ports found.")
		return "", ErrNoPorts
	}

	p.println(s.Prompt, "Available serial ports:")
	for i, port := range ports {
		p.println(s.Option, fmt.Sprintf("  %d: %s (%s)", i+1, port.Name, port.Description))
	}

	for {
		fmt.Fprint(p.out, s.Prompt.Render(fmt.Sprintf("Select port [1-%d] (default 1): ", len(ports))))
		answer, err := p.readLine()
		if err != nil {
			return "", fmt.Errorf("read port selection: %w", err)
		}

		idx := 1
		if answer != "" {
			idx, err = strconv.Atoi(answer)
		}
		if err == nil && idx >= 1 && idx <= len(ports) {
			return ports[idx-1].Name, nil
		}
		p.println(s.Error, "Invalid selection. Try again.")
	}
}

// SelectBaud asks once for a baud rate. Empty input, a closed input or a
// non-numeric answer all yield def.
func (p *Prompter) SelectBaud(def int) int {
	s := p.styles
	fmt.Fprint(p.out, s.Prompt.Render(fmt.Sprintf("Enter baud rate (default %d): ", def)))

	answer, err := p.readLine()
	if err != nil || answer == "" {
		return def
	}
	baud, err := strconv.Atoi(answer)
	if err != nil {
		p.println(s.Error, "Invalid baud rate, using default.")
		return def
	}
	return baud
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *Prompter) println(st lipgloss.Style, text string) {
	fmt.Fprintln(p.out, st.Render(text))
}
