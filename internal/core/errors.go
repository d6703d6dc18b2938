package core

import "fmt"

// ReadError is a transport failure while reading a line.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string { return fmt.Sprintf("Serial read error: %v", e.Err) }

func (e *ReadError) Unwrap() error { return e.Err }

// ParseError is a line that is not exactly twelve numbers.
type ParseError struct {
	Line string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Error parsing line: %s (%v)", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
