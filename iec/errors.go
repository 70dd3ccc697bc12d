package iec

import "fmt"

// InvalidFieldError indicates that a sentence field value is outside its declared domain.
type InvalidFieldError struct {
	Field  string
	Value  string
	Reason string
}

func (e InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// UnsupportedFormatterError indicates that a formatter code is not part of the supported set.
type UnsupportedFormatterError struct {
	Formatter string
}

func (e UnsupportedFormatterError) Error() string {
	return fmt.Sprintf("formatter %q is not supported", e.Formatter)
}

// InvalidIdentifierError indicates a malformed talker, source, or destination identification.
type InvalidIdentifierError struct {
	Name   string
	Value  string
	Reason string
}

func (e InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Name, e.Value, e.Reason)
}

// PayloadTooLargeError indicates that a payload does not fit into the maximum
// number of sentences its formatter allows.
type PayloadTooLargeError struct {
	Formatter string
	Chars     int
	MaxChars  int
}

func (e PayloadTooLargeError) Error() string {
	return fmt.Sprintf("%s payload of %d characters exceeds the maximum of %d", e.Formatter, e.Chars, e.MaxChars)
}
