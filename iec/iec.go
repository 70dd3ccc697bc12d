package iec

import (
	"regexp"
)

// TalkerID identifies the equipment class originating a sentence, see [61162-1] 6.
type TalkerID string

var validTalkerID = regexp.MustCompile(`^[A-Z]{2}$`)

// Validate checks that this talker ID consists of exactly two upper-case letters.
func (t TalkerID) Validate() error {
	if !validTalkerID.MatchString(string(t)) {
		return InvalidIdentifierError{Name: "talker ID", Value: string(t), Reason: "must be two upper-case letters"}
	}
	return nil
}

// SourceID identifies the source or destination of an encapsulated sentence message,
// see [450] 7.5.2: two upper-case letters followed by four digits, e.g. "GR0001".
type SourceID string

var validSourceID = regexp.MustCompile(`^[A-Z]{2}[0-9]{4}$`)

// Validate checks that this source ID consists of two upper-case letters followed by four digits.
func (s SourceID) Validate() error {
	if !validSourceID.MatchString(string(s)) {
		return InvalidIdentifierError{Name: "source ID", Value: string(s), Reason: "must be two upper-case letters followed by four digits"}
	}
	return nil
}

// Checksum calculates the checksum over the given data as per [61162-1] 5.3.4:
// the exclusive-OR of all characters. A leading '$' or '!' start delimiter is
// ignored. The data must not include the '*' checksum delimiter.
func Checksum(data string) byte {
	if len(data) > 0 && (data[0] == '$' || data[0] == '!') {
		data = data[1:]
	}

	var result byte
	for i := 0; i < len(data); i++ {
		result ^= data[i]
	}
	return result
}
