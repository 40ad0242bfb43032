package errcode

import "fmt"

// RejectCode classifies why a header was refused: bytes that do not parse
// as a header, or a header that breaks a consensus rule.
type RejectCode uint8

const (
	RejectMalformed RejectCode = 0x01
	RejectInvalid   RejectCode = 0x10
)

var rejectCodeStrings = map[RejectCode]string{
	RejectMalformed: "REJECT_MALFORMED",
	RejectInvalid:   "REJECT_INVALID",
}

// String returns the RejectCode in human-readable form.
func (code RejectCode) String() string {
	if s, ok := rejectCodeStrings[code]; ok {
		return s
	}

	return fmt.Sprintf("Unknown RejectCode (%d)", uint8(code))
}
