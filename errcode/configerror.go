package errcode

import "fmt"

type ConfigErr int

const (
	ErrorUnknownNetwork ConfigErr = ConfigErrorBase + iota
	ErrorInvalidParams
	ErrorBadOverrideFile
)

var ConfigErrString = map[ConfigErr]string{
	ErrorUnknownNetwork:  "unknown network name",
	ErrorInvalidParams:   "consensus params failed validation",
	ErrorBadOverrideFile: "consensus override file is malformed",
}

func (confErr ConfigErr) String() string {
	if s, ok := ConfigErrString[confErr]; ok {
		return s
	}
	return fmt.Sprintf("Unknown code (%d)", confErr)
}
