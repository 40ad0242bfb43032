package errcode

import (
	"fmt"
)

const (
	ChainErrorBase = iota * 1000
	PowErrorBase
	ConfigErrorBase
)

type ProjectError struct {
	Module string
	Code   int
	Desc   string
}

func (e ProjectError) Error() string {
	return fmt.Sprintf("module: %s, global errcode: %v,  desc: %s", e.Module, e.Code, e.Desc)
}

func getCodeAndName(errCode fmt.Stringer) (int, string) {
	code := 0
	name := ""

	switch t := errCode.(type) {
	case ChainErr:
		code = int(t)
		name = "chain"
	case PowErr:
		code = int(t)
		name = "pow"
	case ConfigErr:
		code = int(t)
		name = "conf"
	case RejectCode:
		code = int(t)
		name = "reject"
	default:
	}

	return code, name
}

// IsErrorCode reports whether err is a ProjectError carrying errCode.
func IsErrorCode(err error, errCode fmt.Stringer) bool {
	e, ok := err.(ProjectError)
	icode, name := getCodeAndName(errCode)
	return ok && icode == e.Code && name == e.Module
}

func New(errCode fmt.Stringer) error {
	code, name := getCodeAndName(errCode)

	return ProjectError{
		Module: name,
		Code:   code,
		Desc:   errCode.String(),
	}
}

// NewError builds an error for errCode with a caller supplied reason in
// place of the code's default description.
func NewError(errCode fmt.Stringer, desc string) error {
	code, name := getCodeAndName(errCode)

	return ProjectError{
		Module: name,
		Code:   code,
		Desc:   desc,
	}
}

// HasRejectCode extracts the reject code from an error built with a
// RejectCode.
func HasRejectCode(err error) (RejectCode, bool) {
	e, ok := err.(ProjectError)
	if !ok || e.Module != "reject" {
		return 0, false
	}
	return RejectCode(e.Code), true
}
