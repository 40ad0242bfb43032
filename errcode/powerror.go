package errcode

import "fmt"

// PowErr enumerates caller-contract violations detected by the
// proof-of-work core. Policy rejections are never reported through it.
type PowErr int

const (
	ErrorNilChainTip PowErr = PowErrorBase + iota
	ErrorNegativeFirstHeight
	ErrorMissingAncestor
	ErrorNilParams
	ErrorNilHeader
)

var PowErrString = map[PowErr]string{
	ErrorNilChainTip:         "chain tip must not be nil",
	ErrorNegativeFirstHeight: "epoch first block height is negative",
	ErrorMissingAncestor:     "ancestor lookup returned no block",
	ErrorNilParams:           "consensus params must not be nil",
	ErrorNilHeader:           "candidate header must not be nil",
}

func (powErr PowErr) String() string {
	if s, ok := PowErrString[powErr]; ok {
		return s
	}
	return fmt.Sprintf("Unknown code (%d)", powErr)
}
