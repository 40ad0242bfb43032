package chainparams

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/lyncoin/lyncoin/errcode"
	"github.com/lyncoin/lyncoin/model/consensus"
	"github.com/lyncoin/lyncoin/util"
)

const (
	MainNetName = "main"
	TestNetName = "test"
	SigNetName  = "signet"
	RegTestName = "regtest"
)

var ActiveNetParams = &MainNetParams

var (
	bigOne = big.NewInt(1)
	// 2^224 -1
	mainPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 224), bigOne)
	// 0x0377ae << 216
	sigNetPowLimit = new(big.Int).Lsh(big.NewInt(0x0377ae), 216)
	// 2^255 -1
	regressingPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)
)

const (
	targetTimespan = 14 * 24 * 60 * 60
	targetSpacing  = 10 * 60
	windowLength   = 10
	windowTimespan = windowLength * targetSpacing
)

type ChainParams struct {
	consensus.Param
	Name        string
	GenesisHash util.Hash
}

// eras lays out the fork schedule shared by every network. The flexhash
// fork is scheduled only by overrides.
func eras(windowStart int32, windowBits uint32, fixedStart int32, fixedBits uint32) []consensus.Era {
	fixed := consensus.FixedEra(fixedStart, fixedBits)
	return []consensus.Era{
		consensus.BaseEra(targetTimespan, targetSpacing),
		consensus.WindowEra(windowStart, windowLength, windowTimespan, windowBits),
		fixed,
		consensus.FlexEra(consensus.DisabledHeight, fixedBits, fixed),
	}
}

var MainNetParams = ChainParams{
	Name: MainNetName,
	Param: consensus.Param{
		PowLimit:                     mainPowLimit,
		TargetTimespan:               targetTimespan,
		TargetTimePerBlock:           targetSpacing,
		FPowAllowMinDifficultyBlocks: false,
		FPowNoRetargeting:            false,
		Eras:                         eras(48950, 0x1908cf19, 71700, 0x185c7bae),
		AuxpowChainID:                0x0b0d,
		StrictChainID:                true,
	},
	GenesisHash: *util.HashFromString("000000002b8761c63862f5047afb9ac5fdd1c67e87cd376c387628bc772bb39d"),
}

var TestNetParams = ChainParams{
	Name: TestNetName,
	Param: consensus.Param{
		PowLimit:                     mainPowLimit,
		TargetTimespan:               targetTimespan,
		TargetTimePerBlock:           targetSpacing,
		FPowAllowMinDifficultyBlocks: true,
		FPowNoRetargeting:            false,
		Eras:                         eras(0, 0x1d00ffff, 0, 0x1d00ffff),
		AuxpowChainID:                0x0229,
		StrictChainID:                false,
	},
	GenesisHash: *util.HashFromString("000000002b8761c63862f5047afb9ac5fdd1c67e87cd376c387628bc772bb39d"),
}

var SigNetParams = ChainParams{
	Name: SigNetName,
	Param: consensus.Param{
		PowLimit:                     sigNetPowLimit,
		TargetTimespan:               targetTimespan,
		TargetTimePerBlock:           targetSpacing,
		FPowAllowMinDifficultyBlocks: false,
		FPowNoRetargeting:            false,
		Eras:                         eras(0, 0x1e0377ae, 0, 0x1e0377ae),
		AuxpowChainID:                0x0610,
		StrictChainID:                true,
	},
	GenesisHash: *util.HashFromString("0000000078784df3709f12a1b23492661623230ce15317b0b02ca98a054da72e"),
}

var RegressionNetParams = ChainParams{
	Name: RegTestName,
	Param: consensus.Param{
		PowLimit:                     regressingPowLimit,
		TargetTimespan:               targetTimespan,
		TargetTimePerBlock:           targetSpacing,
		FPowAllowMinDifficultyBlocks: true,
		FPowNoRetargeting:            true,
		Eras:                         eras(0, 0x207fffff, 0, 0x207fffff),
		AuxpowChainID:                0x07ef,
		StrictChainID:                true,
	},
	GenesisHash: *util.HashFromString("00000000924f066756057e3b97d8d981b17fe7665e3664c65549fe9b47ba0699"),
}

var registered = map[string]*ChainParams{
	MainNetName: &MainNetParams,
	TestNetName: &TestNetParams,
	SigNetName:  &SigNetParams,
	RegTestName: &RegressionNetParams,
}

// Select returns the built-in table for network.
func Select(network string) (*ChainParams, error) {
	params, ok := registered[network]
	if !ok {
		return nil, errors.Wrapf(errcode.New(errcode.ErrorUnknownNetwork), "network %q", network)
	}
	return params, nil
}

// Clone returns a copy sharing nothing with cp.
func (cp *ChainParams) Clone() *ChainParams {
	c := *cp
	c.Param = *cp.Param.Clone()
	return &c
}

// Validate wraps consensus validation failures in the config error space.
func (cp *ChainParams) Validate() error {
	if err := cp.Param.Validate(); err != nil {
		return errors.Wrapf(errcode.New(errcode.ErrorInvalidParams), "%s: %v", cp.Name, err)
	}
	return nil
}

// InitActiveNetParams selects network, applies the optional override file
// and installs the result as ActiveNetParams.
func InitActiveNetParams(network, overrideFile string) (*ChainParams, error) {
	params, err := Select(network)
	if err != nil {
		return nil, err
	}
	if overrideFile != "" {
		params, err = LoadOverrides(params, overrideFile)
		if err != nil {
			return nil, err
		}
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	ActiveNetParams = params
	return params, nil
}
