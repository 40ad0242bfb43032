package consensus

import (
	"math"
	"math/big"

	"github.com/pkg/errors"

	"github.com/lyncoin/lyncoin/util"
)

// DisabledHeight marks an era that never activates.
const DisabledHeight int32 = math.MaxInt32

// Era is one height range of the retargeting policy. Eras are held in
// activation order; the active era for a height is the last one whose
// StartHeight is at or below it.
type Era struct {
	Name        string
	StartHeight int32

	// EpochLength is the number of blocks between retargets.
	EpochLength int32
	// Lookback is how many blocks behind the tip the epoch's first block
	// sits when measuring the actual timespan.
	Lookback int32

	// TargetTimespan is the nominal epoch duration in seconds. An observed
	// timespan is clamped into [MinTimespan, MaxTimespan] before rescaling.
	TargetTimespan int64
	MinTimespan    int64
	MaxTimespan    int64

	// ForcedBits, when HasForcedBits is set, is the only target a block at
	// exactly StartHeight may carry.
	ForcedBits    uint32
	HasForcedBits bool

	// RequireHashFlag demands the version hash flag on every block from
	// StartHeight on.
	RequireHashFlag bool
}

// IsRetargetHeight reports whether a block at height closes an epoch.
func (e *Era) IsRetargetHeight(height int32) bool {
	return height%e.EpochLength == 0
}

// ClampTimespan limits an observed timespan to the era's permitted range.
func (e *Era) ClampTimespan(actual int64) int64 {
	return util.MinI(util.MaxI(actual, e.MinTimespan), e.MaxTimespan)
}

// BaseEra is the Bitcoin rule: one retarget per targetTimespan
// worth of spacing-sized blocks, each step bounded to a factor of four.
func BaseEra(targetTimespan, spacing int64) Era {
	epoch := int32(targetTimespan / spacing)
	return Era{
		Name:           "base",
		StartHeight:    0,
		EpochLength:    epoch,
		Lookback:       epoch - 1,
		TargetTimespan: targetTimespan,
		MinTimespan:    targetTimespan / 4,
		MaxTimespan:    targetTimespan * 4,
	}
}

// windowAmplitude bounds a window era step to 1.4% either way.
const windowAmplitude = 1.014

// WindowEra retargets every window blocks against timespan seconds. The
// float bounds truncate toward zero, which is exactly how the integer
// comparison against the float bound behaves.
func WindowEra(start, window int32, timespan int64, bits uint32) Era {
	return Era{
		Name:           "window",
		StartHeight:    start,
		EpochLength:    window,
		Lookback:       window - 1,
		TargetTimespan: timespan,
		MinTimespan:    int64(float64(timespan) / windowAmplitude),
		MaxTimespan:    int64(float64(timespan) * windowAmplitude),
		ForcedBits:     bits,
		HasForcedBits:  true,
	}
}

// FixedEra retargets on every block from the spacing between the tip and
// its parent, nominally 38 seconds and clamped to a second either way.
func FixedEra(start int32, bits uint32) Era {
	return Era{
		Name:           "fixed",
		StartHeight:    start,
		EpochLength:    1,
		Lookback:       1,
		TargetTimespan: 38,
		MinTimespan:    37,
		MaxTimespan:    39,
		ForcedBits:     bits,
		HasForcedBits:  true,
	}
}

// FlexEra keeps the retarget rule of prior, resets the target to bits at
// start and requires the hash flag from start on.
func FlexEra(start int32, bits uint32, prior Era) Era {
	era := prior
	era.Name = "flex"
	era.StartHeight = start
	era.ForcedBits = bits
	era.HasForcedBits = true
	era.RequireHashFlag = true
	return era
}

type Param struct {
	// Proof of work parameters
	PowLimit                     *big.Int
	FPowAllowMinDifficultyBlocks bool
	FPowNoRetargeting            bool
	// EnforceFirstBlockOfPeriod rescales from the epoch's first block rather
	// than the tip, so a reorg cannot choose the rescale base.
	EnforceFirstBlockOfPeriod bool
	// seconds
	TargetTimePerBlock int64
	TargetTimespan     int64

	Eras []Era

	// Merge mining
	AuxpowChainID int32
	StrictChainID bool
}

func (pm *Param) DifficultyAdjustmentInterval() int64 {
	return pm.TargetTimespan / pm.TargetTimePerBlock
}

// ActiveEra returns the era governing a block at height.
func (pm *Param) ActiveEra(height int32) *Era {
	active := &pm.Eras[0]
	for i := 1; i < len(pm.Eras); i++ {
		if pm.Eras[i].StartHeight > height {
			break
		}
		active = &pm.Eras[i]
	}
	return active
}

// Clone returns a deep copy suitable for applying overrides.
func (pm *Param) Clone() *Param {
	cp := *pm
	if pm.PowLimit != nil {
		cp.PowLimit = new(big.Int).Set(pm.PowLimit)
	}
	cp.Eras = append([]Era(nil), pm.Eras...)
	return &cp
}

// Validate checks the structural invariants of the parameter set.
func (pm *Param) Validate() error {
	if pm.PowLimit == nil || pm.PowLimit.Sign() <= 0 || pm.PowLimit.BitLen() > 256 {
		return errors.New("pow limit must be a positive 256-bit value")
	}
	if pm.TargetTimePerBlock <= 0 || pm.TargetTimespan <= 0 {
		return errors.New("target spacing and timespan must be positive")
	}
	if len(pm.Eras) == 0 {
		return errors.New("at least one era is required")
	}
	if pm.Eras[0].StartHeight != 0 {
		return errors.Errorf("first era must start at height 0, got %d", pm.Eras[0].StartHeight)
	}
	for i := range pm.Eras {
		era := &pm.Eras[i]
		if i > 0 && era.StartHeight < pm.Eras[i-1].StartHeight {
			return errors.Errorf("era %s starts at %d before era %s at %d",
				era.Name, era.StartHeight, pm.Eras[i-1].Name, pm.Eras[i-1].StartHeight)
		}
		if era.EpochLength <= 0 {
			return errors.Errorf("era %s epoch length must be positive", era.Name)
		}
		if era.Lookback < 0 {
			return errors.Errorf("era %s lookback must not be negative", era.Name)
		}
		if era.TargetTimespan <= 0 || era.MinTimespan <= 0 || era.MinTimespan > era.MaxTimespan {
			return errors.Errorf("era %s timespan bounds [%d, %d] around %d are invalid",
				era.Name, era.MinTimespan, era.MaxTimespan, era.TargetTimespan)
		}
	}
	return nil
}
