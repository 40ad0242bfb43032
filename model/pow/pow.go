package pow

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/lyncoin/lyncoin/errcode"
	"github.com/lyncoin/lyncoin/log"
	"github.com/lyncoin/lyncoin/model/block"
	"github.com/lyncoin/lyncoin/model/blockindex"
	"github.com/lyncoin/lyncoin/model/consensus"
	"github.com/lyncoin/lyncoin/util"
)

// Pow holds no state. Every method is a pure function of its arguments and
// may be called from any number of goroutines.
type Pow struct{}

// GetNextWorkRequired returns the compact target a block extending
// indexPrev must carry. blHeader is the candidate header; only its time is
// read. The returned error reports a violated caller contract, never a
// policy outcome.
func (pow *Pow) GetNextWorkRequired(indexPrev *blockindex.BlockIndex, blHeader *block.BlockHeader,
	params *consensus.Param) (uint32, error) {
	if params == nil {
		return 0, errcode.New(errcode.ErrorNilParams)
	}
	if indexPrev == nil {
		return 0, errcode.New(errcode.ErrorNilChainTip)
	}
	if blHeader == nil {
		return 0, errcode.New(errcode.ErrorNilHeader)
	}

	nHeight := indexPrev.Height + 1

	// A fork height resets the target to a fixed value.
	for i := range params.Eras {
		era := &params.Eras[i]
		if era.HasForcedBits && nHeight == era.StartHeight {
			return era.ForcedBits, nil
		}
	}

	nProofOfWorkLimit := BigToCompact(params.PowLimit)
	era := params.ActiveEra(nHeight)

	if params.FPowAllowMinDifficultyBlocks {
		// Special difficulty rule for testnet:
		// If the new block's timestamp is more than 2 * target spacing then
		// allow mining of a min-difficulty block.
		stalled := blHeader.GetBlockTime() > indexPrev.GetBlockTime()+params.TargetTimePerBlock*2
		if era.EpochLength == 1 {
			// Per-block eras never retarget on these networks.
			if stalled {
				return nProofOfWorkLimit, nil
			}
			if indexPrev.Prev == nil {
				return indexPrev.Header.Bits, nil
			}
			return indexPrev.Prev.Header.Bits, nil
		}
		if !era.IsRetargetHeight(nHeight) {
			if stalled {
				return nProofOfWorkLimit, nil
			}
			return pow.lastNonSpecialBits(indexPrev, era, nProofOfWorkLimit), nil
		}
	} else if !era.IsRetargetHeight(nHeight) {
		// Only change once per difficulty adjustment interval
		return indexPrev.Header.Bits, nil
	}

	nHeightFirst := indexPrev.Height - era.Lookback
	if nHeightFirst < 0 {
		return 0, errors.Wrapf(errcode.New(errcode.ErrorNegativeFirstHeight),
			"era %s tip height %d lookback %d", era.Name, indexPrev.Height, era.Lookback)
	}
	indexFirst := indexPrev.GetAncestor(nHeightFirst)
	if indexFirst == nil {
		return 0, errors.Wrapf(errcode.New(errcode.ErrorMissingAncestor),
			"height %d below tip %d", nHeightFirst, indexPrev.Height)
	}

	return pow.calculateNextWorkRequired(indexPrev, indexFirst, era, params), nil
}

// RetargetFirstHeight returns the height of the epoch-first block that
// GetNextWorkRequired reads for a block extending indexPrev. It reports
// false when the target follows from indexPrev and its parent alone.
func (pow *Pow) RetargetFirstHeight(indexPrev *blockindex.BlockIndex, params *consensus.Param) (int32, bool) {
	nHeight := indexPrev.Height + 1
	for i := range params.Eras {
		era := &params.Eras[i]
		if era.HasForcedBits && nHeight == era.StartHeight {
			return 0, false
		}
	}

	era := params.ActiveEra(nHeight)
	if params.FPowAllowMinDifficultyBlocks && era.EpochLength == 1 {
		return 0, false
	}
	if !era.IsRetargetHeight(nHeight) {
		return 0, false
	}
	return indexPrev.Height - era.Lookback, true
}

// lastNonSpecialBits returns the bits of the last block that was not mined
// under the min-difficulty exception. The walk stops at an epoch boundary,
// so it visits fewer than EpochLength blocks.
func (pow *Pow) lastNonSpecialBits(indexPrev *blockindex.BlockIndex, era *consensus.Era,
	nProofOfWorkLimit uint32) uint32 {
	index := indexPrev
	for index.Prev != nil && !era.IsRetargetHeight(index.Height) &&
		index.Header.Bits == nProofOfWorkLimit {
		index = index.Prev
	}

	return index.Header.Bits
}

func (pow *Pow) calculateNextWorkRequired(indexPrev, indexFirst *blockindex.BlockIndex, era *consensus.Era,
	params *consensus.Param) uint32 {
	if params.FPowNoRetargeting {
		return indexPrev.Header.Bits
	}

	// Limit adjustment step
	actualTimeSpan := era.ClampTimespan(indexPrev.GetBlockTime() - indexFirst.GetBlockTime())

	// Retarget
	bits := indexPrev.Header.Bits
	if params.EnforceFirstBlockOfPeriod {
		// The epoch's first block never uses the min-difficulty exception,
		// so it keeps the real difficulty.
		bits = indexFirst.Header.Bits
	}
	bnNew := CompactToBig(bits)
	bnNew.Mul(bnNew, big.NewInt(actualTimeSpan))
	bnNew.And(bnNew, mask256)
	bnNew.Div(bnNew, big.NewInt(era.TargetTimespan))

	log.Print("pow", "debug", "retarget era %s height %d: first %d time %d, last time %d, timespan %d, %08x -> %s",
		era.Name, indexPrev.Height+1, indexFirst.Height, indexFirst.GetBlockTime(), indexPrev.GetBlockTime(),
		actualTimeSpan, bits, log.InitLogClosure(func() string { return bnNew.Text(16) }))

	return TargetToCompact(bnNew, params.PowLimit)
}

// PermittedDifficultyTransition reports whether newBits may follow oldBits
// at height on a chain whose history is not available. Only heights that
// may retarget accept a different value, and then only within the active
// era's clamp. It is a cheap sanity check and does not replace
// GetNextWorkRequired.
func (pow *Pow) PermittedDifficultyTransition(params *consensus.Param, height int32, oldBits, newBits uint32,
	oldTime, newTime uint32, oldVersion, newVersion int32) bool {
	if params.FPowAllowMinDifficultyBlocks {
		return true
	}

	for i := range params.Eras {
		era := &params.Eras[i]
		if era.RequireHashFlag && height >= era.StartHeight && newVersion&block.VersionHashFlag == 0 {
			return false
		}
		if era.HasForcedBits && height == era.StartHeight {
			return era.ForcedBits == newBits
		}
	}

	era := params.ActiveEra(height)
	if !era.IsRetargetHeight(height) {
		return oldBits == newBits
	}

	powLimit := params.PowLimit
	observedNewTarget := CompactToBig(newBits)

	// Calculate the largest difficulty value possible:
	largestDifficultyTarget := scaleTarget(oldBits, era.MaxTimespan, era.TargetTimespan, powLimit)
	// Round and then compare this new calculated value to what is observed.
	maximumNewTarget := CompactToBig(BigToCompact(largestDifficultyTarget))
	if maximumNewTarget.Cmp(observedNewTarget) < 0 {
		return false
	}

	// Calculate the smallest difficulty value possible:
	smallestDifficultyTarget := scaleTarget(oldBits, era.MinTimespan, era.TargetTimespan, powLimit)
	minimumNewTarget := CompactToBig(BigToCompact(smallestDifficultyTarget))
	return minimumNewTarget.Cmp(observedNewTarget) <= 0
}

// scaleTarget returns bits*num/den wrapped to 256 bits and capped at limit.
func scaleTarget(bits uint32, num, den int64, limit *big.Int) *big.Int {
	target := CompactToBig(bits)
	target.Mul(target, big.NewInt(num))
	target.And(target, mask256)
	target.Div(target, big.NewInt(den))
	if target.Cmp(limit) > 0 {
		target.Set(limit)
	}
	return target
}

// CheckProofOfWork reports whether hash satisfies the claimed bits. Bits
// that decode to a negative, zero or overflowing target, or to one easier
// than the pow limit, never qualify.
func (pow *Pow) CheckProofOfWork(hash *util.Hash, bits uint32, params *consensus.Param) bool {
	target, negative, overflow := DecodeCompact(bits)
	if negative || target.Sign() == 0 || overflow || target.Cmp(params.PowLimit) > 0 {
		return false
	}

	return HashToBig(hash).Cmp(target) <= 0
}

// GetBlockProof returns the expected number of hashes needed to meet bits,
// 2^256 / (target+1), or zero for bits that cannot be a valid target.
func (pow *Pow) GetBlockProof(bits uint32) *big.Int {
	target, negative, overflow := DecodeCompact(bits)
	if negative || overflow || target.Sign() == 0 {
		return big.NewInt(0)
	}
	return new(big.Int).Div(oneLsh256, target.Add(target, bigOne))
}

// CheckChainID reports whether header carries the chain id the network
// requires. Legacy headers predate chain ids and are exempt.
func (pow *Pow) CheckChainID(header *block.BlockHeader, params *consensus.Param) bool {
	if !params.StrictChainID || header.IsLegacy() {
		return true
	}
	return header.GetChainID() == params.AuxpowChainID
}
