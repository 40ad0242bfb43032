package lblock

import (
	"github.com/pkg/errors"

	"github.com/lyncoin/lyncoin/errcode"
	"github.com/lyncoin/lyncoin/log"
	"github.com/lyncoin/lyncoin/model/block"
	"github.com/lyncoin/lyncoin/model/blockindex"
	"github.com/lyncoin/lyncoin/model/consensus"
	"github.com/lyncoin/lyncoin/model/pow"
)

func reject(code errcode.ChainErr) error {
	return errcode.NewError(errcode.RejectInvalid, code.String())
}

// CheckBlockHeader runs the checks that need no chain context: the chain id
// policy and the header's work hash against its claimed bits. cache may be
// nil.
func CheckBlockHeader(bh *block.BlockHeader, params *consensus.Param, cache *block.PoWHashCache) error {
	p := new(pow.Pow)
	if !p.CheckChainID(bh, params) {
		log.Print("lblock", "debug", "CheckBlockHeader chain id %d, want %d", bh.GetChainID(), params.AuxpowChainID)
		return reject(errcode.ErrorBadChainID)
	}

	hash := cache.PoWHash(bh)
	if !p.CheckProofOfWork(&hash, bh.Bits, params) {
		log.Print("lblock", "debug", "CheckBlockHeader CheckProofOfWork failed, pow hash %s bits %08x",
			hash.ToString(), bh.Bits)
		return reject(errcode.ErrorPowCheckErr)
	}
	return nil
}

// ContextualCheckBlockHeader requires the header's bits to equal the target
// computed from preIndex.
func ContextualCheckBlockHeader(header *block.BlockHeader, preIndex *blockindex.BlockIndex,
	params *consensus.Param) error {
	p := new(pow.Pow)
	bits, err := p.GetNextWorkRequired(preIndex, header, params)
	if err != nil {
		return errors.Wrap(err, "ContextualCheckBlockHeader")
	}
	if header.Bits != bits {
		log.Print("lblock", "debug", "ContextualCheckBlockHeader bits %08x, want %08x at height %d",
			header.Bits, bits, preIndex.Height+1)
		return reject(errcode.ErrorBadDiffBits)
	}
	return nil
}

// CheckHeaderTransition is the history-free bound on the bits of header at
// height following prev. It is used where the full chain is not available.
func CheckHeaderTransition(prev, header *block.BlockHeader, height int32, params *consensus.Param) error {
	p := new(pow.Pow)
	if !p.PermittedDifficultyTransition(params, height, prev.Bits, header.Bits,
		prev.Time, header.Time, prev.Version, header.Version) {
		log.Print("lblock", "debug", "CheckHeaderTransition %08x -> %08x not permitted at height %d",
			prev.Bits, header.Bits, height)
		return reject(errcode.ErrorBadDiffTransition)
	}
	return nil
}
