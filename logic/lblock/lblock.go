package lblock

import (
	"github.com/lyncoin/lyncoin/errcode"
	"github.com/lyncoin/lyncoin/log"
	"github.com/lyncoin/lyncoin/model/block"
	"github.com/lyncoin/lyncoin/model/blockindex"
	"github.com/lyncoin/lyncoin/model/chain"
	"github.com/lyncoin/lyncoin/model/consensus"
	"github.com/lyncoin/lyncoin/model/pow"
)

// AcceptBlockHeader validates bh against its indexed parent, links it into
// c and moves the tip when bh extends the branch with the most work. A
// header whose target would be computed from blocks below the anchor is
// held to the transition bounds instead. A header that is already indexed
// is returned as is.
func AcceptBlockHeader(c *chain.Chain, bh *block.BlockHeader, params *consensus.Param,
	cache *block.PoWHashCache) (*blockindex.BlockIndex, error) {
	bIndex := c.FindBlockIndex(bh.GetHash())
	if bIndex != nil {
		return bIndex, nil
	}

	// This maybe a new blockheader
	if err := CheckBlockHeader(bh, params, cache); err != nil {
		return nil, err
	}

	prev := c.FindBlockIndex(bh.HashPrevBlock)
	if prev == nil {
		log.Print("lblock", "debug", "Find Block in BlockIndexMap err, hash:%s", bh.HashPrevBlock.ToString())
		return nil, errcode.NewError(errcode.RejectInvalid, "bad-prevblk")
	}
	// Below the anchor there is no history to recompute the target from,
	// so only the transition bounds can be checked.
	p := new(pow.Pow)
	if first, ok := p.RetargetFirstHeight(prev, params); ok && first < c.Anchor().Height {
		log.Print("lblock", "debug", "AcceptBlockHeader height %d reads %d below anchor %d, checking transition",
			prev.Height+1, first, c.Anchor().Height)
		if err := CheckHeaderTransition(&prev.Header, bh, prev.Height+1, params); err != nil {
			return nil, err
		}
	} else if err := ContextualCheckBlockHeader(bh, prev, params); err != nil {
		return nil, err
	}

	bIndex = blockindex.NewBlockIndex(bh)
	if err := c.AddToIndexMap(bIndex); err != nil {
		return nil, err
	}
	if bIndex.ChainWork.Cmp(&c.Tip().ChainWork) > 0 {
		if err := c.SetTip(bIndex); err != nil {
			return nil, err
		}
	}
	return bIndex, nil
}

// AcceptBlockHeaders accepts headers in order and stops at the first
// failure, returning how many were accepted before it.
func AcceptBlockHeaders(c *chain.Chain, headers []*block.BlockHeader, params *consensus.Param,
	cache *block.PoWHashCache) (int, error) {
	for i, bh := range headers {
		if _, err := AcceptBlockHeader(c, bh, params, cache); err != nil {
			return i, err
		}
	}
	return len(headers), nil
}
