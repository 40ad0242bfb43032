package chain

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/lyncoin/lyncoin/log"
	"github.com/lyncoin/lyncoin/model/block"
	"github.com/lyncoin/lyncoin/model/blockindex"
	"github.com/lyncoin/lyncoin/model/pow"
	"github.com/lyncoin/lyncoin/util"
)

// Chain An in-memory indexed chain of headers rooted at a trusted anchor.
// The anchor stands in for history the process does not hold, so ancestor
// lookups below it find nothing. A Chain has a single writer; indexes it
// hands out are never modified after linking.
type Chain struct {
	// active[i] is the block at height anchor.Height+i on the best branch
	active   []*blockindex.BlockIndex
	indexMap map[util.Hash]*blockindex.BlockIndex
}

// NewChain starts a chain at anchor, a header trusted to sit at height.
func NewChain(anchor *block.BlockHeader, height int32) *Chain {
	bi := blockindex.NewBlockIndex(anchor)
	bi.Height = height
	pw := pow.Pow{}
	bi.ChainWork = *pw.GetBlockProof(anchor.Bits)
	return &Chain{
		active:   []*blockindex.BlockIndex{bi},
		indexMap: map[util.Hash]*blockindex.BlockIndex{bi.BlockHash: bi},
	}
}

// Anchor Returns the index entry the chain was started from.
func (c *Chain) Anchor() *blockindex.BlockIndex {
	return c.active[0]
}

// Tip Returns the index entry for the tip of this chain.
func (c *Chain) Tip() *blockindex.BlockIndex {
	return c.active[len(c.active)-1]
}

// Height Return the maximal height in the chain.
func (c *Chain) Height() int32 {
	return c.Tip().Height
}

// GetIndex Returns the index entry at a particular height in this chain, or nil
// if no such height exists.
func (c *Chain) GetIndex(height int32) *blockindex.BlockIndex {
	offset := height - c.Anchor().Height
	if offset < 0 || offset >= int32(len(c.active)) {
		return nil
	}

	return c.active[offset]
}

// Contains Efficiently check whether a block is present in this chain.
func (c *Chain) Contains(index *blockindex.BlockIndex) bool {
	if index == nil {
		return false
	}
	return c.GetIndex(index.Height) == index
}

// FindBlockIndex finds blockindex from blockIndexMap
func (c *Chain) FindBlockIndex(hash util.Hash) *blockindex.BlockIndex {
	return c.indexMap[hash]
}

// FindHashInActive finds blockindex from active
func (c *Chain) FindHashInActive(hash util.Hash) *blockindex.BlockIndex {
	bi, ok := c.indexMap[hash]
	if ok && c.Contains(bi) {
		return bi
	}
	return nil
}

func (c *Chain) IndexCount() int {
	return len(c.indexMap)
}

// AddToIndexMap links bi under its parent, found by HashPrevBlock, and
// accumulates its chain work. The parent must already be indexed.
func (c *Chain) AddToIndexMap(bi *blockindex.BlockIndex) error {
	if bi == nil {
		return errors.New("nil blockIndex")
	}
	pre, ok := c.indexMap[bi.Header.HashPrevBlock]
	if !ok {
		return errors.Errorf("parent %s of %s is not indexed",
			bi.Header.HashPrevBlock.ToString(), bi.BlockHash.ToString())
	}
	bi.Prev = pre
	bi.Height = pre.Height + 1
	bi.BuildSkip()
	pw := pow.Pow{}
	bi.ChainWork = *new(big.Int).Add(&pre.ChainWork, pw.GetBlockProof(bi.Header.Bits))

	c.indexMap[bi.BlockHash] = bi
	log.Print("chain", "debug", "AddToIndexMap:%s height %d", bi.BlockHash.ToString(), bi.Height)
	return nil
}

// SetTip makes index the tip, rewriting the active branch back to the fork
// point. index must descend from the anchor.
func (c *Chain) SetTip(index *blockindex.BlockIndex) error {
	anchor := c.Anchor()
	if index == nil || index.GetAncestor(anchor.Height) != anchor {
		return errors.New("new tip does not descend from the anchor")
	}

	tmp := make([]*blockindex.BlockIndex, index.Height-anchor.Height+1)
	copy(tmp, c.active)
	c.active = tmp
	for index != nil && c.active[index.Height-anchor.Height] != index {
		c.active[index.Height-anchor.Height] = index
		index = index.Prev
	}
	return nil
}

// FindFork Find the last common block between this chain and a block index entry.
func (c *Chain) FindFork(blIndex *blockindex.BlockIndex) *blockindex.BlockIndex {
	if blIndex == nil {
		return nil
	}

	if blIndex.Height > c.Height() {
		blIndex = blIndex.GetAncestor(c.Height())
	}

	for blIndex != nil && !c.Contains(blIndex) {
		blIndex = blIndex.Prev
	}
	return blIndex
}
