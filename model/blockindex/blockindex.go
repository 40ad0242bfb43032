package blockindex

import (
	"fmt"
	"math/big"

	"github.com/lyncoin/lyncoin/model/block"
	"github.com/lyncoin/lyncoin/util"
)

/**
 * The block chain is a tree shaped structure starting with the genesis block at
 * the root, with each block potentially having multiple candidates to be the
 * next block. A blockIndex may have multiple prev pointing to it, but at most
 * one of them can be part of the currently active branch.
 *
 * An index is immutable once linked, so readers on several tips may walk the
 * same nodes without locking.
 */
type BlockIndex struct {
	Header    block.BlockHeader
	BlockHash util.Hash
	// pointer to the index of the predecessor of this block
	Prev *BlockIndex
	// pointer to the index of some further predecessor of this block
	Skip *BlockIndex
	// height of the entry in the chain. The genesis block has height 0
	Height int32
	// total amount of work (expected number of hashes) in the chain up to and including this block
	ChainWork big.Int
}

func NewBlockIndex(blkHeader *block.BlockHeader) *BlockIndex {
	bi := new(BlockIndex)
	bi.Header = *blkHeader
	bi.BlockHash = blkHeader.GetHash()
	return bi
}

func (bIndex *BlockIndex) GetBlockHeader() *block.BlockHeader {
	return &bIndex.Header
}

func (bIndex *BlockIndex) GetBlockHash() *util.Hash {
	return &bIndex.BlockHash
}

func (bIndex *BlockIndex) GetBlockTime() int64 {
	return int64(bIndex.Header.Time)
}

func (bIndex *BlockIndex) GetBits() uint32 {
	return bIndex.Header.Bits
}

func (bIndex *BlockIndex) GetVersion() int32 {
	return bIndex.Header.Version
}

// BuildSkip links the skip pointer. Prev must already be set.
func (bIndex *BlockIndex) BuildSkip() {
	if bIndex.Prev != nil {
		bIndex.Skip = bIndex.Prev.GetAncestor(getSkipHeight(bIndex.Height))
	}
}

// Turn the lowest '1' bit in the binary representation of a number into a '0'.
func invertLowestOne(n int32) int32 {
	return n & (n - 1)
}

// Compute what height to jump back to with the skip pointer.
func getSkipHeight(height int32) int32 {
	if height < 2 {
		return 0
	}

	// Determine which height to jump back to. Any number strictly lower than height is acceptable,
	// but the following expression seems to perform well in simulations (max 110 steps to go back
	// up to 2**18 blocks).
	if (height & 1) > 0 {
		return invertLowestOne(invertLowestOne(height-1)) + 1
	}
	return invertLowestOne(height)
}

// GetAncestor returns the ancestor at height, or nil when height is outside
// [0, Height] or the index does not reach that far back.
func (bIndex *BlockIndex) GetAncestor(height int32) *BlockIndex {
	if height > bIndex.Height || height < 0 {
		return nil
	}
	indexWalk := bIndex
	heightWalk := bIndex.Height
	for heightWalk > height {
		heightSkip := getSkipHeight(heightWalk)
		heightSkipPrev := getSkipHeight(heightWalk - 1)
		if indexWalk.Skip != nil && (heightSkip == height ||
			(heightSkip > height && !(heightSkipPrev < heightSkip-2 && heightSkipPrev >= height))) {
			// Only follow skip if prev->skip isn't better than skip->prev.
			indexWalk = indexWalk.Skip
			heightWalk = heightSkip
		} else {
			if indexWalk.Prev == nil {
				return nil
			}
			indexWalk = indexWalk.Prev
			heightWalk--
		}
	}

	return indexWalk
}

func (bIndex *BlockIndex) ToString() string {
	return fmt.Sprintf("BlockIndex(pprev=%p, height=%d, bits=%08x, hashBlock=%s)", bIndex.Prev,
		bIndex.Height, bIndex.Header.Bits, bIndex.BlockHash.ToString())
}
