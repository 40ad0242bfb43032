package lblock

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/lyncoin/lyncoin/errcode"
	"github.com/lyncoin/lyncoin/model/block"
	"github.com/lyncoin/lyncoin/model/blockindex"
	"github.com/lyncoin/lyncoin/model/chainparams"
	"github.com/lyncoin/lyncoin/model/consensus"
	"github.com/lyncoin/lyncoin/model/pow"
	"github.com/lyncoin/lyncoin/util"
)

// mainNetGenesisHash is the hash of the first block in the block chain for the
// main network (genesis block).
var mainNetGenesisHash = util.Hash([util.Hash256Size]byte{ // Make go vet happy.
	0x6f, 0xe2, 0x8c, 0x0a, 0xb6, 0xf1, 0xb3, 0x72,
	0xc1, 0xa6, 0xa2, 0x46, 0xae, 0x63, 0xf7, 0x4f,
	0x93, 0x1e, 0x83, 0x65, 0xe1, 0x5a, 0x08, 0x9c,
	0x68, 0xd6, 0x19, 0x00, 0x00, 0x00, 0x00, 0x00,
})

// mainNetGenesisMerkleRoot is the hash of the first transaction in the genesis
// block for the main network.
var mainNetGenesisMerkleRoot = util.Hash([util.Hash256Size]byte{ // Make go vet happy.
	0x3b, 0xa3, 0xed, 0xfd, 0x7a, 0x7b, 0x12, 0xb2,
	0x7a, 0xc7, 0x2c, 0x3e, 0x67, 0x76, 0x8f, 0x61,
	0x7f, 0xc8, 0x1b, 0xc3, 0x88, 0x8a, 0x51, 0x32,
	0x3a, 0x9f, 0xb8, 0xaa, 0x4b, 0x1e, 0x5e, 0x4a,
})

var firstBlockHash = util.Hash([util.Hash256Size]byte{
	0x48, 0x60, 0xeb, 0x18, 0xbf, 0x1b, 0x16, 0x20,
	0xe3, 0x7e, 0x94, 0x90, 0xfc, 0x8a, 0x42, 0x75,
	0x14, 0x41, 0x6f, 0xd7, 0x51, 0x59, 0xab, 0x86,
	0x68, 0x8e, 0x9a, 0x83, 0x00, 0x00, 0x00, 0x00,
})

func genesisHeader() *block.BlockHeader {
	return &block.BlockHeader{
		Version:    1,
		MerkleRoot: mainNetGenesisMerkleRoot,
		Time:       1231006505,
		Bits:       0x1d00ffff,
		Nonce:      2083236893,
	}
}

func firstBlockHeader() *block.BlockHeader {
	return &block.BlockHeader{
		Version:       1,
		HashPrevBlock: mainNetGenesisHash,
		MerkleRoot:    *util.HashFromString("0e3e2357e806b6cdb1f70b54c3a3a17b6714ee1f0e68bebb44a74b1efd512098"),
		Time:          1231469665,
		Bits:          0x1d00ffff,
		Nonce:         2573394689,
	}
}

// mine bumps the nonce until the header's work hash meets or, with
// want false, misses its bits.
func mine(t *testing.T, bh *block.BlockHeader, params *consensus.Param, want bool) {
	t.Helper()
	p := new(pow.Pow)
	for i := 0; i < 1<<16; i++ {
		hash := bh.GetPoWHash()
		if p.CheckProofOfWork(&hash, bh.Bits, params) == want {
			return
		}
		bh.Nonce++
	}
	t.Fatalf("no nonce found for bits %08x", bh.Bits)
}

func regtestHeader(t *testing.T, prev *util.Hash, time uint32) *block.BlockHeader {
	params := &chainparams.RegressionNetParams.Param
	bh := &block.BlockHeader{HashPrevBlock: *prev, Time: time, Bits: 0x207fffff}
	assert.NoError(t, bh.SetBaseVersion(4, params.AuxpowChainID))
	return bh
}

func TestBlockHeaderGetHash(t *testing.T) {
	gen := genesisHeader()
	hash := gen.GetHash()
	assert.Equal(t, mainNetGenesisHash, hash)

	first := firstBlockHeader()
	hash = first.GetHash()
	assert.Equal(t, firstBlockHash, hash)
}

func TestCheckBlockHeader(t *testing.T) {
	params := &chainparams.MainNetParams.Param
	assert.NoError(t, CheckBlockHeader(firstBlockHeader(), params, nil))

	cache, err := block.NewPoWHashCache(8)
	assert.NoError(t, err)
	assert.NoError(t, CheckBlockHeader(firstBlockHeader(), params, cache))
	assert.Equal(t, 1, cache.Len())

	bh := firstBlockHeader()
	bh.Nonce++
	err = CheckBlockHeader(bh, params, cache)
	assert.Error(t, err)
	assert.Equal(t, errcode.ErrorPowCheckErr.String(), err.(errcode.ProjectError).Desc)
	code, ok := errcode.HasRejectCode(err)
	assert.True(t, ok)
	assert.Equal(t, errcode.RejectInvalid, code)

	// bits easier than the limit never qualify
	bh = firstBlockHeader()
	bh.Bits = 0x1e00ffff
	assert.Error(t, CheckBlockHeader(bh, params, nil))
}

func TestCheckBlockHeaderChainID(t *testing.T) {
	params := &chainparams.RegressionNetParams.Param

	bh := regtestHeader(t, &util.HashZero, 1296688602)
	mine(t, bh, params, true)
	assert.NoError(t, CheckBlockHeader(bh, params, nil))

	bh = &block.BlockHeader{Time: 1296688602, Bits: 0x207fffff}
	assert.NoError(t, bh.SetBaseVersion(4, params.AuxpowChainID+1))
	mine(t, bh, params, true)
	err := CheckBlockHeader(bh, params, nil)
	assert.Error(t, err)
	assert.Equal(t, errcode.ErrorBadChainID.String(), err.(errcode.ProjectError).Desc)

	// legacy headers carry no chain id
	bh = &block.BlockHeader{Version: 1, Time: 1296688602, Bits: 0x207fffff}
	mine(t, bh, params, true)
	assert.NoError(t, CheckBlockHeader(bh, params, nil))
}

func TestContextualCheckBlockHeader(t *testing.T) {
	params := &chainparams.MainNetParams.Param
	prev := blockindex.NewBlockIndex(genesisHeader())

	assert.NoError(t, ContextualCheckBlockHeader(firstBlockHeader(), prev, params))

	bh := firstBlockHeader()
	bh.Bits = 0x1c00ffff
	err := ContextualCheckBlockHeader(bh, prev, params)
	assert.Error(t, err)
	assert.Equal(t, errcode.ErrorBadDiffBits.String(), err.(errcode.ProjectError).Desc)

	err = ContextualCheckBlockHeader(firstBlockHeader(), nil, params)
	assert.True(t, errcode.IsErrorCode(errors.Cause(err), errcode.ErrorNilChainTip))
}

func TestCheckHeaderTransition(t *testing.T) {
	params := &chainparams.MainNetParams.Param
	prev := genesisHeader()
	next := firstBlockHeader()
	assert.NoError(t, CheckHeaderTransition(prev, next, 1, params))

	next.Bits = 0x1c00ffff
	err := CheckHeaderTransition(prev, next, 1, params)
	assert.Error(t, err)
	assert.Equal(t, errcode.ErrorBadDiffTransition.String(), err.(errcode.ProjectError).Desc)

	// retarget heights accept changes within the clamp
	assert.Error(t, CheckHeaderTransition(prev, next, 2016, params))
	next.Bits = 0x1c7fff80
	assert.NoError(t, CheckHeaderTransition(prev, next, 2016, params))
}
