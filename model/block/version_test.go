package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionHelpers(t *testing.T) {
	bh := NewBlockHeader()
	assert.NoError(t, bh.SetBaseVersion(4, 0x0b0d))
	assert.Equal(t, int32(0x0b0d0004), bh.Version)
	assert.Equal(t, int32(0x0b0d), bh.GetChainID())
	assert.Equal(t, int32(4), bh.GetBaseVersion())
	assert.False(t, bh.IsAuxpow())
	assert.False(t, bh.IsLegacy())

	bh.SetAuxpowVersion(true)
	assert.True(t, bh.IsAuxpow())
	assert.Equal(t, int32(4), bh.GetBaseVersion())
	assert.Error(t, bh.SetBaseVersion(4, 0x0b0d))

	bh.SetAuxpowVersion(false)
	assert.False(t, bh.IsAuxpow())
	assert.Equal(t, int32(0x0b0d0004), bh.Version)

	assert.Error(t, bh.SetBaseVersion(0, 1))
	assert.Error(t, bh.SetBaseVersion(VersionAuxpow, 1))

	legacy := &BlockHeader{Version: 1}
	assert.True(t, legacy.IsLegacy())
	assert.Equal(t, int32(0), legacy.GetChainID())
}
