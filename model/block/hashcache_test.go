package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoWHashCache(t *testing.T) {
	cache, err := NewPoWHashCache(2)
	require.NoError(t, err)

	bh := genesisHeader()
	bh.Version |= VersionHashFlag
	want := bh.GetPoWHash()
	assert.Equal(t, want, cache.PoWHash(bh))
	assert.Equal(t, want, cache.PoWHash(bh))
	assert.Equal(t, 1, cache.Len())

	// a single changed field is a different key
	other := *bh
	other.Nonce++
	assert.Equal(t, other.GetPoWHash(), cache.PoWHash(&other))
	assert.NotEqual(t, want, cache.PoWHash(&other))
	assert.Equal(t, 2, cache.Len())

	var none *PoWHashCache
	assert.Equal(t, want, none.PoWHash(bh))
	assert.Equal(t, 0, none.Len())

	_, err = NewPoWHashCache(0)
	assert.Error(t, err)
}
