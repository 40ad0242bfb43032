package block

import (
	"github.com/hashicorp/golang-lru"
	"github.com/lyncoin/lyncoin/util"
)

// PoWHashCache memoizes work hashes within one validation pass. Entries are
// keyed by the full serialized header, so a hit always refers to identical
// bytes. A cache must not outlive the pass that created it.
type PoWHashCache struct {
	cache *lru.Cache
}

func NewPoWHashCache(size int) (*PoWHashCache, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &PoWHashCache{cache: cache}, nil
}

// PoWHash returns bh.GetPoWHash(), computing it at most once per distinct
// header. A nil cache computes every time.
func (c *PoWHashCache) PoWHash(bh *BlockHeader) util.Hash {
	if c == nil {
		return bh.GetPoWHash()
	}
	var key [BlockHeaderLength]byte
	copy(key[:], bh.Bytes())
	if v, ok := c.cache.Get(key); ok {
		return v.(util.Hash)
	}
	hash := bh.GetPoWHash()
	c.cache.Add(key, hash)
	return hash
}

func (c *PoWHashCache) Len() int {
	if c == nil {
		return 0
	}
	return c.cache.Len()
}
