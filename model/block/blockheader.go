package block

import (
	"bytes"
	"fmt"
	"io"

	"github.com/lyncoin/lyncoin/crypto"
	"github.com/lyncoin/lyncoin/util"
)

type BlockHeader struct {
	Version       int32
	HashPrevBlock util.Hash
	MerkleRoot    util.Hash
	Time          uint32
	Bits          uint32
	Nonce         uint32
}

const BlockHeaderLength = 16 + util.Hash256Size*2

func NewBlockHeader() *BlockHeader {
	return &BlockHeader{}
}

func (bh *BlockHeader) IsNull() bool {
	return bh.Bits == 0
}

func (bh *BlockHeader) GetBlockTime() int64 {
	return int64(bh.Time)
}

func (bh *BlockHeader) SetNull() {
	*bh = BlockHeader{}
}

func (bh *BlockHeader) Serialize(w io.Writer) error {
	return util.WriteElements(w, bh.Version, &bh.HashPrevBlock, &bh.MerkleRoot, bh.Time, bh.Bits, bh.Nonce)
}

func (bh *BlockHeader) Deserialize(r io.Reader) error {
	return util.ReadElements(r, &bh.Version, &bh.HashPrevBlock, &bh.MerkleRoot, &bh.Time, &bh.Bits, &bh.Nonce)
}

// Bytes returns the 80-byte wire serialization every header digest covers.
func (bh *BlockHeader) Bytes() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, BlockHeaderLength))
	// writes to a bytes.Buffer cannot fail
	_ = bh.Serialize(buf)
	return buf.Bytes()
}

// GetHash returns the identity hash selected by the header's own version.
func (bh *BlockHeader) GetHash() util.Hash {
	return bh.GetHashForVersion(bh.Version)
}

// GetHashForVersion returns the identity hash of the header with the digest
// picked by version instead of the header's own version. The serialized
// bytes are always the header's own.
func (bh *BlockHeader) GetHashForVersion(version int32) util.Hash {
	if version&VersionHashFlag != 0 {
		return crypto.Sha3Hash(bh.Bytes())
	}
	return crypto.DoubleSha256Hash(bh.Bytes())
}

// GetPoWHash returns the hash compared against the target.
func (bh *BlockHeader) GetPoWHash() util.Hash {
	return bh.GetPoWHashForVersion(bh.Version)
}

func (bh *BlockHeader) GetPoWHashForVersion(version int32) util.Hash {
	if version&VersionHashFlag != 0 {
		return crypto.ScryptHash(bh.Bytes())
	}
	return bh.GetHashForVersion(version)
}

func (bh *BlockHeader) String() string {
	hash := bh.GetHash()
	return fmt.Sprintf("Block version : %d, hashPrevBlock : %s, hashMerkleRoot : %s,"+
		"Time : %d, Bits : %08x, nonce : %d, BlockHash : %s\n", bh.Version, bh.HashPrevBlock.ToString(),
		bh.MerkleRoot.ToString(), bh.Time, bh.Bits, bh.Nonce, hash.ToString())
}
