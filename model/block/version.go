package block

import (
	"github.com/pkg/errors"
)

// Version layout of merge-mined headers: bits 0-7 carry the base version,
// bit 8 flags an auxpow header, bit 15 selects the secondary hash functions
// and the chain id lives from bit 16 up.
const (
	VersionAuxpow     int32 = 1 << 8
	VersionHashFlag   int32 = 0x8000
	VersionChainStart int32 = 1 << 16
)

func (bh *BlockHeader) GetBaseVersion() int32 {
	return bh.Version % VersionAuxpow
}

func (bh *BlockHeader) GetChainID() int32 {
	return bh.Version >> 16
}

func (bh *BlockHeader) IsAuxpow() bool {
	return bh.Version&VersionAuxpow != 0
}

func (bh *BlockHeader) SetAuxpowVersion(auxpow bool) {
	if auxpow {
		bh.Version |= VersionAuxpow
	} else {
		bh.Version &^= VersionAuxpow
	}
}

// IsLegacy reports a header predating merge mining, which carries no
// chain id.
func (bh *BlockHeader) IsLegacy() bool {
	return bh.Version == 1
}

// SetBaseVersion sets the base version and chain id of a header that is
// not yet flagged auxpow.
func (bh *BlockHeader) SetBaseVersion(base, chainID int32) error {
	if base < 1 || base >= VersionAuxpow {
		return errors.Errorf("base version %d out of range [1, %d)", base, VersionAuxpow)
	}
	if bh.IsAuxpow() {
		return errors.New("cannot set base version of an auxpow header")
	}
	bh.Version = base | chainID*VersionChainStart
	return nil
}
