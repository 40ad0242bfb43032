package pow

import (
	"math/big"

	"github.com/lyncoin/lyncoin/util"
)

var (
	// bigOne is 1 represented as a big.Int. It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// oneLsh256 is 1 shifted left 256 bits.
	oneLsh256 = new(big.Int).Lsh(bigOne, 256)

	// mask256 keeps the low 256 bits, the width every target is held in.
	mask256 = new(big.Int).Sub(oneLsh256, bigOne)
)

// DecodeCompact expands a compact target. The mantissa is the low 23 bits,
// bit 23 is the sign and the top byte is the length in bytes of the full
// value. The returned magnitude wraps to 256 bits; negative and overflow
// report what the encoding claims, with a zero mantissa never flagging
// either.
func DecodeCompact(compact uint32) (target *big.Int, negative bool, overflow bool) {
	size := compact >> 24
	word := compact & 0x007fffff

	target = new(big.Int)
	if size <= 3 {
		word >>= 8 * (3 - size)
		target.SetUint64(uint64(word))
	} else {
		target.SetUint64(uint64(word))
		target.Lsh(target, 8*uint(size-3))
		target.And(target, mask256)
	}

	negative = word != 0 && compact&0x00800000 != 0
	overflow = word != 0 && (size > 34 ||
		(word > 0xff && size > 33) ||
		(word > 0xffff && size > 32))
	return
}

// CompactToBig returns the magnitude of the compact target, ignoring the
// sign and overflow flags.
func CompactToBig(compact uint32) *big.Int {
	target, _, _ := DecodeCompact(compact)
	return target
}

// BigToCompact encodes n with the shortest length whose mantissa does not
// set the sign bit. Mantissa bits that do not fit are truncated.
func BigToCompact(n *big.Int) uint32 {
	if n.Sign() == 0 {
		return 0
	}

	mag := new(big.Int).Abs(n)
	size := uint32((mag.BitLen() + 7) / 8)
	var compact uint32
	if size <= 3 {
		compact = uint32(mag.Uint64()) << (8 * (3 - size))
	} else {
		compact = uint32(new(big.Int).Rsh(mag, 8*uint(size-3)).Uint64())
	}

	// the sign bit would flip the meaning, so move one byte into the length
	if compact&0x00800000 != 0 {
		compact >>= 8
		size++
	}
	compact |= size << 24
	if n.Sign() < 0 && compact&0x007fffff != 0 {
		compact |= 0x00800000
	}
	return compact
}

// HashToBig converts a hash into a big.Int that can be used to perform
// math comparisons.
func HashToBig(hash *util.Hash) *big.Int {
	return hash.ToBigInt()
}

// TargetToCompact clamps target to limit and encodes it.
func TargetToCompact(target, limit *big.Int) uint32 {
	if target.Cmp(limit) > 0 {
		return BigToCompact(limit)
	}
	return BigToCompact(target)
}
