package util

import (
	"encoding/hex"
	"fmt"
	"math/big"
)

const (
	Hash256Size       = 32
	MaxHashStringSize = Hash256Size * 2
)

// Hash is a 256-bit value stored in the byte order the digest produced it,
// which is the little-endian order of the uint256 it represents.
type Hash [Hash256Size]byte

var HashZero = Hash{}

// ToString returns the conventional display form: byte-reversed hex.
func (hash *Hash) ToString() string {
	bytes := hash.GetCloneBytes()
	for i := 0; i < Hash256Size/2; i++ {
		bytes[i], bytes[Hash256Size-1-i] = bytes[Hash256Size-1-i], bytes[i]
	}
	return hex.EncodeToString(bytes)
}

func (hash Hash) String() string {
	return hash.ToString()
}

func (hash *Hash) GetCloneBytes() []byte {
	bytes := make([]byte, Hash256Size)
	copy(bytes, hash[:])
	return bytes
}

// ToBigInt interprets the hash as a little-endian 256-bit unsigned integer.
func (hash *Hash) ToBigInt() *big.Int {
	buf := hash.GetCloneBytes()
	for i := 0; i < Hash256Size/2; i++ {
		buf[i], buf[Hash256Size-1-i] = buf[Hash256Size-1-i], buf[i]
	}
	return new(big.Int).SetBytes(buf)
}

// Cmp compares two hashes as 256-bit unsigned integers.
func (hash *Hash) Cmp(other *Hash) int {
	for i := Hash256Size - 1; i >= 0; i-- {
		switch {
		case hash[i] < other[i]:
			return -1
		case hash[i] > other[i]:
			return 1
		}
	}
	return 0
}

func (hash *Hash) SetBytes(bytes []byte) error {
	length := len(bytes)
	if length != Hash256Size {
		return fmt.Errorf("invalid hash length of %v , want %v", length, Hash256Size)
	}
	copy(hash[:], bytes)
	return nil
}

func (hash *Hash) IsEqual(target *Hash) bool {
	if hash == nil && target == nil {
		return true
	}
	if hash == nil || target == nil {
		return false
	}
	return *hash == *target
}

func (hash *Hash) IsNull() bool {
	return *hash == HashZero
}

// HashFromBig converts a non-negative integer below 2^256 into a Hash.
func HashFromBig(n *big.Int) (*Hash, error) {
	if n.Sign() < 0 || n.BitLen() > Hash256Size*8 {
		return nil, fmt.Errorf("value %s does not fit in %d bytes", n.Text(16), Hash256Size)
	}
	var be [Hash256Size]byte
	n.FillBytes(be[:])
	hash := new(Hash)
	for i := 0; i < Hash256Size; i++ {
		hash[i] = be[Hash256Size-1-i]
	}
	return hash, nil
}

func GetHashFromStr(hashStr string) (*Hash, error) {
	bytes, err := DecodeHash(hashStr)
	if err != nil {
		return nil, err
	}
	hash := new(Hash)
	if err = hash.SetBytes(bytes); err != nil {
		return nil, err
	}
	return hash, nil
}

// DecodeHash decodes the display form (byte-reversed hex, optional 0x
// prefix, leading zeros may be omitted) into storage order.
func DecodeHash(src string) (bytes []byte, err error) {
	if len(src) >= 2 && src[0] == '0' && (src[1] == 'x' || src[1] == 'X') {
		src = src[2:]
	}
	if len(src) > MaxHashStringSize {
		return nil, fmt.Errorf("max hash string length is %v bytes", MaxHashStringSize)
	}
	var srcBytes []byte
	var srcLen = len(src)
	if srcLen%2 == 0 {
		srcBytes = []byte(src)
	} else {
		srcBytes = make([]byte, 1+srcLen)
		srcBytes[0] = '0'
		copy(srcBytes[1:], src)
	}
	var reversedHash = make([]byte, Hash256Size)
	_, err = hex.Decode(reversedHash[Hash256Size-hex.DecodedLen(len(srcBytes)):], srcBytes)
	if err != nil {
		return
	}
	bytes = make([]byte, Hash256Size)
	for i, b := range reversedHash[:Hash256Size/2] {
		bytes[i], bytes[Hash256Size-1-i] = reversedHash[Hash256Size-1-i], b
	}
	return
}

// HashFromString is GetHashFromStr for literals known to be valid.
func HashFromString(hexString string) *Hash {
	hash, err := GetHashFromStr(hexString)
	if err != nil {
		panic(err)
	}
	return hash
}
