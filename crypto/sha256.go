package crypto

import (
	"github.com/lyncoin/lyncoin/util"
	"github.com/minio/sha256-simd"
)

func Sha256Bytes(b []byte) []byte {
	hash := sha256.Sum256(b)
	return hash[:util.Hash256Size]
}

func Sha256Hash(b []byte) util.Hash {
	return util.Hash(sha256.Sum256(b))
}

func DoubleSha256Bytes(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

func DoubleSha256Hash(b []byte) util.Hash {
	first := sha256.Sum256(b)
	return util.Hash(sha256.Sum256(first[:util.Hash256Size]))
}
