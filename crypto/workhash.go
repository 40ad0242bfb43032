package crypto

import (
	"github.com/lyncoin/lyncoin/util"
	"golang.org/x/crypto/scrypt"
	"golang.org/x/crypto/sha3"
)

// Scrypt parameters of the merge-mining work hash.
const (
	ScryptN      = 1024
	ScryptR      = 1
	ScryptP      = 1
	scryptKeyLen = util.Hash256Size
)

// Sha3Hash returns the single-pass SHA3-256 digest of b.
func Sha3Hash(b []byte) util.Hash {
	return util.Hash(sha3.Sum256(b))
}

// ScryptHash returns scrypt(b, b, N, r, p) truncated to 32 bytes. The input
// doubles as its own salt so the digest depends on the header bytes only.
func ScryptHash(b []byte) util.Hash {
	key, err := scrypt.Key(b, b, ScryptN, ScryptR, ScryptP, scryptKeyLen)
	if err != nil {
		// only reachable with invalid constant parameters
		panic(err)
	}
	var hash util.Hash
	copy(hash[:], key)
	return hash
}
