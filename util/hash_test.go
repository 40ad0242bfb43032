package util

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashToStringRoundTrip(t *testing.T) {
	str := "000000002b8761c63862f5047afb9ac5fdd1c67e87cd376c387628bc772bb39d"
	hash := HashFromString(str)
	assert.Equal(t, str, hash.ToString())
	assert.Equal(t, byte(0x9d), hash[0])
	assert.Equal(t, byte(0x00), hash[31])
}

func TestDecodeHashShortAndPrefixed(t *testing.T) {
	hash := HashFromString("0x1")
	assert.Equal(t, byte(1), hash[0])
	assert.Equal(t, "0000000000000000000000000000000000000000000000000000000000000001", hash.ToString())

	_, err := GetHashFromStr("zz")
	assert.Error(t, err)

	_, err = DecodeHash("0000000000000000000000000000000000000000000000000000000000000000ff")
	assert.Error(t, err)
}

func TestHashBigIntConversion(t *testing.T) {
	hash := HashFromString("00000000ffffffffffffffffffffffffffffffffffffffffffffffffffffffff")
	want := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 224), big.NewInt(1))
	assert.Equal(t, 0, hash.ToBigInt().Cmp(want))

	back, err := HashFromBig(want)
	assert.NoError(t, err)
	assert.True(t, back.IsEqual(hash))

	_, err = HashFromBig(new(big.Int).Lsh(big.NewInt(1), 256))
	assert.Error(t, err)
	_, err = HashFromBig(big.NewInt(-1))
	assert.Error(t, err)
}

func TestHashCmp(t *testing.T) {
	low := HashFromString("01")
	high := HashFromString("0100")
	assert.Equal(t, -1, low.Cmp(high))
	assert.Equal(t, 1, high.Cmp(low))
	assert.Equal(t, 0, low.Cmp(HashFromString("1")))
	assert.True(t, HashZero.IsNull())
	assert.False(t, low.IsNull())
}
