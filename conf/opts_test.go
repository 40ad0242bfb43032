package conf

import (
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
)

var args = []string{
	"--datadir=/test",
	"--regtest",
	"--conf=/test/lyncoin.yml",
}

func TestInitArgs(t *testing.T) {
	opts, err := InitArgs(args, nil)
	if err != nil {
		t.Fatal(err.Error())
	}

	assert.Equal(t, "/test", opts.DataDir)
	assert.Equal(t, "/test/lyncoin.yml", opts.ConfFile)
	assert.True(t, opts.RegTest)
	assert.False(t, opts.TestNet)

	network, err := opts.Network()
	assert.NoError(t, err)
	assert.Equal(t, "regtest", network)

	// test args error case
	_, err = InitArgs([]string{"-err"}, nil)
	assert.Error(t, err)

	_, err = InitArgs([]string{"--help"}, nil)
	flagsErr, ok := err.(*flags.Error)
	if assert.True(t, ok) {
		assert.Equal(t, flags.ErrHelp, flagsErr.Type)
	}
}

func TestNetworkConflict(t *testing.T) {
	opts, err := InitArgs([]string{"--testnet", "--signet"}, nil)
	assert.NoError(t, err)
	_, err = opts.Network()
	assert.Error(t, err)

	opts, err = InitArgs(nil, nil)
	assert.NoError(t, err)
	network, err := opts.Network()
	assert.NoError(t, err)
	assert.Equal(t, "", network)
}

func TestInitArgsCommandGroup(t *testing.T) {
	command := &struct {
		Header string `long:"header"`
		Height int32  `long:"height"`
	}{}
	opts, err := InitArgs([]string{"--testnet", "--header", "00ff", "--height", "7"}, command)
	assert.NoError(t, err)
	assert.True(t, opts.TestNet)
	assert.Equal(t, "00ff", command.Header)
	assert.Equal(t, int32(7), command.Height)

	_, err = InitArgs([]string{"--header", "00ff"}, nil)
	assert.Error(t, err)
}
