package main

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/lyncoin/lyncoin/conf"
	"github.com/lyncoin/lyncoin/errcode"
	"github.com/lyncoin/lyncoin/log"
	"github.com/lyncoin/lyncoin/logic/lblock"
	"github.com/lyncoin/lyncoin/model/block"
	"github.com/lyncoin/lyncoin/model/chain"
	"github.com/lyncoin/lyncoin/model/chainparams"
	"github.com/lyncoin/lyncoin/model/consensus"
)

type options struct {
	Header  string `long:"header" description:"hex encoded 80 byte header to check"`
	Prev    string `long:"prev" description:"hex encoded parent of --header, enables the transition check"`
	Height  int32  `long:"height" description:"height of --header, or of the first line with --headers"`
	Headers string `long:"headers" description:"file of hex headers, one per line, the first is the anchor"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	opts := new(options)
	confOpts, err := conf.InitArgs(args, opts)
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			return 0
		}
		fmt.Fprintln(out, err)
		return 2
	}

	cfg, err := conf.InitConfig(confOpts)
	if err != nil {
		fmt.Fprintln(out, err)
		return 2
	}
	conf.Cfg = cfg
	if err := os.MkdirAll(cfg.Log.Dir, 0700); err != nil {
		fmt.Fprintln(out, err)
		return 2
	}
	if err := log.InitLogger(cfg.Log.Dir, cfg.Log.Level, cfg.Log.Module); err != nil {
		fmt.Fprintln(out, err)
		return 2
	}

	params, err := chainparams.InitActiveNetParams(cfg.Network, cfg.Consensus.ParamsFile)
	if err != nil {
		fmt.Fprintln(out, err)
		return 2
	}
	cache, err := block.NewPoWHashCache(cfg.Cache.PowHashSize)
	if err != nil {
		fmt.Fprintln(out, err)
		return 2
	}
	log.Info("powcheck network %s, %s", params.Name, confOpts.String())

	switch {
	case opts.Headers != "":
		err = checkChain(out, opts.Headers, opts.Height, &params.Param, cache)
	case opts.Header != "":
		err = checkHeader(out, opts, &params.Param, cache)
	default:
		fmt.Fprintln(out, "one of --header and --headers is required")
		return 2
	}
	if err != nil {
		fmt.Fprintln(out, "rejected:", err)
		return 1
	}
	return 0
}

func decodeHeader(str string) (*block.BlockHeader, error) {
	raw, err := hex.DecodeString(strings.TrimSpace(str))
	if err != nil {
		return nil, errcode.NewError(errcode.RejectMalformed, "header is not hex: "+err.Error())
	}
	if len(raw) != block.BlockHeaderLength {
		return nil, errcode.NewError(errcode.RejectMalformed,
			fmt.Sprintf("header is %d bytes, want %d", len(raw), block.BlockHeaderLength))
	}
	bh := block.NewBlockHeader()
	if err := bh.Deserialize(bytes.NewReader(raw)); err != nil {
		return nil, errcode.NewError(errcode.RejectMalformed, err.Error())
	}
	return bh, nil
}

func checkHeader(out io.Writer, opts *options, params *consensus.Param, cache *block.PoWHashCache) error {
	bh, err := decodeHeader(opts.Header)
	if err != nil {
		return err
	}
	hash := bh.GetHash()
	powHash := cache.PoWHash(bh)
	fmt.Fprintf(out, "hash: %s\npowhash: %s\nbits: %08x\n", hash.ToString(), powHash.ToString(), bh.Bits)

	if err := lblock.CheckBlockHeader(bh, params, cache); err != nil {
		return err
	}
	fmt.Fprintln(out, "pow: ok")

	if opts.Prev == "" {
		return nil
	}
	prev, err := decodeHeader(opts.Prev)
	if err != nil {
		return err
	}
	if err := lblock.CheckHeaderTransition(prev, bh, opts.Height, params); err != nil {
		return err
	}
	fmt.Fprintln(out, "transition: ok")
	return nil
}

func checkChain(out io.Writer, path string, height int32, params *consensus.Param,
	cache *block.PoWHashCache) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var c *chain.Chain
	line := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		line++
		bh, err := decodeHeader(text)
		if err != nil {
			return errors.Wrapf(err, "line %d", line)
		}
		if c == nil {
			c = chain.NewChain(bh, height)
			continue
		}
		if _, err := lblock.AcceptBlockHeader(c, bh, params, cache); err != nil {
			hash := bh.GetHash()
			return errors.Wrapf(err, "line %d header %s", line, hash.ToString())
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if c == nil {
		return errors.New("no headers")
	}
	tip := c.Tip()
	fmt.Fprintf(out, "headers: %d\ntip: %s\nheight: %d\nchainwork: %s\n",
		c.IndexCount(), tip.BlockHash.ToString(), tip.Height, tip.ChainWork.String())
	return nil
}
