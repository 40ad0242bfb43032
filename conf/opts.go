package conf

import (
	"fmt"

	"github.com/jessevdk/go-flags"
)

type Opts struct {
	DataDir  string `long:"datadir" description:"specified program data dir"`
	ConfFile string `long:"conf" description:"path of the yaml configuration file"`

	RegTest bool `long:"regtest" description:"use the regression test network"`
	TestNet bool `long:"testnet" description:"use the test network"`
	SigNet  bool `long:"signet" description:"use the signet network"`
}

// InitArgs parses the process arguments into Opts. A non-nil command
// struct is registered as an extra option group and filled by the same
// parse. A help request is returned as a *flags.Error of type
// flags.ErrHelp.
func InitArgs(args []string, command interface{}) (*Opts, error) {
	opts := new(Opts)
	parser := flags.NewParser(opts, flags.Default)
	if command != nil {
		if _, err := parser.AddGroup("Command Options", "", command); err != nil {
			return nil, err
		}
	}
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}

	return opts, nil
}

// Network resolves the network selected on the command line, "" when none
// was given.
func (opts *Opts) Network() (string, error) {
	selected := ""
	count := 0
	if opts.TestNet {
		selected = "test"
		count++
	}
	if opts.RegTest {
		selected = "regtest"
		count++
	}
	if opts.SigNet {
		selected = "signet"
		count++
	}
	if count > 1 {
		return "", fmt.Errorf("only one of --testnet, --regtest and --signet may be given")
	}
	return selected, nil
}

func (opts *Opts) String() string {
	return fmt.Sprintf("datadir:%s conf:%s regtest:%v testnet:%v signet:%v",
		opts.DataDir, opts.ConfFile, opts.RegTest, opts.TestNet, opts.SigNet)
}
