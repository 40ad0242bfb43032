package conf

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	tagName     = "default"
	envPrefix   = "lyncoin"
	confName    = "lyncoin.yml"
	networkMain = "main"
)

var Cfg *Configuration

type Configuration struct {
	Network string `default:"main"`
	DataDir string `default:"lyncoin"`
	Log     struct {
		Level  string `default:"info"`
		Dir    string
		Module []string
	}
	Consensus struct {
		// yaml file overriding the built-in consensus table
		ParamsFile string
	}
	Cache struct {
		PowHashSize int `default:"4096"`
	}
}

// InitConfig builds the configuration from struct tag defaults, the yaml
// file and LYNCOIN_* environment variables, then applies the command line.
func InitConfig(opts *Opts) (*Configuration, error) {
	if opts == nil {
		opts = new(Opts)
	}
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigType("yaml")

	setDefaults(v, reflect.TypeOf(Configuration{}), "")
	if opts.DataDir != "" {
		v.Set("datadir", opts.DataDir)
	}

	confFile := opts.ConfFile
	if confFile == "" {
		candidate := filepath.Join(v.GetString("datadir"), confName)
		if _, err := os.Stat(candidate); err == nil {
			confFile = candidate
		}
	}
	if confFile != "" {
		v.SetConfigFile(confFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config file %s", confFile)
		}
	}

	config := &Configuration{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errors.Wrap(err, "decode configuration")
	}

	network, err := opts.Network()
	if err != nil {
		return nil, err
	}
	if network != "" {
		config.Network = network
	}
	if config.Network == "" {
		config.Network = networkMain
	}
	if config.Log.Dir == "" {
		config.Log.Dir = config.DataDir
	}
	return config, nil
}

// setDefaults registers every `default` struct tag as a viper default under
// its dotted, lower-cased key.
func setDefaults(v *viper.Viper, t reflect.Type, prefix string) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		key := strings.ToLower(field.Name)
		if prefix != "" {
			key = prefix + "." + key
		}
		if field.Type.Kind() == reflect.Struct {
			setDefaults(v, field.Type, key)
			continue
		}
		if value, ok := field.Tag.Lookup(tagName); ok {
			v.SetDefault(key, value)
		}
	}
}
