package chainparams

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/lyncoin/lyncoin/errcode"
	"github.com/lyncoin/lyncoin/model/consensus"
)

// EraOverride moves a fork. Window and Timespan only apply to the window
// era, whose clamp bounds are derived from them.
type EraOverride struct {
	StartHeight *int32  `yaml:"start_height"`
	Bits        *uint32 `yaml:"bits"`
	Window      *int32  `yaml:"window"`
	Timespan    *int64  `yaml:"timespan"`
}

// Overrides is the yaml document accepted by LoadOverrides. Absent fields
// keep the built-in value.
type Overrides struct {
	AllowMinDifficultyBlocks  *bool                  `yaml:"allow_min_difficulty_blocks"`
	NoRetargeting             *bool                  `yaml:"no_retargeting"`
	EnforceFirstBlockOfPeriod *bool                  `yaml:"enforce_first_block_of_period"`
	StrictChainID             *bool                  `yaml:"strict_chain_id"`
	AuxpowChainID             *int32                 `yaml:"auxpow_chain_id"`
	Eras                      map[string]EraOverride `yaml:"eras"`
}

// LoadOverrides reads path and applies it to a copy of base.
func LoadOverrides(base *ChainParams, path string) (*ChainParams, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errcode.New(errcode.ErrorBadOverrideFile), "read %s: %v", path, err)
	}
	return ApplyOverrides(base, raw)
}

// ApplyOverrides applies the yaml document raw to a copy of base.
func ApplyOverrides(base *ChainParams, raw []byte) (*ChainParams, error) {
	var ov Overrides
	if err := yaml.UnmarshalStrict(raw, &ov); err != nil {
		return nil, errors.Wrapf(errcode.New(errcode.ErrorBadOverrideFile), "%v", err)
	}

	params := base.Clone()
	if ov.AllowMinDifficultyBlocks != nil {
		params.FPowAllowMinDifficultyBlocks = *ov.AllowMinDifficultyBlocks
	}
	if ov.NoRetargeting != nil {
		params.FPowNoRetargeting = *ov.NoRetargeting
	}
	if ov.EnforceFirstBlockOfPeriod != nil {
		params.EnforceFirstBlockOfPeriod = *ov.EnforceFirstBlockOfPeriod
	}
	if ov.StrictChainID != nil {
		params.StrictChainID = *ov.StrictChainID
	}
	if ov.AuxpowChainID != nil {
		params.AuxpowChainID = *ov.AuxpowChainID
	}

	for name, eo := range ov.Eras {
		idx := -1
		for i := range params.Eras {
			if params.Eras[i].Name == name {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, errors.Wrapf(errcode.New(errcode.ErrorBadOverrideFile), "unknown era %q", name)
		}
		if err := applyEraOverride(&params.Eras[idx], eo); err != nil {
			return nil, err
		}
	}
	return params, nil
}

func applyEraOverride(era *consensus.Era, eo EraOverride) error {
	if era.Name == "base" {
		return errors.Wrapf(errcode.New(errcode.ErrorBadOverrideFile), "base era cannot be overridden")
	}
	if eo.Window != nil || eo.Timespan != nil {
		if era.Name != "window" {
			return errors.Wrapf(errcode.New(errcode.ErrorBadOverrideFile),
				"era %s does not take window or timespan", era.Name)
		}
		window, timespan := era.EpochLength, era.TargetTimespan
		if eo.Window != nil {
			window = *eo.Window
		}
		if eo.Timespan != nil {
			timespan = *eo.Timespan
		}
		*era = consensus.WindowEra(era.StartHeight, window, timespan, era.ForcedBits)
	}
	if eo.StartHeight != nil {
		era.StartHeight = *eo.StartHeight
	}
	if eo.Bits != nil {
		era.ForcedBits = *eo.Bits
		era.HasForcedBits = true
	}
	return nil
}
