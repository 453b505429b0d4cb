package registry

import (
	"fmt"

	"github.com/spf13/viper"
)

// LoadFile reads a corridor seed file (YAML, JSON or TOML, by extension) and
// builds a registry from it. The file carries a top-level "base_currency" and a
// "corridors" list.
//
//	base_currency: NPR
//	corridors:
//	  - country_code: NP
//	    currency_code: NPR
//	    quoted_rate: "1"
//	    ...
func LoadFile(path string) (*Registry, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read corridor seed %s: %w", path, err)
	}

	var seeds []SeedRecord
	if err := v.UnmarshalKey("corridors", &seeds); err != nil {
		return nil, fmt.Errorf("decode corridor seed %s: %w", path, err)
	}
	if len(seeds) == 0 {
		return nil, fmt.Errorf("corridor seed %s has no corridors", path)
	}

	base := v.GetString("base_currency")
	if base == "" {
		return nil, fmt.Errorf("corridor seed %s: base_currency is required", path)
	}

	r, err := FromSeed(base, seeds)
	if err != nil {
		return nil, fmt.Errorf("corridor seed %s: %w", path, err)
	}
	return r, nil
}
