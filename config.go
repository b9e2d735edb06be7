package decodex

import (
	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces the environment variables read by LoadOptions.
const EnvPrefix = "DECODEX_"

// LoadOptions builds a ParseOpt from DECODEX_MAX_DEPTH, DECODEX_MAX_BYTES and
// DECODEX_LANG. Unset variables leave the zero value.
func LoadOptions() (ParseOpt, error) {
	return env.ParseAsWithOptions[ParseOpt](env.Options{Prefix: EnvPrefix})
}

// MustLoadOptions is like LoadOptions but panics on malformed values.
func MustLoadOptions() ParseOpt {
	opt, err := LoadOptions()
	if err != nil {
		panic(err)
	}
	return opt
}
