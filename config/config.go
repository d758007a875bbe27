package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

var Opts *Options

// GetConfig builds the runtime options: defaults, then the environment.
// The two remote backend values have no defaults; a missing one is a
// startup error that enumerates every absent variable.
func GetConfig() (*Options, error) {
	GetDefaultOptions()

	Opts.SupabaseURL = strings.TrimRight(os.Getenv(EnvSupabaseURL), "/")
	Opts.SupabaseKey = os.Getenv(EnvSupabaseKey)

	if err := validateRequired(Opts); err != nil {
		return nil, err
	}

	return Opts, nil
}

func validateRequired(opts *Options) error {
	var missing []string
	if opts.SupabaseURL == "" {
		missing = append(missing, EnvSupabaseURL)
	}
	if opts.SupabaseKey == "" {
		missing = append(missing, EnvSupabaseKey)
	}
	if len(missing) > 0 {
		return errors.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ParseFile overlays a config file on top of the defaults.
func ParseFile(file string) (*Options, error) {
	if Opts == nil {
		GetDefaultOptions()
	}

	if _, err := os.Stat(file); err != nil {
		return nil, errors.Wrapf(err, "unable to access config file %s", file)
	}

	viper.SetConfigFile(file)
	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}
	if err := viper.Unmarshal(Opts); err != nil {
		return nil, err
	}

	// The environment always wins for the remote backend values.
	if v := os.Getenv(EnvSupabaseURL); v != "" {
		Opts.SupabaseURL = strings.TrimRight(v, "/")
	}
	if v := os.Getenv(EnvSupabaseKey); v != "" {
		Opts.SupabaseKey = v
	}

	if err := validateRequired(Opts); err != nil {
		return nil, err
	}
	return Opts, nil
}
