package version

import "github.com/flipbooklib/flipbook/config"

// GetCurrentVersion returns the running application version.
func GetCurrentVersion() string {
	if config.Opts != nil && config.Opts.Version != "" {
		return config.Opts.Version
	}
	return "unknown"
}
