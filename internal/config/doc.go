// Package config loads, normalizes, and validates draftsub configuration.
//
// Settings come from a TOML file (explicit path, ~/.config/draftsub/config.toml
// or ./draftsub.toml) layered over repository defaults. Command-line flags
// override individual values after loading.
package config
