// Package config loads homeman's configuration.
//
// Sources are layered, later ones winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. homeman.toml or .homeman.toml in the working directory
//  3. HOMEMAN_* environment variables
//  4. explicit overrides, typically command line flags
//
// The result is a plain Config value handed to constructors; nothing in
// this package keeps global state.
package config
