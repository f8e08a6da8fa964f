// Package config loads loadfile's settings with koanf.
//
// Sources are layered, later ones winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. a user file: the path in LOADFILE_CONFIG, or config.toml / config.yaml
//     in $XDG_CONFIG_HOME/loadfile
//  3. LOADFILE_* environment variables, with __ separating levels
//  4. overrides passed to Load
package config
