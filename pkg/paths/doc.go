// Package paths resolves the platform directories that native persistence
// writes into. It follows the XDG Base Directory specification through
// adrg/xdg, which also maps to the platform conventions on macOS and
// Windows.
//
// # Layout
//
// A value saved under an app name and profile lands at
//
//	<base>/<app>/<profile>
//
// where <base> is, per location:
//
//   - Cache: $XDG_CACHE_HOME (or the configured dirs.cache)
//   - Config: $XDG_CONFIG_HOME (or the configured dirs.config)
//   - Data: $XDG_DATA_HOME (or the configured dirs.data)
//
// No sanitisation is applied to app or profile names; callers must pass
// names that are safe to use as path segments.
package paths
