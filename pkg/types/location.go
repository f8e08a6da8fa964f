package types

import (
	"fmt"
	"strings"
)

// Location selects the storage category a persistence operation targets.
type Location int

const (
	// Cache holds data that may be discarded at any time.
	Cache Location = iota
	// Config holds user configuration.
	Config
	// Data holds persistent application data.
	Data
)

// Locations lists every Location in declaration order.
var Locations = []Location{Cache, Config, Data}

// String returns the lower-case name of the location
func (l Location) String() string {
	switch l {
	case Cache:
		return "cache"
	case Config:
		return "config"
	case Data:
		return "data"
	default:
		return fmt.Sprintf("location(%d)", int(l))
	}
}

// IsSession reports whether the location maps to session-scoped storage.
// Browser storage has only two areas, so Cache is session storage and
// everything else is persistent storage.
func (l Location) IsSession() bool {
	return l == Cache
}

// ParseLocation parses a location name, ignoring case.
func ParseLocation(s string) (Location, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cache":
		return Cache, nil
	case "config":
		return Config, nil
	case "data":
		return Data, nil
	}
	return 0, fmt.Errorf("unknown location %q (want cache, config or data)", s)
}
