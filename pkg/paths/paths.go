package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/loadfile/pkg/errors"
	"github.com/arthur-debert/loadfile/pkg/types"
)

const (
	// AppDirName is the directory name for loadfile's own files
	AppDirName = "loadfile"

	// LogFileName is the name of the log file
	LogFileName = "loadfile.log"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Overrides replaces the XDG base directory of a location when non-empty.
type Overrides struct {
	Cache  string
	Config string
	Data   string
}

// Paths resolves base directories and save locations
type Paths interface {
	// BaseDir returns the base directory for a location category.
	BaseDir(loc types.Location) (string, error)
	// SaveFolder returns <BaseDir(loc)>/<app>.
	SaveFolder(loc types.Location, app string) (string, error)
	// SaveLocation returns <BaseDir(loc)>/<app>/<profile>.
	SaveLocation(loc types.Location, app, profile string) (string, error)
	// StateDir returns the directory for loadfile's own state, such as logs.
	StateDir() string
}

type paths struct {
	overrides Overrides

	// base resolves the platform default when no override is set
	base func(types.Location) string
}

// New creates a Paths that prefers overrides and falls back to XDG.
func New(overrides Overrides) Paths {
	return &paths{
		overrides: Overrides{
			Cache:  expandHome(overrides.Cache),
			Config: expandHome(overrides.Config),
			Data:   expandHome(overrides.Data),
		},
		base: xdgBase,
	}
}

func xdgBase(loc types.Location) string {
	switch loc {
	case types.Cache:
		return xdg.CacheHome
	case types.Config:
		return xdg.ConfigHome
	case types.Data:
		return xdg.DataHome
	}
	return ""
}

func (p *paths) BaseDir(loc types.Location) (string, error) {
	var dir string
	switch loc {
	case types.Cache:
		dir = p.overrides.Cache
	case types.Config:
		dir = p.overrides.Config
	case types.Data:
		dir = p.overrides.Data
	default:
		return "", errors.Newf(errors.ErrLocationNotFound, "save location not found: unknown location %s", loc).
			WithDetail("location", loc.String())
	}
	if dir == "" {
		dir = p.base(loc)
	}
	if dir == "" {
		return "", errors.Newf(errors.ErrLocationNotFound, "save location not found for %s", loc).
			WithDetail("location", loc.String())
	}
	return dir, nil
}

func (p *paths) SaveFolder(loc types.Location, app string) (string, error) {
	base, err := p.BaseDir(loc)
	if err != nil {
		return "", err
	}
	return filepath.Join(base, app), nil
}

func (p *paths) SaveLocation(loc types.Location, app, profile string) (string, error) {
	if profile == "" {
		return "", errors.New(errors.ErrInvalidInput, "profile name must not be empty")
	}
	folder, err := p.SaveFolder(loc, app)
	if err != nil {
		return "", err
	}
	return filepath.Join(folder, profile), nil
}

// StateDir respects XDG_STATE_HOME at call time, otherwise uses
// ~/.local/state/loadfile
func (p *paths) StateDir() string {
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, AppDirName)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return AppDirName
	}
	return filepath.Join(homeDir, ".local", "state", AppDirName)
}

// LogFilePath returns the path of the log file inside StateDir
func LogFilePath(p Paths) string {
	return filepath.Join(p.StateDir(), LogFileName)
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	return expandHome(path)
}

func expandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to HOME env var
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		// Handle both ~/ and ~
		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}
