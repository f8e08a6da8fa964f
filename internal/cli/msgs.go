package cli

// Command descriptions
const (
	MsgRootShort = "Load files and persist small values the way loadfile programs do"
	MsgRootLong  = `loadfile exercises the loadfile library from the command line.

It reads files (or http(s) URLs) through the same loader programs use, and
saves or loads values in the cache, config and data locations so you can
inspect what a program has stored.`

	MsgCatShort = "Print the contents of a file or URL"
	MsgCatLong  = `Load PATH through the platform loader and write its bytes to stdout.

When stdout is a terminal the bytes are shown as a hex dump instead.`

	MsgSaveShort = "Store stdin under a profile"
	MsgSaveLong  = `Read stdin and store it under PROFILE in LOCATION (cache, config or data).

Without --raw, stdin is parsed with the configured codec and stored in that
format; with --raw the bytes are stored as they are.`

	MsgLoadShort    = "Print the value stored under a profile"
	MsgPathsShort   = "Show where each location is stored"
	MsgVersionShort = "Print version information"
)

// Flag descriptions
const (
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagApp     = "Application name used in storage paths (default from config)"
	MsgFlagConfig  = "Config file (default is $XDG_CONFIG_HOME/loadfile/config.toml)"
	MsgFlagRaw     = "Store or print bytes without going through the codec"
	MsgFlagHex     = "Always print a hex dump"
)

// Output
const (
	MsgVersionFormat = "loadfile version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"
	MsgSavedFormat   = "Saved %d bytes to %s/%s\n"
)

// Error messages
const (
	MsgErrNoCommand = "no command specified"
	MsgErrReadStdin = "failed to read stdin"
	MsgErrLocation  = "invalid location"
)
