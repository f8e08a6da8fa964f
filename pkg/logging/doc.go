// Package logging wires zerolog for loadfile. Library code asks for a
// component logger with GetLogger; programs turn output on with
// SetupLogger (console plus a log file in the XDG state directory) or
// SetLogger.
package logging
