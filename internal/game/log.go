package game

import "log"

var verbose bool

// SetVerbose turns on socket-level diagnostics (dials, frame errors,
// dropped sends). Hard failures are always logged.
func SetVerbose(v bool) { verbose = v }

func debugf(format string, args ...any) {
	if verbose {
		log.Printf(format, args...)
	}
}
