// Package debuglog holds the compile-time debug flags used across the
// controller and image packages, and the runtime-settable verbose switch
// the demo CLI turns on with -v.
package debuglog

import "log"

// Various flags that control what kind of debugging information is
// logged by the emulator. Normally these are all false.
const (
	FDC      = false
	Transfer = false
	ImageIO  = false
	Motor    = false
)

// Verbose can be flipped on at runtime (e.g. by the CLI's -v flag) for
// instruction-level tracing, independent of the compile-time flags above.
var Verbose = false

// Printf logs unconditionally when enabled is true or Verbose is set.
func Printf(enabled bool, format string, args ...interface{}) {
	if enabled || Verbose {
		log.Printf(format, args...)
	}
}
