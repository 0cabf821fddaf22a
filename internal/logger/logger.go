// Package logger builds the shared CLI logger.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to stderr. Verbose enables debug tracing
// of scanning and move execution; otherwise only warnings surface.
func New(verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "pkgalign",
		Level:  level,
	})
}
