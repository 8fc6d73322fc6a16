// SPDX-License-Identifier: MIT

// Package convert: the warning channel.
// Partial-data conditions (a chromosome missing from a bulk source) are
// logged, never raised — one failing chromosome must not abort the rest.
package convert

import (
	"log"
	"os"
)

// logger receives partial-data warnings. Defaults to stderr with standard
// flags; replace via SetLogger to integrate with an application's logging.
var logger = log.New(os.Stderr, "httable: ", log.LstdFlags)

// SetLogger redirects package warnings. A nil l silences them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(discard{}, "", 0)
	}
	logger = l
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

// warnf emits one non-fatal warning line.
func warnf(format string, args ...any) {
	logger.Printf("warning: "+format, args...)
}
