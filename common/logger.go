// The common package holds small types shared by the brokerpool packages.
package common

import (
	"io"
	"log"
)

// StdLogger is the interface the pool reports diagnostics through. Go's own
// built in log package satisfies it, but you could use logrus or apex.Log or
// wrap something incompatible that you like. The pool never logs through a
// package-level variable; inject a StdLogger at construction instead.
type StdLogger interface {
	Print(v ...interface{})
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}

// DiscardLogger returns a StdLogger that drops everything. It is the sink
// used when no logger is injected.
func DiscardLogger() StdLogger {
	return log.New(io.Discard, "", 0)
}
