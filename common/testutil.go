package common

import (
	"fmt"
	"strings"
	"sync"
)

// TestLogger is a StdLogger that records its output so tests can make
// assertions against it. Safe for concurrent use.
type TestLogger struct {
	mu    sync.Mutex
	lines []string
}

func (tl *TestLogger) Print(v ...interface{}) {
	tl.record(fmt.Sprint(v...))
}

func (tl *TestLogger) Printf(format string, v ...interface{}) {
	tl.record(fmt.Sprintf(format, v...))
}

func (tl *TestLogger) Println(v ...interface{}) {
	tl.record(fmt.Sprintln(v...))
}

func (tl *TestLogger) record(line string) {
	tl.mu.Lock()
	tl.lines = append(tl.lines, strings.TrimSuffix(line, "\n"))
	tl.mu.Unlock()
}

// Lines returns a copy of the log lines recorded so far.
func (tl *TestLogger) Lines() []string {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	return append([]string(nil), tl.lines...)
}
