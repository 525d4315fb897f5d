package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTestLoggerRecordsLines(t *testing.T) {
	tl := new(TestLogger)
	tl.Print("plain")
	tl.Printf("formatted %d", 42)
	tl.Println("with newline")

	require.Equal(t, []string{"plain", "formatted 42", "with newline"}, tl.Lines())

	// Lines returns a copy
	lines := tl.Lines()
	lines[0] = "mutated"
	require.Equal(t, "plain", tl.Lines()[0])
}

func TestDiscardLogger(t *testing.T) {
	l := DiscardLogger()
	require.NotNil(t, l)
	l.Print("dropped")
	l.Printf("dropped %d", 1)
	l.Println("dropped")
}
