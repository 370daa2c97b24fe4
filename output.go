package cobracolor

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Sink consumes one formatted string, terminator included. Sinks are how
// output reaches the terminal without disturbing whatever else owns it (a
// progress bar, a TUI). See ProgramSink for the bubbletea-backed sink.
type Sink func(s string) error

var (
	sinkMu      sync.RWMutex
	currentSink Sink

	// fallbackOut is where output lands when no sink is set or the
	// configured sink fails. Tests swap it out.
	fallbackOut io.Writer = os.Stdout
)

// SetSink installs the process-wide output sink used by SmartPrint.
// Configure it once at startup, before any concurrent printing begins; the
// cell is mutex-guarded, but a mid-flight swap still interleaves output.
func SetSink(s Sink) {
	sinkMu.Lock()
	currentSink = s
	sinkMu.Unlock()
}

// ResetSink removes the configured sink, restoring direct stdout writes.
func ResetSink() {
	SetSink(nil)
}

// CurrentSink returns the configured sink, or nil when none is set.
func CurrentSink() Sink {
	sinkMu.RLock()
	defer sinkMu.RUnlock()
	return currentSink
}

// WriterSink adapts an io.Writer into a Sink.
func WriterSink(w io.Writer) Sink {
	return func(s string) error {
		_, err := io.WriteString(w, s)
		return err
	}
}

// SmartPrint joins values with spaces, appends a newline, and sends the
// result through the configured sink. A sink failure never reaches the
// caller: the text falls back to a direct write, because display problems
// must not abort whatever logic asked for the print.
func SmartPrint(values ...any) {
	PrintTo(CurrentSink(), values...)
}

// PrintTo is SmartPrint with an explicit sink, for callers that prefer
// injection over the process-wide cell. A nil sink writes directly.
func PrintTo(sink Sink, values ...any) {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	formatted := strings.Join(parts, " ") + "\n"

	if sink == nil {
		io.WriteString(fallbackOut, formatted)
		return
	}
	if err := sink(formatted); err != nil {
		io.WriteString(fallbackOut, formatted)
	}
}
