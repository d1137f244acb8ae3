// Package logging holds the shared application logger. The viewer owns the
// terminal, so log output goes to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"

	clog "github.com/charmbracelet/log"
)

var Logger = clog.NewWithOptions(io.Discard, clog.Options{
	ReportTimestamp: true,
	Prefix:          "hexview",
})

// Setup points Logger at path (appending) with the given level. An empty
// path keeps logging disabled. The returned closer releases the file.
func Setup(path, level string) (io.Closer, error) {
	lvl, err := clog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	Logger.SetLevel(lvl)

	if path == "" {
		Logger.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	Logger.SetOutput(f)
	return f, nil
}
