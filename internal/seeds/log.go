package seeds

import (
	"fmt"
	"os"
	"strings"
)

// ResponseLog is the append-only record of previously generated ideas, one
// idea per line. It is never rewritten or deduplicated; growth across runs
// is unbounded. Concurrent program runs against the same log are not
// supported (no file locking).
type ResponseLog struct {
	path string
}

// NewResponseLog creates a log handle; the file may not exist yet
func NewResponseLog(path string) *ResponseLog {
	return &ResponseLog{path: path}
}

// Path returns the underlying file path
func (l *ResponseLog) Path() string { return l.path }

// Text returns the full log content, or "" when the file does not exist
func (l *ResponseLog) Text() (string, error) {
	data, err := os.ReadFile(l.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read response log %s: %w", l.path, err)
	}
	return string(data), nil
}

// Entries returns the logged ideas, skipping blank lines
func (l *ResponseLog) Entries() ([]string, error) {
	text, err := l.Text()
	if err != nil {
		return nil, err
	}
	var entries []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			entries = append(entries, line)
		}
	}
	return entries, nil
}

// Append adds ideas to the log, one per line, creating the file on first
// use. Inner newlines are flattened to spaces so one line stays one idea.
func (l *ResponseLog) Append(ideas []string) error {
	if len(ideas) == 0 {
		return nil
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open response log %s: %w", l.path, err)
	}
	defer f.Close()

	var b strings.Builder
	for _, idea := range ideas {
		b.WriteString(strings.Join(strings.Fields(idea), " "))
		b.WriteString("\n")
	}
	if _, err := f.WriteString(b.String()); err != nil {
		return fmt.Errorf("failed to append to response log %s: %w", l.path, err)
	}
	return nil
}
