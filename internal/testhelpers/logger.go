// Package testhelpers holds helpers shared by the Ginkgo suites.
package testhelpers

import (
	"fmt"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/onsi/ginkgo/v2"

	"github.com/reactome/releasefetch/log"
)

// Entry is one line recorded by a TestLogger.
type Entry struct {
	Level  string
	Msg    string
	Fields map[string]any
}

var levelColors = map[string]*color.Color{
	"DEBUG":   color.New(color.FgHiBlack),
	"INFO":    color.New(color.FgBlue),
	"WARN":    color.New(color.FgYellow),
	"ERROR":   color.New(color.FgRed),
	"SUCCESS": color.New(color.FgGreen),
}

// TestLogger implements log.Logger for Ginkgo suites. Every line is written
// to GinkgoWriter and kept so specs can assert on what a retriever logged.
// It is safe for concurrent use.
type TestLogger struct {
	mu      sync.Mutex
	entries []Entry
}

// NewTestLogger creates a new TestLogger for Ginkgo tests.
func NewTestLogger() *TestLogger {
	return &TestLogger{}
}

func (l *TestLogger) Debug(msg string, keysAndValues ...any) { l.record("DEBUG", msg, keysAndValues) }
func (l *TestLogger) Info(msg string, keysAndValues ...any)  { l.record("INFO", msg, keysAndValues) }
func (l *TestLogger) Warn(msg string, keysAndValues ...any)  { l.record("WARN", msg, keysAndValues) }
func (l *TestLogger) Error(msg string, keysAndValues ...any) { l.record("ERROR", msg, keysAndValues) }

// Success writes a step that completed as expected. It is not recorded.
func (l *TestLogger) Success(msg string, keysAndValues ...any) {
	write("SUCCESS", msg, keysAndValues)
}

// Entries returns a copy of the recorded lines, oldest first.
func (l *TestLogger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]Entry(nil), l.entries...)
}

// Messages returns the messages recorded at level, for example "ERROR".
func (l *TestLogger) Messages(level string) []string {
	var msgs []string
	for _, e := range l.Entries() {
		if e.Level == level {
			msgs = append(msgs, e.Msg)
		}
	}
	return msgs
}

// Reset drops the recorded lines.
func (l *TestLogger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = nil
}

func (l *TestLogger) record(level, msg string, keysAndValues []any) {
	fields := make(map[string]any, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}

	l.mu.Lock()
	l.entries = append(l.entries, Entry{Level: level, Msg: msg, Fields: fields})
	l.mu.Unlock()

	write(level, msg, keysAndValues)
}

func write(level, msg string, keysAndValues []any) {
	line := msg
	if len(keysAndValues) > 0 {
		pairs := make([]string, 0, len(keysAndValues)/2)
		for i := 0; i+1 < len(keysAndValues); i += 2 {
			pairs = append(pairs, fmt.Sprintf("%v=%v", keysAndValues[i], keysAndValues[i+1]))
		}
		line = fmt.Sprintf("%s (%s)", msg, strings.Join(pairs, ", "))
	}

	ginkgo.GinkgoWriter.Println(levelColors[level].Sprintf("[%s] %s", level, line))
}

var _ log.Logger = (*TestLogger)(nil)
