package services

import (
	"fmt"

	"github.com/vvka-141/mdfence/pkg/mdfence"
)

type mockTreeScanner struct {
	result    mdfence.ScanResult
	err       error
	lastRoot  string
	callCount int
}

func (m *mockTreeScanner) ScanTree(root string) (mdfence.ScanResult, error) {
	m.lastRoot = root
	m.callCount++
	return m.result, m.err
}

type recordingLogger struct {
	verbose []string
	info    []string
	errors  []string
}

func (l *recordingLogger) Verbose(format string, args ...interface{}) {
	l.verbose = append(l.verbose, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Info(format string, args ...interface{}) {
	l.info = append(l.info, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Error(format string, args ...interface{}) {
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}
