package services

import (
	"context"
	"sync"
	"time"

	"github.com/custodia-labs/profiltool/internal/core/domain"
	"github.com/custodia-labs/profiltool/internal/core/ports/driven"
)

// --- Mock implementations ---

// logEntry is one entry captured by recordingLogger.
type logEntry struct {
	level  string
	msg    string
	err    error
	fields driven.Fields
}

// recordingLogger implements driven.Logger and keeps every entry.
type recordingLogger struct {
	mu      *sync.Mutex
	entries *[]logEntry
	base    driven.Fields
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{mu: &sync.Mutex{}, entries: &[]logEntry{}}
}

func (l *recordingLogger) record(level, msg string, err error, fields driven.Fields) {
	merged := driven.Fields{}
	for k, v := range l.base {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	*l.entries = append(*l.entries, logEntry{level: level, msg: msg, err: err, fields: merged})
}

func (l *recordingLogger) Debug(msg string, f driven.Fields) { l.record("debug", msg, nil, f) }
func (l *recordingLogger) Info(msg string, f driven.Fields)  { l.record("info", msg, nil, f) }
func (l *recordingLogger) Warn(msg string, f driven.Fields)  { l.record("warn", msg, nil, f) }
func (l *recordingLogger) Error(msg string, err error, f driven.Fields) {
	l.record("error", msg, err, f)
}

func (l *recordingLogger) With(f driven.Fields) driven.Logger {
	merged := driven.Fields{}
	for k, v := range l.base {
		merged[k] = v
	}
	for k, v := range f {
		merged[k] = v
	}
	return &recordingLogger{mu: l.mu, entries: l.entries, base: merged}
}

func (l *recordingLogger) all() []logEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]logEntry(nil), *l.entries...)
}

func (l *recordingLogger) byLevel(level string) []logEntry {
	var out []logEntry
	for _, e := range l.all() {
		if e.level == level {
			out = append(out, e)
		}
	}
	return out
}

// mockPageFetcher implements driven.PageFetcher for testing.
type mockPageFetcher struct {
	GetFunc func(ctx context.Context, url string) (*driven.Page, error)

	calls []string
}

func (m *mockPageFetcher) Get(ctx context.Context, url string) (*driven.Page, error) {
	m.calls = append(m.calls, url)
	if m.GetFunc != nil {
		return m.GetFunc(ctx, url)
	}
	return &driven.Page{URL: url, StatusCode: 200, Body: []byte("<html></html>")}, nil
}

func (m *mockPageFetcher) Timeout() time.Duration {
	return domain.DefaultFetchTimeout
}

// mockExtractor implements driven.ProfileExtractor for testing.
type mockExtractor struct {
	ExtractFunc func(ctx context.Context, page *driven.Page) (domain.Profile, error)
}

func (m *mockExtractor) Extract(ctx context.Context, page *driven.Page) (domain.Profile, error) {
	if m.ExtractFunc != nil {
		return m.ExtractFunc(ctx, page)
	}
	return domain.Profile{DisplayName: "Ana", Location: "Zagreb"}, nil
}
