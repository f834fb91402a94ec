package core

import (
	"context"
	"sync"
)

type stubRecord struct {
	properties map[string]string
	meta       map[string]string
	attributes map[string]string
	calls      []string
}

func (r *stubRecord) GetProperty(name string) string {
	r.calls = append(r.calls, "property:"+name)
	return r.properties[name]
}

func (r *stubRecord) GetMeta(name string) string {
	r.calls = append(r.calls, "meta:"+name)
	return r.meta[name]
}

func (r *stubRecord) GetAttribute(name string) string {
	r.calls = append(r.calls, "attribute:"+name)
	return r.attributes[name]
}

type stubLogger struct{}

func (stubLogger) Trace(string, ...any) {}
func (stubLogger) Debug(string, ...any) {}
func (stubLogger) Info(string, ...any)  {}
func (stubLogger) Warn(string, ...any)  {}
func (stubLogger) Error(string, ...any) {}
func (stubLogger) Fatal(string, ...any) {}
func (s stubLogger) WithContext(context.Context) Logger {
	return s
}

type stubLoggerProvider struct {
	logger Logger
}

func (s stubLoggerProvider) GetLogger(string) Logger {
	return s.logger
}

type mapRawLoader struct {
	values map[string]any
}

func (l mapRawLoader) LoadRaw(context.Context) (map[string]any, error) {
	return l.values, nil
}

type capturedLog struct {
	level   string
	message string
	args    []any
}

type captureLogger struct {
	mu      sync.Mutex
	records []capturedLog
}

func newCaptureLogger() *captureLogger {
	return &captureLogger{}
}

func (l *captureLogger) Trace(msg string, args ...any) { l.record("trace", msg, args...) }
func (l *captureLogger) Debug(msg string, args ...any) { l.record("debug", msg, args...) }
func (l *captureLogger) Info(msg string, args ...any)  { l.record("info", msg, args...) }
func (l *captureLogger) Warn(msg string, args ...any)  { l.record("warn", msg, args...) }
func (l *captureLogger) Error(msg string, args ...any) { l.record("error", msg, args...) }
func (l *captureLogger) Fatal(msg string, args ...any) { l.record("fatal", msg, args...) }

func (l *captureLogger) WithContext(context.Context) Logger {
	return l
}

func (l *captureLogger) record(level string, msg string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, capturedLog{level: level, message: msg, args: args})
}

func (l *captureLogger) snapshot() []capturedLog {
	l.mu.Lock()
	defer l.mu.Unlock()
	copied := make([]capturedLog, len(l.records))
	copy(copied, l.records)
	return copied
}

type capturedMetric struct {
	name  string
	value float64
	tags  map[string]string
}

type captureMetrics struct {
	mu         sync.Mutex
	counters   []capturedMetric
	histograms []capturedMetric
}

func (m *captureMetrics) IncCounter(_ context.Context, name string, value int64, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters = append(m.counters, capturedMetric{name: name, value: float64(value), tags: tags})
}

func (m *captureMetrics) ObserveHistogram(_ context.Context, name string, value float64, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.histograms = append(m.histograms, capturedMetric{name: name, value: value, tags: tags})
}
