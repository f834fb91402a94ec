package core

import (
	"context"
	"testing"
)

func TestRecordCounterClonesTags(t *testing.T) {
	metrics := &captureMetrics{}
	svc := newTestService(t, WithMetricsRecorder(metrics))

	tags := map[string]string{"kind": "property"}
	svc.recordCounter(context.Background(), "entry_facade.build_field.total", 1, tags)
	tags["kind"] = "attribute"

	if len(metrics.counters) != 1 {
		t.Fatalf("expected one counter, got %d", len(metrics.counters))
	}
	if got := metrics.counters[0].tags["kind"]; got != "property" {
		t.Fatalf("expected recorded tags to be isolated from caller mutation, got kind=%q", got)
	}
}

func TestRecordHistogramClonesEmptyTags(t *testing.T) {
	metrics := &captureMetrics{}
	svc := newTestService(t, WithMetricsRecorder(metrics))

	tags := map[string]string{}
	svc.recordHistogram(context.Background(), "entry_facade.build_field.duration_ms", 4.2, tags)
	tags["status"] = "failure"

	if len(metrics.histograms) != 1 {
		t.Fatalf("expected one histogram, got %d", len(metrics.histograms))
	}
	if len(metrics.histograms[0].tags) != 0 {
		t.Fatalf("expected recorded tags to stay empty, got %v", metrics.histograms[0].tags)
	}
}

func TestNopMetricsRecorder(t *testing.T) {
	svc := newTestService(t)
	svc.recordCounter(context.Background(), "entry_facade.build_field.total", 1, nil)
	svc.recordHistogram(context.Background(), "entry_facade.build_field.duration_ms", 1, nil)
}
