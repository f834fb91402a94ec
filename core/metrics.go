package core

import "context"

// NopMetricsRecorder discards the entry_facade.<operation>.total counters
// and entry_facade.<operation>.duration_ms histograms emitted around each
// facade operation. It is the default recorder when no override is given.
type NopMetricsRecorder struct{}

func (NopMetricsRecorder) IncCounter(context.Context, string, int64, map[string]string) {}

func (NopMetricsRecorder) ObserveHistogram(context.Context, string, float64, map[string]string) {}

// cloneTags shields recorders from later mutation of the tag map built by
// observeOperation.
func cloneTags(tags map[string]string) map[string]string {
	copied := make(map[string]string, len(tags))
	for key, value := range tags {
		copied[key] = value
	}
	return copied
}

var _ MetricsRecorder = NopMetricsRecorder{}
