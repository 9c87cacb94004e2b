// Moodlight - Mood-Driven Recommendation Aggregator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodlight

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

// histogramCount reads the sample count of an unlabelled histogram.
func histogramCount(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	var m dto.Metric
	if err := h.Write(&m); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/api/v1/recommendations", "200"))
	RecordAPIRequest("POST", "/api/v1/recommendations", "200", 15*time.Millisecond)
	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/api/v1/recommendations", "200"))

	if after-before != 1 {
		t.Errorf("expected counter to increase by 1, got %v", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("expected %v active requests, got %v", before+1, got)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("expected %v active requests, got %v", before, got)
	}
}

func TestRecordSourceFetch(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		outcome string
		items   int
	}{
		{"success with items", "metrics-test-tmdb", "success", 3},
		{"success without items", "metrics-test-youtube", "success", 0},
		{"timeout", "metrics-test-yelp", "timeout", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetchBefore := testutil.ToFloat64(SourceFetchTotal.WithLabelValues(tt.source, tt.outcome))
			itemsBefore := testutil.ToFloat64(SourceItemsReturned.WithLabelValues(tt.source))

			RecordSourceFetch(tt.source, tt.outcome, 120*time.Millisecond, tt.items)

			if d := testutil.ToFloat64(SourceFetchTotal.WithLabelValues(tt.source, tt.outcome)) - fetchBefore; d != 1 {
				t.Errorf("fetch counter delta = %v, want 1", d)
			}
			if d := testutil.ToFloat64(SourceItemsReturned.WithLabelValues(tt.source)) - itemsBefore; d != float64(tt.items) {
				t.Errorf("items counter delta = %v, want %d", d, tt.items)
			}
		})
	}
}

func TestRecordRecommendation(t *testing.T) {
	successBefore := testutil.ToFloat64(RecommendationsTotal.WithLabelValues("success"))
	countBefore := histogramCount(t, RecommendationItems)

	RecordRecommendation("success", 10, 300*time.Millisecond)
	RecordRecommendation("unauthenticated", 0, time.Millisecond)

	if d := testutil.ToFloat64(RecommendationsTotal.WithLabelValues("success")) - successBefore; d != 1 {
		t.Errorf("success delta = %v, want 1", d)
	}
	if d := histogramCount(t, RecommendationItems) - countBefore; d != 1 {
		t.Errorf("items histogram should only observe successes, delta = %d", d)
	}
}

func TestRecordCacheLookup(t *testing.T) {
	hits := testutil.ToFloat64(CacheHits.WithLabelValues("metrics-test-cache"))
	misses := testutil.ToFloat64(CacheMisses.WithLabelValues("metrics-test-cache"))

	RecordCacheLookup("metrics-test-cache", true)
	RecordCacheLookup("metrics-test-cache", false)
	RecordCacheLookup("metrics-test-cache", false)

	if d := testutil.ToFloat64(CacheHits.WithLabelValues("metrics-test-cache")) - hits; d != 1 {
		t.Errorf("hits delta = %v, want 1", d)
	}
	if d := testutil.ToFloat64(CacheMisses.WithLabelValues("metrics-test-cache")) - misses; d != 2 {
		t.Errorf("misses delta = %v, want 2", d)
	}
}

// TestMetricGathering tests that metrics can be gathered using testutil
func TestMetricGathering(t *testing.T) {
	RecordThrottleWait("metrics-test", 5*time.Millisecond)

	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer)
	if err != nil {
		t.Fatalf("GatherAndLint() error = %v", err)
	}
	for _, p := range problems {
		t.Logf("Metric lint problem in %s: %s", p.Metric, p.Text)
	}
}
