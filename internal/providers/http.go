// Moodlight - Mood-Driven Recommendation Aggregator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodlight

package providers

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/tomtom215/moodlight/internal/metrics"
)

// maxErrorBody caps how much of a failed response is copied into errors.
const maxErrorBody = 512

// newLimiter builds the outbound token bucket. rps <= 0 disables throttling.
func newLimiter(rps float64) *rate.Limiter {
	if rps <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	burst := int(math.Ceil(rps))
	return rate.NewLimiter(rate.Limit(rps), burst)
}

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// throttle blocks until the limiter admits one request or ctx ends.
func throttle(ctx context.Context, limiter *rate.Limiter, provider string) error {
	start := time.Now()
	if err := limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s rate limit wait: %w", provider, err)
	}
	if waited := time.Since(start); waited > time.Millisecond {
		metrics.RecordThrottleWait(provider, waited)
	}
	return nil
}

// statusError reads a bounded snippet of a non-200 body into an error.
func statusError(what string, resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return fmt.Errorf("%s returned status %d (failed to read body)", what, resp.StatusCode)
	}
	return fmt.Errorf("%s returned status %d: %s", what, resp.StatusCode, string(body))
}
