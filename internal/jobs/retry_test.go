package jobs

import (
	"testing"
	"time"

	"github.com/riverqueue/river/rivertype"
)

func TestRetryPolicy_Backoff(t *testing.T) {
	t.Parallel()

	policy := RetryPolicy{Base: 10 * time.Second, Cap: 600 * time.Second}

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{attempt: 1, want: 10 * time.Second},
		{attempt: 2, want: 20 * time.Second},
		{attempt: 3, want: 40 * time.Second},
		{attempt: 5, want: 160 * time.Second},
		{attempt: 7, want: 600 * time.Second}, // 640s capped
		{attempt: 50, want: 600 * time.Second},
		{attempt: 0, want: 10 * time.Second}, // below 1 treated as first attempt
	}

	for _, tt := range tests {
		if got := policy.backoff(tt.attempt); got != tt.want {
			t.Errorf("backoff(%d) = %v, want %v", tt.attempt, got, tt.want)
		}
	}
}

func TestRetryPolicy_NextRetry(t *testing.T) {
	t.Parallel()

	policy := RetryPolicy{Base: 10 * time.Second, Cap: 600 * time.Second}
	row := &rivertype.JobRow{Attempt: 2}

	next := policy.NextRetry(row)
	delta := time.Until(next)
	if delta < 19*time.Second || delta > 21*time.Second {
		t.Errorf("NextRetry() scheduled %v ahead, want ~20s", delta)
	}
}
