package jobs

import (
	"time"

	"github.com/riverqueue/river/rivertype"
)

// RetryPolicy schedules retries exponentially: base * 2^(attempt-1),
// capped. With the default 10s base and 600s cap the ladder is
// 10s, 20s, 40s, 80s, 160s, ... up to 10 minutes between attempts.
type RetryPolicy struct {
	Base time.Duration
	Cap  time.Duration
}

// NextRetry implements river.ClientRetryPolicy.
func (p RetryPolicy) NextRetry(job *rivertype.JobRow) time.Time {
	return time.Now().Add(p.backoff(job.Attempt))
}

func (p RetryPolicy) backoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	delay := p.Base
	for i := 1; i < attempt; i++ {
		delay *= 2
		if delay >= p.Cap {
			return p.Cap
		}
	}
	if delay > p.Cap {
		return p.Cap
	}
	return delay
}
