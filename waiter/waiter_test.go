package waiter

import (
	"strings"
	"testing"
	"time"
)

func TestComputeDelay(t *testing.T) {
	cases := map[string]struct {
		totalAttempts       int64
		minDelay            time.Duration
		maxDelay            time.Duration
		maxWaitTime         time.Duration
		expectedMaxDelays   []time.Duration
		expectedMinAttempts int
		expectedError       string
	}{
		"standard": {
			totalAttempts:       8,
			minDelay:            2 * time.Second,
			maxDelay:            120 * time.Second,
			maxWaitTime:         300 * time.Second,
			expectedMaxDelays:   []time.Duration{2, 4, 8, 16, 32, 64, 120, 120},
			expectedMinAttempts: 8,
		},
		"zero minDelay": {
			totalAttempts: 3,
			minDelay:      0,
			maxDelay:      120 * time.Second,
			maxWaitTime:   300 * time.Second,
			expectedError: "minDelay must be greater than zero",
		},
		"zero maxDelay": {
			totalAttempts: 3,
			minDelay:      10 * time.Second,
			maxDelay:      0,
			maxWaitTime:   300 * time.Second,
			expectedError: "maxDelay must be greater than zero",
		},
		"minDelay greater than maxDelay": {
			totalAttempts: 3,
			minDelay:      10 * time.Second,
			maxDelay:      5 * time.Second,
			maxWaitTime:   300 * time.Second,
			expectedError: "maximum delay must be greater than minimum delay",
		},
		"zero remaining time": {
			totalAttempts:     3,
			minDelay:          10 * time.Second,
			maxDelay:          20 * time.Second,
			maxWaitTime:       0,
			expectedMaxDelays: []time.Duration{0, 0, 0},
		},
		"max wait time is less than min delay": {
			totalAttempts:       3,
			minDelay:            10 * time.Second,
			maxDelay:            20 * time.Second,
			maxWaitTime:         5 * time.Second,
			expectedMaxDelays:   []time.Duration{0},
			expectedMinAttempts: 1,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			var err error
			var attempt int64
			var delays = make([]time.Duration, c.totalAttempts)

			remainingTime := c.maxWaitTime

			for {
				attempt++

				if c.totalAttempts < attempt {
					break
				}

				if remainingTime <= 0 {
					break
				}

				delay, e := ComputeDelay(attempt, c.minDelay, c.maxDelay, remainingTime)
				if e != nil {
					err = e
					break
				}
				delays[attempt-1] = delay

				remainingTime -= delay
			}

			if len(c.expectedError) != 0 {
				if err == nil {
					t.Fatalf("expected error, got none")
				}
				if e, a := c.expectedError, err.Error(); !strings.Contains(a, e) {
					t.Fatalf("expected error %v, got %v instead", e, a)
				}
				return
			} else if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if e, a := c.expectedMinAttempts, int(attempt-1); a < e {
				t.Errorf("expect at least %v attempts, got %v", e, a)
			}

			for i, expectedDelay := range c.expectedMaxDelays {
				if e, a := expectedDelay*time.Second, delays[i]; a > e {
					t.Errorf("attempt %d : expected delay at most %v, got %v", i+1, e, a)
				}
				if a := delays[i]; a < 0 {
					t.Errorf("attempt %d : expected non negative delay, got %v", i+1, a)
				}
			}
		})
	}
}

func TestComputeDelayZerothAttempt(t *testing.T) {
	delay, err := ComputeDelay(0, time.Second, time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if delay != 0 {
		t.Errorf("expect no delay, got %v", delay)
	}
}
