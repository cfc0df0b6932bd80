package main

import "time"

// frameLimiter paces a capture loop to a fixed frame rate.
type frameLimiter struct {
	interval time.Duration
	next     time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

func newFrameLimiter(fps int) *frameLimiter {
	if fps <= 0 {
		fps = 1
	}
	return &frameLimiter{
		interval: time.Second / time.Duration(fps),
		now:      time.Now,
		sleep:    time.Sleep,
	}
}

// Wait blocks until the next frame is due. The first call returns at once
// and frames that are late are not made up for.
func (l *frameLimiter) Wait() {
	now := l.now()
	if l.next.IsZero() {
		l.next = now
	}
	if d := l.next.Sub(now); d > 0 {
		l.sleep(d)
		now = l.next
	}
	l.next = now.Add(l.interval)
}
