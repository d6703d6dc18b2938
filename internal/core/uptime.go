package core

import "time"

// Uptime measures time since it was first asked, not since the port opened.
// The first Elapsed call records the start and reports zero.
type Uptime struct {
	start   time.Time
	started bool
	now     func() time.Time
}

// NewUptime returns an unstarted Uptime.
func NewUptime(now func() time.Time) *Uptime {
	if now == nil {
		now = time.Now
	}
	return &Uptime{now: now}
}

// Elapsed returns the time since the first call.
func (u *Uptime) Elapsed() time.Duration {
	t := u.now()
	if !u.started {
		u.start = t
		u.started = true
		return 0
	}
	return t.Sub(u.start)
}

// Started reports whether Elapsed has been called.
func (u *Uptime) Started() bool { return u.started }
