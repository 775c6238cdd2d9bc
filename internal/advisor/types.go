package advisor

import "time"

// Options is the behavior shared by every adapter: the mock toggle and the
// retry policy applied around live protocol calls.
type Options struct {
	Mock       bool
	RetryCount int
	RetryDelay time.Duration
}

// Normalize fills usable defaults.
func (o Options) Normalize() Options {
	if o.RetryCount < 1 {
		o.RetryCount = 1
	}
	if o.RetryDelay < 0 {
		o.RetryDelay = 0
	}
	return o
}
