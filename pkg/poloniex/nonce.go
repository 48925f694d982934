package poloniex

import (
	"sync/atomic"
	"time"
)

// nonceScale multiplies the unix time in milliseconds.
const nonceScale = 42

// NonceFunc returns the nonce of the next private request.
type NonceFunc func() int64

// clockNonce issues max(last+1, unix_ms*42) so two requests issued within
// the same millisecond never share a nonce.
type clockNonce struct {
	last int64
	now  func() time.Time
}

func newClockNonce(now func() time.Time) *clockNonce {
	return &clockNonce{now: now}
}

func (n *clockNonce) Next() int64 {
	candidate := n.now().UnixNano() / int64(time.Millisecond) * nonceScale
	for {
		last := atomic.LoadInt64(&n.last)
		next := candidate
		if next <= last {
			next = last + 1
		}
		if atomic.CompareAndSwapInt64(&n.last, last, next) {
			return next
		}
	}
}
