package poloniex

import (
	"sync"
	"testing"
	"time"
)

func TestClockNonce(t *testing.T) {
	now := time.Unix(1600000000, 0)
	n := newClockNonce(func() time.Time { return now })

	first := n.Next()
	if want := int64(1600000000000 * 42); first != want {
		t.Errorf("want %d, got %d", want, first)
	}
	if second := n.Next(); second != first+1 {
		t.Errorf("want %d, got %d", first+1, second)
	}

	now = now.Add(time.Second)
	if third := n.Next(); third != int64(1600000001000*42) {
		t.Errorf("want clock based nonce, got %d", third)
	}

	// Clock going backwards
	now = now.Add(-time.Hour)
	if fourth := n.Next(); fourth != int64(1600000001000*42)+1 {
		t.Errorf("nonce decreased: %d", fourth)
	}
}

func TestClockNonceConcurrent(t *testing.T) {
	n := newClockNonce(time.Now)
	var wg sync.WaitGroup
	var lock sync.Mutex
	seen := make(map[int64]struct{})
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				v := n.Next()
				lock.Lock()
				seen[v] = struct{}{}
				lock.Unlock()
			}
		}()
	}
	wg.Wait()
	if len(seen) != 8*500 {
		t.Errorf("duplicated nonces: want %d unique, got %d", 8*500, len(seen))
	}
}
