package drives

import (
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewProbePool(t *testing.T) {
	t.Run("creates_pool_with_specified_workers", func(t *testing.T) {
		pool := newProbePool(3, nil)
		defer pool.Close()
		assert.Equal(t, 3, pool.workers)
	})

	t.Run("defaults_for_invalid_input", func(t *testing.T) {
		pool := newProbePool(0, nil)
		defer pool.Close()
		assert.Equal(t, DefaultWorkers, pool.workers)
	})
}

func TestProbePool_Submit(t *testing.T) {
	t.Run("processes_requests", func(t *testing.T) {
		pool := newProbePool(2, func(root string) (Drive, bool) {
			return Drive{Root: root}, root == `C:\`
		})
		var got []Drive
		var mu sync.Mutex
		for i, root := range []string{`C:\`, `D:\`} {
			assert.True(t, pool.Submit(probeRequest{Index: i, Root: root, Callback: func(index int, d Drive, ok bool) {
				if ok {
					mu.Lock()
					got = append(got, d)
					mu.Unlock()
				}
			}}))
		}
		pool.Wait()
		assert.Equal(t, []Drive{{Root: `C:\`}}, got)
	})

	t.Run("returns_false_after_close", func(t *testing.T) {
		pool := newProbePool(2, nil)
		pool.Close()
		assert.False(t, pool.Submit(probeRequest{Root: `C:\`}))
	})

	t.Run("returns_false_after_wait", func(t *testing.T) {
		pool := newProbePool(2, nil)
		pool.Wait()
		assert.False(t, pool.Submit(probeRequest{Root: `C:\`}))
	})

	t.Run("slow_probe_does_not_block_others", func(t *testing.T) {
		release := make(chan struct{})
		pool := newProbePool(2, func(root string) (Drive, bool) {
			if root == `Z:\` {
				<-release
			}
			return Drive{Root: root}, true
		})
		var processed atomic.Int32
		done := make(chan struct{})
		pool.Submit(probeRequest{Root: `Z:\`})
		for _, root := range []string{`C:\`, `D:\`, `E:\`} {
			pool.Submit(probeRequest{Root: root, Callback: func(int, Drive, bool) {
				if processed.Add(1) == 3 {
					close(done)
				}
			}})
		}
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("requests behind a slow probe were not processed")
		}
		close(release)
		pool.Wait()
	})
}

func TestProbePool_CloseIsIdempotent(t *testing.T) {
	pool := newProbePool(1, nil)
	pool.Close()
	pool.Close()
	pool.Wait()
}

func TestEnumerator_ListUsesWorkers(t *testing.T) {
	withoutDiskUsage(t)
	var inFlight, maxInFlight atomic.Int32
	e := NewEnumerator(func(name string) (os.FileInfo, error) {
		n := inFlight.Add(1)
		for {
			m := maxInFlight.Load()
			if n <= m || maxInFlight.CompareAndSwap(m, n) {
				break
			}
		}
		time.Sleep(time.Millisecond)
		inFlight.Add(-1)
		return nil, os.ErrNotExist
	})
	e.workers = 2
	assert.Empty(t, e.List())
	assert.LessOrEqual(t, maxInFlight.Load(), int32(2))
}
