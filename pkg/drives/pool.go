package drives

import (
	"context"
	"sync"
	"sync/atomic"
)

// DefaultWorkers is the number of drive letters probed at the same time.
const DefaultWorkers = 4

// probeRequest asks a worker to inspect one drive root.
type probeRequest struct {
	Index    int
	Root     string
	Callback func(index int, drive Drive, ok bool)
}

// probePool runs drive probes on a fixed number of workers,
// so a disconnected network letter does not hold up the others.
type probePool struct {
	workers  int
	probe    func(root string) (Drive, bool)
	requests chan probeRequest
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	closed   atomic.Bool
}

func newProbePool(workers int, probe func(root string) (Drive, bool)) *probePool {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	ctx, cancel := context.WithCancel(context.Background())
	pool := &probePool{
		workers:  workers,
		probe:    probe,
		requests: make(chan probeRequest, workers*2),
		ctx:      ctx,
		cancel:   cancel,
	}
	for i := 0; i < workers; i++ {
		pool.wg.Add(1)
		go pool.worker()
	}
	return pool
}

func (p *probePool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.ctx.Done():
			return
		case req, ok := <-p.requests:
			if !ok {
				return
			}
			drive, found := p.probe(req.Root)
			if req.Callback != nil {
				req.Callback(req.Index, drive, found)
			}
		}
	}
}

// Submit queues req, waiting while the queue is full.
// It returns false once the pool is closed.
func (p *probePool) Submit(req probeRequest) bool {
	if p.closed.Load() {
		return false
	}
	select {
	case p.requests <- req:
		return true
	case <-p.ctx.Done():
		return false
	}
}

// Wait lets the workers finish every submitted request and stops them.
func (p *probePool) Wait() {
	if p.closed.Swap(true) {
		return
	}
	close(p.requests)
	p.wg.Wait()
	p.cancel()
}

// Close stops the workers, dropping requests that are still queued.
func (p *probePool) Close() {
	if p.closed.Swap(true) {
		return
	}
	p.cancel()
	close(p.requests)
	p.wg.Wait()
}
