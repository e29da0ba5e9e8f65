// Package worker provides a worker pool for parallel perft and start
// position scans.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

// WorkItem is one subtree or start position to count.
type WorkItem struct {
	Index int // position in the caller's input, used to order results
	Label string
	Game  engine.ChessGame
	Depth int
}

// ProcessResult is the outcome of one work item.
type ProcessResult struct {
	Index int
	Label string
	Nodes uint64
	Error error
}

// ProcessFunc counts one work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc over submitted items on a fixed number of goroutines.
type Pool struct {
	workers int
	buffer  int
	work    chan WorkItem
	results chan ProcessResult
	process ProcessFunc
	wg      sync.WaitGroup
	stopped atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithBufferSize sets the capacity of the work and result channels.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.buffer = size
		}
	}
}

// NewPool creates a pool with one worker and a buffer of 10 unless options
// say otherwise.
func NewPool(process ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		workers: 1,
		buffer:  10,
		process: process,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.work = make(chan WorkItem, p.buffer)
	p.results = make(chan ProcessResult, p.buffer)
	return p
}

// Start launches the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.loop()
	}
}

func (p *Pool) loop() {
	defer p.wg.Done()
	for item := range p.work {
		if p.stopped.Load() {
			continue
		}
		p.results <- p.process(item)
	}
}

// Submit queues an item, blocking while the work channel is full.
func (p *Pool) Submit(item WorkItem) {
	p.work <- item
}

// Stop makes workers skip every item they have not started yet.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// Stopped reports whether Stop was called.
func (p *Pool) Stopped() bool {
	return p.stopped.Load()
}

// Close waits for the workers to drain the work channel, then closes the
// result channel.
func (p *Pool) Close() {
	close(p.work)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel processed items are delivered on.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}

// Run starts the pool, feeds it every item and returns the results ordered
// by Index. Cancelling ctx stops the pool; items not yet started are then
// missing from the results and the context error is returned. A pool runs once.
func (p *Pool) Run(ctx context.Context, items []WorkItem) ([]ProcessResult, error) {
	p.Start()
	go func() {
		defer p.Close()
		for _, item := range items {
			select {
			case <-ctx.Done():
				p.Stop()
				return
			case p.work <- item:
			}
		}
	}()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			p.Stop()
		case <-done:
		}
	}()

	results := make([]ProcessResult, 0, len(items))
	for r := range p.results {
		results = append(results, r)
	}
	if len(results) < len(items) {
		return sortByIndex(results), ctx.Err()
	}
	return sortByIndex(results), nil
}
