package app

import (
	"log/slog"
	"sync"

	"github.com/rivo/tview"
	"go.uber.org/atomic"
)

// UIScheduler runs dismiss completions on the UI goroutine, on a later turn of the
// event loop and in the order they were scheduled. A single worker hands them to
// the application; QueueUpdateDraw blocks until the update has run, so it is never
// called from the UI goroutine itself.
type UIScheduler struct {
	post func(func())

	mu    sync.Mutex
	queue []func()

	wake      chan struct{}
	done      chan struct{}
	startOnce sync.Once
	closeOnce sync.Once
	closed    atomic.Bool
}

// NewUIScheduler creates a scheduler posting to app. Its worker starts on first use.
func NewUIScheduler(app *tview.Application) *UIScheduler {
	return &UIScheduler{
		post: func(fn func()) { app.QueueUpdateDraw(fn) },
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

// Schedule queues fn behind every completion scheduled before it.
// Completions scheduled after Close are dropped.
func (s *UIScheduler) Schedule(fn func()) {
	if s.closed.Load() {
		slog.Debug("completion dropped, scheduler closed")
		return
	}
	s.startOnce.Do(func() { go s.loop() })

	s.mu.Lock()
	s.queue = append(s.queue, fn)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Close stops the worker. Call it once the event loop has returned; nothing is
// posted to a stopped application afterwards.
func (s *UIScheduler) Close() {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		close(s.done)
	})
}

func (s *UIScheduler) loop() {
	for {
		select {
		case <-s.done:
			return
		case <-s.wake:
		}

		s.mu.Lock()
		batch := s.queue
		s.queue = nil
		s.mu.Unlock()

		if len(batch) == 0 || s.closed.Load() {
			continue
		}
		s.post(func() {
			for _, fn := range batch {
				fn()
			}
		})
	}
}
