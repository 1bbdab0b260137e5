package worker

import "github.com/getsentry/sentry-go"

// Serial runs submitted functions one at a time, in submission order, on a
// single goroutine. Grids and their services hold no locks; putting a Serial
// queue in front of one lets any number of goroutines mutate it safely.
type Serial struct {
	queue chan func()
	done  chan struct{}
}

// NewSerial returns a running serial queue with the given submission buffer.
func NewSerial(buffer int) *Serial {
	s := &Serial{
		queue: make(chan func(), buffer),
		done:  make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *Serial) run() {
	defer sentry.Recover()
	defer close(s.done)

	for f := range s.queue {
		f()
	}
}

// Submit enqueues f. It blocks while the buffer is full and must not be
// called after Close.
func (s *Serial) Submit(f func()) {
	s.queue <- f
}

// Close drains the pending work and stops the queue, blocking until the last
// submitted function has run.
func (s *Serial) Close() {
	close(s.queue)
	<-s.done
}
