package internal

import "sync"

// Loop is a FIFO of deferred tasks drained one turn at a time by the UI
// goroutine. Defer may be called from any goroutine.
type Loop struct {
	mu    sync.Mutex
	tasks []func()
}

func NewLoop() *Loop {
	return &Loop{}
}

func (l *Loop) Defer(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	l.tasks = append(l.tasks, fn)
	l.mu.Unlock()
}

// RunPending runs the tasks that were queued before the call. Tasks deferred
// while the turn is running wait for the next turn.
func (l *Loop) RunPending() int {
	l.mu.Lock()
	batch := l.tasks
	l.tasks = nil
	l.mu.Unlock()

	for _, task := range batch {
		task()
	}
	return len(batch)
}

func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.tasks)
}
