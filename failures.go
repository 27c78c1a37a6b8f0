package xrt

import (
	"fmt"
	"sync"
	"time"
)

// Failure describes one failed bring-up attempt.
type Failure struct {
	Stage   string
	Backend BackendKind
	Class   ErrorClass
	At      time.Time
	Err     error
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s (%s): %v", f.Stage, f.Class, f.Err)
}

func (f Failure) Unwrap() error { return f.Err }

// failureLog keeps the most recent failures, up to limit. A nil log records nothing.
type failureLog struct {
	mu      sync.Mutex
	limit   int
	entries []Failure
}

func newFailureLog(limit int) *failureLog {
	if limit <= 0 {
		return nil
	}
	return &failureLog{limit: limit, entries: make([]Failure, 0, limit)}
}

func (l *failureLog) record(f Failure) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.entries) == l.limit {
		copy(l.entries, l.entries[1:])
		l.entries = l.entries[:l.limit-1]
	}
	l.entries = append(l.entries, f)
}

// snapshot returns a copy of the entries, oldest first.
func (l *failureLog) snapshot() []Failure {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.entries) == 0 {
		return nil
	}
	return append([]Failure(nil), l.entries...)
}
