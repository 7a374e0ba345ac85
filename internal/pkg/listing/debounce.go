package listing

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiescence window applied to search input before a
// term is committed to the query.
const DefaultDebounce = 500 * time.Millisecond

// Debouncer delays delivery of a search term until input has been quiet for
// the configured window. Each new term cancels the pending one, so only the
// latest keystroke ever fires.
type Debouncer struct {
	window time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

func NewDebouncer(window time.Duration) *Debouncer {
	if window <= 0 {
		window = DefaultDebounce
	}
	return &Debouncer{window: window}
}

// Submit schedules fn(term) after the quiescence window. A pending submission
// that has not fired yet is discarded.
func (d *Debouncer) Submit(term string, fn func(term string)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() {
		fn(term)
	})
}

// Cancel drops any pending submission.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
