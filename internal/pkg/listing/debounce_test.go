package listing

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type termRecorder struct {
	mu    sync.Mutex
	terms []string
}

func (r *termRecorder) record(term string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.terms = append(r.terms, term)
}

func (r *termRecorder) seen() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.terms))
	copy(out, r.terms)
	return out
}

func TestDebouncerOnlyLatestTermFires(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	rec := &termRecorder{}

	// Rapid keystrokes inside the window: only the last one survives.
	d.Submit("j", rec.record)
	d.Submit("ju", rec.record)
	d.Submit("jua", rec.record)
	d.Submit("juan", rec.record)

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, []string{"juan"}, rec.seen())
}

func TestDebouncerSeparatedSubmissionsBothFire(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	rec := &termRecorder{}

	d.Submit("first", rec.record)
	time.Sleep(60 * time.Millisecond)
	d.Submit("second", rec.record)
	time.Sleep(60 * time.Millisecond)

	assert.Equal(t, []string{"first", "second"}, rec.seen())
}

func TestDebouncerCancel(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	rec := &termRecorder{}

	d.Submit("doomed", rec.record)
	d.Cancel()

	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, rec.seen())
}

func TestNewDebouncerDefaultsWindow(t *testing.T) {
	d := NewDebouncer(0)
	assert.Equal(t, DefaultDebounce, d.window)
}
