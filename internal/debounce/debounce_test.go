package debounce

import (
	"sync"
	"testing"
	"time"
)

type recorder struct {
	mu     sync.Mutex
	values []string
}

func (r *recorder) commit(value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, value)
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.values...)
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before timeout")
}

func TestSet_CommitsAfterQuietPeriod(t *testing.T) {
	rec := &recorder{}
	d := New(20*time.Millisecond, rec.commit)

	d.Set("exam")

	waitFor(t, time.Second, func() bool { return len(rec.snapshot()) == 1 })
	if got := rec.snapshot(); got[0] != "exam" {
		t.Errorf("expected %q committed, got %q", "exam", got[0])
	}
}

func TestSet_SupersedesPending(t *testing.T) {
	rec := &recorder{}
	d := New(50*time.Millisecond, rec.commit)

	// Each keystroke within the quiet period replaces the pending commit.
	d.Set("e")
	time.Sleep(10 * time.Millisecond)
	d.Set("ex")
	time.Sleep(10 * time.Millisecond)
	d.Set("exam")

	waitFor(t, time.Second, func() bool { return len(rec.snapshot()) >= 1 })
	time.Sleep(60 * time.Millisecond)

	got := rec.snapshot()
	if len(got) != 1 {
		t.Fatalf("expected exactly one commit, got %v", got)
	}
	if got[0] != "exam" {
		t.Errorf("expected latest value committed, got %q", got[0])
	}
}

func TestFlush_CommitsImmediately(t *testing.T) {
	rec := &recorder{}
	d := New(time.Hour, rec.commit)

	d.Set("milk")
	d.Flush()

	got := rec.snapshot()
	if len(got) != 1 || got[0] != "milk" {
		t.Fatalf("expected flushed commit of %q, got %v", "milk", got)
	}

	// Flushing again with nothing pending is a no-op.
	d.Flush()
	if got := rec.snapshot(); len(got) != 1 {
		t.Errorf("expected no second commit, got %v", got)
	}
}

func TestCancel_DiscardsPending(t *testing.T) {
	rec := &recorder{}
	d := New(20*time.Millisecond, rec.commit)

	d.Set("milk")
	d.Cancel()

	time.Sleep(50 * time.Millisecond)
	if got := rec.snapshot(); len(got) != 0 {
		t.Errorf("expected no commits after cancel, got %v", got)
	}
}
