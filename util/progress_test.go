package util

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-errors/errors"
)

// syncBuffer keeps the paint goroutine and the test from writing and
// reading the buffer at the same time.
type syncBuffer struct {
	mutex sync.Mutex
	buf   bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.buf.String()
}

func TestProgressSpinnerDo(t *testing.T) {
	out := &syncBuffer{}
	ps := &ProgressSpinner{out: out}

	err := ps.Do(func() error {
		time.Sleep(250 * time.Millisecond)
		return nil
	}, "configuring")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), "configuring") {
		t.Errorf("spinner output should carry the label, got %q", out.String())
	}
}

func TestProgressSpinnerDoPropagatesError(t *testing.T) {
	ps := &ProgressSpinner{out: &syncBuffer{}}

	want := errors.New("build failed")
	err := ps.Do(func() error { return want }, "building")
	if err != want {
		t.Errorf("got %v, want the work error", err)
	}
}

func TestProgressSpinnerDoneIsIdempotent(t *testing.T) {
	ps := &ProgressSpinner{out: &syncBuffer{}}

	ps.Start("packaging")
	ps.Done()
	ps.Done()
	ps.Fail()
}
