package util

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/isoforge/isoforge/log"
	"github.com/tj/go-spin"
)

// ProgressSpinner is an indefinite progress indicator using a spinner.
// Long stages such as `lb build` use it to show liveness without
// parsing the tool's output.
type ProgressSpinner struct {
	out     io.Writer
	spinner *spin.Spinner
	colors  log.ConsoleColorsType

	mutex    sync.Mutex
	message  string
	spinning bool
	stop     chan struct{}
	wg       *sync.WaitGroup

	closed      bool
	interrupt   chan os.Signal
	interrupted bool
}

func (ps *ProgressSpinner) writer() io.Writer {
	if ps.out == nil {
		return os.Stdout
	}
	return ps.out
}

// Start starts the spinner.
func (ps *ProgressSpinner) Start(messages ...interface{}) {
	ps.mutex.Lock()
	if ps.interrupted || ps.spinning {
		ps.mutex.Unlock()
		return
	}

	ps.message = fmt.Sprint(messages...)
	ps.spinner = spin.New()
	ps.spinning = true
	ps.stop = make(chan struct{})
	ps.wg = &sync.WaitGroup{}
	ps.wg.Add(1)

	if ps.interrupt == nil {
		ps.interrupt = make(chan os.Signal, 1)
		signal.Notify(ps.interrupt, os.Interrupt, syscall.SIGTERM)
		go ps.watchInterrupt()
	}

	stop := ps.stop
	ps.mutex.Unlock()

	go func() {
		defer ps.wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			fmt.Fprintf(ps.writer(), "\r%s%s %s%s",
				ps.colors.Yellow(), ps.spinner.Next(), ps.colors.Reset(), ps.message)
			time.Sleep(time.Millisecond * 100)
		}
	}()
}

// Do executes given function with given messages as label.
func (ps *ProgressSpinner) Do(workFunc func() error, messages ...interface{}) error {
	ps.Start(messages...)
	if err := workFunc(); err != nil {
		ps.Fail()
		return err
	}
	ps.Done()
	return nil
}

// Done stops the spinner.
func (ps *ProgressSpinner) Done() {
	ps.finish()
}

// Fail stops the spinner.
func (ps *ProgressSpinner) Fail() {
	ps.finish()
}

// finish stops the paint goroutine and clears the spinner line.
func (ps *ProgressSpinner) finish() {
	ps.mutex.Lock()
	if !ps.spinning {
		ps.mutex.Unlock()
		return
	}
	ps.spinning = false
	close(ps.stop)
	wg := ps.wg
	message := ps.message
	ps.mutex.Unlock()

	wg.Wait()
	fmt.Fprintf(ps.writer(), "\r%s     \n", message)
}

func (ps *ProgressSpinner) watchInterrupt() {
	<-ps.interrupt

	ps.mutex.Lock()
	ps.interrupted = true
	closed := ps.closed
	ps.mutex.Unlock()

	ps.finish()
	if !closed {
		os.Exit(1)
	}
}

// Close closes spinner and do some cleanups.
func (ps *ProgressSpinner) Close() {
	ps.mutex.Lock()
	if ps.interrupt == nil {
		ps.mutex.Unlock()
		return
	}
	ps.closed = true
	interrupt := ps.interrupt
	ps.mutex.Unlock()

	interrupt <- syscall.Signal(0)
}
