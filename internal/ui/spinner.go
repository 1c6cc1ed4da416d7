package ui

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Spinner animates a label on one terminal line while a slow stage runs
// (connecting to Learn, waiting on the model). It writes to stderr so the
// session transcript on stdout stays clean.
type Spinner struct {
	frames []string
	delay  time.Duration
	label  string
	out    io.Writer

	stopChan chan struct{}
	wg       sync.WaitGroup
	active   bool
	mu       sync.Mutex
}

// NewSpinner creates a spinner with the given label.
func NewSpinner(label string) *Spinner {
	return &Spinner{
		frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		delay:  100 * time.Millisecond,
		label:  label,
		out:    os.Stderr,
	}
}

// Start begins animating in a background goroutine. Starting an active
// spinner is a no-op.
func (s *Spinner) Start() {
	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return
	}
	s.active = true
	s.stopChan = make(chan struct{})
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for i := 0; ; i = (i + 1) % len(s.frames) {
			select {
			case <-s.stopChan:
				return
			case <-time.After(s.delay):
				fmt.Fprintf(s.out, "\r%s %s", StylePrimary.Render(s.frames[i]), s.label)
			}
		}
	}()
}

// Stop halts the animation and clears the line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.active = false
	close(s.stopChan)
	s.mu.Unlock()

	s.wg.Wait()
	fmt.Fprint(s.out, "\r\033[K")
}
