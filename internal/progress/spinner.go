package progress

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Spinner characters
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner represents a terminal spinner
type Spinner struct {
	out      io.Writer
	interval time.Duration
	message  string
	stop     chan struct{}
	done     chan struct{}
	mu       sync.Mutex
	once     sync.Once
	started  bool
}

// NewSpinner creates a new spinner writing to out
func NewSpinner(out io.Writer, message string) *Spinner {
	return &Spinner{
		out:      out,
		interval: 80 * time.Millisecond,
		message:  message,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// SetMessage replaces the text shown next to the spinner
func (s *Spinner) SetMessage(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if message == s.message {
		return
	}
	// clear the previous line before the next frame
	fmt.Fprintf(s.out, "\r\033[K")
	s.message = message
}

// Start starts the spinner animation
func (s *Spinner) Start() {
	s.mu.Lock()
	s.started = true
	s.mu.Unlock()

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		i := 0
		for {
			s.mu.Lock()
			fmt.Fprintf(s.out, "\r  %s %s ", spinnerFrames[i%len(spinnerFrames)], s.message)
			s.mu.Unlock()
			i++

			select {
			case <-s.stop:
				return
			case <-ticker.C:
			}
		}
	}()
}

// Stop stops the spinner and shows the result
func (s *Spinner) Stop(success bool) {
	s.once.Do(func() {
		s.mu.Lock()
		started := s.started
		s.mu.Unlock()

		close(s.stop)
		if started {
			<-s.done
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		mark := "✗"
		if success {
			mark = "✓"
		}
		fmt.Fprintf(s.out, "\r\033[K  %s %s\n", mark, s.message)
	})
}
