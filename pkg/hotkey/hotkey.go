// Package hotkey detects a typed key sequence on raw terminal input and
// fires a callback when it completes. A single timer, reset on every
// keystroke, clears the partial buffer after an inactivity window, so stray
// typing never accumulates into a trigger.
//
// The package does not manage terminal modes itself: the caller that puts
// the terminal into raw mode owns restoring it, on a goroutine that is
// guaranteed to run at shutdown. Raw mode disables ISIG, so Ctrl+C arrives
// here as input; Listen surfaces it as ErrInterrupt for the caller to turn
// back into a shutdown.
package hotkey

import (
	"errors"
	"io"
	"strings"
	"sync"
	"time"
)

// DefaultWindow is the inactivity window after which the partial buffer is
// discarded.
const DefaultWindow = 750 * time.Millisecond

// ErrInterrupt is returned by Listen when the interrupt byte (Ctrl+C) is
// read. A raw-mode terminal delivers it as input instead of raising SIGINT.
var ErrInterrupt = errors.New("hotkey: interrupt")

// interruptByte is ETX, what a terminal sends for Ctrl+C with ISIG off.
const interruptByte = 0x03

// Detector watches an input stream for a key sequence.
type Detector struct {
	sequence string
	window   time.Duration
	onMatch  func()

	mu    sync.Mutex
	buf   strings.Builder
	timer *time.Timer
	done  chan struct{}
}

// New returns a detector for the given sequence. onMatch runs on the reader
// goroutine; it should only call fast operations like the registry's
// enable/disable.
func New(sequence string, window time.Duration, onMatch func()) *Detector {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Detector{
		sequence: sequence,
		window:   window,
		onMatch:  onMatch,
		done:     make(chan struct{}),
	}
}

// Listen consumes in byte by byte until it is exhausted, Stop is called, or
// the interrupt byte arrives, in which case it returns ErrInterrupt without
// feeding the byte to the sequence buffer.
func (d *Detector) Listen(in io.Reader) error {
	buf := make([]byte, 1)
	for {
		select {
		case <-d.done:
			return nil
		default:
		}
		n, err := in.Read(buf)
		if n > 0 {
			if buf[0] == interruptByte {
				return ErrInterrupt
			}
			d.feed(buf[0])
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}

// Stop ends the listen loop and cancels any pending buffer reset.
func (d *Detector) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	select {
	case <-d.done:
	default:
		close(d.done)
	}
	if d.timer != nil {
		d.timer.Stop()
	}
}

// feed appends one key to the buffer, resets the inactivity timer, and fires
// the callback when the buffer ends with the configured sequence.
func (d *Detector) feed(key byte) {
	d.mu.Lock()
	d.buf.WriteByte(key)
	matched := strings.HasSuffix(d.buf.String(), d.sequence)
	if matched {
		d.buf.Reset()
	}
	if d.timer == nil {
		d.timer = time.AfterFunc(d.window, d.expire)
	} else {
		d.timer.Reset(d.window)
	}
	d.mu.Unlock()

	if matched && d.onMatch != nil {
		d.onMatch()
	}
}

// expire clears the partial buffer after the inactivity window.
func (d *Detector) expire() {
	d.mu.Lock()
	d.buf.Reset()
	d.mu.Unlock()
}
