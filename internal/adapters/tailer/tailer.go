// Package tailer reads lines appended to a file since the previous read.
//
// The tailer does not watch anything itself: a caller invokes Drain whenever
// the file may have grown (after a watcher event, or on a timer). Drain
// delivers each complete line once, holds a trailing unterminated line until
// its newline arrives, and starts over when the file is truncated.
package tailer

import (
	"bufio"
	"errors"
	"io"
	"os"
	"sync"
)

// MaxLineSize caps a delivered line. Longer lines are dropped whole.
const MaxLineSize = 64 * 1024

// Tailer tracks a read offset into one file. Thread-safe: Drain calls are
// serialized, so callbacks never run concurrently.
type Tailer struct {
	path   string
	onLine func(line string) error

	mu      sync.Mutex
	offset  int64
	partial []byte
}

// New creates a Tailer for path. onLine receives each complete line without
// its line terminator; an error from onLine stops the current Drain.
func New(path string, onLine func(line string) error) *Tailer {
	return &Tailer{path: path, onLine: onLine}
}

// Path returns the tailed file.
func (t *Tailer) Path() string {
	return t.path
}

// Offset returns the number of bytes consumed so far.
func (t *Tailer) Offset() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.offset
}

// Drain delivers every complete line written since the previous call.
// A missing file is not an error; it is read from the start once it appears.
func (t *Tailer) Drain() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	f, err := os.Open(t.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	// Check if file was truncated (rewritten)
	info, err := f.Stat()
	if err != nil {
		return err
	}
	if info.Size() < t.offset {
		t.offset = 0
		t.partial = nil
	}
	if info.Size() == t.offset {
		return nil
	}

	if _, err := f.Seek(t.offset, io.SeekStart); err != nil {
		return err
	}

	// ReadBytes keeps the offset exact; bufio.Scanner reads ahead.
	reader := bufio.NewReader(f)
	for {
		chunk, err := reader.ReadBytes('\n')
		t.offset += int64(len(chunk))

		if err != nil {
			if errors.Is(err, io.EOF) {
				t.hold(chunk)
				return nil
			}
			return err
		}

		line := append(t.partial, chunk...)
		t.partial = nil
		if len(line) > MaxLineSize {
			continue
		}
		if cbErr := t.onLine(string(trimNewline(line))); cbErr != nil {
			return cbErr
		}
	}
}

// hold keeps an unterminated tail for the next Drain.
func (t *Tailer) hold(chunk []byte) {
	if len(chunk) == 0 {
		return
	}
	if len(t.partial)+len(chunk) > MaxLineSize {
		// Oversized marker: the whole line is dropped once its newline arrives.
		t.partial = make([]byte, MaxLineSize+1)
		return
	}
	t.partial = append(t.partial, chunk...)
}

func trimNewline(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}
	return b
}
