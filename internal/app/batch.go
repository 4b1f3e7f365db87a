package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	fsw "github.com/corey/unitconv/internal/adapters/fsnotify"
	"github.com/corey/unitconv/internal/adapters/tailer"
	"github.com/corey/unitconv/internal/ports"
)

// RunLine handles one batch line. Blank lines and lines starting with # are
// skipped; anything else is split on whitespace and handled like command-line
// arguments. Reports whether the line was a request.
func (a *App) RunLine(line string, w io.Writer) (bool, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return false, nil
	}
	return true, a.Run(strings.Fields(line), w)
}

// Batch runs every line of r and returns how many requests it handled.
func (a *App) Batch(r io.Reader, w io.Writer) (int, error) {
	n := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		ran, err := a.RunLine(sc.Text(), w)
		if err != nil {
			return n, err
		}
		if ran {
			n++
		}
	}
	if err := sc.Err(); err != nil {
		return n, fmt.Errorf("read batch: %w", err)
	}
	return n, nil
}

// Follow runs the existing lines of path, then every line appended to it,
// until ctx is cancelled. A trailing line without a newline waits until it
// is terminated. Truncating the file starts reading from the top again.
func (a *App) Follow(ctx context.Context, path string, w io.Writer) error {
	watcher, err := fsw.NewWatcher()
	if err != nil {
		return err
	}
	watcher.OnError = func(err error) {
		a.log.Warn().Err(err).Str("path", path).Msg("watch error")
	}
	return a.follow(ctx, path, w, watcher)
}

func (a *App) follow(ctx context.Context, path string, w io.Writer, watcher ports.Watcher) error {
	t := tailer.New(path, func(line string) error {
		_, err := a.RunLine(line, w)
		return err
	})

	failed := make(chan error, 1)
	onChange := func(string) {
		if err := t.Drain(); err != nil {
			select {
			case failed <- err:
			default:
			}
		}
	}
	if err := watcher.Watch(path, onChange); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	defer watcher.Stop()

	a.log.Info().Str("path", path).Msg("following")
	if err := t.Drain(); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		return nil
	case err := <-failed:
		return err
	}
}
