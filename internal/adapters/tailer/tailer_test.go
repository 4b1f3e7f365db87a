package tailer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type collector struct {
	mu    sync.Mutex
	lines []string
}

func (c *collector) add(line string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append(c.lines, line)
	return nil
}

func (c *collector) get() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.lines...)
}

func appendFile(t *testing.T, path, s string) {
	t.Helper()
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	require.NoError(t, err)
	_, err = f.WriteString(s)
	require.NoError(t, err)
	require.NoError(t, f.Close())
}

func TestDrain_MissingFile(t *testing.T) {
	c := &collector{}
	tl := New(filepath.Join(t.TempDir(), "requests.txt"), c.add)
	require.NoError(t, tl.Drain())
	assert.Empty(t, c.get())
	assert.Equal(t, int64(0), tl.Offset())
}

func TestDrain_CompleteLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requests.txt")
	c := &collector{}
	tl := New(path, c.add)
	assert.Equal(t, path, tl.Path())

	appendFile(t, path, "km m\r\n100 c f\n")
	require.NoError(t, tl.Drain())
	assert.Equal(t, []string{"km m", "100 c f"}, c.get())
	assert.Equal(t, int64(len("km m\r\n100 c f\n")), tl.Offset())

	// Nothing new: no duplicates.
	require.NoError(t, tl.Drain())
	assert.Len(t, c.get(), 2)
}

func TestDrain_PartialLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requests.txt")
	c := &collector{}
	tl := New(path, c.add)

	appendFile(t, path, "one\ntw")
	require.NoError(t, tl.Drain())
	assert.Equal(t, []string{"one"}, c.get())

	appendFile(t, path, "o\nthree\n")
	require.NoError(t, tl.Drain())
	assert.Equal(t, []string{"one", "two", "three"}, c.get())
}

func TestDrain_BlankLinesDelivered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requests.txt")
	c := &collector{}
	tl := New(path, c.add)

	appendFile(t, path, "a\n\nb\n")
	require.NoError(t, tl.Drain())
	assert.Equal(t, []string{"a", "", "b"}, c.get())
}

func TestDrain_Truncation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requests.txt")
	c := &collector{}
	tl := New(path, c.add)

	appendFile(t, path, "first line\nsecond line\n")
	require.NoError(t, tl.Drain())

	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0644))
	require.NoError(t, tl.Drain())
	assert.Equal(t, []string{"first line", "second line", "x"}, c.get())
}

func TestDrain_OversizedLineDropped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requests.txt")
	c := &collector{}
	tl := New(path, c.add)

	big := strings.Repeat("9", MaxLineSize+10)
	appendFile(t, path, big[:MaxLineSize/2])
	require.NoError(t, tl.Drain())
	appendFile(t, path, big[MaxLineSize/2:]+"\nkm m\n")
	require.NoError(t, tl.Drain())
	assert.Equal(t, []string{"km m"}, c.get())
}

func TestDrain_CallbackError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requests.txt")
	appendFile(t, path, "a\nb\n")

	boom := errors.New("boom")
	var seen []string
	tl := New(path, func(line string) error {
		seen = append(seen, line)
		return boom
	})
	assert.EqualError(t, tl.Drain(), "boom")
	assert.Equal(t, []string{"a"}, seen)

	// The failed line was consumed; the next drain resumes after it.
	boom = nil
	require.NoError(t, tl.Drain())
	assert.Equal(t, []string{"a", "b"}, seen)
}
