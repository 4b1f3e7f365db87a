package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/corey/unitconv/internal/ports"
	"github.com/mattn/go-isatty"
)

// ANSI color codes for terminal output.
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorCyan  = "\033[36m"
	colorGray  = "\033[90m"
)

// useColor reports whether w is a terminal and NO_COLOR is unset.
func useColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

type palette struct {
	bold, cyan, gray, reset string
}

func paletteFor(w io.Writer) palette {
	if !useColor(w) {
		return palette{}
	}
	return palette{bold: colorBold, cyan: colorCyan, gray: colorGray, reset: colorReset}
}

// formatHistory renders entries one per line, newest first:
//
//	   3  2026-01-02 15:04:05  100 c f  →  100 celsius = 212 fahrenheit
//	   2  2026-01-02 15:03:10  km       →  1 kilometers (10 units)
func formatHistory(entries []ports.HistoryEntry, p palette) string {
	width := 0
	for _, e := range entries {
		if n := len(strings.Join(e.Args, " ")); n > width {
			width = n
		}
	}

	var sb strings.Builder
	for _, e := range entries {
		args := strings.Join(e.Args, " ")
		sb.WriteString(fmt.Sprintf("%s%4d%s  %s%s%s  %s%-*s%s  →  %s\n",
			p.bold, e.ID, p.reset,
			p.gray, e.At.Local().Format("2006-01-02 15:04:05"), p.reset,
			p.cyan, width, args, p.reset,
			describe(e)))
	}
	return sb.String()
}

func describe(e ports.HistoryEntry) string {
	if e.Action == "sweep" {
		return fmt.Sprintf("%s (%d units)", e.Input, e.Results)
	}
	return fmt.Sprintf("%s = %s", e.Input, e.Result)
}
