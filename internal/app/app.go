// Package app wires together the adapters and domain logic.
// It owns the lifecycle of one unitconv invocation: load settings, build the
// token table, run requests, record history, close.
package app

import (
	"fmt"
	"io"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/corey/unitconv/internal/adapters/bbolt"
	"github.com/corey/unitconv/internal/domain/notation"
	"github.com/corey/unitconv/internal/domain/report"
	"github.com/corey/unitconv/internal/domain/request"
	ulog "github.com/corey/unitconv/internal/log"
	"github.com/corey/unitconv/internal/ports"
	"github.com/rs/zerolog"
)

// App is the top-level container wiring all components together.
type App struct {
	Config    Config
	Paths     *Paths
	Table     *notation.Table
	Formatter report.Formatter

	log zerolog.Logger

	mu      sync.Mutex    // serializes Run; batch follow calls it from the watcher goroutine
	history ports.History // opened on first use
}

// New builds an App from cfg. Config aliases are validated here so a bad
// config file fails before any request runs.
func New(cfg Config, paths *Paths) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	table, err := notation.NewTable(cfg.Aliases)
	if err != nil {
		return nil, fmt.Errorf("config aliases: %w", err)
	}
	a := &App{
		Config:    cfg,
		Paths:     paths,
		Table:     table,
		Formatter: cfg.Formatter(),
		log:       ulog.WithComponent("app"),
	}
	a.log.Debug().
		Str("home", paths.Root).
		Int("aliases", len(cfg.Aliases)).
		Bool("history", cfg.History).
		Msg("app ready")
	return a, nil
}

// Load resolves the config file under home and builds an App from it.
func Load(home string) (*App, error) {
	paths := NewPaths(home)
	cfg, err := LoadConfig(paths.Config)
	if err != nil {
		return nil, err
	}
	return New(cfg, paths)
}

// Run handles one request given as raw tokens. Malformed requests are
// reported as a single line on w and are not errors; the returned error is
// reserved for failures writing to w or rendering.
func (a *App) Run(tokens []string, w io.Writer) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	task, err := request.Parse(tokens, a.Table)
	if err != nil {
		a.log.Debug().Strs("args", tokens).Err(err).Msg("rejected request")
		_, werr := fmt.Fprintln(w, Message(err))
		return werr
	}
	return a.execute(task, tokens, w)
}

func (a *App) execute(task request.Task, args []string, w io.Writer) error {
	var r report.Report
	switch task.Action {
	case request.Help:
		_, err := io.WriteString(w, Usage)
		return err
	case request.ListUnits:
		_, err := io.WriteString(w, notation.FormatListing(a.Table.Groups()))
		return err
	case request.ConvertTo:
		r = report.ConvertTo(task.Value, task.From, task.To)
	case request.ConvertAll:
		r = report.ConvertAll(task.Value, task.From)
	default:
		return fmt.Errorf("unhandled action %s", task.Action)
	}

	out, err := a.Formatter.Render(r)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, out); err != nil {
		return err
	}
	a.record(task, args, r)
	return nil
}

// record stores a finished conversion when history is enabled. Failures are
// logged; a conversion that printed never fails on history.
func (a *App) record(task request.Task, args []string, r report.Report) {
	if !a.Config.History {
		return
	}
	h, err := a.openHistory()
	if err != nil {
		a.log.Warn().Err(err).Msg("history unavailable")
		return
	}
	entry := ports.HistoryEntry{
		Args:    append([]string(nil), args...),
		Action:  task.Action.String(),
		Input:   a.quantity(r.Input),
		Results: len(r.Results),
	}
	if len(r.Results) > 0 {
		entry.Result = a.quantity(r.Results[0])
	}
	if err := h.Record(entry); err != nil {
		a.log.Warn().Err(err).Msg("history record failed")
	}
}

func (a *App) quantity(q report.Quantity) string {
	return a.Formatter.Value(q.Value) + " " + notation.Name(q.Unit)
}

func (a *App) openHistory() (ports.History, error) {
	if a.history != nil {
		return a.history, nil
	}
	if err := a.Paths.EnsureDirs(); err != nil {
		return nil, fmt.Errorf("create %s: %w", a.Paths.Root, err)
	}
	store, err := bbolt.NewStore(a.Paths.History, bbolt.WithLimit(a.Config.HistoryLimit))
	if err != nil {
		return nil, err
	}
	a.log.Debug().Str("path", a.Paths.History).Msg("history opened")
	a.history = store
	return store, nil
}

// History returns the history store, opening it regardless of whether
// recording is enabled so past entries can still be listed or cleared.
func (a *App) History() (ports.History, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.openHistory()
}

// Close releases the history store if it was opened.
func (a *App) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.history == nil {
		return nil
	}
	err := a.history.Close()
	a.history = nil
	return err
}

// Message renders a request error as the single line shown to the user.
func Message(err error) string {
	return capitalize(err.Error())
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Usage is printed for an empty request or -h/--help.
const Usage = `USAGE:
  -h, --help              Display this help message
  units                   Display all available units
  [unit]                  Convert 1.0 in an unit to all other possible units
  [value] [unit]          Convert a value in an unit to all other possible units
  [unit] [unit]           Convert a 1.0 in unit A to unit B
  [value] [unit] [unit]   Convert a value in unit A to unit B

COMMANDS:
  history                 Show or clear recorded conversions
  batch [file|-]          Convert one request per line
  config                  Show resolved paths and settings
  version                 Print the version
`
