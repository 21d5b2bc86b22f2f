// Package caseapp exposes a reusable launcher for the case-desk terminal
// workspace. It wires the tui.Model, document searcher, and client source
// behind a simple lifecycle API so other binaries can embed the interactive
// workflow without copying UI code.
package caseapp

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/adviceworks/casedesk/checklist"
	"github.com/adviceworks/casedesk/nav"
	"github.com/adviceworks/casedesk/tui"
)

var (
	// ErrNoSource indicates no client source was supplied when constructing an App.
	ErrNoSource = errors.New("caseapp: a client source must be configured")
	// ErrProgramRunning reports that Start was invoked while the program is already running.
	ErrProgramRunning = errors.New("caseapp: program already running")
)

// Config controls how an App should be assembled.
type Config struct {
	Source             tui.ClientSource
	Searcher           checklist.DocumentSearcher
	PageSize           int
	OpenQuery          string
	OnBreadcrumbChange func([]nav.Crumb)
	ProgramOptions     []tea.ProgramOption
}

// Option mutates Config during construction.
type Option func(*Config)

// WithSource sets the client source backing the workspace.
func WithSource(source tui.ClientSource) Option {
	return func(cfg *Config) {
		if cfg == nil {
			return
		}
		cfg.Source = source
	}
}

// WithSearcher overrides the document searcher used by checklists.
func WithSearcher(searcher checklist.DocumentSearcher) Option {
	return func(cfg *Config) {
		if cfg == nil {
			return
		}
		cfg.Searcher = searcher
	}
}

// WithPageSize sets the client list page size.
func WithPageSize(size int) Option {
	return func(cfg *Config) {
		if cfg == nil {
			return
		}
		cfg.PageSize = size
	}
}

// WithOpenQuery deep-links the workspace to a client/case on startup using
// an encoded share-link query.
func WithOpenQuery(query string) Option {
	return func(cfg *Config) {
		if cfg == nil {
			return
		}
		cfg.OpenQuery = query
	}
}

// WithBreadcrumbObserver registers a callback invoked whenever the
// navigation trail changes.
func WithBreadcrumbObserver(fn func([]nav.Crumb)) Option {
	return func(cfg *Config) {
		if cfg == nil {
			return
		}
		cfg.OnBreadcrumbChange = fn
	}
}

// WithProgramOptions appends tea.Program options.
func WithProgramOptions(opts ...tea.ProgramOption) Option {
	return func(cfg *Config) {
		if cfg == nil {
			return
		}
		cfg.ProgramOptions = append(cfg.ProgramOptions, opts...)
	}
}

// App hosts the Bubble Tea-driven case workspace.
type App struct {
	cfg      Config
	mu       sync.Mutex
	program  *tea.Program
	inFlight bool
}

// New constructs an App from the provided options.
func New(opts ...Option) (*App, error) {
	cfg := Config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.Source == nil {
		return nil, ErrNoSource
	}
	return &App{cfg: cfg}, nil
}

// Start runs the workspace until the user quits or ctx is cancelled.
func (a *App) Start(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	model, err := tui.New(tui.Config{
		Source:             a.cfg.Source,
		Searcher:           a.cfg.Searcher,
		PageSize:           a.cfg.PageSize,
		OpenQuery:          a.cfg.OpenQuery,
		OnBreadcrumbChange: a.cfg.OnBreadcrumbChange,
	})
	if err != nil {
		return err
	}

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, a.cfg.ProgramOptions...)
	program := tea.NewProgram(model, opts...)

	a.mu.Lock()
	if a.inFlight {
		a.mu.Unlock()
		return ErrProgramRunning
	}
	a.program = program
	a.inFlight = true
	a.mu.Unlock()

	defer func() {
		a.mu.Lock()
		a.program = nil
		a.inFlight = false
		a.mu.Unlock()
	}()

	_, runErr := program.Run()
	return runErr
}

// Stop signals the running TUI program (if any) to exit.
func (a *App) Stop() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.program == nil {
		return nil
	}
	a.program.Quit()
	return nil
}
