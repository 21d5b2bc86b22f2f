package caseapp

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/adviceworks/casedesk/clients"
	"github.com/adviceworks/casedesk/tui"
)

func TestNewRequiresSource(t *testing.T) {
	t.Parallel()
	if _, err := New(); !errors.Is(err, ErrNoSource) {
		t.Fatalf("expected ErrNoSource, got %v", err)
	}
}

func TestAppStartAndStop(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := runAppAsync(app, ctx)

	// Give the program a beat to come up before asking it to exit.
	time.Sleep(50 * time.Millisecond)
	if err := app.Stop(); err != nil {
		t.Fatalf("stop error: %v", err)
	}
	assertNoError(t, errCh)
}

func TestAppRejectsConcurrentStart(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := runAppAsync(app, ctx)
	time.Sleep(50 * time.Millisecond)

	if err := app.Start(ctx); !errors.Is(err, ErrProgramRunning) {
		t.Fatalf("expected ErrProgramRunning, got %v", err)
	}

	if err := app.Stop(); err != nil {
		t.Fatalf("stop error: %v", err)
	}
	assertNoError(t, errCh)
}

func TestStopWithoutStartIsNoop(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	if err := app.Stop(); err != nil {
		t.Fatalf("stop error: %v", err)
	}
}

func newTestApp(t *testing.T, opts ...Option) *App {
	t.Helper()

	store := clients.NewMemoryStore()
	if err := clients.SeedDemo(context.Background(), store); err != nil {
		t.Fatalf("seed error: %v", err)
	}

	base := []Option{
		WithSource(tui.StoreSource{Store: store}),
		WithProgramOptions(
			tea.WithInput(bytes.NewReader(nil)),
			tea.WithOutput(io.Discard),
			tea.WithoutRenderer(),
		),
	}
	app, err := New(append(base, opts...)...)
	if err != nil {
		t.Fatalf("new app error: %v", err)
	}
	return app
}

func runAppAsync(app *App, ctx context.Context) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Start(ctx)
	}()
	return errCh
}

func assertNoError(t *testing.T, errCh <-chan error) {
	t.Helper()
	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, tea.ErrProgramKilled) && !errors.Is(err, context.Canceled) {
			t.Fatalf("app returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("app did not exit in time")
	}
}
