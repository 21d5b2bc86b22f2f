package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/adviceworks/casedesk/api"
	"github.com/adviceworks/casedesk/clients"
)

// ClientSource is the collaborator the shell fetches client records through.
// *api.Client satisfies it; offline mode wraps a local store.
type ClientSource interface {
	GetClients(ctx context.Context, page, pageSize int) (api.Page, error)
	CreateClient(ctx context.Context, rec clients.Record) (clients.Record, error)
	UpdateClient(ctx context.Context, rec clients.Record) (clients.Record, error)
}

// StoreSource adapts a clients.Store into a ClientSource for offline mode.
type StoreSource struct {
	Store clients.Store
}

func (s StoreSource) GetClients(ctx context.Context, page, pageSize int) (api.Page, error) {
	records, total, err := s.Store.List(ctx, page, pageSize)
	if err != nil {
		return api.Page{}, err
	}
	return api.Page{Status: true, Data: records, Total: total}, nil
}

func (s StoreSource) CreateClient(ctx context.Context, rec clients.Record) (clients.Record, error) {
	return s.Store.Create(ctx, rec)
}

func (s StoreSource) UpdateClient(ctx context.Context, rec clients.Record) (clients.Record, error) {
	return s.Store.Update(ctx, rec)
}

type clientsLoadedMsg struct {
	page api.Page
	err  error
}

type clientSavedMsg struct {
	rec clients.Record
	err error
}

type copiedResetMsg struct{}

const copiedFlashDuration = 1200 * time.Millisecond

func loadClientsCmd(source ClientSource, page, pageSize int) tea.Cmd {
	return func() tea.Msg {
		p, err := source.GetClients(context.Background(), page, pageSize)
		return clientsLoadedMsg{page: p, err: err}
	}
}

func saveClientCmd(source ClientSource, rec clients.Record, isNew bool) tea.Cmd {
	return func() tea.Msg {
		var saved clients.Record
		var err error
		if isNew {
			saved, err = source.CreateClient(context.Background(), rec)
		} else {
			saved, err = source.UpdateClient(context.Background(), rec)
		}
		return clientSavedMsg{rec: saved, err: err}
	}
}

func copiedResetCmd() tea.Cmd {
	return tea.Tick(copiedFlashDuration, func(time.Time) tea.Msg {
		return copiedResetMsg{}
	})
}
