package tui

import (
	"fmt"
	"strings"

	textinput "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/adviceworks/casedesk/clients"
)

var modalFields = []string{"Client name", "Advisor", "Date", "Case type"}

func (m *Model) updateClientsView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.modalOpen {
		return m.updateModal(msg)
	}

	switch msg.Type {
	case tea.KeyUp:
		m.moveListCursor(-1)
		return m, nil
	case tea.KeyDown:
		m.moveListCursor(1)
		return m, nil
	case tea.KeyEnter:
		if m.listCursor < len(m.records) {
			m.selectClient(m.records[m.listCursor])
		}
		return m, nil
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		switch msg.Runes[0] {
		case 'k':
			m.moveListCursor(-1)
		case 'j':
			m.moveListCursor(1)
		case 'n':
			m.openModal(clients.Record{}, true)
		case 'e':
			if m.listCursor < len(m.records) {
				m.openModal(m.records[m.listCursor], false)
			}
		case 'r':
			m.loading = true
			return m, tea.Batch(loadClientsCmd(m.source, m.page, m.pageSize), m.spinner.Tick)
		case '[':
			if m.page > 1 {
				m.page--
				m.loading = true
				return m, tea.Batch(loadClientsCmd(m.source, m.page, m.pageSize), m.spinner.Tick)
			}
		case ']':
			if m.page*m.pageSize < m.totalClients {
				m.page++
				m.loading = true
				return m, tea.Batch(loadClientsCmd(m.source, m.page, m.pageSize), m.spinner.Tick)
			}
		}
	}
	return m, nil
}

func (m *Model) moveListCursor(delta int) {
	if len(m.records) == 0 {
		return
	}
	m.listCursor = (m.listCursor + delta) % len(m.records)
	if m.listCursor < 0 {
		m.listCursor += len(m.records)
	}
}

func (m *Model) openModal(rec clients.Record, isNew bool) {
	m.modalOpen = true
	m.modalIsNew = isNew
	m.modalRecord = rec
	m.modalFocus = 0
	m.modalInputs = make([]textinput.Model, len(modalFields))
	values := []string{rec.Name, rec.Advisor, rec.Date, rec.CaseType}
	for i, label := range modalFields {
		ti := textinput.New()
		ti.Placeholder = label
		ti.SetValue(values[i])
		if i == 0 {
			ti.Focus()
		}
		m.modalInputs[i] = ti
	}
}

func (m *Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.modalOpen = false
		m.statusMsg = "Cancelled"
		return m, nil
	case tea.KeyTab, tea.KeyShiftTab, tea.KeyDown, tea.KeyUp:
		delta := 1
		if msg.Type == tea.KeyShiftTab || msg.Type == tea.KeyUp {
			delta = -1
		}
		m.modalInputs[m.modalFocus].Blur()
		m.modalFocus = (m.modalFocus + delta + len(m.modalInputs)) % len(m.modalInputs)
		m.modalInputs[m.modalFocus].Focus()
		return m, nil
	case tea.KeyEnter:
		return m, m.submitModal()
	}

	var cmd tea.Cmd
	m.modalInputs[m.modalFocus], cmd = m.modalInputs[m.modalFocus].Update(msg)
	return m, cmd
}

// submitModal replaces the record wholesale from the modal fields. A blank
// name is silently rejected at the point of entry.
func (m *Model) submitModal() tea.Cmd {
	name := strings.TrimSpace(m.modalInputs[0].Value())
	if name == "" {
		return nil
	}
	rec := m.modalRecord
	rec.Name = name
	rec.Advisor = strings.TrimSpace(m.modalInputs[1].Value())
	rec.Date = strings.TrimSpace(m.modalInputs[2].Value())
	rec.CaseType = strings.TrimSpace(m.modalInputs[3].Value())

	m.modalOpen = false
	m.loading = true
	return tea.Batch(saveClientCmd(m.source, rec, m.modalIsNew), m.spinner.Tick)
}

func (m *Model) renderClientsView() string {
	if m.modalOpen {
		return m.renderModal()
	}

	var b strings.Builder
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Clients — page %d", m.page)))
	b.WriteString("\n\n")

	if len(m.records) == 0 {
		b.WriteString(guideStyle.Render("No clients yet. Press n to add one."))
		return listPanelStyle.Render(b.String())
	}

	header := fmt.Sprintf("%-26s %-14s %-13s %-18s %-8s %s",
		"Client", "Advisor", "Date", "Case type", "Plans", "Checklist")
	b.WriteString(subtitleStyle.Render(header))
	b.WriteString("\n")

	for i, rec := range m.records {
		line := fmt.Sprintf("%-26s %-14s %-13s %-18s %d/%d      %d/%d",
			truncate(rec.Name, 26), truncate(rec.Advisor, 14), truncate(rec.Date, 13),
			truncate(rec.CaseType, 18), rec.PlansComplete, rec.PlanCount,
			rec.ChecklistDone, rec.ChecklistTotal)
		if i == m.listCursor {
			line = selectedRowStyle.Render("> " + line)
		} else {
			line = valueStyle.Render("  " + line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.lastFetchErr != nil {
		// The failure is noted quietly; the table keeps its previous rows.
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("(list may be stale)"))
	}
	return listPanelStyle.Render(b.String())
}

func (m *Model) renderModal() string {
	var b strings.Builder
	title := "New client"
	if !m.modalIsNew {
		title = "Edit client"
	}
	b.WriteString(headingStyle.Render(title))
	b.WriteString("\n\n")
	for i, ti := range m.modalInputs {
		label := labelStyle.Render(fmt.Sprintf("%-12s", modalFields[i]))
		b.WriteString(label)
		b.WriteString(ti.View())
		b.WriteString("\n")
	}
	return modalStyle.Render(b.String())
}

// truncate shortens s to max cells, ellipsis included. Rune-based so a
// multibyte name is never cut mid-character.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
