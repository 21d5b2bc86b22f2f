package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/adviceworks/casedesk/checklist"
)

func (m *Model) updateChecklistView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editingCheck {
		return m.updateCheckEdit(msg)
	}
	if m.addingItem {
		return m.updateCheckAdd(msg)
	}

	switch msg.Type {
	case tea.KeyEsc:
		m.view = viewDetails
		m.syncBreadcrumbs()
		return m, nil
	case tea.KeyUp:
		if m.checkCursor > 0 {
			m.checkCursor--
		}
		return m, nil
	case tea.KeyDown:
		if m.checkCursor < m.check.Len()-1 {
			m.checkCursor++
		}
		return m, nil
	case tea.KeySpace:
		m.check.Toggle(m.checkCursor)
		m.syncChecklistCounts()
		return m, nil
	case tea.KeyEnter:
		rows := m.check.Rows()
		if m.checkCursor < len(rows) {
			m.editingCheck = true
			m.checkInput.SetValue(rows[m.checkCursor].Value)
			m.checkInput.CursorEnd()
			m.checkInput.Focus()
		}
		return m, nil
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		switch msg.Runes[0] {
		case 'k':
			if m.checkCursor > 0 {
				m.checkCursor--
			}
		case 'j':
			if m.checkCursor < m.check.Len()-1 {
				m.checkCursor++
			}
		case 'K':
			if m.check.Reorder(m.checkCursor, m.checkCursor-1) {
				m.checkCursor--
			}
		case 'J':
			if m.check.Reorder(m.checkCursor, m.checkCursor+1) {
				m.checkCursor++
			}
		case 'a':
			m.addingItem = true
			m.addInput.SetValue("")
			m.addInput.Focus()
		case 'd':
			if m.check.Delete(m.checkCursor) {
				if m.checkCursor >= m.check.Len() {
					m.checkCursor = m.check.Len() - 1
				}
				m.syncChecklistCounts()
			} else {
				m.statusMsg = "Mandatory items cannot be removed"
			}
		case 'y':
			return m, m.copyShareLink()
		}
	}
	return m, nil
}

func (m *Model) updateCheckEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.editingCheck = false
		m.checkInput.Blur()
		return m, nil
	case tea.KeyEnter:
		m.check.SetValue(m.checkCursor, m.checkInput.Value())
		m.editingCheck = false
		m.checkInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.checkInput, cmd = m.checkInput.Update(msg)
	return m, cmd
}

func (m *Model) updateCheckAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.addingItem = false
		m.addInput.Blur()
		return m, nil
	case tea.KeyEnter:
		name := strings.TrimSpace(m.addInput.Value())
		m.addingItem = false
		m.addInput.Blur()
		if name == "" {
			return m, nil
		}
		added, err := m.check.Add(context.Background(), name)
		switch {
		case err != nil:
			m.statusMsg = "Document search failed: " + err.Error()
		case added:
			m.checkCursor = m.check.Len() - 1
			m.syncChecklistCounts()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.addInput, cmd = m.addInput.Update(msg)
	return m, cmd
}

// syncChecklistCounts mirrors the review progress onto the selected client
// record so the list view shows it without a refetch.
func (m *Model) syncChecklistCounts() {
	if m.selected == nil || m.check == nil {
		return
	}
	rec := *m.selected
	rec.ChecklistDone = m.check.Completed()
	rec.ChecklistTotal = m.check.Len()
	m.selected = &rec
	for i := range m.records {
		if m.records[i].ID == rec.ID {
			m.records[i] = rec
		}
	}
}

func (m *Model) renderChecklistView() string {
	rows := m.check.Rows()

	var b strings.Builder
	b.WriteString(headingStyle.Render("Document checklist"))
	b.WriteString("\n\n")

	for i, row := range rows {
		mark := uncheckedStyle.Render("[ ]")
		if row.Checked {
			mark = checkedStyle.Render("[x]")
		}

		label := fmt.Sprintf("%-28s", row.Item.Label)
		if _, mandatory := checklist.MandatoryLabels[row.Item.Label]; mandatory {
			label = labelStyle.Render(label)
		} else {
			label = subtitleStyle.Render(label)
		}

		value := m.renderCheckValue(row, i)

		prefix := "  "
		if i == m.checkCursor {
			prefix = selectedRowStyle.Render("> ")
		}
		b.WriteString(prefix + mark + " " + label + " " + value)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("%d of %d reviewed", m.check.Completed(), m.check.Len())))
	if m.addingItem {
		b.WriteString("\n\n")
		b.WriteString(labelStyle.Render("Request document: ") + m.addInput.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, listPanelStyle.Render(b.String()))
}

func (m *Model) renderCheckValue(row checklist.Row, idx int) string {
	if idx == m.checkCursor && m.editingCheck {
		return m.checkInput.View()
	}
	if !row.Item.Found {
		return missingStyle.Render("not found")
	}
	value := row.Value
	if value == "" {
		return guideStyle.Render("no value recorded")
	}
	out := valueStyle.Render(value)
	if row.Item.Source != "" {
		out += " " + guideStyle.Render(fmt.Sprintf("(%s, %.0f%%)", row.Item.Source, row.Item.Confidence*100))
	}
	return out
}
