package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/adviceworks/casedesk/nav"
)

var detailTabs = []nav.Tab{nav.TabDetails, nav.TabCases, nav.TabChecklist}

func (m *Model) updateDetailsView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.backToList()
		return m, nil
	case tea.KeyTab, tea.KeyShiftTab:
		m.cycleTab(msg.Type == tea.KeyShiftTab)
		return m, nil
	case tea.KeyEnter:
		if m.tab == nav.TabCases {
			m.openWizard()
		}
		if m.tab == nav.TabChecklist {
			m.openChecklist()
		}
		return m, nil
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		switch msg.Runes[0] {
		case 'c':
			m.openChecklist()
		case 'y':
			return m, m.copyShareLink()
		}
	}
	return m, nil
}

func (m *Model) cycleTab(reverse bool) {
	idx := 0
	for i, t := range detailTabs {
		if t == m.tab {
			idx = i
			break
		}
	}
	if reverse {
		idx = (idx - 1 + len(detailTabs)) % len(detailTabs)
	} else {
		idx = (idx + 1) % len(detailTabs)
	}
	m.tab = detailTabs[idx]
	m.syncBreadcrumbs()
}

func (m *Model) renderDetailsView() string {
	if m.selected == nil {
		return listPanelStyle.Render("No client selected")
	}
	rec := m.selected

	tabs := make([]string, 0, len(detailTabs))
	for _, t := range detailTabs {
		label := titleCaser.String(string(t))
		if t == m.tab {
			tabs = append(tabs, stepperActiveStyle.Render("["+label+"]"))
		} else {
			tabs = append(tabs, stepperStyle.Render(" "+label+" "))
		}
	}
	tabBar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	var body string
	switch m.tab {
	case nav.TabDetails:
		var b strings.Builder
		b.WriteString(headingStyle.Render(rec.Name))
		b.WriteString("\n\n")
		b.WriteString(labelStyle.Render("Advisor    ") + valueStyle.Render(rec.Advisor) + "\n")
		b.WriteString(labelStyle.Render("Date       ") + valueStyle.Render(rec.Date) + "\n")
		b.WriteString(labelStyle.Render("Case type  ") + valueStyle.Render(rec.CaseType) + "\n")
		b.WriteString(labelStyle.Render("Link       ") + guideStyle.Render(nav.EncodeQuery(rec.Slug(), "")) + "\n")
		body = b.String()
	case nav.TabCases:
		var b strings.Builder
		b.WriteString(headingStyle.Render("Cases"))
		b.WriteString("\n\n")
		caseType := rec.CaseType
		if caseType == "" {
			caseType = "Critical Yield Calculation"
		}
		b.WriteString(selectedRowStyle.Render("> " + caseType))
		b.WriteString("\n")
		b.WriteString(guideStyle.Render(fmt.Sprintf("  %d of %d plans complete — Enter opens the CYC form", rec.PlansComplete, rec.PlanCount)))
		body = b.String()
	case nav.TabChecklist:
		var b strings.Builder
		b.WriteString(headingStyle.Render("Checklist Review"))
		b.WriteString("\n\n")
		b.WriteString(guideStyle.Render(fmt.Sprintf("%d of %d items reviewed — Enter opens the checklist", rec.ChecklistDone, rec.ChecklistTotal)))
		body = b.String()
	}

	// Document pane is a static placeholder until the viewer exists.
	docPane := detailPanelStyle.Render(guideStyle.Render("Document preview\n(no viewer attached)"))
	main := listPanelStyle.Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, tabBar, lipgloss.JoinHorizontal(lipgloss.Top, main, docPane))
}
