package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/adviceworks/casedesk/forms"
	"github.com/adviceworks/casedesk/utils/moneyfmt"
)

func (m *Model) updateWizardView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editingField {
		return m.updateFieldEdit(msg)
	}
	if m.fundsFocused {
		return m.updateFundsFocus(msg)
	}

	switch msg.Type {
	case tea.KeyEsc:
		m.view = viewDetails
		m.syncBreadcrumbs()
		return m, nil
	case tea.KeyUp:
		m.wizard.SetActiveField(m.wizard.ActiveField() - 1)
		return m, nil
	case tea.KeyDown:
		m.wizard.SetActiveField(m.wizard.ActiveField() + 1)
		return m, nil
	case tea.KeyLeft:
		m.cycleOption(-1)
		return m, nil
	case tea.KeyRight:
		m.cycleOption(1)
		return m, nil
	case tea.KeyEnter:
		return m, m.beginFieldEdit()
	case tea.KeyCtrlS:
		return m, m.saveStage()
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		switch msg.Runes[0] {
		case 'k':
			m.wizard.SetActiveField(m.wizard.ActiveField() - 1)
		case 'j':
			m.wizard.SetActiveField(m.wizard.ActiveField() + 1)
		case 'b':
			m.wizard.Back()
			m.refreshResults()
		case 'f':
			if m.wizard.Stage() == forms.StageExistingPlans {
				m.fundsFocused = true
				m.fundCursor = 0
				m.fundColumn = 0
			}
		case 'y':
			return m, m.copyShareLink()
		case '1', '2', '3', '4':
			// Stepper click: any stage reachable, no validation gate.
			stage := forms.Stage(msg.Runes[0] - '1')
			if err := m.wizard.NavigateTo(stage); err == nil {
				m.refreshResults()
			}
		}
	}
	return m, nil
}

// beginFieldEdit opens the inline editor for the active row, or cycles the
// option for radio/select rows where typing makes no sense.
func (m *Model) beginFieldEdit() tea.Cmd {
	rows := m.wizard.Rows()
	idx := m.wizard.ActiveField()
	if idx >= len(rows) {
		return nil
	}
	q := rows[idx].Question
	switch q.Kind {
	case forms.KindRadio, forms.KindSelect:
		m.cycleOption(1)
	case forms.KindText, forms.KindNumber, forms.KindDate:
		m.editingField = true
		m.fieldInput.Placeholder = q.Placeholder
		m.fieldInput.SetValue(m.wizard.Field(q.Key))
		m.fieldInput.CursorEnd()
		m.fieldInput.Focus()
	case forms.KindButton:
		return m.saveStage()
	}
	return nil
}

func (m *Model) updateFieldEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.wizard.Rows()
	idx := m.wizard.ActiveField()
	if idx >= len(rows) {
		m.editingField = false
		return m, nil
	}
	q := rows[idx].Question

	switch msg.Type {
	case tea.KeyEsc:
		m.editingField = false
		m.fieldInput.Blur()
		return m, nil
	case tea.KeyEnter:
		m.wizard.SetField(q.Key, strings.TrimSpace(m.fieldInput.Value()))
		m.editingField = false
		m.fieldInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.fieldInput, cmd = m.fieldInput.Update(msg)
	if q.Kind == forms.KindNumber {
		// Currency/percentage fields strip invalid runes as typed rather
		// than rejecting the keystroke.
		sanitized := moneyfmt.SanitizeDecimal(m.fieldInput.Value())
		if sanitized != m.fieldInput.Value() {
			m.fieldInput.SetValue(sanitized)
			m.fieldInput.CursorEnd()
		}
	}
	return m, cmd
}

// cycleOption advances the active radio/select answer through its options.
func (m *Model) cycleOption(delta int) {
	rows := m.wizard.Rows()
	idx := m.wizard.ActiveField()
	if idx >= len(rows) {
		return
	}
	q := rows[idx].Question
	if (q.Kind != forms.KindRadio && q.Kind != forms.KindSelect) || len(q.Options) == 0 {
		return
	}
	current := m.wizard.Field(q.Key)
	pos := -1
	for i, opt := range q.Options {
		if opt == current {
			pos = i
			break
		}
	}
	pos = (pos + delta + len(q.Options) + 1) % (len(q.Options) + 1)
	if pos == len(q.Options) {
		pos = 0
	}
	m.wizard.SetField(q.Key, q.Options[pos])
}

// saveStage flushes the wizard and lets the flow manager decide what
// follows: advance on non-terminal stages, finish on Results.
func (m *Model) saveStage() tea.Cmd {
	m.wizard.Save()
	if m.wizard.AtFinalStage() {
		m.statusMsg = "CYC form submitted"
		return m.finishCase()
	}
	m.statusMsg = fmt.Sprintf("Saved %s", m.wizard.Stage())
	m.wizard.NavigateTo(m.wizard.Stage() + 1)
	m.refreshResults()
	return nil
}

// finishCase bumps the client's completed-plan count and pushes the update
// through the client source.
func (m *Model) finishCase() tea.Cmd {
	if m.selected == nil {
		return nil
	}
	rec := *m.selected
	if rec.PlansComplete < rec.PlanCount {
		rec.PlansComplete++
	}
	m.selected = &rec
	m.view = viewDetails
	m.syncBreadcrumbs()
	return saveClientCmd(m.source, rec, false)
}

// refreshResults recomputes the readonly Results figures whenever the stage
// shown might render them.
func (m *Model) refreshResults() {
	if m.wizard.Stage() != forms.StageResults {
		return
	}
	existing, ok := m.funds.AverageChargeRate()
	if !ok {
		existing = 0
	}
	recommended, err := moneyfmt.ParsePercent(m.wizard.Field(forms.KeyAnnualCharge))
	if err != nil {
		recommended = 0
	}
	yield := 5.0 + existing - recommended
	m.wizard.SetField(forms.KeyCriticalYield, moneyfmt.FormatAmount(yield))
	if yield <= 7.0 {
		m.wizard.SetField(forms.KeyYieldVerdict, "Within the acceptable growth range")
	} else {
		m.wizard.SetField(forms.KeyYieldVerdict, "Exceeds the acceptable growth range")
	}
}

func (m *Model) updateFundsFocus(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editingFund {
		return m.updateFundEdit(msg)
	}

	rows := m.funds.Rows()
	switch msg.Type {
	case tea.KeyEsc:
		m.fundsFocused = false
		return m, nil
	case tea.KeyUp:
		if m.fundCursor > 0 {
			m.fundCursor--
		}
		return m, nil
	case tea.KeyDown:
		if m.fundCursor < len(rows)-1 {
			m.fundCursor++
		}
		return m, nil
	case tea.KeyLeft:
		if m.fundColumn > 0 {
			m.fundColumn--
		}
		return m, nil
	case tea.KeyRight:
		if m.fundColumn < 2 {
			m.fundColumn++
		}
		return m, nil
	case tea.KeyEnter:
		m.editingFund = true
		row := rows[m.fundCursor]
		cells := []string{row.Name, row.Value, row.Charge}
		m.fieldInput.Placeholder = []string{"Fund name", "Value", "Charge %"}[m.fundColumn]
		m.fieldInput.SetValue(cells[m.fundColumn])
		m.fieldInput.CursorEnd()
		m.fieldInput.Focus()
		return m, nil
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		switch msg.Runes[0] {
		case 'a':
			m.funds.Add()
			m.fundCursor = m.funds.Len() - 1
		case 'd':
			m.funds.Delete(m.fundCursor)
			if m.fundCursor >= m.funds.Len() {
				m.fundCursor = m.funds.Len() - 1
			}
		}
	}
	return m, nil
}

func (m *Model) updateFundEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.editingFund = false
		m.fieldInput.Blur()
		return m, nil
	case tea.KeyEnter:
		rows := m.funds.Rows()
		row := rows[m.fundCursor]
		value := strings.TrimSpace(m.fieldInput.Value())
		switch m.fundColumn {
		case 0:
			row.Name = value
		case 1:
			row.Value = value
		case 2:
			row.Charge = value
		}
		m.funds.Set(m.fundCursor, row)
		m.editingFund = false
		m.fieldInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.fieldInput, cmd = m.fieldInput.Update(msg)
	if m.fundColumn > 0 {
		sanitized := moneyfmt.SanitizeDecimal(m.fieldInput.Value())
		if sanitized != m.fieldInput.Value() {
			m.fieldInput.SetValue(sanitized)
			m.fieldInput.CursorEnd()
		}
	}
	return m, cmd
}

func (m *Model) renderWizardView() string {
	stepper := m.renderStepper()
	rows := m.wizard.Rows()
	active := m.wizard.ActiveField()

	var b strings.Builder
	for i, row := range rows {
		b.WriteString(m.renderFormRow(row, i == active))
		b.WriteString("\n")
	}

	panels := []string{listPanelStyle.Render(b.String())}
	if m.wizard.Stage() == forms.StageExistingPlans {
		panels = append(panels, m.renderFundsPanel())
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, panels...)

	action := "Ctrl+S save and continue"
	if m.wizard.AtFinalStage() {
		action = "Ctrl+S save & submit"
	}
	return lipgloss.JoinVertical(lipgloss.Left, stepper, body, guideStyle.Render(action))
}

func (m *Model) renderStepper() string {
	parts := make([]string, 0, len(forms.Stages()))
	for i, stage := range forms.Stages() {
		label := fmt.Sprintf("%d. %s", i+1, stage)
		if stage == m.wizard.Stage() {
			parts = append(parts, stepperActiveStyle.Render(label))
		} else {
			parts = append(parts, stepperStyle.Render(label))
		}
	}
	return strings.Join(parts, stepperStyle.Render("  ›  "))
}

func (m *Model) renderFormRow(row forms.Row, active bool) string {
	q := row.Question
	switch q.Kind {
	case forms.KindSection:
		return sectionStyle.Render("── " + q.Label + " ──")
	case forms.KindHeading:
		return headingStyle.Render(q.Label)
	}

	value := m.wizard.Field(q.Key)
	if active && m.editingField {
		value = m.fieldInput.View()
	} else {
		switch {
		case value == "" && q.Placeholder != "":
			value = guideStyle.Render(q.Placeholder)
		case q.Kind == forms.KindReadonly:
			value = readonlyStyle.Render(value)
		default:
			value = valueStyle.Render(value)
		}
		if q.Suffix != "" {
			value += " " + subtitleStyle.Render(q.Suffix)
		}
	}

	label := labelStyle.Render(fmt.Sprintf("%-44s", q.Label))
	line := "  " + label + value
	if active {
		line = selectedRowStyle.Render("> "+fmt.Sprintf("%-44s", q.Label)) + value
		if row.Guide != "" {
			line += "\n    " + guideStyle.Render(row.Guide)
		}
	}
	return line
}

func (m *Model) renderFundsPanel() string {
	var b strings.Builder
	title := "Fund charges"
	if m.fundsFocused {
		title += " (focused)"
	}
	b.WriteString(headingStyle.Render(title))
	b.WriteString("\n\n")

	for i, row := range m.funds.Rows() {
		cells := []string{
			fmt.Sprintf("%-20s", placeholderIfEmpty(row.Name, "fund name")),
			fmt.Sprintf("%-12s", placeholderIfEmpty(row.Value, "value")),
			fmt.Sprintf("%-8s", placeholderIfEmpty(row.Charge, "charge")),
		}
		if m.fundsFocused && i == m.fundCursor {
			cells[m.fundColumn] = selectedRowStyle.Render(cells[m.fundColumn])
			if m.editingFund {
				cells[m.fundColumn] = m.fieldInput.View()
			}
			b.WriteString("> ")
		} else {
			b.WriteString("  ")
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if avg, ok := m.funds.AverageChargeRate(); ok {
		b.WriteString(labelStyle.Render("Average charge rate ") + readonlyStyle.Render(moneyfmt.FormatPercent(avg)))
	} else {
		b.WriteString(guideStyle.Render("Average charge rate —"))
	}
	b.WriteString("\n")
	b.WriteString(guideStyle.Render("a add fund • d delete • Enter edit cell"))

	style := detailPanelStyle
	if m.fundsFocused {
		style = style.Copy().BorderForeground(activeBorderColor)
	}
	return style.Render(b.String())
}

func placeholderIfEmpty(s, placeholder string) string {
	if s == "" {
		return "(" + placeholder + ")"
	}
	return s
}
