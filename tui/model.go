// Package tui implements the interactive case-management shell: the client
// list, the client details tabs, the CYC wizard, and the checklist review.
package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	textinput "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/adviceworks/casedesk/checklist"
	"github.com/adviceworks/casedesk/clients"
	"github.com/adviceworks/casedesk/forms"
	"github.com/adviceworks/casedesk/nav"
)

type view int

const (
	viewClients view = iota
	viewDetails
	viewWizard
	viewChecklist
)

// Config assembles a shell model.
type Config struct {
	Source   ClientSource
	Searcher checklist.DocumentSearcher
	PageSize int
	// OpenQuery is an optional deep link ("client=<slug>&case=<type>")
	// applied once the first client page has loaded.
	OpenQuery string
	// OnBreadcrumbChange receives the breadcrumb trail whenever it changes.
	// The shell renders its own trail as well; the callback exists for
	// embedders that own outer chrome.
	OnBreadcrumbChange func([]nav.Crumb)
}

// Model is the root Bubble Tea model.
type Model struct {
	source   ClientSource
	searcher checklist.DocumentSearcher
	pageSize int

	view view

	// client list
	records      []clients.Record
	totalClients int
	page         int
	listCursor   int
	loading      bool
	lastFetchErr error

	// create/edit modal
	modalOpen   bool
	modalIsNew  bool
	modalRecord clients.Record
	modalInputs []textinput.Model
	modalFocus  int

	// selection
	selected *clients.Record
	tab      nav.Tab

	// breadcrumbs
	emitter *nav.Emitter
	trail   []nav.Crumb

	// wizard
	wizard       *forms.Wizard
	funds        *forms.FundChargeList
	fieldInput   textinput.Model
	editingField bool
	fundsFocused bool
	fundCursor   int
	fundColumn   int
	editingFund  bool
	lastSave     *forms.SaveRecord

	// checklist review
	check        *checklist.List
	checkCursor  int
	editingCheck bool
	checkInput   textinput.Model
	addingItem   bool
	addInput     textinput.Model

	spinner   spinner.Model
	copied    bool
	statusMsg string
	pending   string

	width  int
	height int
}

var titleCaser = cases.Title(language.English)

// New constructs the shell model.
func New(cfg Config) (*Model, error) {
	if cfg.Source == nil {
		return nil, ConfigError{Reason: "a client source is required"}
	}
	if cfg.Searcher == nil {
		cfg.Searcher = checklist.NewSimulatedSearcher()
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 20
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	field := textinput.New()
	field.Placeholder = "enter value"

	check := textinput.New()
	add := textinput.New()
	add.Placeholder = "item to request"

	m := &Model{
		source:     cfg.Source,
		searcher:   cfg.Searcher,
		pageSize:   cfg.PageSize,
		page:       1,
		tab:        nav.TabDetails,
		emitter:    nav.NewEmitter(cfg.OnBreadcrumbChange),
		spinner:    sp,
		fieldInput: field,
		checkInput: check,
		addInput:   add,
		pending:    cfg.OpenQuery,
		statusMsg:  "Loading clients…",
	}
	m.syncBreadcrumbs()
	return m, nil
}

func (m *Model) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(loadClientsCmd(m.source, m.page, m.pageSize), m.spinner.Tick)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case clientsLoadedMsg:
		m.handleClientsLoaded(msg)
		return m, nil

	case clientSavedMsg:
		return m, m.handleClientSaved(msg)

	case copiedResetMsg:
		m.copied = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// handleClientsLoaded applies a fetch result. Failures are logged to the
// fetch-error slot and otherwise swallowed: the list keeps whatever it held
// and no error banner is raised.
func (m *Model) handleClientsLoaded(msg clientsLoadedMsg) {
	m.loading = false
	if msg.err != nil {
		m.lastFetchErr = msg.err
		return
	}
	m.lastFetchErr = nil
	m.records = msg.page.Data
	m.totalClients = msg.page.Total
	if m.listCursor >= len(m.records) && len(m.records) > 0 {
		m.listCursor = len(m.records) - 1
	}
	m.statusMsg = fmt.Sprintf("%d clients", m.totalClients)
	m.applyPendingQuery()
}

// applyPendingQuery resolves a deep link once data is available. Slug
// matching is first-match-wins; an unknown slug lands on the client list.
func (m *Model) applyPendingQuery() {
	if m.pending == "" {
		return
	}
	slug, caseType := nav.DecodeQuery(m.pending)
	m.pending = ""
	if slug == "" {
		return
	}
	rec, ok := clients.FindBySlug(m.records, slug)
	if !ok {
		m.statusMsg = fmt.Sprintf("No client for link %q", slug)
		return
	}
	m.selectClient(rec)
	if caseType != "" && strings.EqualFold(caseType, rec.CaseType) {
		m.openWizard()
	}
	m.syncBreadcrumbs()
}

func (m *Model) handleClientSaved(msg clientSavedMsg) tea.Cmd {
	if msg.err != nil {
		m.statusMsg = "Save failed: " + msg.err.Error()
		return nil
	}
	m.statusMsg = fmt.Sprintf("Saved %s", msg.rec.Name)
	if m.selected != nil && m.selected.ID == msg.rec.ID {
		rec := msg.rec
		m.selected = &rec
	}
	m.loading = true
	return tea.Batch(loadClientsCmd(m.source, m.page, m.pageSize), m.spinner.Tick)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.view {
	case viewClients:
		return m.updateClientsView(msg)
	case viewDetails:
		return m.updateDetailsView(msg)
	case viewWizard:
		return m.updateWizardView(msg)
	case viewChecklist:
		return m.updateChecklistView(msg)
	}
	return m, nil
}

// selectClient switches the shell to the details pane for rec. Selecting a
// different client drops the cached wizard, fund list, and checklist so they
// re-seed from the new record on next open.
func (m *Model) selectClient(rec clients.Record) {
	if m.selected == nil || m.selected.ID != rec.ID {
		m.wizard = nil
		m.funds = nil
		m.check = nil
		m.lastSave = nil
		m.checkCursor = 0
	}
	r := rec
	m.selected = &r
	m.tab = nav.TabDetails
	m.view = viewDetails
	m.syncBreadcrumbs()
}

// backToList drops the selection and shows the client table.
func (m *Model) backToList() {
	m.selected = nil
	m.view = viewClients
	m.tab = nav.TabDetails
	m.syncBreadcrumbs()
}

// openWizard starts (or resumes) the CYC wizard for the selected client.
func (m *Model) openWizard() {
	if m.selected == nil {
		return
	}
	if m.wizard == nil {
		m.wizard = forms.NewWizard(nil, forms.WithSaveFunc(func(rec forms.SaveRecord) {
			m.lastSave = &rec
		}))
		m.funds = forms.NewFundChargeList(nil)
	}
	m.view = viewWizard
	m.tab = nav.TabCases
	m.syncBreadcrumbs()
}

// openChecklist seeds (on first entry) and shows the review checklist.
func (m *Model) openChecklist() {
	if m.selected == nil {
		return
	}
	if m.check == nil {
		m.check = checklist.NewList(m.seedChecklistItems(), checklist.WithSearcher(m.searcher))
	}
	m.view = viewChecklist
	m.tab = nav.TabChecklist
	m.syncBreadcrumbs()
}

// seedChecklistItems builds the initial rows for the selected client. The
// mandatory items are always present; their found state reflects what the
// case file already holds.
func (m *Model) seedChecklistItems() []checklist.Item {
	rec := m.selected
	items := []checklist.Item{
		{ID: 1, Label: "Partner", Found: rec.Advisor != "", Value: rec.Advisor, Source: "case record", Confidence: 1},
		{ID: 2, Label: "Client name", Found: rec.Name != "", Value: rec.Name, Source: "case record", Confidence: 1},
		{ID: 3, Label: "Client DOB", Found: false},
		{ID: 4, Label: "SJP SRA", Found: false},
		{ID: 5, Label: "Recommended Fund Choice", Found: false},
		{ID: 6, Label: "Provider", Found: false},
	}
	if m.wizard != nil {
		if fund := m.wizard.Field(forms.KeyRecommendedFnd); fund != "" {
			items[4].Found = true
			items[4].Value = fund
			items[4].Source = "CYC form"
			items[4].Confidence = 1
		}
		if provider := m.wizard.Field(forms.KeyProviderName); provider != "" {
			items[5].Found = true
			items[5].Value = provider
			items[5].Source = "CYC form"
			items[5].Confidence = 1
		}
	}
	return items
}

// syncBreadcrumbs recomputes the trail and forwards it when changed.
func (m *Model) syncBreadcrumbs() {
	sel := nav.Selection{Client: m.selected, Tab: m.tab}
	if m.selected != nil && m.tab == nav.TabCases {
		sel.CaseName = m.selected.CaseType
	}
	if m.emitter.Emit(sel) {
		m.trail = m.emitter.Last()
	}
}

// copyShareLink writes the deep-link query for the current selection to the
// clipboard and flashes the copied indicator.
func (m *Model) copyShareLink() tea.Cmd {
	if m.selected == nil {
		return nil
	}
	caseType := ""
	if m.view == viewWizard {
		caseType = m.selected.CaseType
	}
	link := nav.EncodeQuery(m.selected.Slug(), caseType)
	if err := clipboard.WriteAll(link); err != nil {
		m.statusMsg = "Copy failed: " + err.Error()
		return nil
	}
	m.copied = true
	m.statusMsg = "Link copied"
	return copiedResetCmd()
}

func (m *Model) View() string {
	header := m.renderHeader()
	var body string
	switch m.view {
	case viewClients:
		body = m.renderClientsView()
	case viewDetails:
		body = m.renderDetailsView()
	case viewWizard:
		body = m.renderWizardView()
	case viewChecklist:
		body = m.renderChecklistView()
	}
	status := statusBarStyle.Render(m.statusLine())
	footer := footerStyle.Render(m.footerHints())
	return lipgloss.JoinVertical(lipgloss.Left, header, body, status, footer)
}

func (m *Model) renderHeader() string {
	title := titleStyle.Render("CaseDesk")
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", m.renderBreadcrumbs())
}

func (m *Model) renderBreadcrumbs() string {
	if len(m.trail) == 0 {
		return ""
	}
	parts := make([]string, 0, len(m.trail))
	for _, crumb := range m.trail {
		if crumb.IsActive {
			parts = append(parts, crumbActiveStyle.Render(crumb.Label))
		} else {
			parts = append(parts, crumbStyle.Render(crumb.Label))
		}
	}
	return strings.Join(parts, crumbStyle.Render(" › "))
}

func (m *Model) statusLine() string {
	if m.loading {
		return m.spinner.View() + " Loading clients…"
	}
	if m.copied {
		return "✔ Link copied"
	}
	return m.statusMsg
}

func (m *Model) footerHints() string {
	switch m.view {
	case viewClients:
		if m.modalOpen {
			return "Tab next field • Enter save • Esc cancel"
		}
		return "↑/↓ move • Enter open • n new • e edit • [/] page • r refresh • Ctrl+C quit"
	case viewDetails:
		return "Tab switch tab • Enter open case • c checklist • y copy link • Esc back • Ctrl+C quit"
	case viewWizard:
		return "↑/↓ field • Enter edit • ←/→ option • 1-4 stage • b back • Ctrl+S save • f funds • Esc back"
	case viewChecklist:
		return "↑/↓ move • Space review • K/J reorder • Enter edit • a add • d delete • Esc back"
	}
	return ""
}
