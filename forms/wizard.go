package forms

// SaveRecord is the payload handed to the save callback: a snapshot of every
// answer, flagged complete, tagged with the stage the save happened on.
type SaveRecord struct {
	Values   map[string]string
	Complete bool
	Stage    Stage
}

// SaveFunc receives wizard saves. It is the wizard's only externally
// observable effect; the wizard performs no I/O of its own and does not
// advance its stage on save — the flow manager decides what follows.
type SaveFunc func(SaveRecord)

// Wizard owns the current stage index and the shared answer state, and
// renders stages through the catalog's assembler.
type Wizard struct {
	catalog     *Catalog
	state       *State
	stage       Stage
	activeField int
	onSave      SaveFunc
}

// WizardOption mutates wizard configuration during construction.
type WizardOption func(*Wizard)

// WithInitialStage opens the wizard at the given stage. Invalid stages are
// ignored and the wizard opens at Basic Details.
func WithInitialStage(stage Stage) WizardOption {
	return func(w *Wizard) {
		if stage.Valid() {
			w.stage = stage
		}
	}
}

// WithSaveFunc registers the save callback.
func WithSaveFunc(fn SaveFunc) WizardOption {
	return func(w *Wizard) {
		if fn != nil {
			w.onSave = fn
		}
	}
}

// WithCatalog overrides the catalog (useful for testing).
func WithCatalog(c *Catalog) WizardOption {
	return func(w *Wizard) {
		if c != nil {
			w.catalog = c
		}
	}
}

// NewWizard constructs a wizard seeded from a plan record. A nil plan yields
// empty defaults.
func NewWizard(plan map[string]string, opts ...WizardOption) *Wizard {
	w := &Wizard{
		catalog: CYCCatalog(),
		state:   NewState(plan),
		stage:   StageBasicDetails,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}
	return w
}

// Stage returns the stage currently shown.
func (w *Wizard) Stage() Stage {
	return w.stage
}

// NavigateTo jumps directly to a stage. Any stage is reachable from any
// stage; there is no validation gate on the way out of the current one.
func (w *Wizard) NavigateTo(stage Stage) error {
	if !stage.Valid() {
		return UnknownStageError{Stage: stage}
	}
	w.stage = stage
	w.activeField = 0
	return nil
}

// Back steps to the previous stage, clamped at the first.
func (w *Wizard) Back() {
	if w.stage > 0 {
		w.stage--
		w.activeField = 0
	}
}

// AtFirstStage reports whether Back is a no-op.
func (w *Wizard) AtFirstStage() bool {
	return w.stage == 0
}

// AtFinalStage reports whether the current stage is the terminal Results
// stage.
func (w *Wizard) AtFinalStage() bool {
	return w.stage == StageResults
}

// SetField records an answer. Recomputing the visible rows is the caller's
// concern; the next Rows call reflects the change.
func (w *Wizard) SetField(key, value string) {
	w.state.Set(key, value)
}

// Field reads an answer, "" when unanswered.
func (w *Wizard) Field(key string) string {
	return w.state.Get(key)
}

// Rows assembles the visible rows for the current stage.
func (w *Wizard) Rows() []Row {
	return w.catalog.Assemble(w.stage, w.state)
}

// RowsFor assembles the visible rows for an arbitrary stage without
// navigating to it.
func (w *Wizard) RowsFor(stage Stage) []Row {
	return w.catalog.Assemble(stage, w.state)
}

// Save flushes the answer snapshot to the save callback, tagged with the
// current stage. On the terminal stage this is the submit action; the
// payload is identical.
func (w *Wizard) Save() {
	if w.onSave == nil {
		return
	}
	w.onSave(SaveRecord{
		Values:   w.state.Snapshot(),
		Complete: true,
		Stage:    w.stage,
	})
}

// LoadPlan reinitializes the answer state from a new plan record, as when
// the wizard is pointed at a different case.
func (w *Wizard) LoadPlan(plan map[string]string) {
	w.state = NewState(plan)
	w.activeField = 0
}

// ActiveField returns the highlighted row index. It has no semantic effect;
// it exists for focus styling only.
func (w *Wizard) ActiveField() int {
	return w.activeField
}

// SetActiveField moves the highlight, clamped to the visible rows.
func (w *Wizard) SetActiveField(idx int) {
	if idx < 0 {
		idx = 0
	}
	if rows := w.Rows(); idx >= len(rows) && len(rows) > 0 {
		idx = len(rows) - 1
	}
	w.activeField = idx
}

// State exposes the shared answer state for collaborators that need a
// read-through (the fund charge list, the results computation).
func (w *Wizard) State() *State {
	return w.state
}
