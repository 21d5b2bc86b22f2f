package forms

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWizardOpensAtInitialStage(t *testing.T) {
	t.Parallel()

	w := NewWizard(nil)
	require.Equal(t, StageBasicDetails, w.Stage())

	w = NewWizard(nil, WithInitialStage(StageRecommendedPlan))
	require.Equal(t, StageRecommendedPlan, w.Stage())

	w = NewWizard(nil, WithInitialStage(Stage(99)))
	require.Equal(t, StageBasicDetails, w.Stage(), "invalid initial stage falls back to the first")
}

func TestWizardNavigateToAnyStage(t *testing.T) {
	t.Parallel()

	w := NewWizard(nil)
	require.NoError(t, w.NavigateTo(StageResults))
	require.Equal(t, StageResults, w.Stage())

	require.NoError(t, w.NavigateTo(StageBasicDetails))
	require.Equal(t, StageBasicDetails, w.Stage())

	err := w.NavigateTo(Stage(-1))
	require.Error(t, err)
	var unknownErr UnknownStageError
	require.ErrorAs(t, err, &unknownErr)
}

func TestWizardBackClampsAtFirstStage(t *testing.T) {
	t.Parallel()

	w := NewWizard(nil, WithInitialStage(StageExistingPlans))
	w.Back()
	require.Equal(t, StageBasicDetails, w.Stage())
	require.True(t, w.AtFirstStage())

	w.Back()
	require.Equal(t, StageBasicDetails, w.Stage(), "Back at the first stage is a no-op")
}

func TestWizardSaveFlushesSnapshotWithStageTag(t *testing.T) {
	t.Parallel()

	var saved []SaveRecord
	w := NewWizard(
		map[string]string{KeyRetirementAge: "65"},
		WithInitialStage(StageExistingPlans),
		WithSaveFunc(func(rec SaveRecord) { saved = append(saved, rec) }),
	)
	w.SetField(KeyProviderName, "Acme Life")

	w.Save()
	require.Len(t, saved, 1)
	require.True(t, saved[0].Complete)
	require.Equal(t, StageExistingPlans, saved[0].Stage)
	require.Equal(t, "65", saved[0].Values[KeyRetirementAge])
	require.Equal(t, "Acme Life", saved[0].Values[KeyProviderName])

	// Saving never advances the wizard's own stage.
	require.Equal(t, StageExistingPlans, w.Stage())

	// The snapshot is detached from later mutations.
	w.SetField(KeyProviderName, "Other")
	require.Equal(t, "Acme Life", saved[0].Values[KeyProviderName])
}

func TestWizardSaveWithoutCallbackIsNoop(t *testing.T) {
	t.Parallel()

	w := NewWizard(nil)
	require.NotPanics(t, func() { w.Save() })
}

func TestWizardLoadPlanReinitializesState(t *testing.T) {
	t.Parallel()

	w := NewWizard(map[string]string{KeyRetirementAge: "60"})
	w.SetField(KeyAttitude, AnswerHigh)

	w.LoadPlan(map[string]string{KeyRetirementAge: "67"})
	require.Equal(t, "67", w.Field(KeyRetirementAge))
	require.Equal(t, "", w.Field(KeyAttitude), "answers from the previous plan do not leak")
}

func TestWizardActiveFieldClamps(t *testing.T) {
	t.Parallel()

	w := NewWizard(nil)
	rows := w.Rows()
	require.NotEmpty(t, rows)

	w.SetActiveField(-3)
	require.Equal(t, 0, w.ActiveField())

	w.SetActiveField(len(rows) + 10)
	require.Equal(t, len(rows)-1, w.ActiveField())
}

func TestWizardRowsReflectFieldChanges(t *testing.T) {
	t.Parallel()

	w := NewWizard(nil)
	require.Equal(t, -1, indexOf(w.Rows(), KeySophisticated))

	w.SetField(KeyAttitude, AnswerUpperMedium)
	require.GreaterOrEqual(t, indexOf(w.Rows(), KeySophisticated), 0)

	require.NotEmpty(t, w.RowsFor(StageResults))
	require.Equal(t, StageBasicDetails, w.Stage(), "RowsFor does not navigate")
}
