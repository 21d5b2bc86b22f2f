package checklist

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func seedItems() []Item {
	return []Item{
		{ID: 1, Label: "Partner", Found: true, Value: "J. Smith"},
		{ID: 2, Label: "Client name", Found: true, Value: "Acme Ltd"},
		{ID: 3, Label: "Client DOB", Found: false},
		{ID: 4, Label: "Latest statement", Found: true, Value: "statement.pdf"},
	}
}

func labels(rows []Row) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Item.Label)
	}
	return out
}

func TestToggleRequiresFoundItem(t *testing.T) {
	t.Parallel()

	l := NewList(seedItems())

	require.True(t, l.Toggle(0))
	require.True(t, l.Rows()[0].Checked)
	require.True(t, l.Toggle(0))
	require.False(t, l.Rows()[0].Checked)

	// Unfound item: ignored whatever the prior value.
	require.False(t, l.Toggle(2))
	require.False(t, l.Rows()[2].Checked)

	require.False(t, l.Toggle(-1))
	require.False(t, l.Toggle(99))
}

func TestDeleteProtectsMandatoryRows(t *testing.T) {
	t.Parallel()

	l := NewList(seedItems())
	before := labels(l.Rows())

	require.False(t, l.Delete(0), "Partner is mandatory")
	require.False(t, l.Delete(1), "Client name is mandatory")
	require.Equal(t, before, labels(l.Rows()))
	require.Equal(t, 4, l.Len())

	require.True(t, l.Delete(3), "non-mandatory rows delete normally")
	require.Equal(t, 3, l.Len())
}

func TestReorderMovesWholeRow(t *testing.T) {
	t.Parallel()

	l := NewList(seedItems())
	require.True(t, l.Toggle(3))
	require.True(t, l.SetValue(3, "edited"))

	require.True(t, l.Reorder(3, 0))
	rows := l.Rows()
	require.Equal(t, []string{"Latest statement", "Partner", "Client name", "Client DOB"}, labels(rows))
	require.Equal(t, 4, l.Len(), "reorder never changes length")
	require.True(t, rows[0].Checked, "checked flag travels with the item")
	require.Equal(t, "edited", rows[0].Value, "edited value travels with the item")

	require.False(t, l.Reorder(1, 1), "same-position drop is ignored")
	require.False(t, l.Reorder(-1, 0))
	require.False(t, l.Reorder(0, 10))
}

func TestReorderDownShiftsBetweenRows(t *testing.T) {
	t.Parallel()

	l := NewList(seedItems())
	require.True(t, l.Reorder(0, 2))
	require.Equal(t, []string{"Client name", "Client DOB", "Partner", "Latest statement"}, labels(l.Rows()))
}

func TestAddRejectsBlankNames(t *testing.T) {
	t.Parallel()

	l := NewList(seedItems())
	applied, err := l.Add(context.Background(), "   ")
	require.NoError(t, err)
	require.False(t, applied)
	require.Equal(t, 4, l.Len())
}

func TestAddResolvesThroughSearcher(t *testing.T) {
	t.Parallel()

	var sawTerm string
	searcher := DocumentSearcherFunc(func(_ context.Context, term string) (SearchResult, error) {
		sawTerm = term
		return SearchResult{Found: true, Value: "p60.pdf", Source: "document store", Confidence: 0.92}, nil
	})

	l := NewList(seedItems(), WithSearcher(searcher))
	applied, err := l.Add(context.Background(), "  P60  ")
	require.NoError(t, err)
	require.True(t, applied)
	require.Equal(t, "P60", sawTerm, "name is trimmed before searching")

	rows := l.Rows()
	added := rows[len(rows)-1]
	require.Equal(t, "P60", added.Item.Label)
	require.True(t, added.Item.Found)
	require.Equal(t, "p60.pdf", added.Item.Value)
	require.Equal(t, "document store", added.Item.Source)
	require.InDelta(t, 0.92, added.Item.Confidence, 0.0001)
	require.Equal(t, 5, added.Item.ID, "ids continue past the seeded maximum")
	require.False(t, added.Checked)
}

func TestAddSearcherFailureLeavesListUntouched(t *testing.T) {
	t.Parallel()

	searchErr := errors.New("search backend down")
	l := NewList(seedItems(), WithSearcher(DocumentSearcherFunc(
		func(context.Context, string) (SearchResult, error) { return SearchResult{}, searchErr },
	)))

	applied, err := l.Add(context.Background(), "P45")
	require.ErrorIs(t, err, searchErr)
	require.False(t, applied)
	require.Equal(t, 4, l.Len())
}

func TestSetValueTrims(t *testing.T) {
	t.Parallel()

	l := NewList(seedItems())
	require.True(t, l.SetValue(1, "  New Client  "))
	require.Equal(t, "New Client", l.Rows()[1].Value)

	require.False(t, l.SetValue(42, "x"))
}

func TestCompletedCountsCheckedRows(t *testing.T) {
	t.Parallel()

	l := NewList(seedItems())
	require.Equal(t, 0, l.Completed())
	l.Toggle(0)
	l.Toggle(1)
	require.Equal(t, 2, l.Completed())
}

func TestSimulatedSearcherIsDeterministicWithSeed(t *testing.T) {
	t.Parallel()

	a := NewSimulatedSearcherWithSeed(7)
	b := NewSimulatedSearcherWithSeed(7)
	for i := 0; i < 10; i++ {
		ra, err := a.Search(context.Background(), "term")
		require.NoError(t, err)
		rb, err := b.Search(context.Background(), "term")
		require.NoError(t, err)
		require.Equal(t, ra, rb)
	}
}
