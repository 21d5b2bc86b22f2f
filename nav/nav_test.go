package nav

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adviceworks/casedesk/clients"
)

func TestBreadcrumbsDerivation(t *testing.T) {
	t.Parallel()

	holloway := &clients.Record{Name: "Margaret Holloway"}

	cases := []struct {
		name string
		sel  Selection
		want []Crumb
	}{
		{
			name: "no selection",
			sel:  Selection{},
			want: []Crumb{{Label: "Clients", IsActive: true}},
		},
		{
			name: "client details",
			sel:  Selection{Client: holloway, Tab: TabDetails},
			want: []Crumb{{Label: "Clients"}, {Label: "Margaret Holloway", IsActive: true}},
		},
		{
			name: "cases tab",
			sel:  Selection{Client: holloway, Tab: TabCases},
			want: []Crumb{{Label: "Clients"}, {Label: "Margaret Holloway"}, {Label: "Cases", IsActive: true}},
		},
		{
			name: "open case",
			sel:  Selection{Client: holloway, Tab: TabCases, CaseName: "Pension Transfer"},
			want: []Crumb{
				{Label: "Clients"}, {Label: "Margaret Holloway"},
				{Label: "Cases"}, {Label: "Pension Transfer", IsActive: true},
			},
		},
		{
			name: "checklist review",
			sel:  Selection{Client: holloway, Tab: TabChecklist},
			want: []Crumb{{Label: "Clients"}, {Label: "Margaret Holloway"}, {Label: "Checklist Review", IsActive: true}},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Breadcrumbs(tc.sel))
		})
	}
}

func TestEmitterSuppressesUnchangedTrails(t *testing.T) {
	t.Parallel()

	var emissions int
	e := NewEmitter(func([]Crumb) { emissions++ })

	sel := Selection{Client: &clients.Record{Name: "Tom Brierley"}, Tab: TabDetails}
	require.True(t, e.Emit(sel))
	require.False(t, e.Emit(sel), "identical trail is not re-emitted")
	require.Equal(t, 1, emissions)

	// Same labels via a different record value: still shallow-equal.
	require.False(t, e.Emit(Selection{Client: &clients.Record{Name: "Tom Brierley"}, Tab: TabDetails}))

	sel.Tab = TabChecklist
	require.True(t, e.Emit(sel))
	require.Equal(t, 2, emissions)
	require.Equal(t, "Checklist Review", e.Last()[len(e.Last())-1].Label)
}

func TestQueryRoundTrip(t *testing.T) {
	t.Parallel()

	encoded := EncodeQuery("margaret-holloway", "Pension Transfer")
	slug, caseType := DecodeQuery(encoded)
	require.Equal(t, "margaret-holloway", slug)
	require.Equal(t, "Pension Transfer", caseType)

	require.Equal(t, "", EncodeQuery("", ""))

	slug, caseType = DecodeQuery("client=a-b")
	require.Equal(t, "a-b", slug)
	require.Equal(t, "", caseType)

	slug, caseType = DecodeQuery("%zz")
	require.Equal(t, "", slug)
	require.Equal(t, "", caseType)
}
