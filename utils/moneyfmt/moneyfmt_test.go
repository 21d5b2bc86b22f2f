package moneyfmt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeDecimal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "1234", want: "1234"},
		{name: "currency symbols stripped", in: "£12,500.40", want: "12500.40"},
		{name: "letters stripped", in: "1,2a3.4.5", want: "123.45"},
		{name: "second point dropped", in: "1.2.3", want: "1.23"},
		{name: "empty", in: "", want: ""},
		{name: "only junk", in: "abc-%", want: ""},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, SanitizeDecimal(tc.in))
		})
	}
}

func TestParseAmount(t *testing.T) {
	t.Parallel()

	val, err := ParseAmount("£1,000.50")
	require.NoError(t, err)
	require.InDelta(t, 1000.50, val, 0.0001)

	_, err = ParseAmount("")
	require.Error(t, err)
	var parseErr ParseError
	require.ErrorAs(t, err, &parseErr)

	_, err = ParseAmount("no numbers here")
	require.Error(t, err)
}

func TestParsePercent(t *testing.T) {
	t.Parallel()

	val, err := ParsePercent(" 1.25% ")
	require.NoError(t, err)
	require.InDelta(t, 1.25, val, 0.0001)
}

func TestMean(t *testing.T) {
	t.Parallel()

	avg, ok := Mean([]string{"1.0%", "2.0%", "", "junk"})
	require.True(t, ok)
	require.InDelta(t, 1.5, avg, 0.0001)

	_, ok = Mean([]string{"", "  "})
	require.False(t, ok)

	_, ok = Mean(nil)
	require.False(t, ok)
}

func TestFormatters(t *testing.T) {
	t.Parallel()

	require.Equal(t, "1.25%", FormatPercent(1.25))
	require.Equal(t, "1000.50", FormatAmount(1000.5))
}
