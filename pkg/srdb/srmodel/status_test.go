package srmodel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatus_DisplayLabel(t *testing.T) {
	var tests = []struct {
		status   Status
		expected string
	}{
		{StatusPending, "pending"},
		{StatusReceived, "completed"},
		{StatusDeclined, "cancelled"},
	}

	for _, test := range tests {
		require.Equal(t, test.expected, test.status.DisplayLabel())
	}
}

func TestParseBrowserStatus(t *testing.T) {
	var tests = []struct {
		name        string
		filter      string
		errExpected bool
		expected    []Status
	}{
		{name: "all maps to no filter", filter: "all", expected: nil},
		{name: "empty maps to no filter", filter: "", expected: nil},
		{name: "pending", filter: "pending", expected: []Status{StatusPending}},
		{name: "completed maps to received", filter: "completed", expected: []Status{StatusReceived}},
		{name: "cancelled maps to declined", filter: "cancelled", expected: []Status{StatusDeclined}},
		{name: "unknown filter fails", filter: "closed", errExpected: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			statuses, err := ParseBrowserStatus(test.filter)
			if test.errExpected {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.expected, statuses)
		})
	}
}

func TestDefaultAcceptNote(t *testing.T) {
	require.Equal(t, "Accepted by Mbarara manager", DefaultAcceptNote("Mbarara"))
}

func TestParseUnit(t *testing.T) {
	for _, valid := range []string{"kg", "tons", "bags"} {
		unit, err := ParseUnit(valid)
		require.NoError(t, err)
		require.Equal(t, Unit(valid), unit)
	}

	_, err := ParseUnit("pallets")
	require.Error(t, err)
}

func TestCatalog(t *testing.T) {
	catalog := DefaultCatalog()

	require.True(t, catalog.HasCoffeeType("arabica"))
	require.False(t, catalog.HasCoffeeType("liberica"))
	require.True(t, catalog.ValidGrade("arabica", "Bugisu AA"))
	require.False(t, catalog.ValidGrade("robusta", "Bugisu AA"))

	custom := NewCatalog(map[string][]string{"excelsa": {"Grade 1"}})
	require.True(t, custom.ValidGrade("excelsa", "Grade 1"))
	require.False(t, custom.HasCoffeeType("arabica"))
}
