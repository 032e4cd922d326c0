package listing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	items := []Item{
		{Name: "Groceries", Title: "b"},
		{Name: "Hardware store", Title: "a"},
		{Name: "Pharmacy", Title: "c"},
	}

	cases := []struct {
		query string
		want  []string
	}{
		{"", []string{"Groceries", "Hardware store", "Pharmacy"}},
		{"  ", []string{"Groceries", "Hardware store", "Pharmacy"}},
		{"STORE", []string{"Hardware store"}},
		{"grocerys", []string{"Groceries"}},
		{"pharmcy", []string{"Pharmacy"}},
		{"zz", nil},
		{"c", []string{"Groceries", "Pharmacy"}},
	}
	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			got := names(Filter(items, tc.query))
			if tc.want == nil {
				require.Empty(t, got)
				return
			}
			require.Equal(t, tc.want, got)
		})
	}
}

func TestFilterKeepsOrder(t *testing.T) {
	items := SortedByTitle([]Item{
		{Name: "milk two", Title: "z"},
		{Name: "milk one", Title: "a"},
	})
	require.Equal(t, []string{"milk one", "milk two"}, names(Filter(items, "milk")))
}
