package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_Validate(t *testing.T) {
	assert.NoError(t, Params{}.Validate())
	assert.NoError(t, Params{Limit: 5, Offset: 2}.Validate())
	assert.EqualError(t, Params{Limit: -1}.Validate(), "limit cannot be negative")
	assert.EqualError(t, Params{Offset: -1}.Validate(), "offset cannot be negative")
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		expr      string
		wantField string
		wantOrder string
		wantErr   error
	}{
		{"co2", "co2", SortOrderDesc, nil},
		{"co2:asc", "co2", SortOrderAsc, nil},
		{" date : DESC ", "date", SortOrderDesc, nil},
		{"co2:sideways", "", "", ErrInvalidSortOrder},
		{"a:b:c", "", "", ErrInvalidSortFormat},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			field, order, err := ParseSort(tt.expr)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantOrder, order)
		})
	}

	_, _, err := ParseSort(":asc")
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, items, Apply(items, Params{}))
	assert.Equal(t, []int{1, 2}, Apply(items, Params{Limit: 2}))
	assert.Equal(t, []int{3, 4}, Apply(items, Params{Limit: 2, Offset: 2}))
	assert.Equal(t, []int{5}, Apply(items, Params{Limit: 10, Offset: 4}))
	assert.Empty(t, Apply(items, Params{Offset: 5}))
}

type row struct {
	name string
	kwh  float64
}

func TestSorter(t *testing.T) {
	s := NewSorter(map[string]Less[row]{
		"name":   func(a, b row) bool { return a.name < b.name },
		"energy": func(a, b row) bool { return a.kwh < b.kwh },
	})
	rows := []row{{"b", 2}, {"a", 3}, {"c", 1}}

	got, err := s.Sort(rows, "energy")
	require.NoError(t, err)
	assert.Equal(t, []row{{"a", 3}, {"b", 2}, {"c", 1}}, got)

	got, err = s.Sort(rows, "name:asc")
	require.NoError(t, err)
	assert.Equal(t, []row{{"a", 3}, {"b", 2}, {"c", 1}}, got)
	assert.Equal(t, row{"b", 2}, rows[0], "input untouched")

	got, err = s.Sort(rows, "")
	require.NoError(t, err)
	assert.Equal(t, rows, got)

	_, err = s.Sort(rows, "power")
	assert.ErrorIs(t, err, ErrInvalidSortField)
	assert.Equal(t, []string{"energy", "name"}, s.ValidFields())
}
