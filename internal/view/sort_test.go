package view

import (
	"testing"

	"github.com/meur/rulesview/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names[T Pointed](items []T) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.SortName())
	}
	return out
}

func TestSortByPointsThenName(t *testing.T) {
	tests := []struct {
		name  string
		input []models.UniversalManifestation
		want  []string
	}{
		{
			name: "points descending regardless of name",
			input: []models.UniversalManifestation{
				{Name: "Aetherwing", Points: models.IntPtr(60)},
				{Name: "Zomb", Points: models.IntPtr(120)},
				{Name: "Middle", Points: models.IntPtr(90)},
			},
			want: []string{"Zomb", "Middle", "Aetherwing"},
		},
		{
			name: "equal points ordered by name case-insensitively",
			input: []models.UniversalManifestation{
				{Name: "Zomb", Points: models.IntPtr(50)},
				{Name: "alpha", Points: models.IntPtr(50)},
				{Name: "Beta", Points: models.IntPtr(50)},
			},
			want: []string{"alpha", "Beta", "Zomb"},
		},
		{
			name: "missing points sort as zero",
			input: []models.UniversalManifestation{
				{Name: "Unpriced"},
				{Name: "Negative", Points: models.IntPtr(-10)},
				{Name: "Priced", Points: models.IntPtr(10)},
				{Name: "Free", Points: models.IntPtr(0)},
			},
			want: []string{"Priced", "Free", "Unpriced", "Negative"},
		},
		{
			name:  "empty input",
			input: nil,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortByPointsThenName(tt.input)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestSortByPointsThenNameIsStable(t *testing.T) {
	input := []models.OtherItem{
		{Name: "Same", Points: models.IntPtr(10), Notes: "first"},
		{Name: "same", Points: models.IntPtr(10), Notes: "second"},
		{Name: "Same", Points: models.IntPtr(10), Notes: "third"},
	}

	got := SortByPointsThenName(input)
	require.Len(t, got, 3)
	assert.Equal(t, "first", got[0].Notes)
	assert.Equal(t, "second", got[1].Notes)
	assert.Equal(t, "third", got[2].Notes)
}

func TestSortByPointsThenNameDoesNotMutateInput(t *testing.T) {
	input := []models.UniversalManifestation{
		{Name: "B", Points: models.IntPtr(1)},
		{Name: "A", Points: models.IntPtr(2)},
	}
	_ = SortByPointsThenName(input)
	assert.Equal(t, "B", input[0].Name)
}

func TestSortByPointsThenNameDeterministic(t *testing.T) {
	input := []models.OtherItem{
		{Name: "Éclair", Points: models.IntPtr(20)},
		{Name: "eagle", Points: models.IntPtr(20)},
		{Name: "Zed"},
		{Name: "apple", Points: models.IntPtr(20)},
	}

	first := names(SortByPointsThenName(input))
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, names(SortByPointsThenName(input)))
	}
	assert.Equal(t, []string{"apple", "eagle", "Éclair", "Zed"}, first)
}

func TestGroupByType(t *testing.T) {
	input := []models.OtherItem{
		{Name: "Wall", Type: "Terrain", Points: models.IntPtr(0)},
		{Name: "Loose", Type: ""},
		{Name: "Spell", Type: "  Spell Lore  ", Points: models.IntPtr(20)},
		{Name: "Missing"},
		{Name: "Typed", Type: "A"},
		{Name: "Blank", Type: "   "},
		{Name: "Big Spell", Type: "Spell Lore", Points: models.IntPtr(40)},
	}

	groups := GroupByType(input)

	keys := make([]string, 0, len(groups))
	for _, g := range groups {
		keys = append(keys, g.Type)
	}
	assert.Equal(t, []string{"A", "Other", "Spell Lore", "Terrain"}, keys)

	assert.Equal(t, []string{"Blank", "Loose", "Missing"}, names(groups[1].Items))
	assert.Equal(t, []string{"Big Spell", "Spell"}, names(groups[2].Items))
}

func TestGroupByTypeEmptyAndMissingShareOtherGroup(t *testing.T) {
	groups := GroupByType([]models.OtherItem{{Type: "A"}, {Type: ""}, {}})

	require.Len(t, groups, 2)
	assert.Equal(t, "A", groups[0].Type)
	assert.Equal(t, OtherGroupName, groups[1].Type)
	assert.Len(t, groups[1].Items, 2)
}
