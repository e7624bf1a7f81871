package view

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/meur/rulesview/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestFormatName(t *testing.T) {
	tests := []struct {
		name    string
		profile models.Profile
		want    Name
	}{
		{
			name:    "scourge of ghyran badge with dangling comma",
			profile: models.Profile{Name: "Krondspine Incarnate of Ghur, Scourge of Ghyran"},
			want:    Name{Badges: []string{BadgeSoG}, Main: "Krondspine Incarnate of Ghur"},
		},
		{
			name:    "on keeps separator",
			profile: models.Profile{Name: "Lord on Dragon"},
			want:    Name{Main: "Lord", Subtitle: "on Dragon"},
		},
		{
			name:    "with keeps separator",
			profile: models.Profile{Name: "Knight-Arcanum with Staff"},
			want:    Name{Main: "Knight-Arcanum", Subtitle: "with Staff"},
		},
		{
			name:    "comma drops separator",
			profile: models.Profile{Name: "Cado Ezechiar, the Hollow King"},
			want:    Name{Main: "Cado Ezechiar", Subtitle: "the Hollow King"},
		},
		{
			name:    "comma beats on",
			profile: models.Profile{Name: "Gotrek, on foot"},
			want:    Name{Main: "Gotrek", Subtitle: "on foot"},
		},
		{
			name:    "on beats with even when with comes first",
			profile: models.Profile{Name: "Hero with Banner on Steed"},
			want:    Name{Main: "Hero with Banner", Subtitle: "on Steed"},
		},
		{
			name:    "only first occurrence splits",
			profile: models.Profile{Name: "A, B, C"},
			want:    Name{Main: "A", Subtitle: "B, C"},
		},
		{
			name:    "no separator",
			profile: models.Profile{Name: "  Liberators  "},
			want:    Name{Main: "Liberators"},
		},
		{
			name:    "legends badge after sog",
			profile: models.Profile{Name: "Scourge of Ghyran Lord-Celestant on Dracoth", Legends: true},
			want:    Name{Badges: []string{BadgeSoG, BadgeLegends}, Main: "Lord-Celestant", Subtitle: "on Dracoth"},
		},
		{
			name:    "legends only",
			profile: models.Profile{Name: "Old Hero", Legends: true},
			want:    Name{Badges: []string{BadgeLegends}, Main: "Old Hero"},
		},
		{
			name:    "missing name",
			profile: models.Profile{},
			want:    Name{Main: NotAvailable},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatName(tt.profile)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FormatName(%q) mismatch (-want +got):\n%s", tt.profile.Name, diff)
			}
		})
	}
}

func TestFormatOption(t *testing.T) {
	tests := []struct {
		name string
		opt  *models.RegimentOption
		want string
	}{
		{
			name: "unlimited keyword",
			opt:  &models.RegimentOption{Min: 1, Max: models.Unlimited, Keywords: []string{"Infantry"}},
			want: "Any Infantry",
		},
		{
			name: "exact unit name",
			opt:  &models.RegimentOption{Min: 2, Max: 2, UnitNames: []string{"Liberators"}},
			want: "2 Liberators",
		},
		{
			name: "range with non keywords",
			opt: &models.RegimentOption{
				Min: 0, Max: 1,
				Keywords:    []string{"Infantry"},
				NonKeywords: []string{"Hero", "Unique"},
			},
			want: "0-1 non-Hero non-Unique Infantry",
		},
		{
			name: "non keywords without keywords are dropped",
			opt: &models.RegimentOption{
				Min: 0, Max: 1,
				NonKeywords: []string{"Hero"},
				UnitNames:   []string{"Prosecutors"},
			},
			want: "0-1 Prosecutors",
		},
		{
			name: "alternatives joined with or",
			opt: &models.RegimentOption{
				Min: 0, Max: 1,
				Keywords:          []string{"Cavalry"},
				SubheroCategories: []string{"Lord-Veritant", "Knight-Vexillor"},
				UnitNames:         []string{"Vanguard-Raptors"},
			},
			want: "0-1 Cavalry or Lord-Veritant or Knight-Vexillor or Vanguard-Raptors",
		},
		{
			name: "no description",
			opt:  &models.RegimentOption{Min: 1, Max: 1},
			want: "1 ",
		},
		{
			name: "nil option",
			opt:  nil,
			want: InvalidOption,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatOption(tt.opt))
		})
	}
}

func TestFormatOptionList(t *testing.T) {
	assert.Empty(t, FormatOptionList(nil))

	got := FormatOptionList([]*models.RegimentOption{
		{Min: 0, Max: models.Unlimited, Keywords: []string{"Infantry"}},
		nil,
		{Min: 1, Max: 1, UnitNames: []string{"Annihilators"}},
	})
	assert.Equal(t, []string{"Any Infantry", InvalidOption, "1 Annihilators"}, got)
}

func TestComposeNotes(t *testing.T) {
	tests := []struct {
		name    string
		profile models.Profile
		want    []string
	}{
		{
			name:    "single model reinforceable unit",
			profile: models.Profile{Hero: false, UnitSize: 1, Reinforceable: true},
			want:    []string{"This unit can be reinforced"},
		},
		{
			name:    "hero never gets reinforcement notes",
			profile: models.Profile{Hero: true, UnitSize: 1, Reinforceable: true},
			want:    nil,
		},
		{
			name:    "multi model unit that cannot be reinforced",
			profile: models.Profile{UnitSize: 5},
			want:    []string{"This unit can not be reinforced"},
		},
		{
			name:    "default multi model unit",
			profile: models.Profile{UnitSize: 5, Reinforceable: true},
			want:    nil,
		},
		{
			name: "all flags in order",
			profile: models.Profile{
				RequiredLeader:     "Callis and Toll",
				ExclusiveWith:      "Cado Ezechiar, the Hollow King",
				RetiringOn:         "2025-12-31",
				UndersizeCondition: "Lord-Celestant on Dracoth",
				UnitSize:           3,
			},
			want: []string{
				"Required Leader: Callis and Toll",
				"This unit and Cado Ezechiar, the Hollow King can not be included in the same army",
				"Retiring to legends on: 2025-12-31",
				"1 unit of this type can be included for each Lord-Celestant on Dracoth in your list",
				"This unit can not be reinforced",
			},
		},
		{
			name:    "hero keeps non reinforcement notes",
			profile: models.Profile{Hero: true, RequiredLeader: "Gotrek", UnitSize: 3},
			want:    []string{"Required Leader: Gotrek"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComposeNotes(tt.profile))
		})
	}
}

func TestFormatKeywords(t *testing.T) {
	assert.Equal(t, "", FormatKeywords(models.Profile{}))
	assert.Equal(t, "Infantry, Shield", FormatKeywords(models.Profile{Keywords: []string{"Infantry", "Shield"}}))
	assert.Equal(t, "Lord-Veritant", FormatSubheroCategories(models.Profile{SubheroCategories: []string{"Lord-Veritant"}}))
}

func TestSlug(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Core Rules: Combat!", "core-rules--combat-"},
		{"Already-slugged-123", "already-slugged-123"},
		{"", ""},
		{"Ça va", "-a-va"},
		{"Hero's Ability", "hero-s-ability"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Slug(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Slug(got), "slugging a slug is a no-op")
		})
	}
}

func TestAnchorIDs(t *testing.T) {
	section := SectionID("Core Rules")
	assert.Equal(t, "core-rules", section)

	rule := RuleID(section, "12.0 Combat")
	assert.Equal(t, "core-rules-12-0-combat", rule)

	assert.Equal(t, "core-rules-qa0", QuestionID(section, 0))
	assert.Equal(t, "core-rules-12-0-combat-qa3", QuestionID(rule, 3))
}
