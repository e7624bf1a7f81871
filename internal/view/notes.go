package view

import (
	"fmt"
	"strings"

	"github.com/meur/rulesview/internal/models"
)

// ComposeNotes derives the note lines shown for a profile. Each condition
// contributes at most one line, in a fixed order.
func ComposeNotes(p models.Profile) []string {
	var notes []string

	if p.RequiredLeader != "" {
		notes = append(notes, "Required Leader: "+p.RequiredLeader)
	}
	if p.ExclusiveWith != "" {
		notes = append(notes, fmt.Sprintf("This unit and %s can not be included in the same army", p.ExclusiveWith))
	}
	if p.RetiringOn != "" {
		notes = append(notes, "Retiring to legends on: "+p.RetiringOn)
	}
	if p.UndersizeCondition != "" {
		notes = append(notes, fmt.Sprintf("1 unit of this type can be included for each %s in your list", p.UndersizeCondition))
	}

	if !p.Hero {
		switch {
		case p.UnitSize == 1 && p.Reinforceable:
			notes = append(notes, "This unit can be reinforced")
		case p.UnitSize > 1 && !p.Reinforceable:
			notes = append(notes, "This unit can not be reinforced")
		}
	}

	return notes
}

// FormatKeywords joins a unit's relevant keywords for display
func FormatKeywords(p models.Profile) string {
	return strings.Join(p.Keywords, ", ")
}

// FormatSubheroCategories joins the sub-hero categories a hero can fill
func FormatSubheroCategories(p models.Profile) string {
	return strings.Join(p.SubheroCategories, ", ")
}
