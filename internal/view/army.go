package view

import (
	"strconv"

	"github.com/meur/rulesview/internal/models"
	"github.com/meur/rulesview/internal/storage"
)

// Messages shown in place of missing data
const (
	MsgNoArmyData   = "No Army data available."
	MsgArmyNotFound = "Army not found."
	MsgSelectArmy   = "Please select an army from the dropdown above."
	MsgNoHeroesData = "No Heroes data available"
	MsgNoUnitsData  = "No Units data available"
	NotAvailable    = "N/A"
)

// ArmyIndex is the army selector
type ArmyIndex struct {
	Armies   []string `json:"armies"`
	Selected string   `json:"selected,omitempty"`
	Message  string   `json:"message,omitempty"`
}

// ProfileRow is one hero or unit table row
type ProfileRow struct {
	Name              Name     `json:"name"`
	Points            string   `json:"points"`
	UnitSize          string   `json:"unit_size"`
	BaseSize          string   `json:"base_size"`
	RegimentOptions   []string `json:"regiment_options,omitempty"`   // heroes
	SubheroCategories string   `json:"subhero_categories,omitempty"` // heroes
	Keywords          string   `json:"keywords,omitempty"`           // units
	Notes             []string `json:"notes,omitempty"`
	Even              bool     `json:"-"`
}

// PointsRow is a two-column name/points row
type PointsRow struct {
	Name   string `json:"name"`
	Points string `json:"points"`
	Even   bool   `json:"-"`
}

// PointsTable is a titled group of name/points rows
type PointsTable struct {
	Title string      `json:"title"`
	Rows  []PointsRow `json:"rows"`
}

// ArmyView is everything shown for a selected army
type ArmyView struct {
	Name         string        `json:"name"`
	Heroes       []ProfileRow  `json:"heroes"`
	Units        []ProfileRow  `json:"units"`
	Other        []PointsTable `json:"other,omitempty"`
	HeroesNotice string        `json:"heroes_notice,omitempty"`
	UnitsNotice  string        `json:"units_notice,omitempty"`
}

// BuildArmyIndex lists the selectable armies. An empty selection picks
// the first army.
func BuildArmyIndex(c *storage.Catalog, selected string) ArmyIndex {
	factions := c.GetFactions()
	if factions == nil {
		return ArmyIndex{Message: MsgNoArmyData}
	}

	idx := ArmyIndex{Armies: make([]string, 0, len(factions))}
	for _, f := range factions {
		idx.Armies = append(idx.Armies, f.Name)
	}

	switch {
	case selected != "":
		idx.Selected = selected
	case len(idx.Armies) > 0:
		idx.Selected = idx.Armies[0]
	default:
		idx.Message = MsgSelectArmy
	}
	return idx
}

// BuildArmy assembles the view of one army. It returns false and a
// message when there is no army data or the name is unknown.
func BuildArmy(c *storage.Catalog, name string) (ArmyView, string, bool) {
	if c.GetFactions() == nil {
		return ArmyView{}, MsgNoArmyData, false
	}
	faction := c.GetFaction(name)
	if faction == nil {
		return ArmyView{}, MsgArmyNotFound, false
	}

	v := ArmyView{Name: faction.Name}

	var heroes, units []models.Profile
	for _, p := range faction.BattleProfiles {
		if p.Hero {
			heroes = append(heroes, p)
		} else {
			units = append(units, p)
		}
	}

	v.Heroes = make([]ProfileRow, 0, len(heroes))
	for i, p := range heroes {
		row := profileRow(p, i)
		row.RegimentOptions = FormatOptionList(p.RegimentOptions)
		row.SubheroCategories = FormatSubheroCategories(p)
		v.Heroes = append(v.Heroes, row)
	}
	if len(v.Heroes) == 0 {
		v.HeroesNotice = MsgNoHeroesData
	}

	v.Units = make([]ProfileRow, 0, len(units))
	for i, p := range units {
		row := profileRow(p, i)
		row.Keywords = FormatKeywords(p)
		v.Units = append(v.Units, row)
	}
	if len(v.Units) == 0 {
		v.UnitsNotice = MsgNoUnitsData
	}

	for _, g := range GroupByType(faction.Other) {
		table := PointsTable{Title: g.Type, Rows: make([]PointsRow, 0, len(g.Items))}
		for i, item := range g.Items {
			table.Rows = append(table.Rows, pointsRow(item.Name, item.Points, i))
		}
		v.Other = append(v.Other, table)
	}

	return v, "", true
}

func profileRow(p models.Profile, index int) ProfileRow {
	return ProfileRow{
		Name:     FormatName(p),
		Points:   pointsText(p.Points),
		UnitSize: countText(p.UnitSize),
		BaseSize: textOrNA(p.BaseSize.String()),
		Notes:    ComposeNotes(p),
		Even:     index%2 == 0,
	}
}

func pointsRow(name string, points *int, index int) PointsRow {
	return PointsRow{
		Name:   textOrNA(name),
		Points: pointsText(points),
		Even:   index%2 == 0,
	}
}

func pointsText(p *int) string {
	if p == nil {
		return NotAvailable
	}
	return strconv.Itoa(*p)
}

func countText(c models.Count) string {
	if c == 0 {
		return NotAvailable
	}
	return strconv.Itoa(int(c))
}

func textOrNA(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
