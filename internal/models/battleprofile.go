package models

import "encoding/json"

// Metadata describes the source document a dataset was extracted from
type Metadata struct {
	Title         string `json:"title,omitempty"`
	Filename      string `json:"filename,omitempty"`
	PublishedDate string `json:"publishedDate,omitempty"`
	ExtractedDate string `json:"extractedDate,omitempty"`
	Hash          string `json:"hash,omitempty"`
}

// BattleProfileDocument is the top-level battle profile dataset
type BattleProfileDocument struct {
	Metadata
	Type string            `json:"type,omitempty"` // "battleprofile" when written by the extractor
	Data BattleProfileData `json:"data"`
}

// BattleProfileData holds the three battle profile collections.
// A nil slice means the section was absent from the document.
type BattleProfileData struct {
	Factions                []Faction                `json:"factions"`
	RegimentsOfRenown       []RegimentOfRenown       `json:"regiments_of_renown"`
	UniversalManifestations []UniversalManifestation `json:"universal_manifestations"`
}

// Faction is one army and its roster
type Faction struct {
	Name           string      `json:"name"`
	BattleProfiles []Profile   `json:"battle_profiles"`
	Other          []OtherItem `json:"other"`
}

// Profile is a hero or unit entry within a faction's roster
type Profile struct {
	Name               string            `json:"name"`
	Points             *int              `json:"points,omitempty"` // nil = not published
	UnitSize           Count             `json:"unit_size,omitempty"`
	BaseSize           Text              `json:"base_size,omitempty"`
	Hero               bool              `json:"hero,omitempty"` // absent = unit
	Legends            bool              `json:"legends,omitempty"`
	Reinforceable      bool              `json:"reinforceable,omitempty"`
	RegimentOptions    []*RegimentOption `json:"regiment_options,omitempty"`
	SubheroCategories  []string          `json:"subhero_categories,omitempty"`
	Keywords           []string          `json:"keywords,omitempty"`
	Notes              []string          `json:"notes,omitempty"`
	RequiredLeader     string            `json:"requiredLeader,omitempty"`
	ExclusiveWith      string            `json:"exclusiveWith,omitempty"`
	RetiringOn         string            `json:"retiringOn,omitempty"`
	UndersizeCondition string            `json:"undersizeCondition,omitempty"`
}

// RegimentOption is a composition rule: how many of which unit types may
// accompany a hero
type RegimentOption struct {
	Min               int      `json:"min"`
	Max               int      `json:"max"` // -1 = unlimited
	Keywords          []string `json:"keywords,omitempty"`
	NonKeywords       []string `json:"nonKeywords,omitempty"`
	SubheroCategories []string `json:"subhero_categories,omitempty"`
	UnitNames         []string `json:"unit_names,omitempty"`
}

// Unlimited is the RegimentOption.Max sentinel for "any number"
const Unlimited = -1

// OtherItem is a non-unit roster entry (spell lores, terrain, manifestations...)
type OtherItem struct {
	Name   string `json:"name,omitempty"`
	Points *int   `json:"points,omitempty"`
	Type   string `json:"type,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// UniversalManifestation is a manifestation available to every army
type UniversalManifestation struct {
	Name   string `json:"name,omitempty"`
	Points *int   `json:"points,omitempty"`
}

// RegimentOfRenown is a fixed mercenary regiment usable by listed armies
type RegimentOfRenown struct {
	Name          string         `json:"name"`
	Points        int            `json:"points"`
	Units         map[string]int `json:"units"` // unit name -> count
	AllowedArmies []string       `json:"allowedArmies"`
}

// SortName and SortPoints let roster entries be ordered by the view package.

func (o OtherItem) SortName() string { return o.Name }
func (o OtherItem) SortPoints() int { return PointsOrZero(o.Points) }
func (o OtherItem) GroupType() string { return o.Type }

func (m UniversalManifestation) SortName() string { return m.Name }
func (m UniversalManifestation) SortPoints() int { return PointsOrZero(m.Points) }

// UnmarshalJSON decodes a profile, accepting points written as a string
func (p *Profile) UnmarshalJSON(data []byte) error {
	type alias Profile
	aux := struct {
		*alias
		Points optionalPoints `json:"points"`
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	p.Points = aux.Points.value
	return nil
}

// UnmarshalJSON decodes an item, accepting points written as a string
func (o *OtherItem) UnmarshalJSON(data []byte) error {
	type alias OtherItem
	aux := struct {
		*alias
		Points optionalPoints `json:"points"`
	}{alias: (*alias)(o)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	o.Points = aux.Points.value
	return nil
}

// UnmarshalJSON decodes a manifestation, accepting points written as a string
func (m *UniversalManifestation) UnmarshalJSON(data []byte) error {
	type alias UniversalManifestation
	aux := struct {
		*alias
		Points optionalPoints `json:"points"`
	}{alias: (*alias)(m)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	m.Points = aux.Points.value
	return nil
}

// PointsOrZero treats missing points as 0
func PointsOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// IntPtr is a convenience for building optional point values
func IntPtr(v int) *int {
	return &v
}
