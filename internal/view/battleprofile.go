package view

import (
	"sort"
	"strconv"

	"github.com/meur/rulesview/internal/storage"
)

const (
	MsgNoRegimentsData      = "No Regiments of Renown data available."
	MsgNoManifestationsData = "No Universal Manifestations data available."
)

// Allowed-army lists longer than this are laid out in two columns
const twoColumnThreshold = 6

// RegimentRow is one regiment of renown
type RegimentRow struct {
	Name          string   `json:"name"`
	Points        string   `json:"points"`
	Units         []string `json:"units"`
	AllowedArmies []string `json:"allowed_armies"`
	TwoColumn     bool     `json:"-"`
	Even          bool     `json:"-"`
}

// RegimentsView is the regiments of renown table
type RegimentsView struct {
	Rows    []RegimentRow `json:"rows"`
	Message string        `json:"message,omitempty"`
}

// ManifestationsView is the universal manifestations table
type ManifestationsView struct {
	Rows    []PointsRow `json:"rows"`
	Message string      `json:"message,omitempty"`
}

// DataInfo describes where the battle profile data came from
type DataInfo struct {
	Title         string `json:"title,omitempty"`
	Filename      string `json:"filename,omitempty"`
	PublishedDate string `json:"published_date,omitempty"`
	ExtractedDate string `json:"extracted_date,omitempty"`
	Hash          string `json:"hash,omitempty"`
}

// BuildRegiments lists regiments of renown in dataset order. Each
// regiment's units are listed as "{count} x {name}", sorted by name.
func BuildRegiments(c *storage.Catalog) RegimentsView {
	regiments := c.GetRegimentsOfRenown()
	if regiments == nil {
		return RegimentsView{Message: MsgNoRegimentsData}
	}

	v := RegimentsView{Rows: make([]RegimentRow, 0, len(regiments))}
	for i, r := range regiments {
		names := make([]string, 0, len(r.Units))
		for name := range r.Units {
			names = append(names, name)
		}
		sort.Strings(names)

		units := make([]string, 0, len(names))
		for _, name := range names {
			units = append(units, strconv.Itoa(r.Units[name])+" x "+name)
		}

		armies := append([]string(nil), r.AllowedArmies...)
		v.Rows = append(v.Rows, RegimentRow{
			Name:          r.Name,
			Points:        strconv.Itoa(r.Points),
			Units:         units,
			AllowedArmies: armies,
			TwoColumn:     len(armies) > twoColumnThreshold,
			Even:          i%2 == 0,
		})
	}
	return v
}

// BuildManifestations lists universal manifestations by points then name
func BuildManifestations(c *storage.Catalog) ManifestationsView {
	manifestations := c.GetUniversalManifestations()
	if manifestations == nil {
		return ManifestationsView{Message: MsgNoManifestationsData}
	}

	sorted := SortByPointsThenName(manifestations)
	v := ManifestationsView{Rows: make([]PointsRow, 0, len(sorted))}
	for i, m := range sorted {
		v.Rows = append(v.Rows, pointsRow(m.Name, m.Points, i))
	}
	return v
}

// BuildDataInfo returns the dataset provenance, nil when no battle
// profile data is loaded
func BuildDataInfo(c *storage.Catalog) *DataInfo {
	md := c.Info()
	if md == nil {
		return nil
	}
	return &DataInfo{
		Title:         md.Title,
		Filename:      md.Filename,
		PublishedDate: md.PublishedDate,
		ExtractedDate: md.ExtractedDate,
		Hash:          md.Hash,
	}
}
