package storage

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/meur/rulesview/internal/models"
)

// Catalog holds the loaded datasets. It is built once by New and never
// modified afterwards, so a single Catalog can be shared by all requests.
// Callers must not modify values returned from its getters.
type Catalog struct {
	battleProfiles *models.BattleProfileDocument
	faq            *models.FAQDocument
	revision       string
	loadedAt       time.Time
}

// New creates a Catalog. Either document may be nil when that dataset
// was not configured.
func New(bp *models.BattleProfileDocument, faq *models.FAQDocument) *Catalog {
	return &Catalog{
		battleProfiles: bp,
		faq:            faq,
		revision:       revisionOf(bp, faq),
		loadedAt:       time.Now(),
	}
}

// revisionOf derives a stable identifier from the dataset hashes. Datasets
// without a hash get a random revision so every load is distinguishable.
func revisionOf(bp *models.BattleProfileDocument, faq *models.FAQDocument) string {
	var parts []string
	if bp != nil && bp.Hash != "" {
		parts = append(parts, bp.Hash)
	}
	if faq != nil && faq.Hash != "" {
		parts = append(parts, faq.Hash)
	}
	if len(parts) == 0 {
		return uuid.New().String()
	}
	return strings.Join(parts, ".")
}

// Revision identifies the loaded datasets
func (c *Catalog) Revision() string {
	return c.revision
}

// LoadedAt is when the catalog was built
func (c *Catalog) LoadedAt() time.Time {
	return c.loadedAt
}

// --- Battle profiles ---

// HasBattleProfiles reports whether a battle profile dataset is loaded
func (c *Catalog) HasBattleProfiles() bool {
	return c.battleProfiles != nil
}

// Info returns the battle profile document metadata, nil when absent
func (c *Catalog) Info() *models.Metadata {
	if c.battleProfiles == nil {
		return nil
	}
	md := c.battleProfiles.Metadata
	return &md
}

// GetFactions returns all factions in dataset order. Nil means the
// dataset has no factions section.
func (c *Catalog) GetFactions() []models.Faction {
	if c.battleProfiles == nil {
		return nil
	}
	return c.battleProfiles.Data.Factions
}

// GetFaction returns a faction by exact name, nil when not found
func (c *Catalog) GetFaction(name string) *models.Faction {
	factions := c.GetFactions()
	for i := range factions {
		if factions[i].Name == name {
			return &factions[i]
		}
	}
	return nil
}

// GetRegimentsOfRenown returns the regiments in dataset order
func (c *Catalog) GetRegimentsOfRenown() []models.RegimentOfRenown {
	if c.battleProfiles == nil {
		return nil
	}
	return c.battleProfiles.Data.RegimentsOfRenown
}

// GetUniversalManifestations returns the manifestations in dataset order
func (c *Catalog) GetUniversalManifestations() []models.UniversalManifestation {
	if c.battleProfiles == nil {
		return nil
	}
	return c.battleProfiles.Data.UniversalManifestations
}

// --- FAQ ---

// FAQ returns the FAQ document, nil when not loaded
func (c *Catalog) FAQ() *models.FAQDocument {
	return c.faq
}
