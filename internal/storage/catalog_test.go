package storage

import (
	"testing"

	"github.com/google/uuid"
	"github.com/meur/rulesview/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument() *models.BattleProfileDocument {
	return &models.BattleProfileDocument{
		Metadata: models.Metadata{Filename: "bp.pdf", Hash: "bphash"},
		Data: models.BattleProfileData{
			Factions: []models.Faction{
				{Name: "Stormcast Eternals"},
				{Name: "Skaven"},
			},
			RegimentsOfRenown:       []models.RegimentOfRenown{{Name: "Gotrek"}},
			UniversalManifestations: []models.UniversalManifestation{{Name: "Chronomantic Cogs"}},
		},
	}
}

func TestCatalogLookups(t *testing.T) {
	c := New(testDocument(), nil)

	require.True(t, c.HasBattleProfiles())
	assert.Len(t, c.GetFactions(), 2)

	f := c.GetFaction("Skaven")
	require.NotNil(t, f)
	assert.Equal(t, "Skaven", f.Name)

	assert.Nil(t, c.GetFaction("skaven"), "lookup is exact")
	assert.Nil(t, c.GetFaction("Nighthaunt"))

	assert.Len(t, c.GetRegimentsOfRenown(), 1)
	assert.Len(t, c.GetUniversalManifestations(), 1)
	assert.Nil(t, c.FAQ())

	info := c.Info()
	require.NotNil(t, info)
	assert.Equal(t, "bp.pdf", info.Filename)
}

func TestCatalogEmpty(t *testing.T) {
	c := New(nil, nil)

	assert.False(t, c.HasBattleProfiles())
	assert.Nil(t, c.GetFactions())
	assert.Nil(t, c.GetFaction("Skaven"))
	assert.Nil(t, c.GetRegimentsOfRenown())
	assert.Nil(t, c.GetUniversalManifestations())
	assert.Nil(t, c.Info())
	assert.False(t, c.LoadedAt().IsZero())
}

func TestCatalogRevision(t *testing.T) {
	faq := &models.FAQDocument{Metadata: models.Metadata{Hash: "faqhash"}}

	assert.Equal(t, "bphash.faqhash", New(testDocument(), faq).Revision())
	assert.Equal(t, "faqhash", New(nil, faq).Revision())

	a := New(nil, &models.FAQDocument{}).Revision()
	b := New(nil, &models.FAQDocument{}).Revision()
	assert.NotEqual(t, a, b, "unhashed datasets get a fresh revision per load")
	_, err := uuid.Parse(a)
	assert.NoError(t, err)
}
