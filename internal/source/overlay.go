package source

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/meur/rulesview/internal/models"
)

// Overlay holds hand-maintained corrections to the extracted battle
// profiles, keyed by faction name
type Overlay struct {
	Factions []models.Faction `json:"factions"`
}

// LoadOverlays reads every *.json file in dir, in file name order
func LoadOverlays(dir string) ([]Overlay, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read overlay dir %s: %w", dir, err)
	}

	var overlays []Overlay
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read overlay %s: %w", path, err)
		}
		var o Overlay
		if err := json.Unmarshal(data, &o); err != nil {
			return nil, fmt.Errorf("failed to parse overlay %s: %w", path, err)
		}
		overlays = append(overlays, o)
	}
	return overlays, nil
}

// MergeOverlays applies overlays in order and returns a new document; doc
// is left untouched. For a faction already in doc, each overlay profile
// replaces the same-named profile or is appended. Unknown factions are
// appended whole.
func MergeOverlays(doc *models.BattleProfileDocument, overlays []Overlay) *models.BattleProfileDocument {
	merged := *doc
	merged.Data.Factions = append([]models.Faction(nil), doc.Data.Factions...)

	for _, o := range overlays {
		for _, of := range o.Factions {
			idx := factionIndex(merged.Data.Factions, of.Name)
			if idx < 0 {
				merged.Data.Factions = append(merged.Data.Factions, of)
				continue
			}

			f := merged.Data.Factions[idx]
			f.BattleProfiles = append([]models.Profile(nil), f.BattleProfiles...)
			for _, p := range of.BattleProfiles {
				if pi := profileIndex(f.BattleProfiles, p.Name); pi >= 0 {
					f.BattleProfiles[pi] = p
				} else {
					f.BattleProfiles = append(f.BattleProfiles, p)
				}
			}
			merged.Data.Factions[idx] = f
		}
	}
	return &merged
}

func factionIndex(factions []models.Faction, name string) int {
	for i := range factions {
		if factions[i].Name == name {
			return i
		}
	}
	return -1
}

func profileIndex(profiles []models.Profile, name string) int {
	for i := range profiles {
		if profiles[i].Name == name {
			return i
		}
	}
	return -1
}
