package view

import (
	"regexp"
	"strings"

	"github.com/meur/rulesview/internal/models"
)

// Badges shown next to a profile name
const (
	BadgeSoG     = "SoG"
	BadgeLegends = "Legends"
)

const scourgeOfGhyran = "Scourge of Ghyran"

var scourgePattern = regexp.MustCompile(`\s*` + scourgeOfGhyran + `\s*`)

// Name is a display name split into badges, main name and subtitle
type Name struct {
	Badges   []string `json:"badges,omitempty"`
	Main     string   `json:"main"`
	Subtitle string   `json:"subtitle,omitempty"`
}

// splitRule splits a name at the first occurrence of separator. When
// keepSeparator is set the trimmed separator word leads the subtitle.
type splitRule struct {
	separator     string
	keepSeparator bool
}

// Evaluated in order; the first rule whose separator occurs wins.
var splitRules = []splitRule{
	{separator: ",", keepSeparator: false},
	{separator: " on ", keepSeparator: true},
	{separator: " with ", keepSeparator: true},
}

// FormatName decomposes a profile's display name
func FormatName(p models.Profile) Name {
	var n Name

	raw := p.Name
	if raw == "" {
		raw = NotAvailable
	}

	if strings.Contains(raw, scourgeOfGhyran) {
		raw = strings.TrimSpace(scourgePattern.ReplaceAllString(raw, ""))
		n.Badges = append(n.Badges, BadgeSoG)
	}

	n.Main, n.Subtitle = splitName(raw)

	if p.Legends {
		n.Badges = append(n.Badges, BadgeLegends)
	}
	return n
}

func splitName(name string) (main, subtitle string) {
	for _, rule := range splitRules {
		before, after, found := strings.Cut(name, rule.separator)
		if !found {
			continue
		}
		main = strings.TrimSpace(before)
		rest := strings.TrimSpace(after)
		if rest == "" {
			return main, ""
		}
		if rule.keepSeparator {
			return main, strings.TrimSpace(rule.separator) + " " + rest
		}
		return main, rest
	}
	return strings.TrimSpace(name), ""
}
