package view

import (
	"github.com/meur/rulesview/internal/models"
)

const MsgNoFAQData = "No FAQ data available."

// FAQEntry is a question card with its anchor
type FAQEntry struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQRule is a rule card within a section
type FAQRule struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Questions []FAQEntry `json:"questions"`
}

// FAQSection is a top-level section card
type FAQSection struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Questions []FAQEntry `json:"questions,omitempty"`
	Rules     []FAQRule  `json:"rules"`
}

// FAQView is the full FAQ tree with anchors assigned
type FAQView struct {
	Sections []FAQSection `json:"sections"`
	Message  string       `json:"message,omitempty"`
}

// BuildFAQ assigns hierarchical anchor IDs to every section, rule and
// question. Section-level and rule-level question indices are counted
// separately.
func BuildFAQ(doc *models.FAQDocument) FAQView {
	if doc == nil {
		return FAQView{Message: MsgNoFAQData}
	}

	v := FAQView{Sections: make([]FAQSection, 0, len(doc.Sections))}
	for _, s := range doc.Sections {
		sectionID := SectionID(s.Title)
		section := FAQSection{
			ID:        sectionID,
			Title:     s.Title,
			Questions: faqEntries(sectionID, s.Questions),
			Rules:     make([]FAQRule, 0, len(s.Rules)),
		}
		for _, r := range s.Rules {
			ruleID := RuleID(sectionID, r.Title)
			section.Rules = append(section.Rules, FAQRule{
				ID:        ruleID,
				Title:     r.Title,
				Questions: faqEntries(ruleID, r.Questions),
			})
		}
		v.Sections = append(v.Sections, section)
	}
	return v
}

func faqEntries(parentID string, qas []models.QA) []FAQEntry {
	if len(qas) == 0 {
		return nil
	}
	entries := make([]FAQEntry, 0, len(qas))
	for i, qa := range qas {
		entries = append(entries, FAQEntry{
			ID:       QuestionID(parentID, i),
			Question: qa.Question,
			Answer:   qa.Answer,
		})
	}
	return entries
}
