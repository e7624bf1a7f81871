package view

import (
	"strconv"
	"strings"
)

// Slug makes text usable as an HTML id: every rune outside [A-Za-z0-9-]
// becomes '-', then the result is lower-cased. Distinct titles can map to
// the same slug ("A: b" and "A? b"); callers get no disambiguation.
func Slug(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}

// SectionID is the anchor of an FAQ section
func SectionID(title string) string {
	return Slug(title)
}

// RuleID is the anchor of a rule within a section
func RuleID(sectionID, title string) string {
	return sectionID + "-" + Slug(title)
}

// QuestionID is the anchor of the index-th question under parentID
func QuestionID(parentID string, index int) string {
	return parentID + "-qa" + strconv.Itoa(index)
}
