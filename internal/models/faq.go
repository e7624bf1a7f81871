package models

import (
	"bytes"
	"encoding/json"
)

// FAQDocument is the FAQ dataset: ordered sections plus optional metadata
type FAQDocument struct {
	Metadata
	Sections []Section `json:"data"`
}

// Section is a top-level FAQ heading
type Section struct {
	Title     string `json:"title"`
	Questions []QA   `json:"questions,omitempty"` // asked directly under the section
	Rules     []Rule `json:"rules"`
}

// Rule is a rule heading inside a section
type Rule struct {
	Title     string `json:"title"`
	Questions []QA   `json:"questions"`
}

// QA is a single question/answer pair
type QA struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	UpdatedOn string `json:"updatedOn,omitempty"`
}

// UnmarshalJSON accepts either a bare array of sections or the extractor
// envelope {title, filename, ..., data: [sections]}.
func (d *FAQDocument) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var sections []Section
		if err := json.Unmarshal(trimmed, &sections); err != nil {
			return err
		}
		*d = FAQDocument{Sections: sections}
		return nil
	}

	type envelope FAQDocument
	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return err
	}
	*d = FAQDocument(env)
	return nil
}
