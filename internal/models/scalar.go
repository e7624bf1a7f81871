package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Count is an integer field that the extractor sometimes writes as a
// string ("5"). Non-numeric strings and null decode as 0.
type Count int

// UnmarshalJSON accepts a JSON number, a numeric string or null
func (c *Count) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*c = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			*c = 0
			return nil
		}
		*c = Count(n)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*c = Count(int(f))
	return nil
}

// Text is a display field written either as a string ("32mm") or a number
type Text string

// UnmarshalJSON accepts a JSON string, number or null
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*t = Text(n.String())
	return nil
}

func (t Text) String() string { return string(t) }

// optionalPoints decodes a points value the extractor may write as a
// number, a numeric string or null. Anything non-numeric is treated as
// unpublished.
type optionalPoints struct {
	value *int
}

// UnmarshalJSON accepts a JSON number, a numeric string or null
func (p *optionalPoints) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	p.value = nil
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return nil
		}
		p.value = &n
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	n := int(f)
	p.value = &n
	return nil
}
