// Package view turns raw battle profile and FAQ records into sorted,
// annotated view models. Everything here is pure: no I/O, no shared state.
package view

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// OtherGroupName is the group key for items without a type
const OtherGroupName = "Other"

// Pointed is anything that can be ordered by points and name
type Pointed interface {
	SortName() string
	SortPoints() int
}

// Typed is a Pointed value that also belongs to a named group
type Typed interface {
	Pointed
	GroupType() string
}

// Group is one type bucket produced by GroupByType
type Group[T any] struct {
	Type  string
	Items []T
}

// SortByPointsThenName returns a new slice ordered by points descending,
// then by lower-cased name using English collation. Equal keys keep their
// input order.
func SortByPointsThenName[T Pointed](items []T) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)

	// Collators keep internal buffers, so each call gets its own.
	c := collate.New(language.English)
	sort.SliceStable(sorted, func(i, j int) bool {
		pi, pj := sorted[i].SortPoints(), sorted[j].SortPoints()
		if pi != pj {
			return pi > pj
		}
		ni := strings.ToLower(sorted[i].SortName())
		nj := strings.ToLower(sorted[j].SortName())
		return c.CompareString(ni, nj) < 0
	})
	return sorted
}

// GroupByType buckets items by trimmed type ("Other" when blank), sorts
// each bucket with SortByPointsThenName and returns buckets in ascending
// key order.
func GroupByType[T Typed](items []T) []Group[T] {
	buckets := make(map[string][]T)
	for _, item := range items {
		key := groupKey(item.GroupType())
		buckets[key] = append(buckets[key], item)
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	groups := make([]Group[T], 0, len(keys))
	for _, k := range keys {
		groups = append(groups, Group[T]{Type: k, Items: SortByPointsThenName(buckets[k])})
	}
	return groups
}

func groupKey(t string) string {
	t = strings.TrimSpace(t)
	if t == "" {
		return OtherGroupName
	}
	return t
}
