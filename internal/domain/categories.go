package domain

import (
	"encoding/json"
	"strings"
)

// Categories is an ordered set of category names. Items are trimmed, empty items are
// dropped and duplicates (compared case-insensitively) keep their first position.
// It serialises to JSON as an array and to storage as a comma-joined string.
type Categories []string

// NewCategories normalises items into a Categories set.
func NewCategories(items ...string) Categories {
	out := make(Categories, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it == "" {
			continue
		}
		key := strings.ToLower(it)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, it)
	}
	return out
}

// ParseCategories splits a comma-joined string.
func ParseCategories(s string) Categories {
	if strings.TrimSpace(s) == "" {
		return Categories{}
	}
	return NewCategories(strings.Split(s, ",")...)
}

// String joins the set with commas, the storage representation.
func (c Categories) String() string {
	return strings.Join(c, ",")
}

// Contains reports whether any category contains sub, case-insensitively. sub must be lower-cased.
func (c Categories) Contains(sub string) bool {
	for _, it := range c {
		if strings.Contains(strings.ToLower(it), sub) {
			return true
		}
	}
	return false
}

func (c Categories) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(c))
}

// UnmarshalJSON accepts either an array of strings or a comma-joined string.
func (c *Categories) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*c = NewCategories(list...)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*c = ParseCategories(s)
	return nil
}
