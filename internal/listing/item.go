package listing

import (
	"encoding/json"
	"slices"
	"strings"
)

// Item is one entry of the list. ID is assigned by the backend.
// TitleMissing is set when the backend sent no title (or null), which is
// distinct from an empty one.
type Item struct {
	ID           string `json:"_id,omitempty"`
	Name         string `json:"name"`
	Title        string `json:"title,omitempty"`
	TitleMissing bool   `json:"-"`
}

// UnmarshalJSON accepts "id" when the backend does not send "_id".
func (it *Item) UnmarshalJSON(data []byte) error {
	var raw struct {
		UnderscoreID string  `json:"_id"`
		ID           string  `json:"id"`
		Name         string  `json:"name"`
		Title        *string `json:"title"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	it.ID = raw.UnderscoreID
	if it.ID == "" {
		it.ID = raw.ID
	}
	it.Name = raw.Name
	it.Title = ""
	it.TitleMissing = raw.Title == nil
	if raw.Title != nil {
		it.Title = *raw.Title
	}
	return nil
}

// SortedByTitle returns a copy of items ordered ascending by Title.
// Items with equal titles keep their relative order. An empty title sorts
// first and a missing one sorts after every present title.
func SortedByTitle(items []Item) []Item {
	out := slices.Clone(items)
	slices.SortStableFunc(out, compareTitle)
	return out
}

func compareTitle(a, b Item) int {
	switch {
	case a.TitleMissing && b.TitleMissing:
		return 0
	case a.TitleMissing:
		return 1
	case b.TitleMissing:
		return -1
	}
	return strings.Compare(a.Title, b.Title)
}
