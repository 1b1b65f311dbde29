package menu

import (
	"bytes"
	"encoding/json"
)

// FlavorOption is one dish of the menu.
type FlavorOption struct {
	ID       int    `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category"`
}

// Item is a dish as listed under its category.
type Item struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

// Group is one menu category with its dishes.
type Group struct {
	Category string
	Items    []Item
}

// Groups renders as a JSON object keyed by category. Keys keep the order in
// which each category first appeared, which encoding/json does not do for maps.
type Groups []Group

func (g Groups) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, group := range g {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(group.Category)
		if err != nil {
			return nil, err
		}

		items := group.Items
		if items == nil {
			items = []Item{}
		}
		val, err := json.Marshal(items)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// GroupByCategory groups options by category in first-occurrence order.
func GroupByCategory(options []FlavorOption) Groups {
	groups := Groups{}
	index := make(map[string]int)

	for _, o := range options {
		i, ok := index[o.Category]
		if !ok {
			i = len(groups)
			index[o.Category] = i
			groups = append(groups, Group{Category: o.Category})
		}
		groups[i].Items = append(groups[i].Items, Item{ID: o.ID, Text: o.Text})
	}

	return groups
}
