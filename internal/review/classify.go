package review

import "strings"

// Classification splits request tags by what gets recorded for them.
type Classification struct {
	Qualitative []Tag
	Dishes      []Tag
	// ServerName is the first server tag, empty when none.
	ServerName string
	// Public reports whether the tags justify drafting a public review.
	Public bool
}

func IsQualitative(category string) bool {
	for _, c := range QualitativeCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Classify trims tags, drops empty ones and buckets the rest. A request has
// public content when it has more than one tag, or any tag outside
// server_name and reason_for_visit.
func Classify(tags []Tag) (Classification, []Tag) {
	var c Classification
	clean := make([]Tag, 0, len(tags))

	for _, t := range tags {
		t.Category = strings.TrimSpace(t.Category)
		t.Value = strings.TrimSpace(t.Value)
		if t.Category == "" || t.Value == "" {
			continue
		}
		clean = append(clean, t)

		switch {
		case t.Category == CategoryServer:
			if c.ServerName == "" {
				c.ServerName = t.Value
			}
		case IsQualitative(t.Category):
			c.Qualitative = append(c.Qualitative, t)
		default:
			c.Dishes = append(c.Dishes, t)
		}

		if t.Category != CategoryServer && t.Category != CategoryReasonForVisit {
			c.Public = true
		}
	}

	if len(clean) > 1 {
		c.Public = true
	}
	return c, clean
}
