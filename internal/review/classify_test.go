package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_PublicContent(t *testing.T) {
	cases := []struct {
		name   string
		tags   []Tag
		public bool
	}{
		{"no tags", nil, false},
		{"server only", []Tag{{CategoryServer, "Alice"}}, false},
		{"reason only", []Tag{{CategoryReasonForVisit, "Anniversaire"}}, false},
		{"atmosphere only", []Tag{{CategoryAtmosphere, "cosy"}}, true},
		{"dish only", []Tag{{"dish", "Sole meunière"}}, true},
		{"server and reason", []Tag{{CategoryServer, "Alice"}, {CategoryReasonForVisit, "Affaires"}}, true},
		{"blank tags ignored", []Tag{{CategoryServer, "Alice"}, {" ", "x"}, {"dish", "  "}}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := Classify(tc.tags)
			assert.Equal(t, tc.public, c.Public)
		})
	}
}

func TestClassify_BucketsTags(t *testing.T) {
	c, clean := Classify([]Tag{
		{CategoryServer, " Alice "},
		{"dish", "Risotto aux cêpes"},
		{CategoryAtmosphere, "cosy"},
		{CategoryServer, "Bob"},
		{"Desserts", "Profiteroles"},
	})

	assert.Len(t, clean, 5)
	assert.Equal(t, "Alice", c.ServerName)
	assert.Equal(t, []Tag{{CategoryAtmosphere, "cosy"}}, c.Qualitative)
	assert.Equal(t, []Tag{{"dish", "Risotto aux cêpes"}, {"Desserts", "Profiteroles"}}, c.Dishes)
}
