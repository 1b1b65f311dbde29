package review

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguage_FallsBackToFrench(t *testing.T) {
	assert.Equal(t, "anglais", Language("EN"))
	assert.Equal(t, "japonais", Language(" ja "))
	assert.Equal(t, "français", Language("klingon"))
	assert.Equal(t, "français", Language(""))
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	rating := 4.5
	in := PromptInput{
		Lang: "en",
		Tags: []Tag{
			{"dish", "Sole meunière"},
			{CategoryAtmosphere, "cosy"},
			{CategoryServer, "Alice"},
			{"dish", "Baba au rhum"},
		},
		Rating:      &rating,
		CustomNotes: "Table près de la verrière",
	}

	system, user := BuildPrompt(in)
	system2, user2 := BuildPrompt(in)
	assert.Equal(t, system, system2)
	assert.Equal(t, user, user2)

	assert.Contains(t, system, "en anglais")
	assert.Contains(t, user, "fondée en 1876")
	assert.Contains(t, user, "- Note attribuée : 4.5/5 étoiles.")
	assert.Contains(t, user, "- Plats dégustés : Sole meunière, Baba au rhum.")
	assert.Contains(t, user, "- Ambiance : cosy.")
	assert.Contains(t, user, `"Table près de la verrière"`)
	assert.Contains(t, user, "servi par Alice")

	// categories keep first-occurrence order
	assert.Less(t, strings.Index(user, "Plats dégustés"), strings.Index(user, "Ambiance"))
}

func TestBuildPrompt_OptionalParts(t *testing.T) {
	_, user := BuildPrompt(PromptInput{Tags: []Tag{{CategoryQuickHighlight, "Le cadre"}}})

	assert.Contains(t, user, "rédigé en français")
	assert.Contains(t, user, "- Point marquant : Le cadre.")
	assert.NotContains(t, user, "Note attribuée")
	assert.NotContains(t, user, "Notes additionnelles")
	assert.NotContains(t, user, "servi par")
}
