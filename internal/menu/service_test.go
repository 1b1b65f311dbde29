package menu

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/KwnLnrd/Gallopin/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate_TrimsAndPersists(t *testing.T) {
	ctx := context.Background()
	service := NewService(NewInMemoryRepository())

	created, err := service.Create(ctx, "  Risotto aux cêpes ", " Plats Végétariens ")
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	found, err := service.FindByText(ctx, "Risotto aux cêpes")
	require.NoError(t, err)
	assert.Equal(t, *created, *found)
	assert.Equal(t, "Plats Végétariens", found.Category)
}

func TestCreate_MissingFields(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	_, err := service.Create(context.Background(), "Sole meunière", "   ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrInvalidInput))
}

func TestUpdate_UnknownID(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	_, err := service.Update(context.Background(), 42, "Café gourmand", "Desserts")
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestUpdate_RoundTrip(t *testing.T) {
	ctx := context.Background()
	service := NewService(NewInMemoryRepository())

	created, err := service.Create(ctx, "Velouté", "Entrées")
	require.NoError(t, err)

	updated, err := service.Update(ctx, created.ID, "Velouté de saison", "Entrées")
	require.NoError(t, err)

	list, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, *updated, list[0])
}

func TestDelete_Idempotent(t *testing.T) {
	ctx := context.Background()
	service := NewService(NewInMemoryRepository())

	created, err := service.Create(ctx, "Saint-Marcellin", "Fromages")
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, created.ID))
	require.NoError(t, service.Delete(ctx, created.ID))

	_, err = service.FindByText(ctx, "Saint-Marcellin")
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestGrouped_KeepsFirstOccurrenceOrder(t *testing.T) {
	ctx := context.Background()
	service := NewService(NewInMemoryRepository())

	for _, o := range []FlavorOption{
		{Text: "Profiteroles", Category: "Desserts"},
		{Text: "Sole meunière", Category: "Poissons"},
		{Text: "Baba au rhum", Category: "Desserts"},
		{Text: "Escargots", Category: "Entrées"},
	} {
		_, err := service.Create(ctx, o.Text, o.Category)
		require.NoError(t, err)
	}

	groups, err := service.Grouped(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 3)
	assert.Equal(t, "Desserts", groups[0].Category)
	assert.Equal(t, "Poissons", groups[1].Category)
	assert.Equal(t, "Entrées", groups[2].Category)
	assert.Len(t, groups[0].Items, 2)

	raw, err := json.Marshal(groups)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"Desserts":[{"id":1,"text":"Profiteroles"},{"id":3,"text":"Baba au rhum"}],
		  "Poissons":[{"id":2,"text":"Sole meunière"}],
		  "Entrées":[{"id":4,"text":"Escargots"}]}`,
		string(raw),
	)
	// JSONEq ignores key order, so check it on the raw bytes too
	assert.Regexp(t, `^\{"Desserts":.*"Poissons":.*"Entrées":`, string(raw))
}

func TestGroups_EmptyMarshalsToObject(t *testing.T) {
	raw, err := json.Marshal(Groups{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(raw))
}

func TestSeed_DefaultMenu(t *testing.T) {
	ctx := context.Background()
	service := NewService(NewInMemoryRepository())

	options, err := DefaultMenu()
	require.NoError(t, err)

	n, err := service.Seed(ctx, options, false)
	require.NoError(t, err)
	assert.Equal(t, len(options), n)

	// a second non-forced seed leaves the menu alone
	n, err = service.Seed(ctx, options, false)
	require.NoError(t, err)
	assert.Zero(t, n)

	groups, err := service.Grouped(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Entrées", groups[0].Category)
	assert.Equal(t, "Desserts", groups[len(groups)-1].Category)
}

func TestParseSeed_Rejects(t *testing.T) {
	_, err := ParseSeed([]byte("- category: Desserts\n  dishes: []\n"))
	require.Error(t, err)

	_, err = ParseSeed([]byte("not: [valid"))
	require.Error(t, err)
}
