package staff

import (
	"context"
	"errors"
	"testing"

	"github.com/KwnLnrd/Gallopin/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	cases := map[string]string{
		"alice":                    "Alice",
		"  jean-PIERRE   dupont  ": "Jean-Pierre Dupont",
		"ÉLODIE":                   "Élodie",
		"   ":                      "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeName(in), "input %q", in)
	}
}

func TestCreate_NormalizesAndRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	service := NewService(NewInMemoryRepository())

	created, err := service.Create(ctx, "  alice ")
	require.NoError(t, err)
	assert.Equal(t, "Alice", created.Name)

	_, err = service.Create(ctx, "ALICE")
	assert.True(t, errors.Is(err, apperr.ErrConflict))

	_, err = service.Create(ctx, "")
	assert.True(t, errors.Is(err, apperr.ErrInvalidInput))
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	service := NewService(NewInMemoryRepository())

	alice, err := service.Create(ctx, "Alice")
	require.NoError(t, err)
	_, err = service.Create(ctx, "Bob")
	require.NoError(t, err)

	renamed, err := service.Update(ctx, alice.ID, "alicia")
	require.NoError(t, err)
	assert.Equal(t, "Alicia", renamed.Name)

	_, err = service.Update(ctx, alice.ID, "bob")
	assert.True(t, errors.Is(err, apperr.ErrConflict))

	_, err = service.Update(ctx, 99, "Carol")
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestDelete_CascadesAndIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository()

	var removed []string
	repo.OnDelete = func(s Server) { removed = append(removed, s.Name) }

	service := NewService(repo)
	alice, err := service.Create(ctx, "Alice")
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, alice.ID))
	require.NoError(t, service.Delete(ctx, alice.ID))
	assert.Equal(t, []string{"Alice"}, removed)

	_, err = service.FindByName(ctx, "Alice")
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestList_SortedByName(t *testing.T) {
	ctx := context.Background()
	service := NewService(NewInMemoryRepository())

	for _, n := range []string{"zoé", "bruno", "marc"} {
		_, err := service.Create(ctx, n)
		require.NoError(t, err)
	}

	servers, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, servers, 3)
	assert.Equal(t, "Bruno", servers[0].Name)
	assert.Equal(t, "Marc", servers[1].Name)
	assert.Equal(t, "Zoé", servers[2].Name)
}
