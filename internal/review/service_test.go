package review

import (
	"context"
	"errors"
	"testing"

	"github.com/KwnLnrd/Gallopin/internal/apperr"
	"github.com/KwnLnrd/Gallopin/internal/llm"
	"github.com/KwnLnrd/Gallopin/internal/menu"
	"github.com/KwnLnrd/Gallopin/internal/staff"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	service  *Service
	recorder *MemoryRecorder
	llm      *llm.Fake
	alice    *staff.Server
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	dishes := menu.NewService(menu.NewInMemoryRepository())
	_, err := dishes.Create(ctx, "Risotto aux cêpes", "Plats végétariens")
	require.NoError(t, err)

	servers := staff.NewService(staff.NewInMemoryRepository())
	alice, err := servers.Create(ctx, "Alice")
	require.NoError(t, err)

	f := &fixture{
		recorder: &MemoryRecorder{},
		llm:      &llm.Fake{Response: "  Une soirée parfaite chez Gallopin.  "},
		alice:    alice,
	}
	f.service = NewService(dishes, servers, f.recorder, f.llm, zap.NewNop())
	return f
}

func TestGenerate_ServerTagOnlyIsRejected(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Generate(context.Background(), Request{
		Tags: []Tag{{CategoryServer, "Alice"}},
	})

	assert.ErrorIs(t, err, ErrNothingToProcess)
	assert.Empty(t, f.recorder.Saved())
	assert.Equal(t, 0, f.llm.Calls())
}

func TestGenerate_DishAndAtmosphere(t *testing.T) {
	f := newFixture(t)

	res, err := f.service.Generate(context.Background(), Request{
		Lang: "fr",
		Tags: []Tag{
			{"dish", "Risotto aux cêpes"},
			{CategoryAtmosphere, "cosy"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Une soirée parfaite chez Gallopin.", res.Review)
	assert.Empty(t, res.Message)

	saved := f.recorder.Saved()
	require.Len(t, saved, 1)
	assert.Equal(t, []DishSelection{{Name: "Risotto aux cêpes", Category: "Plats végétariens"}}, saved[0].Dishes)
	assert.Equal(t, []Tag{{CategoryAtmosphere, "cosy"}}, saved[0].Qualitative)
	assert.Nil(t, saved[0].Feedback)
	assert.Empty(t, saved[0].GeneratedFor)

	assert.Equal(t, 1, f.llm.Calls())
}

func TestGenerate_UnknownDishStaysInPromptOnly(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Generate(context.Background(), Request{
		Tags: []Tag{{"dish", "Plat disparu"}, {CategoryServer, "Alice"}},
	})
	require.NoError(t, err)

	saved := f.recorder.Saved()
	require.Len(t, saved, 1)
	assert.Empty(t, saved[0].Dishes)
	assert.Equal(t, "Alice", saved[0].GeneratedFor)

	require.Len(t, f.llm.Requests, 1)
	assert.Contains(t, f.llm.Requests[0].Prompt, "Plat disparu")
	assert.Contains(t, f.llm.Requests[0].Prompt, "servi par Alice")
}

func TestGenerate_PrivateOnly(t *testing.T) {
	f := newFixture(t)

	res, err := f.service.Generate(context.Background(), Request{
		Tags:            []Tag{{CategoryServer, "Alice"}},
		PrivateFeedback: "  Le vin était bouchonné. ",
	})
	require.NoError(t, err)
	assert.Equal(t, PrivateOnlyMessage, res.Message)
	assert.Equal(t, 0, f.llm.Calls())

	saved := f.recorder.Saved()
	require.Len(t, saved, 1)
	require.NotNil(t, saved[0].Feedback)
	assert.Equal(t, "Le vin était bouchonné.", saved[0].Feedback.Text)
	require.NotNil(t, saved[0].Feedback.ServerID)
	assert.Equal(t, f.alice.ID, *saved[0].Feedback.ServerID)
	// no public review, so the server is not credited in the ranking
	assert.Empty(t, saved[0].GeneratedFor)
}

func TestGenerate_PrivateFeedbackUnknownServer(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Generate(context.Background(), Request{
		Tags:            []Tag{{CategoryServer, "Zoé"}},
		PrivateFeedback: "Très attentionnée",
	})
	require.NoError(t, err)

	saved := f.recorder.Saved()
	require.Len(t, saved, 1)
	assert.Nil(t, saved[0].Feedback.ServerID)
}

func TestGenerate_CompletionFailureKeepsRows(t *testing.T) {
	f := newFixture(t)
	f.llm.Err = errors.New("connection reset")

	_, err := f.service.Generate(context.Background(), Request{
		Tags: []Tag{{CategoryAtmosphere, "cosy"}},
	})
	assert.ErrorIs(t, err, apperr.ErrUpstream)
	assert.Len(t, f.recorder.Saved(), 1)
}

func TestGenerate_RecorderFailureSkipsCompletion(t *testing.T) {
	f := newFixture(t)
	f.recorder.Err = errors.New("tx aborted")

	_, err := f.service.Generate(context.Background(), Request{
		Tags: []Tag{{CategoryAtmosphere, "cosy"}},
	})
	require.Error(t, err)
	assert.Equal(t, 0, f.llm.Calls())
}

func TestGenerate_RejectsBadRating(t *testing.T) {
	f := newFixture(t)
	rating := 7.0

	_, err := f.service.Generate(context.Background(), Request{
		Tags:   []Tag{{CategoryAtmosphere, "cosy"}},
		Rating: &rating,
	})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)
}
