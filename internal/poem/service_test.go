package poem_test

import (
	"context"
	"testing"

	"poetry/internal/poem"
	"poetry/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) *poem.Service {
	return &poem.Service{DB: testutil.OpenTestDB(t), DefaultAuthor: "Default Poet"}
}

func TestCreateAndGetPreservesVerseOrder(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, poem.CreateInput{Title: "X", Verses: []string{"a", "b", "c"}})
	require.NoError(t, err)
	require.NotZero(t, id)

	p, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "X", p.Title)
	assert.Equal(t, []string{"a", "b", "c"}, p.Lines())
	for i, v := range p.Verses {
		assert.Equal(t, i+1, v.VerseOrder)
	}
}

func TestCreateDefaultsAuthor(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	id, err := svc.Create(ctx, poem.CreateInput{Title: "Untitled", Author: "  ", Verses: []string{"line"}})
	require.NoError(t, err)

	p, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Default Poet", p.Author)
}

func TestCreateKeepsOptionalFields(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	theme := "love"
	audio := "/audio/night.mp3"
	id, err := svc.Create(ctx, poem.CreateInput{
		Title:    "Night",
		Author:   "Someone",
		Verses:   []string{"one"},
		Theme:    &theme,
		AudioURL: &audio,
	})
	require.NoError(t, err)

	p, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Someone", p.Author)
	require.NotNil(t, p.Theme)
	assert.Equal(t, "love", *p.Theme)
	require.NotNil(t, p.AudioURL)
	assert.Equal(t, audio, *p.AudioURL)
	assert.Nil(t, p.Description)
	assert.Nil(t, p.WrittenDate)
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	cases := map[string]poem.CreateInput{
		"missing title": {Verses: []string{"a"}},
		"blank title":   {Title: "   ", Verses: []string{"a"}},
		"nil verses":    {Title: "X"},
		"empty verses":  {Title: "X", Verses: []string{}},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(ctx, in)
			assert.ErrorIs(t, err, poem.ErrInvalidInput)
		})
	}

	poems, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, poems)
}

func TestListOrdersByIDWithVerses(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, poem.CreateInput{Title: "First", Verses: []string{"1a", "1b"}})
	require.NoError(t, err)
	second, err := svc.Create(ctx, poem.CreateInput{Title: "Second", Verses: []string{"2c", "2b", "2a"}})
	require.NoError(t, err)

	poems, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, poems, 2)

	assert.Equal(t, first, poems[0].ID)
	assert.Equal(t, []string{"1a", "1b"}, poems[0].Lines())
	assert.Equal(t, second, poems[1].ID)
	assert.Equal(t, []string{"2c", "2b", "2a"}, poems[1].Lines())
}

func TestGetMissingPoem(t *testing.T) {
	svc := newService(t)

	_, err := svc.Get(context.Background(), 42)
	assert.ErrorIs(t, err, poem.ErrNotFound)
}
