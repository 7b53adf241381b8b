package like_test

import (
	"context"
	"testing"

	"poetry/internal/like"
	"poetry/internal/poem"
	"poetry/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setup(t *testing.T) (*like.Service, *gorm.DB, uint64) {
	gdb := testutil.OpenTestDB(t)
	return &like.Service{DB: gdb}, gdb, testutil.CreatePoem(t, gdb, "P", "v")
}

func TestToggleTwiceRestoresState(t *testing.T) {
	svc, _, poemID := setup(t)
	ctx := context.Background()
	u1 := like.Identity{UserID: "u1", Address: "10.0.0.1"}

	st, err := svc.Toggle(ctx, poemID, u1)
	require.NoError(t, err)
	assert.Equal(t, like.Status{Count: 1, Liked: true}, st)

	st, err = svc.Toggle(ctx, poemID, u1)
	require.NoError(t, err)
	assert.Equal(t, like.Status{Count: 0, Liked: false}, st)

	st, err = svc.Status(ctx, poemID, u1)
	require.NoError(t, err)
	assert.Equal(t, like.Status{Count: 0, Liked: false}, st)
}

func TestUserAndAddressDomainsAreDisjoint(t *testing.T) {
	svc, _, poemID := setup(t)
	ctx := context.Background()
	byUser := like.Identity{UserID: "u1", Address: "10.0.0.1"}
	byAddr := like.Identity{Address: "10.0.0.1"}

	_, err := svc.Toggle(ctx, poemID, byUser)
	require.NoError(t, err)

	// same address, no user id: must not see the user's like
	st, err := svc.Status(ctx, poemID, byAddr)
	require.NoError(t, err)
	assert.False(t, st.Liked)
	assert.EqualValues(t, 1, st.Count)

	st, err = svc.Toggle(ctx, poemID, byAddr)
	require.NoError(t, err)
	assert.True(t, st.Liked)
	assert.EqualValues(t, 2, st.Count)

	// removing the address like leaves the user like alone
	st, err = svc.Toggle(ctx, poemID, byAddr)
	require.NoError(t, err)
	assert.False(t, st.Liked)
	assert.EqualValues(t, 1, st.Count)

	st, err = svc.Status(ctx, poemID, byUser)
	require.NoError(t, err)
	assert.True(t, st.Liked)
}

func TestStatusCountsBothSchemes(t *testing.T) {
	svc, gdb, poemID := setup(t)
	ctx := context.Background()
	other := testutil.CreatePoem(t, gdb, "Other", "v")

	ids := []like.Identity{
		{UserID: "a", Address: "1.1.1.1"},
		{UserID: "b", Address: "1.1.1.1"},
		{Address: "1.1.1.1"},
		{Address: "2.2.2.2"},
	}
	for _, id := range ids {
		_, err := svc.Toggle(ctx, poemID, id)
		require.NoError(t, err)
	}
	_, err := svc.Toggle(ctx, other, like.Identity{Address: "3.3.3.3"})
	require.NoError(t, err)

	var rows int64
	require.NoError(t, gdb.Model(&like.Like{}).Where("poem_id = ?", poemID).Count(&rows).Error)

	st, err := svc.Status(ctx, poemID, like.Identity{Address: "9.9.9.9"})
	require.NoError(t, err)
	assert.Equal(t, rows, st.Count)
	assert.EqualValues(t, 4, st.Count)
	assert.False(t, st.Liked)
}

func TestAddressLikeIsUnique(t *testing.T) {
	svc, gdb, poemID := setup(t)

	_, err := svc.Toggle(context.Background(), poemID, like.Identity{Address: "10.0.0.1"})
	require.NoError(t, err)

	dup := like.Like{PoemID: poemID, UserIP: "10.0.0.1"}
	assert.ErrorIs(t, gdb.Create(&dup).Error, gorm.ErrDuplicatedKey)
}

func TestToggleMissingPoem(t *testing.T) {
	svc, _, _ := setup(t)

	_, err := svc.Toggle(context.Background(), 12345, like.Identity{Address: "10.0.0.1"})
	assert.ErrorIs(t, err, poem.ErrNotFound)
}
