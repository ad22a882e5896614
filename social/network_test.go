// SPDX-License-Identifier: MIT

package social_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scratchml/dataset"
	"github.com/katalvlaran/scratchml/social"
)

func TestNetwork_Degrees(t *testing.T) {
	t.Parallel()

	n := dataset.Network()
	assert.Equal(t, 24, n.TotalConnections())
	assert.InDelta(t, 2.4, n.AverageConnections(), 1e-12)

	f, err := n.Friends(3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4}, f)

	got := n.ByFriendCount()
	require.Len(t, got, 10)
	assert.Equal(t, social.UserCount{ID: 1, Count: 3}, got[0])
	assert.Equal(t, social.UserCount{ID: 8, Count: 3}, got[4])
	assert.Equal(t, social.UserCount{ID: 0, Count: 2}, got[5])
	assert.Equal(t, social.UserCount{ID: 9, Count: 1}, got[9])
}

func TestNetwork_FriendsOfFriends(t *testing.T) {
	t.Parallel()

	n := dataset.Network()
	foaf, err := n.FriendsOfFriends(3)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{0: 2, 5: 1}, foaf)

	_, err = n.FriendsOfFriends(42)
	assert.ErrorIs(t, err, social.ErrUnknownUser)
}

func TestNewNetwork_Errors(t *testing.T) {
	t.Parallel()

	users := []social.User{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}

	_, err := social.NewNetwork(append(users, social.User{ID: 1}), nil)
	assert.ErrorIs(t, err, social.ErrDuplicateUser)
	_, err = social.NewNetwork(users, []social.Friendship{{A: 1, B: 3}})
	assert.ErrorIs(t, err, social.ErrUnknownUser)
	_, err = social.NewNetwork(users, []social.Friendship{{A: 2, B: 2}})
	assert.ErrorIs(t, err, social.ErrSelfFriendship)

	// repeated pairs, in either direction, count once
	n, err := social.NewNetwork(users, []social.Friendship{{A: 1, B: 2}, {A: 2, B: 1}})
	require.NoError(t, err)
	assert.Equal(t, 2, n.TotalConnections())

	u, err := n.User(2)
	require.NoError(t, err)
	assert.Equal(t, "b", u.Name)
	_, err = n.User(7)
	assert.ErrorIs(t, err, social.ErrUnknownUser)
}
