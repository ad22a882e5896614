// SPDX-License-Identifier: MIT
// Package: social
//
// Purpose:
//   - Undirected friendship network over a fixed user set.
//   - Degree statistics and friend-of-friend suggestions.
//
// Contract:
//   - Friend lists keep the order in which pairs were given; a repeated pair
//     is stored once.

package social

import (
	"fmt"
	"slices"
	"sort"
)

// Network is an immutable friendship graph.
type Network struct {
	users   []User
	byID    map[int]User
	friends map[int][]int
}

// NewNetwork builds a network from users and undirected friendship pairs.
//
// Errors:
//   - ErrDuplicateUser if two users share an ID.
//   - ErrUnknownUser if a pair mentions an ID not in users.
//   - ErrSelfFriendship for a pair (u, u).
func NewNetwork(users []User, pairs []Friendship) (*Network, error) {
	n := &Network{
		users:   slices.Clone(users),
		byID:    make(map[int]User, len(users)),
		friends: make(map[int][]int, len(users)),
	}
	for _, u := range users {
		if _, dup := n.byID[u.ID]; dup {
			return nil, fmt.Errorf("NewNetwork: %w: %d", ErrDuplicateUser, u.ID)
		}
		n.byID[u.ID] = u
		n.friends[u.ID] = []int{}
	}
	for _, p := range pairs {
		if p.A == p.B {
			return nil, fmt.Errorf("NewNetwork: %w: %d", ErrSelfFriendship, p.A)
		}
		for _, id := range [2]int{p.A, p.B} {
			if _, ok := n.byID[id]; !ok {
				return nil, fmt.Errorf("NewNetwork: %w: %d", ErrUnknownUser, id)
			}
		}
		if slices.Contains(n.friends[p.A], p.B) {
			continue
		}
		n.friends[p.A] = append(n.friends[p.A], p.B)
		n.friends[p.B] = append(n.friends[p.B], p.A)
	}
	return n, nil
}

// Users returns the users in construction order.
func (n *Network) Users() []User {
	return slices.Clone(n.users)
}

// User looks up a user by ID.
func (n *Network) User(id int) (User, error) {
	u, ok := n.byID[id]
	if !ok {
		return User{}, fmt.Errorf("User: %w: %d", ErrUnknownUser, id)
	}
	return u, nil
}

// Friends returns the friend IDs of user id.
func (n *Network) Friends(id int) ([]int, error) {
	f, ok := n.friends[id]
	if !ok {
		return nil, fmt.Errorf("Friends: %w: %d", ErrUnknownUser, id)
	}
	return slices.Clone(f), nil
}

// TotalConnections returns Σ degree, i.e. twice the number of friendships.
func (n *Network) TotalConnections() int {
	total := 0
	for _, f := range n.friends {
		total += len(f)
	}
	return total
}

// AverageConnections returns TotalConnections / number of users
// (0 for an empty network).
func (n *Network) AverageConnections() float64 {
	if len(n.users) == 0 {
		return 0
	}
	return float64(n.TotalConnections()) / float64(len(n.users))
}

// ByFriendCount returns every user's degree, most connected first; equal
// degrees are ordered by ascending ID.
func (n *Network) ByFriendCount() []UserCount {
	out := make([]UserCount, 0, len(n.users))
	for _, u := range n.users {
		out = append(out, UserCount{ID: u.ID, Count: len(n.friends[u.ID])})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// FriendsOfFriends counts, for every user at distance exactly two from id,
// how many mutual friends they share with id.
func (n *Network) FriendsOfFriends(id int) (map[int]int, error) {
	direct, ok := n.friends[id]
	if !ok {
		return nil, fmt.Errorf("FriendsOfFriends: %w: %d", ErrUnknownUser, id)
	}
	out := make(map[int]int)
	for _, f := range direct {
		for _, foaf := range n.friends[f] {
			if foaf == id || slices.Contains(direct, foaf) {
				continue
			}
			out[foaf]++
		}
	}
	return out, nil
}
