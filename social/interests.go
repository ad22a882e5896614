// SPDX-License-Identifier: MIT

package social

import (
	"slices"
	"sort"
	"strings"
)

// InterestIndex answers topic queries over a list of interests.
type InterestIndex struct {
	interests []Interest
	byTopic   map[string][]int
	byUser    map[int][]string
}

// NewInterestIndex indexes interests in both directions. Order of first
// appearance is preserved in every returned list.
func NewInterestIndex(interests []Interest) *InterestIndex {
	ix := &InterestIndex{
		interests: slices.Clone(interests),
		byTopic:   make(map[string][]int),
		byUser:    make(map[int][]string),
	}
	for _, in := range interests {
		ix.byTopic[in.Topic] = append(ix.byTopic[in.Topic], in.UserID)
		ix.byUser[in.UserID] = append(ix.byUser[in.UserID], in.Topic)
	}
	return ix
}

// DataScientistsWhoLike returns the IDs of users interested in topic.
func (ix *InterestIndex) DataScientistsWhoLike(topic string) []int {
	return slices.Clone(ix.byTopic[topic])
}

// InterestsOf returns the topics user id likes.
func (ix *InterestIndex) InterestsOf(id int) []string {
	return slices.Clone(ix.byUser[id])
}

// MostCommonInterestsWith counts, for every other user, the topics they
// share with user id, most shared first (ties by ascending ID).
func (ix *InterestIndex) MostCommonInterestsWith(id int) []UserCount {
	counts := make(map[int]int)
	for _, topic := range ix.byUser[id] {
		for _, other := range ix.byTopic[topic] {
			if other != id {
				counts[other]++
			}
		}
	}
	out := make([]UserCount, 0, len(counts))
	for uid, c := range counts {
		out = append(out, UserCount{ID: uid, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// WordCounts lowercases every topic, splits it on whitespace and counts the
// words across all interests.
func (ix *InterestIndex) WordCounts() map[string]int {
	out := make(map[string]int)
	for _, in := range ix.interests {
		for _, w := range strings.Fields(strings.ToLower(in.Topic)) {
			out[w]++
		}
	}
	return out
}
