// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/katalvlaran/scratchml/dataset"
	"github.com/katalvlaran/scratchml/social"
)

func runNetwork(args []string, w io.Writer) error {
	fs := newFlagSet("network", w)
	from := fs.Int("from", 0, "user id to start the separation search from")
	to := fs.Int("to", 9, "user id to find the shortest friendship chain to")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// 1) Friendships
	n := dataset.Network()
	fmt.Fprintf(w, "users: %d, total connections: %d, average: %.2f\n",
		len(n.Users()), n.TotalConnections(), n.AverageConnections())
	fmt.Fprint(w, "most connected:")
	for _, uc := range n.ByFriendCount()[:3] {
		u, _ := n.User(uc.ID)
		fmt.Fprintf(w, " %s(%d)", u.Name, uc.Count)
	}
	fmt.Fprintln(w)

	foaf, err := n.FriendsOfFriends(3)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "friends of friends of Chi: %s\n", formatCounts(foaf))

	// 2) Degrees of separation
	res, err := n.Separation(*from)
	if err != nil {
		return err
	}
	path, err := res.PathTo(*to)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "separation %d -> %d: %d hops via %v\n", *from, *to, len(path)-1, path)

	// 3) Interests
	ix := social.NewInterestIndex(dataset.Interests())
	fmt.Fprintf(w, "data scientists who like Java: %v\n", ix.DataScientistsWhoLike("Java"))
	common := ix.MostCommonInterestsWith(0)
	if len(common) > 0 {
		fmt.Fprintf(w, "most interests shared with Hero: user %d (%d topics)\n", common[0].ID, common[0].Count)
	}
	fmt.Fprintf(w, "popular interest words: %s\n", formatCounts(topWords(ix.WordCounts(), 2)))

	// 4) Salaries
	avg := social.AverageSalaryByBucket(dataset.SalariesAndTenures())
	for _, b := range []string{social.BucketUnderTwo, social.BucketTwoToFive, social.BucketMoreThanFive} {
		fmt.Fprintf(w, "average salary, tenure %s: %.2f\n", b, avg[b])
	}
	return nil
}

// topWords keeps the words that occur more than threshold times.
func topWords(counts map[string]int, threshold int) map[string]int {
	out := make(map[string]int)
	for word, c := range counts {
		if c > threshold {
			out[word] = c
		}
	}
	return out
}

// formatCounts renders a count map in key order.
func formatCounts[K int | string](m map[K]int) string {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	s := "{"
	for i, k := range keys {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%v:%d", k, m[k])
	}
	return s + "}"
}
