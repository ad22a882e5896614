// SPDX-License-Identifier: MIT

package knn

import (
	"sort"

	"github.com/katalvlaran/scratchml/linalg"
)

const (
	opRawMajorityVote = "RawMajorityVote"
	opMajorityVote    = "MajorityVote"
	opClassify        = "Classify"
)

// LabeledPoint is a feature vector with its class label.
type LabeledPoint struct {
	Point linalg.Vector
	Label string
}

// tally counts labels and returns the winner (first occurrence among the
// most frequent), its count, and the runner-up count.
func tally(labels []string) (winner string, top, second int) {
	counts := make(map[string]int, len(labels))
	order := make([]string, 0, len(labels))
	for _, l := range labels {
		if counts[l] == 0 {
			order = append(order, l)
		}
		counts[l]++
	}
	for _, l := range order {
		c := counts[l]
		switch {
		case c > top:
			winner, second, top = l, top, c
		case c > second:
			second = c
		}
	}
	return winner, top, second
}

// RawMajorityVote returns the most frequent label. Ties go to the label
// that appears first.
//
// Errors:
//   - ErrNoLabels if labels is empty.
func RawMajorityVote(labels []string) (string, error) {
	if len(labels) == 0 {
		return "", knnErrorf(opRawMajorityVote, ErrNoLabels)
	}
	winner, _, _ := tally(labels)
	return winner, nil
}

// MajorityVote returns the most frequent label among labels ordered from
// nearest to farthest. While the two highest counts tie, the farthest label
// is dropped and the vote repeats.
//
// Errors:
//   - ErrNoLabels if labels is empty.
func MajorityVote(labels []string) (string, error) {
	if len(labels) == 0 {
		return "", knnErrorf(opMajorityVote, ErrNoLabels)
	}
	for n := len(labels); ; n-- {
		winner, top, second := tally(labels[:n])
		if top != second {
			return winner, nil
		}
	}
}

// Classify returns the MajorityVote of the k points nearest to query.
// Points at equal distance keep their input order.
//
// Errors:
//   - ErrBadK if k < 1 or k > len(points).
//   - linalg.ErrLengthMismatch if a point's dimension differs from query's.
//
// Complexity: O(n log n) for n points.
func Classify(k int, points []LabeledPoint, query linalg.Vector) (string, error) {
	if k < 1 || k > len(points) {
		return "", knnErrorf(opClassify, ErrBadK)
	}
	type scored struct {
		dist  float64
		label string
	}
	byDist := make([]scored, len(points))
	for i, p := range points {
		d, err := linalg.Distance(p.Point, query)
		if err != nil {
			return "", knnErrorf(opClassify, err)
		}
		byDist[i] = scored{dist: d, label: p.Label}
	}
	sort.SliceStable(byDist, func(i, j int) bool { return byDist[i].dist < byDist[j].dist })

	nearest := make([]string, k)
	for i := range nearest {
		nearest[i] = byDist[i].label
	}
	label, err := MajorityVote(nearest)
	if err != nil {
		return "", knnErrorf(opClassify, err)
	}
	return label, nil
}
