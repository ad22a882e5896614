// SPDX-License-Identifier: MIT

// Package knn classifies points by majority vote among their k nearest
// labeled neighbors under Euclidean distance.
//
// Tie handling:
//
//	RawMajorityVote breaks count ties by first occurrence.
//	MajorityVote assumes labels are ordered nearest first and, while the
//	top two counts tie, drops the farthest label and votes again. A single
//	remaining label always wins, so the loop terminates.
package knn
