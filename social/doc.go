// SPDX-License-Identifier: MIT

// Package social models a small "data scientists" social network: users,
// undirected friendships, topic interests and salary/tenure records.
//
// 🚀 What it answers:
//
//	Network.TotalConnections / AverageConnections / ByFriendCount
//	Network.FriendsOfFriends   mutual-friend counts for non-friends
//	Network.Separation         breadth-first search from one user, with
//	                           depths, parents, visit order and PathTo
//	InterestIndex              who likes a topic, shared-interest counts,
//	                           word frequencies across topics
//	AverageSalaryByBucket      mean salary per tenure bucket
//
// ⚙️ Networks are immutable after NewNetwork; every query returns fresh
// slices and maps. User IDs are arbitrary ints, not indexes.
package social
