// SPDX-License-Identifier: MIT

package social

// User is a member of the network.
type User struct {
	ID   int
	Name string
}

// Friendship is an undirected edge between two user IDs.
type Friendship struct {
	A, B int
}

// Interest records that a user likes a topic.
type Interest struct {
	UserID int
	Topic  string
}

// SalaryTenure is one (salary, years of experience) observation.
type SalaryTenure struct {
	Salary float64
	Tenure float64
}

// UserCount pairs a user ID with a count (friends, shared interests, ...).
type UserCount struct {
	ID    int
	Count int
}
