// SPDX-License-Identifier: MIT

package social

import "errors"

var (
	// ErrUnknownUser is returned when an ID does not belong to the network.
	ErrUnknownUser = errors.New("social: unknown user")

	// ErrDuplicateUser is returned when two users share an ID.
	ErrDuplicateUser = errors.New("social: duplicate user id")

	// ErrSelfFriendship is returned for a friendship pair (u, u).
	ErrSelfFriendship = errors.New("social: user cannot befriend themselves")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("social: invalid option supplied")

	// ErrNoPath is returned by PathTo for an unreached user.
	ErrNoPath = errors.New("social: no path")
)
