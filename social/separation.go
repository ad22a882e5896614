// SPDX-License-Identifier: MIT
// Package: social
//
// Purpose:
//   - Breadth-first search over the friendship network: degrees of
//     separation, BFS tree and visit order from one user.

package social

import (
	"context"
	"fmt"
)

// Option configures Separation.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// Separation runs.
type Option func(*SearchOptions)

// SearchOptions holds parameters and callbacks of a Separation search.
type SearchOptions struct {
	// Ctx allows cancellation.
	Ctx context.Context

	// OnVisit is called for each user in visit order. A non-nil error stops
	// the search and is returned wrapped.
	OnVisit func(id, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this many hops.
	MaxDepth int

	err error
}

// DefaultSearchOptions returns background context, no depth limit and a
// no-op OnVisit.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		Ctx:     context.Background(),
		OnVisit: func(int, int) error { return nil },
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *SearchOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a visit callback.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *SearchOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the search to d hops (0 means no limit).
func WithMaxDepth(d int) Option {
	return func(o *SearchOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// SeparationResult is the BFS tree rooted at Start.
//   - Order:  users in visit order.
//   - Depth:  hops from Start for every reached user.
//   - Parent: BFS predecessor of every reached user except Start.
type SeparationResult struct {
	Start  int
	Order  []int
	Depth  map[int]int
	Parent map[int]int
}

// PathTo returns the shortest friendship chain from Start to dest.
//
// Errors:
//   - ErrNoPath if dest was not reached.
func (r *SeparationResult) PathTo(dest int) ([]int, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("PathTo: %w to %d", ErrNoPath, dest)
	}
	path := []int{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

type queueItem struct {
	id    int
	depth int
}

// walker holds mutable search state.
type walker struct {
	net   *Network
	opts  SearchOptions
	queue []queueItem
	res   *SeparationResult
}

// Separation runs a breadth-first search from user start. Neighbors are
// explored in friend-list order, so results are deterministic.
//
// Errors:
//   - ErrUnknownUser if start is not in the network.
//   - ErrOptionViolation for invalid options.
//   - ctx.Err() on cancellation, or the OnVisit error. No partial result is
//     returned.
func (n *Network) Separation(start int, opts ...Option) (*SeparationResult, error) {
	o := DefaultSearchOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if _, ok := n.byID[start]; !ok {
		return nil, fmt.Errorf("Separation: %w: %d", ErrUnknownUser, start)
	}

	size := len(n.users)
	w := &walker{
		net:   n,
		opts:  o,
		queue: make([]queueItem, 0, size),
		res: &SeparationResult{
			Start:  start,
			Order:  make([]int, 0, size),
			Depth:  make(map[int]int, size),
			Parent: make(map[int]int, size),
		},
	}
	w.enqueue(start, 0, start)
	if err := w.loop(); err != nil {
		return nil, err
	}
	return w.res, nil
}

// DegreesOfSeparation returns the number of hops between two users, or -1
// when they are not connected.
func (n *Network) DegreesOfSeparation(from, to int) (int, error) {
	if _, ok := n.byID[to]; !ok {
		return 0, fmt.Errorf("DegreesOfSeparation: %w: %d", ErrUnknownUser, to)
	}
	res, err := n.Separation(from)
	if err != nil {
		return 0, err
	}
	d, ok := res.Depth[to]
	if !ok {
		return -1, nil
	}
	return d, nil
}

func (w *walker) enqueue(id, depth, parent int) {
	w.res.Depth[id] = depth
	if id != parent {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: depth})
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("social: OnVisit error at %d: %w", item.id, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, f := range w.net.friends[item.id] {
			if _, seen := w.res.Depth[f]; !seen {
				w.enqueue(f, next, item.id)
			}
		}
	}
	return nil
}
