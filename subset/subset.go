// SPDX-License-Identifier: MIT

package subset

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates an element or a position outside valid bounds.
	ErrOutOfRange = errors.New("subset: index out of range")

	// ErrDuplicate indicates an attempt to insert an element already present.
	ErrDuplicate = errors.New("subset: duplicate element")

	// ErrBadUniverse indicates a negative ground-set size.
	ErrBadUniverse = errors.New("subset: ground set size must be >= 0")
)

// absent marks a ground-set element that is not in the sample.
const absent = -1

// Sample is an ordered collection of distinct indices of the ground set [0, n).
type Sample struct {
	items []int // elements in insertion order
	pos   []int // pos[v] = position of v in items, or absent
}

// New returns a Sample over [0, n) holding idx in the given order.
// Errors: ErrBadUniverse, ErrOutOfRange, ErrDuplicate (all wrapped with the offending value).
// Complexity: O(n + len(idx)).
func New(n int, idx []int) (*Sample, error) {
	if n < 0 {
		return nil, ErrBadUniverse
	}
	s := &Sample{
		items: make([]int, 0, len(idx)),
		pos:   make([]int, n),
	}
	var i int
	for i = range s.pos {
		s.pos[i] = absent
	}
	var v int
	for _, v = range idx {
		if err := s.Add(v); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Universe returns the ground-set size n.
func (s *Sample) Universe() int { return len(s.pos) }

// Len returns the number of elements |S|.
func (s *Sample) Len() int { return len(s.items) }

// At returns the element at position i. It panics on a bad position,
// like slice indexing; use Len to bound loops.
func (s *Sample) At(i int) int { return s.items[i] }

// Contains reports whether v is a member. Out-of-range v is never a member.
// Complexity: O(1).
func (s *Sample) Contains(v int) bool {
	if v < 0 || v >= len(s.pos) {
		return false
	}

	return s.pos[v] != absent
}

// Indices returns a copy of the elements in sample order.
func (s *Sample) Indices() []int {
	out := make([]int, len(s.items))
	copy(out, s.items)

	return out
}

// View returns the internal element slice without copying.
// Callers must not modify it; it is invalidated by the next mutation.
func (s *Sample) View() []int { return s.items }

// Add appends v at the end.
// Errors: ErrOutOfRange, ErrDuplicate.
// Complexity: amortized O(1).
func (s *Sample) Add(v int) error {
	if v < 0 || v >= len(s.pos) {
		return fmt.Errorf("Add(%d): %w", v, ErrOutOfRange)
	}
	if s.pos[v] != absent {
		return fmt.Errorf("Add(%d): %w", v, ErrDuplicate)
	}
	s.pos[v] = len(s.items)
	s.items = append(s.items, v)

	return nil
}

// RemoveAt deletes the element at position i and returns it.
// The relative order of the remaining elements is preserved.
// Errors: ErrOutOfRange.
// Complexity: O(|S|).
func (s *Sample) RemoveAt(i int) (int, error) {
	if i < 0 || i >= len(s.items) {
		return 0, fmt.Errorf("RemoveAt(%d): %w", i, ErrOutOfRange)
	}
	v := s.items[i]
	copy(s.items[i:], s.items[i+1:])
	s.items = s.items[:len(s.items)-1]
	s.pos[v] = absent

	// Positions after i shifted left by one.
	var j int
	for j = i; j < len(s.items); j++ {
		s.pos[s.items[j]] = j
	}

	return v, nil
}

// Remove deletes v if present and reports whether it was a member.
// Complexity: O(|S|).
func (s *Sample) Remove(v int) bool {
	if !s.Contains(v) {
		return false
	}
	_, _ = s.RemoveAt(s.pos[v])

	return true
}

// ReplaceAt swaps the element at position i for v, keeping v at position i.
// Errors: ErrOutOfRange (bad position or v), ErrDuplicate (v already present).
// Complexity: O(1).
func (s *Sample) ReplaceAt(i, v int) error {
	if i < 0 || i >= len(s.items) {
		return fmt.Errorf("ReplaceAt(%d,%d): %w", i, v, ErrOutOfRange)
	}
	if v < 0 || v >= len(s.pos) {
		return fmt.Errorf("ReplaceAt(%d,%d): %w", i, v, ErrOutOfRange)
	}
	if s.pos[v] != absent {
		return fmt.Errorf("ReplaceAt(%d,%d): %w", i, v, ErrDuplicate)
	}
	s.pos[s.items[i]] = absent
	s.items[i] = v
	s.pos[v] = i

	return nil
}

// Clone returns an independent deep copy.
// Complexity: O(n).
func (s *Sample) Clone() *Sample {
	c := &Sample{
		items: make([]int, len(s.items), cap(s.items)),
		pos:   make([]int, len(s.pos)),
	}
	copy(c.items, s.items)
	copy(c.pos, s.pos)

	return c
}

// Complement returns the ground-set elements not in the sample, ascending.
// Complexity: O(n).
func (s *Sample) Complement() []int {
	out := make([]int, 0, len(s.pos)-len(s.items))
	var v int
	for v = range s.pos {
		if s.pos[v] == absent {
			out = append(out, v)
		}
	}

	return out
}

// OutsideAt returns the j-th (0-based, ascending) element of the complement
// without materializing it. Used to draw a uniform element outside the sample.
// Errors: ErrOutOfRange when j ∉ [0, n-|S|).
// Complexity: O(n).
func (s *Sample) OutsideAt(j int) (int, error) {
	if j < 0 || j >= len(s.pos)-len(s.items) {
		return 0, fmt.Errorf("OutsideAt(%d): %w", j, ErrOutOfRange)
	}
	var v int
	for v = range s.pos {
		if s.pos[v] != absent {
			continue
		}
		if j == 0 {
			return v, nil
		}
		j--
	}

	// Unreachable while the invariants hold.
	return 0, fmt.Errorf("OutsideAt: %w", ErrOutOfRange)
}
