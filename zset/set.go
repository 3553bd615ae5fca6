// Copyright 2023 The morton (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package zset

import (
	"errors"
	"fmt"

	"github.com/gogama/morton"
	"github.com/gogama/morton/zrange"
	"golang.org/x/exp/slices"
)

// ErrStop may be returned by the function passed to Set.Mutate to end
// the mutation early. Mutate does not return ErrStop to its caller.
var ErrStop = textErr("stop mutation")

// A Set is a sorted set of Morton keys. The zero value is an empty Set
// ready to use.
//
// Between method calls the keys of a Set are always in strictly
// ascending order, so no key appears twice.
type Set struct {
	keys []uint32
}

// New returns a new, empty Set.
func New() *Set {
	return &Set{}
}

// FromKeys returns a new Set containing the given Morton keys. The keys
// may be in any order. Duplicate keys are stored only once. The Set
// does not retain keys.
func FromKeys(keys []uint32) *Set {
	s := &Set{keys: slices.Clone(keys)}
	s.normalize()
	return s
}

// FromPoints returns a new Set containing the Morton keys of the given
// points. The points may be in any order. Duplicate points are stored
// only once.
func FromPoints(points []morton.Point) *Set {
	s := &Set{keys: make([]uint32, len(points))}
	for i := range points {
		s.keys[i] = points[i].Key()
	}
	s.normalize()
	return s
}

// normalize restores the Set invariant by sorting the keys and
// dropping duplicates.
func (s *Set) normalize() {
	slices.Sort(s.keys)
	s.keys = slices.Compact(s.keys)
}

// search returns the position of the key of point (x, y) within the
// Set, or the position at which it would be inserted, along with the
// key itself and whether it was found.
func (s *Set) search(x, y uint16) (i int, k uint32, found bool) {
	k = morton.Encode(x, y)
	i, found = slices.BinarySearch(s.keys, k)
	return
}

// Len returns the number of keys in the Set.
func (s *Set) Len() int {
	return len(s.keys)
}

// Get looks up the point (x, y). If the point is in the Set, Get
// returns its stored key and true. Otherwise it returns zero and false.
func (s *Set) Get(x, y uint16) (uint32, bool) {
	i, _, found := s.search(x, y)
	if !found {
		return 0, false
	}
	return s.keys[i], true
}

// Contains reports whether the point (x, y) is in the Set.
func (s *Set) Contains(x, y uint16) bool {
	_, _, found := s.search(x, y)
	return found
}

// GetMut returns a pointer to the stored key of the point (x, y), or
// nil if the point is not in the Set. The pointer remains valid only
// until the next call to Insert, Remove or Mutate.
//
// Writing through the pointer changes the stored key in place without
// moving it. The caller must only write a key that keeps the Set in
// strictly ascending order. To rewrite keys freely, use Mutate.
func (s *Set) GetMut(x, y uint16) *uint32 {
	i, _, found := s.search(x, y)
	if !found {
		return nil
	}
	return &s.keys[i]
}

// Insert adds the point (x, y) to the Set. If the point is already in
// the Set, Insert leaves the Set unchanged and returns the stored key
// and true. Otherwise it returns zero and false.
func (s *Set) Insert(x, y uint16) (uint32, bool) {
	i, k, found := s.search(x, y)
	switch {
	case found:
		return s.keys[i], true
	case i == len(s.keys):
		s.keys = append(s.keys, k)
	default:
		s.keys = slices.Insert(s.keys, i, k)
	}
	return 0, false
}

// Remove deletes the point (x, y) from the Set. If the point was in the
// Set, Remove returns its key and true. Otherwise it returns zero and
// false. The remaining keys keep their order.
func (s *Set) Remove(x, y uint16) (uint32, bool) {
	i, k, found := s.search(x, y)
	if !found {
		return 0, false
	}
	s.keys = slices.Delete(s.keys, i, i+1)
	return k, true
}

// Mutate calls f once for each key in the Set, in ascending order,
// passing a pointer through which f may overwrite the key with any
// value.
//
// Iteration ends early if f returns an error. If the error is ErrStop,
// Mutate returns nil; otherwise it returns the error. If f panics, the
// panic propagates to the caller of Mutate.
//
// However Mutate ends, before it returns or panics it sorts the keys
// and removes any duplicates created by f, so the Set is once more in
// strictly ascending order. Panics if f is nil.
func (s *Set) Mutate(f func(key *uint32) error) (err error) {
	if f == nil {
		textPanic("nil mutate function")
	}
	defer s.normalize()
	for i := range s.keys {
		if err = f(&s.keys[i]); err != nil {
			if errors.Is(err, ErrStop) {
				err = nil
			}
			return
		}
	}
	return
}

// Keys returns a copy of the keys in the Set, in ascending order.
func (s *Set) Keys() []uint32 {
	return slices.Clone(s.keys)
}

// Points returns the points in the Set, in ascending key order.
func (s *Set) Points() []morton.Point {
	p := make([]morton.Point, len(s.keys))
	for i, k := range s.keys {
		p[i] = morton.FromKey(k)
	}
	return p
}

// Search returns, in ascending order, the keys in the Set that belong
// to points within the rectangle having p1 and p2 as opposite corners.
// The corners may be given in any order.
func (s *Set) Search(p1, p2 morton.Point) []uint32 {
	var r []uint32
	it := zrange.NewIterator(p1, p2)
	keys := s.keys
	for len(keys) > 0 && it.Next() {
		iv := it.Interval()
		i, _ := slices.BinarySearch(keys, iv.Start)
		keys = keys[i:]
		j := 0
		for j < len(keys) && keys[j] <= iv.End {
			j++
		}
		r = append(r, keys[:j]...)
		keys = keys[j:]
	}
	return r
}

// String returns a summary description of the Set.
func (s *Set) String() string {
	return fmt.Sprintf("Set{Len:%d}", len(s.keys))
}
