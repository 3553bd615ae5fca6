// Copyright 2023 The morton (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package zrange

import (
	"math/rand"
	"testing"

	"github.com/gogama/morton"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterator(t *testing.T) {
	t.Run("SameAsDecompose", func(t *testing.T) {
		r := rand.New(rand.NewSource(6))
		for i := 0; i < 200; i++ {
			p1 := morton.Point{X: uint16(r.Uint32()), Y: uint16(r.Uint32())}
			p2 := morton.Point{X: offset(r, p1.X), Y: offset(r, p1.Y)}

			var actual Intervals
			it := NewIterator(p1, p2)
			for it.Next() {
				actual = append(actual, it.Interval())
			}

			assert.Equal(t, Decompose(p1, p2), actual)
			assert.False(t, it.Next(), "exhausted iterator must stay exhausted")
		}
	})

	t.Run("SinglePoint", func(t *testing.T) {
		p := morton.Point{X: 3, Y: 5}
		it := NewIterator(p, p)

		require.True(t, it.Next())
		assert.Equal(t, Interval{39, 39}, it.Interval())
		assert.False(t, it.Next())
	})

	t.Run("EarlyStop", func(t *testing.T) {
		it := NewIterator(morton.Point{X: 1, Y: 1}, morton.Point{X: 2, Y: 2})

		require.True(t, it.Next())
		assert.Equal(t, Interval{3, 3}, it.Interval())
		assert.Equal(t, Interval{3, 3}, it.Interval(), "Interval must not advance the iterator")
		require.True(t, it.Next())
		assert.Equal(t, Interval{6, 6}, it.Interval())
	})

	t.Run("Independent", func(t *testing.T) {
		p1, p2 := morton.Point{X: 1, Y: 1}, morton.Point{X: 2, Y: 2}
		a := NewIterator(p1, p2)
		b := NewIterator(p1, p2)

		require.True(t, a.Next())
		require.True(t, a.Next())
		require.True(t, b.Next())

		assert.Equal(t, Interval{6, 6}, a.Interval())
		assert.Equal(t, Interval{3, 3}, b.Interval())
	})

	t.Run("Remaining", func(t *testing.T) {
		it := NewIterator(morton.Point{X: 1, Y: 1}, morton.Point{X: 2, Y: 2})
		require.True(t, it.Next())

		rest := it.Remaining()

		assert.Equal(t, Intervals{{6, 6}, {9, 9}, {12, 12}}, rest)
		assert.False(t, it.Next())
	})
}

func TestIterator_Interval(t *testing.T) {
	const expected = "zrange: no current interval (Next not called or returned false)"

	t.Run("BeforeNext", func(t *testing.T) {
		it := NewIterator(morton.Point{}, morton.Point{})

		assert.PanicsWithValue(t, expected, func() {
			it.Interval()
		})
	})

	t.Run("AfterEnd", func(t *testing.T) {
		it := NewIterator(morton.Point{}, morton.Point{})
		require.True(t, it.Next())
		require.False(t, it.Next())

		assert.PanicsWithValue(t, expected, func() {
			it.Interval()
		})
	})
}
