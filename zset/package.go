// Copyright 2023 The morton (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package zset provides Set, a sorted, duplicate-free collection of
// Morton keys addressed by two-dimensional point.
//
// A Set is stored as a flat slice kept in ascending key order, so
// lookups are binary searches and insertions and removals shift the
// elements after the affected position. Bulk rewrites of the stored
// keys go through Set.Mutate, which restores the ordering afterward.
//
// A Set is not safe for concurrent use. Callers sharing a Set between
// goroutines must guard it with a single lock.
package zset
