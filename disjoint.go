// Mgmt
// Copyright (C) James Shubin and the project contributors
// Written by James Shubin <james@shubin.ca> and the project contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.
//
// Additional permission under GNU GPL version 3 section 7
//
// If you modify this program, or any covered work, by linking or combining it
// with embedded mcl code and modules (and that the embedded mcl code and
// modules which link with this program, contain a copy of their source code in
// the authoritative form) containing parts covered by the terms of any other
// license, the licensors of this program grant you additional permission to
// convey the resulting work. Furthermore, the licensors of this program grant
// the original author, James Shubin, additional permission to update this
// additional permission if he deems it necessary to achieve the goals of this
// additional permission.

// Package disjoint implements a "disjoint-set data structure", otherwise known
// as the "union-find data structure", keyed by element value. It partitions a
// universe of distinct elements into disjoint subsets, and supports merging
// subsets and querying subset membership efficiently.
//
// You create a new container with the NewSet or NewSetFrom functions, and then
// register elements with the Define method. Since elements are used directly as
// map keys, any comparable type works, and as a result, this uses golang
// generics. The Union method merges the subsets containing two elements. The
// Find method returns an opaque Ticket identifying the subset an element is
// currently in, which can be compared for equality with other tickets from the
// same container at the same version.
//
// Union uses union by size, and root lookups use path splitting, which halves
// the depth of the searched path as a side effect of every lookup. Together
// these give amortized near-constant (inverse-Ackermann) time per operation.
// Note that lookups mutate parent pointers even though they are conceptually
// reads.
//
// This package does not attempt to be thread-safe, and as a result, make sure
// to wrap this with the synchronization primitives of your choosing.
//
// https://en.wikipedia.org/wiki/Disjoint-set_data_structure
package disjoint

import (
	"fmt"

	"github.com/google/uuid"
)

// Set is a collection of disjoint subsets over the elements defined in it.
// Each element is stored by value and must therefore be a comparable type,
// which is exactly the map key contract of stable equality and hashing.
// Elements can be added, but never removed. The zero value is not usable; use
// NewSet or NewSetFrom instead.
type Set[T comparable] struct {
	// index maps each defined element to its slot in the forest. Indices
	// are dense, assigned in definition order, and never renumbered.
	index map[T]int

	// nodes is the forest, index-aligned with the registry above.
	nodes []node

	// subsets is the number of distinct subsets, which always equals the
	// number of roots in the forest.
	subsets int

	// ver counts structural mutations. It is bumped exactly once for each
	// Define and for each Union that actually merges two subsets. Queries
	// and no-op unions never bump it.
	ver uint64

	// id distinguishes this container from every other one, so that
	// tickets from different containers never compare equal, even if the
	// internal indices happen to coincide.
	id uuid.UUID
}

// node is a single vertex in the forest. A node is a root iff its parent is
// its own index.
type node struct {
	// size is the number of elements in the subset. It is only meaningful
	// at a root.
	size int

	// parent is the index of the parent node, or our own index if we are
	// the root (representative element) of the subset.
	parent int
}

// NewSet creates a new container with zero elements.
func NewSet[T comparable]() *Set[T] {
	return &Set[T]{
		index: make(map[T]int),
		id:    uuid.New(), // panic's if it can't generate one :P
	}
}

// NewSetFrom creates a new container holding each distinct element in the
// input slice as its own singleton subset. Duplicates in the input are
// silently coalesced, the first occurrence wins, and later ones change
// nothing. This is bulk construction, so the version starts at zero no matter
// how many elements were loaded.
func NewSetFrom[T comparable](elems []T) *Set[T] {
	obj := NewSet[T]()
	for _, elem := range elems {
		if _, exists := obj.index[elem]; exists {
			continue // first occurrence wins
		}
		i := len(obj.nodes)
		obj.index[elem] = i
		obj.nodes = append(obj.nodes, node{size: 1, parent: i})
	}
	obj.subsets = len(obj.nodes)
	return obj
}

// Define registers a brand-new element as a singleton subset. It errors with
// ErrDuplicateElement if the element is already defined, in which case nothing
// changes and the caller may retry with a corrected element immediately.
func (obj *Set[T]) Define(elem T) error {
	if _, exists := obj.index[elem]; exists {
		return ErrDuplicateElement
	}

	i := len(obj.nodes)
	obj.index[elem] = i
	obj.nodes = append(obj.nodes, node{size: 1, parent: i})
	obj.subsets++
	obj.ver++
	return nil
}

// Union merges the subsets containing the two elements into one. If the
// elements are already part of the same subset, then nothing changes, which
// counts as success and does not bump the version. It errors with
// ErrElementNotDefined if either element is missing, and both are checked
// before any state changes, so a valid first element with a missing second
// still leaves the container untouched.
//
// The union is by size: the root of the smaller subset is attached under the
// root of the larger one, and on a tie the second element's root is attached
// under the first element's root. The tie direction is arbitrary but fixed,
// since it decides which index survives as root. That only affects internal
// bookkeeping, never the observable subset contents.
func (obj *Set[T]) Union(elemA, elemB T) error {
	aI, err := obj.indexOf(elemA)
	if err != nil {
		return err
	}
	bI, err := obj.indexOf(elemB)
	if err != nil {
		return err
	}

	// Both lookups compress, even if this turns out to be a no-op.
	rootA := obj.findRoot(aI)
	rootB := obj.findRoot(bI)
	if rootA == rootB {
		return nil // already part of the same subset, do nothing
	}

	if obj.nodes[rootA].size < obj.nodes[rootB].size {
		rootA, rootB = rootB, rootA
	}
	obj.nodes[rootB].parent = rootA
	obj.nodes[rootA].size += obj.nodes[rootB].size

	obj.subsets--
	obj.ver++
	return nil
}

// Find returns an opaque ticket identifying the subset the element is in at
// the current version. Tickets only compare equal if they come from the same
// container, at the same version, for the same subset. See the Ticket type for
// the full contract. It errors with ErrElementNotDefined if the element is
// missing.
func (obj *Set[T]) Find(elem T) (Ticket, error) {
	i, err := obj.indexOf(elem)
	if err != nil {
		return Ticket{}, err
	}

	return Ticket{
		setID: obj.id,
		ver:   obj.ver,
		root:  obj.findRoot(i),
	}, nil
}

// SameSubset returns whether the two elements are currently in the same
// subset. It errors with ErrElementNotDefined if either element is missing,
// and both are resolved independently first, so any combination of missing
// elements fails identically.
func (obj *Set[T]) SameSubset(elemA, elemB T) (bool, error) {
	aI, err := obj.indexOf(elemA)
	if err != nil {
		return false, err
	}
	bI, err := obj.indexOf(elemB)
	if err != nil {
		return false, err
	}

	return obj.findRoot(aI) == obj.findRoot(bI), nil
}

// SubsetSize returns the number of elements in the subset containing the
// element. It errors with ErrElementNotDefined if the element is missing.
func (obj *Set[T]) SubsetSize(elem T) (int, error) {
	i, err := obj.indexOf(elem)
	if err != nil {
		return 0, err
	}

	return obj.nodes[obj.findRoot(i)].size, nil
}

// SubsetCount returns the current number of disjoint subsets. This is a cheap
// read of a maintained counter, it never fails and never mutates anything.
func (obj *Set[T]) SubsetCount() int {
	return obj.subsets
}

// Len returns the total number of elements defined in the container.
func (obj *Set[T]) Len() int {
	return len(obj.nodes)
}

// SubsetContaining returns every element in the same subset as the provided
// element, including that element itself. There is no reverse index from root
// to members, so this scans and compresses every defined element: it costs
// O(n α(n)) in the total element count, not in the subset size. It errors with
// ErrElementNotDefined if the element is missing.
func (obj *Set[T]) SubsetContaining(elem T) (map[T]struct{}, error) {
	i, err := obj.indexOf(elem)
	if err != nil {
		return nil, err
	}
	root := obj.findRoot(i)

	avg := len(obj.nodes) / obj.subsets // average subset size capacity hint
	subset := make(map[T]struct{}, avg)
	for e, j := range obj.index {
		if obj.findRoot(j) == root {
			subset[e] = struct{}{}
		}
	}
	return subset, nil
}

// AllSubsets returns every subset in the container in a single pass over the
// defined elements. The order of the subsets, and of the elements within each
// subset, is arbitrary and must not be relied upon. An empty container returns
// nil. It never fails, although the walk does compress paths as a side effect.
func (obj *Set[T]) AllSubsets() []map[T]struct{} {
	if obj.subsets == 0 {
		return nil
	}

	avg := len(obj.nodes) / obj.subsets // average subset size capacity hint
	group := make(map[int]int, obj.subsets)
	subsets := make([]map[T]struct{}, 0, obj.subsets)
	for elem, i := range obj.index {
		root := obj.findRoot(i)
		x, exists := group[root]
		if !exists {
			x = len(subsets)
			group[root] = x
			subsets = append(subsets, make(map[T]struct{}, avg))
		}
		subsets[x][elem] = struct{}{}
	}
	return subsets
}

// String returns a human readable representation of all the subsets. It is
// meant for debugging. Like every other lookup, building it compresses paths.
func (obj *Set[T]) String() string {
	return fmt.Sprintf("%v", obj.AllSubsets())
}

// findRoot returns the index of the root of the subset containing index i. It
// uses iterative path splitting: every node visited on the way up gets its
// parent pointer rewritten to its grandparent before we advance. A single pass
// does not leave every node pointing directly at the root, but repeated calls
// converge there, and the amortized cost matches full path compression without
// needing a second pass.
func (obj *Set[T]) findRoot(i int) int {
	for obj.nodes[i].parent != i {
		parent := obj.nodes[i].parent
		obj.nodes[i].parent = obj.nodes[parent].parent // point to grandparent
		i = parent
	}
	return i
}

// indexOf resolves an element to its forest index.
func (obj *Set[T]) indexOf(elem T) (int, error) {
	i, exists := obj.index[elem]
	if !exists {
		return 0, ErrElementNotDefined
	}
	return i, nil
}
