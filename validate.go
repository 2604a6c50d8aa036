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

package disjoint

import (
	"fmt"

	"github.com/purpleidea/disjoint/errwrap"
)

// Validate checks the internal invariants of the container and reports every
// violation it finds, combined into a single error. A healthy container
// returns nil. The normal operations assume these invariants hold (an index
// out of range in a hot path is a programming error and panics naturally), so
// this is a debugging aid, not something to call on every operation.
//
// It checks that the registry and forest are the same length with dense
// unique indices, that every parent pointer is in range and acyclic, that the
// subset counter equals the number of roots, and that every root's size
// equals the number of elements that resolve to it. Unlike the regular
// lookups, it never mutates parent pointers, so it is safe to call on a
// corrupted forest.
func (obj *Set[T]) Validate() error {
	var reterr error

	// The registry and forest must describe the same universe.
	if i, j := len(obj.index), len(obj.nodes); i != j {
		reterr = errwrap.Append(reterr, fmt.Errorf("registry has %d entries, but forest has %d nodes", i, j))
	}
	seen := make(map[int]bool, len(obj.index))
	for elem, i := range obj.index {
		if i < 0 || i >= len(obj.nodes) {
			reterr = errwrap.Append(reterr, fmt.Errorf("element %v has index %d, out of range", elem, i))
			continue
		}
		if seen[i] {
			reterr = errwrap.Append(reterr, fmt.Errorf("index %d is assigned to more than one element", i))
		}
		seen[i] = true
	}
	roots := 0
	for i := range obj.nodes {
		p := obj.nodes[i].parent
		if p < 0 || p >= len(obj.nodes) {
			reterr = errwrap.Append(reterr, fmt.Errorf("node %d has parent %d, out of range", i, p))
			continue
		}
		if p == i {
			roots++
		}
	}
	if reterr != nil {
		// The forest can't be walked safely, don't try.
		return errwrap.Wrapf(reterr, "the set is inconsistent")
	}

	if roots != obj.subsets {
		reterr = errwrap.Append(reterr, fmt.Errorf("subset count is %d, but the forest has %d roots", obj.subsets, roots))
	}

	// Resolve each node without mutating, bounding the walk so that a
	// cycle can't hang us.
	counts := make(map[int]int, roots)
	for i := range obj.nodes {
		j := i
		steps := 0
		for obj.nodes[j].parent != j {
			j = obj.nodes[j].parent
			steps++
			if steps > len(obj.nodes) {
				reterr = errwrap.Append(reterr, fmt.Errorf("node %d is part of a parent cycle", i))
				j = -1
				break
			}
		}
		if j >= 0 {
			counts[j]++
		}
	}
	for root, n := range counts {
		if size := obj.nodes[root].size; size != n {
			reterr = errwrap.Append(reterr, fmt.Errorf("root %d has size %d, but %d elements resolve to it", root, size, n))
		}
	}

	return errwrap.Wrapf(reterr, "the set is inconsistent")
}
