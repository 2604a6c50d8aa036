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
	"strings"
	"testing"
)

func TestValidate0(t *testing.T) {
	set := NewSet[byte]()

	if err := set.Validate(); err != nil {
		t.Errorf("validate error: %v", err)
	}
}

func TestValidate1(t *testing.T) {
	// A container that went through the whole operation surface stays
	// consistent.
	set := newTestSet()

	if err := set.Define('Q'); err != nil {
		t.Errorf("define error: %v", err)
		return
	}
	for _, pair := range [][2]byte{{'T', 'h'}, {'i', 's'}, {'h', 's'}, {'Q', 'e'}, {'Q', 'Q'}} {
		if err := set.Union(pair[0], pair[1]); err != nil {
			t.Errorf("union error: %v", err)
			return
		}
	}
	if _, err := set.Find('s'); err != nil {
		t.Errorf("find error: %v", err)
		return
	}
	set.AllSubsets()

	if err := set.Validate(); err != nil {
		t.Errorf("validate error: %v", err)
	}
}

func TestValidate2(t *testing.T) {
	set := newTestSet()

	i := set.index['T']
	set.nodes[i].parent = len(set.nodes) + 13 // out of range

	if err := set.Validate(); err == nil {
		t.Errorf("expected an error for the broken parent pointer")
	}
}

func TestValidate3(t *testing.T) {
	set := newTestSet()

	set.subsets-- // counter no longer matches the root count

	if err := set.Validate(); err == nil {
		t.Errorf("expected an error for the bad subset count")
	}
}

func TestValidate4(t *testing.T) {
	set := newTestSet()

	if err := set.Union('T', 'h'); err != nil {
		t.Errorf("union error: %v", err)
		return
	}
	root := set.findRoot(set.index['T'])
	set.nodes[root].size = 7 // lie about the subset size

	if err := set.Validate(); err == nil {
		t.Errorf("expected an error for the bad size")
	}
}

func TestValidate5(t *testing.T) {
	// Two nodes pointing at each other form a cycle, and Validate must
	// terminate and say so.
	set := newTestSet()

	a := set.index['T']
	b := set.index['h']
	set.nodes[a].parent = b
	set.nodes[b].parent = a

	err := set.Validate()
	if err == nil {
		t.Errorf("expected an error for the parent cycle")
		return
	}
	if !strings.Contains(err.Error(), "cycle") {
		t.Errorf("expected a cycle report, got: %v", err)
	}
}
