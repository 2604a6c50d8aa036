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

	"github.com/google/uuid"
)

// Ticket identifies which subset an element belonged to, at a given version,
// in a given container. It is an opaque comparable value: equality (and use as
// a map key) is the entire API, there is no field access.
//
// Two tickets are equal iff they came from the same container, at the same
// version, and resolved to the same subset. The version moves on every
// structural mutation (a Define, or a Union that actually merges), so tickets
// taken before and after such a mutation never compare equal, even for an
// element whose membership did not conceptually change. A Union of two
// elements already in the same subset is a no-op and does not invalidate
// outstanding tickets. Tickets from two different containers never compare
// equal, even if both containers were built from identical input.
type Ticket struct {
	// setID is the identity of the container that issued this ticket.
	setID uuid.UUID

	// ver is the container version this ticket was issued at.
	ver uint64

	// root is the resolved representative index of the subset.
	root int
}

// String returns a human readable representation for debugging.
func (obj Ticket) String() string {
	return fmt.Sprintf("ticket(%s: %d @ ver %d)", obj.setID, obj.root, obj.ver)
}
