// Copyright 2022  Il Sub Bang
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hexgrid

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestGetRes0Cells(t *testing.T) {
	cells := GetRes0Cells()
	assert.Len(t, cells, NUM_BASE_CELLS)

	seen := make(map[CellID]bool, len(cells))
	for _, c := range cells {
		assert.False(t, seen[c], "duplicate resolution-0 cell %s", c.String())
		seen[c] = true
	}

	assert.Equal(t, "8001fffffffffff", cells[0].String())
	assert.Equal(t, "80f3fffffffffff", cells[len(cells)-1].String())
}

func TestCellIDStringRoundTrip(t *testing.T) {
	cases := []string{"cafe", "ffffffffffffffff", "8001fffffffffff"}
	for _, s := range cases {
		cell := ParseCellID(s)
		assert.Equal(t, s, cell.String())
	}
}

func TestParseCellIDRejectsGarbage(t *testing.T) {
	assert.Equal(t, CELL_NULL, ParseCellID("not hex"))
}

func TestIsPentagonMatchesBaseCellTable(t *testing.T) {
	for _, bc := range []int{4, 14, 24, 38, 49, 58, 63, 72, 83, 97, 107, 117} {
		cell := newCellID(0, bc, CENTER_DIGIT)
		assert.True(t, cell.IsPentagon(), "base cell %d should report as a pentagon cell", bc)
	}

	assert.False(t, newCellID(0, 0, CENTER_DIGIT).IsPentagon())
}

func TestToParentOfDirectChild(t *testing.T) {
	origin := newCellID(0, 10, CENTER_DIGIT)
	child := makeDirectChild(origin, K_AXES_DIGIT)
	assert.Equal(t, origin, child.ToParent(0))
}

func TestCompactUncompactRoundTrip(t *testing.T) {
	parent := newCellID(3, 10, CENTER_DIGIT)
	var children []CellID
	ToChildren(parent, 4, &children)
	assert.Len(t, children, 7)

	compacted, err := Compact(children)
	assert.NoError(t, err)
	assert.Equal(t, []CellID{parent}, compacted)

	uncompacted, err := Uncompact(compacted, 4)
	assert.NoError(t, err)
	assert.Len(t, uncompacted, 7)
}

func TestCompactRejectsDuplicates(t *testing.T) {
	cell := newCellID(2, 5, CENTER_DIGIT)
	dups := make([]CellID, 8)
	for i := range dups {
		dups[i] = cell
	}
	_, err := Compact(dups)
	assert.ErrorIs(t, err, ErrCompactDuplicate)
}
