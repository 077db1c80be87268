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

func TestCoordIJToIJKIsNormalized(t *testing.T) {
	ij := CoordIJ{i: 3, j: 1}
	ijk := ij.ToIJK()

	want := ijk
	want.Normalize()
	assert.Equal(t, want, ijk)
}

func TestCoordIJToIJKOriginIsCenter(t *testing.T) {
	ij := CoordIJ{i: 0, j: 0}
	ijk := ij.ToIJK()
	assert.Equal(t, CoordIJK{0, 0, 0}, ijk)
}

func TestCoordIJKToIJRoundTrip(t *testing.T) {
	ijk := CoordIJK{i: 3, j: 1, k: 0}
	ij := ijk.ToIJ()
	assert.Equal(t, ij.ToIJK(), ijk)
}

func TestCoordIJKRotate60TwiceThreeTimesIsIdentity(t *testing.T) {
	ijk := CoordIJK{1, 2, 0}
	ijk.Normalize()
	want := ijk

	for i := 0; i < 6; i++ {
		ijk.Rotate60ccw()
	}
	assert.Equal(t, want, ijk)

	for i := 0; i < 6; i++ {
		ijk.Rotate60cw()
	}
	assert.Equal(t, want, ijk)
}

func TestCoordIJKNeighborDistanceIsOne(t *testing.T) {
	origin := CoordIJK{0, 0, 0}
	for _, dir := range DIRECTIONS {
		n := origin
		n.neighbor(dir)
		assert.Equal(t, 1, ijkDistance(&origin, &n))
	}
}

func TestCoordIJKScaleThenNormalizePreservesDirection(t *testing.T) {
	ijk := CoordIJK{2, -1, 0}
	ijk.Normalize()
	scaled := ijk
	scaled.Scale(3)
	scaled.Normalize()
	assert.Equal(t, CoordIJK{ijk.i * 3, ijk.j * 3, ijk.k * 3}, scaled)
}

func TestCubeRoundTripPreservesCoordinates(t *testing.T) {
	ijk := CoordIJK{3, 1, 0}
	ijk.ToCube()
	cubeToIjk(&ijk)
	assert.Equal(t, CoordIJK{3, 1, 0}, ijk)
}
