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

func TestBBoxIsTransmeridian(t *testing.T) {
	normal := &BBox{north: 1, south: -1, east: 1, west: -1}
	assert.False(t, normal.isTransmeridian())

	crossing := &BBox{north: 1, south: -1, east: -3, west: 3}
	assert.True(t, crossing.isTransmeridian())
}

func TestBBoxCenter(t *testing.T) {
	bbox := &BBox{north: 1, south: -1, east: 1, west: -1}
	assert.Equal(t, GeoCoord{lat: 0, lon: 0}, bbox.center())
}

func TestBBoxContainsPoint(t *testing.T) {
	bbox := &BBox{north: 1, south: -1, east: 1, west: -1}
	inside := &GeoCoord{lat: 0, lon: 0}
	outside := &GeoCoord{lat: 0, lon: 2}

	assert.True(t, bbox.contains(inside))
	assert.False(t, bbox.contains(outside))
}

func TestBBoxEquals(t *testing.T) {
	a := &BBox{north: 1, south: -1, east: 1, west: -1}
	b := &BBox{north: 1, south: -1, east: 1, west: -1}
	c := &BBox{north: 2, south: -1, east: 1, west: -1}

	assert.True(t, a.equals(b))
	assert.False(t, a.equals(c))
}

func TestHexRadiusKmPositive(t *testing.T) {
	cell := newCellID(5, 16, CENTER_DIGIT)
	assert.Greater(t, _hexRadiusKm(cell), 0.0)
}
