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

func TestVec2dMagnitude(t *testing.T) {
	v := Vec2d{x: 3, y: 4}
	assert.Equal(t, 5.0, v.Magnitude())
}

func TestV2dIntersectCrossingLines(t *testing.T) {
	p0 := &Vec2d{x: 0, y: 0}
	p1 := &Vec2d{x: 2, y: 2}
	p2 := &Vec2d{x: 0, y: 2}
	p3 := &Vec2d{x: 2, y: 0}

	got := v2dIntersect(p0, p1, p2, p3)
	assert.Equal(t, 1.0, got.x)
	assert.Equal(t, 1.0, got.y)
}

func TestV2dEquals(t *testing.T) {
	a := &Vec2d{x: 1, y: 2}
	b := &Vec2d{x: 1, y: 2}
	c := &Vec2d{x: 1, y: 3}
	assert.True(t, _v2dEquals(a, b))
	assert.False(t, _v2dEquals(a, c))
}

func TestSquaredDistance(t *testing.T) {
	a := &Vec3d{x: 0, y: 0, z: 0}
	b := &Vec3d{x: 1, y: 2, z: 2}
	assert.Equal(t, 9.0, squaredDistance(a, b))
}

func TestGeoToVec3dIsOnUnitSphere(t *testing.T) {
	geo := &GeoCoord{lat: 0.4, lon: 1.1}
	v := _geoToVec3d(geo)

	magnitudeSquared := squaredDistance(&Vec3d{}, v)
	assert.Greater(t, magnitudeSquared, 0.9999)
	assert.Less(t, magnitudeSquared, 1.0001)
}
