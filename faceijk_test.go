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

func TestGeoToFaceIjkRoundTripsThroughFaceIjkToGeo(t *testing.T) {
	g := &GeoCoord{lat: 0.5, lon: -1.2}

	var fijk FaceIJK
	_geoToFaceIjk(g, 6, &fijk)

	var back GeoCoord
	_faceIjkToGeo(&fijk, 6, &back)

	assert.Greater(t, back.lat, g.lat-0.01)
	assert.Less(t, back.lat, g.lat+0.01)
}
