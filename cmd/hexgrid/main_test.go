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

package main

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestRunEncodeSucceeds(t *testing.T) {
	code := run([]string{"encode", "-lat", "37.775938728915946", "-lon", "-122.41795063018799", "-res", "9"})
	assert.Equal(t, 0, code)
}

func TestRunEncodeRejectsMissingFlags(t *testing.T) {
	code := run([]string{"encode"})
	assert.Equal(t, 1, code)
}

func TestRunDecodeRejectsMalformedCell(t *testing.T) {
	code := run([]string{"decode", "-cell", "not-hex"})
	assert.Equal(t, 1, code)
}

func TestRunEncodeSucceedsAtResolution7(t *testing.T) {
	code := run([]string{"encode", "-lat", "40.730610", "-lon", "-73.935242", "-res", "7"})
	assert.Equal(t, 0, code)
}

func TestRunNeighborsRejectsMalformedCell(t *testing.T) {
	code := run([]string{"neighbors", "-cell", "zzzz", "-k", "1"})
	assert.Equal(t, 1, code)
}

func TestRunRingRejectsMalformedCell(t *testing.T) {
	code := run([]string{"ring", "-cell", "zzzz", "-k", "1"})
	assert.Equal(t, 1, code)
}

func TestRunCompactRejectsMalformedCell(t *testing.T) {
	code := run([]string{"compact", "not-hex"})
	assert.Equal(t, 1, code)
}

func TestRunUncompactRequiresResolution(t *testing.T) {
	code := run([]string{"uncompact"})
	assert.Equal(t, 1, code)
}
