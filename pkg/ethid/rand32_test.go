// Copyright © 2024 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
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

package ethid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandBytes(t *testing.T) {
	assert.Len(t, RandBytes(32), 32)
	assert.Len(t, RandHex(16), 32)

	a := RandAddress()
	assert.False(t, a.IsZero())

	id := RandBytes32()
	assert.False(t, id.IsZero())
	roundTrip := MustParseBytes32(id.String())
	assert.True(t, id.Equals(&roundTrip))
}
