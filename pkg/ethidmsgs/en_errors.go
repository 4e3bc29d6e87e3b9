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

package ethidmsgs

import (
	"fmt"
	"strings"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"golang.org/x/text/language"
)

const ethidPrefix = "EI01"

var registered = false
var ffe = func(key, translation string, statusHint ...int) i18n.ErrorMessageKey {
	if !registered {
		i18n.RegisterPrefix(ethidPrefix, "Ethereum Identifier Types")
		registered = true
	}
	if !strings.HasPrefix(key, ethidPrefix) {
		panic(fmt.Errorf("must have prefix '%s': %s", ethidPrefix, key))
	}
	return i18n.FFE(language.AmericanEnglish, key, translation, statusHint...)
}

var (
	// Identifiers EI0100XX
	MsgInvalidHexIDLength  = ffe("EI010000", "Invalid identifier: expected %d hex digits (found=%d)", 400)
	MsgInvalidHexIDChar    = ffe("EI010001", "Invalid identifier: not a hex digit at position %d", 400)
	MsgChecksumMismatch    = ffe("EI010002", "Invalid identifier: mixed case hex fails checksum '%s'", 400)
	MsgInvalidBinaryLength = ffe("EI010003", "Invalid identifier: expected %d bytes (found=%d)", 400)
	MsgScanFail            = ffe("EI010004", "Unable to scan type %T into type %T")

	// Config EI0101XX
	MsgConfigFileReadError  = ffe("EI010100", "Failed to read config file %s: %s")
	MsgConfigFileParseError = ffe("EI010101", "Failed to parse config file: %s")
)
