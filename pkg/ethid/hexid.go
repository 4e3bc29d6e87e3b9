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
	"context"
	"encoding/hex"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/ethid/pkg/ethidmsgs"
	"golang.org/x/crypto/sha3"
)

// The fixed-length identifier kinds in this package (EthAddress, Bytes32) share
// a single hex codec and a single EIP-55 checksum engine, implemented here over
// byte slices. A new kind of a different width only needs its own array type.

func keccak256(b []byte) []byte {
	d := sha3.NewLegacyKeccak256()
	d.Write(b)
	return d.Sum(nil)
}

func stripHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// decodeHexFixed decodes s into exactly len(dst) bytes, accepting an optional
// 0x/0X prefix and hex digits of either case. The error for a bad digit
// carries its zero-based position within the digit string.
func decodeHexFixed(ctx context.Context, dst []byte, s string) error {
	digits := stripHexPrefix(s)
	if len(digits) != 2*len(dst) {
		return i18n.NewError(ctx, ethidmsgs.MsgInvalidHexIDLength, 2*len(dst), len(digits))
	}
	for i := 0; i < len(digits); i++ {
		n, ok := hexNibble(digits[i])
		if !ok {
			return i18n.NewError(ctx, ethidmsgs.MsgInvalidHexIDChar, i)
		}
		if i%2 == 0 {
			dst[i/2] = n << 4
		} else {
			dst[i/2] |= n
		}
	}
	return nil
}

// checksummedHex returns the 0x prefixed EIP-55 mixed case encoding of b.
// Digit i is uppercased when it is a letter and nibble i of
// keccak256(lowercase digits) is >= 8.
func checksummedHex(b []byte) string {
	digits := []byte(hex.EncodeToString(b))
	hashed := keccak256(digits)
	for i, c := range digits {
		if c >= 'a' && checksumNibble(hashed, i) >= 8 {
			digits[i] = c - ('a' - 'A')
		}
	}
	return "0x" + string(digits)
}

func checksumNibble(hashed []byte, i int) byte {
	if i%2 == 0 {
		return hashed[i/2] >> 4
	}
	return hashed[i/2] & 0x0f
}

// verifyChecksum checks the case pattern of an already-decoded digit string
// (no 0x prefix) against the EIP-55 derivation for b. All-lowercase and
// all-uppercase legacy forms are always accepted; any other mixed case must
// match the canonical checksummed encoding exactly.
func verifyChecksum(b []byte, digits string) bool {
	hasUpper, hasLower := false, false
	for i := 0; i < len(digits); i++ {
		switch c := digits[i]; {
		case c >= 'a' && c <= 'f':
			hasLower = true
		case c >= 'A' && c <= 'F':
			hasUpper = true
		}
	}
	if !hasUpper || !hasLower {
		return true
	}
	return checksummedHex(b) == "0x"+digits
}

// decodeChecksummed is the full parse path for checksummed identifier kinds.
// The case of the input is validated then discarded - only the byte value is
// retained on dst.
func decodeChecksummed(ctx context.Context, dst []byte, s string) error {
	if err := decodeHexFixed(ctx, dst, s); err != nil {
		return err
	}
	if !verifyChecksum(dst, stripHexPrefix(s)) {
		return i18n.NewError(ctx, ethidmsgs.MsgChecksumMismatch, s)
	}
	return nil
}

// unmarshalBinaryFixed copies an exact-length raw byte frame - any other
// length is a framing error from the surrounding binary protocol.
func unmarshalBinaryFixed(ctx context.Context, dst, data []byte) error {
	if len(data) != len(dst) {
		return i18n.NewError(ctx, ethidmsgs.MsgInvalidBinaryLength, len(dst), len(data))
	}
	copy(dst, data)
	return nil
}
