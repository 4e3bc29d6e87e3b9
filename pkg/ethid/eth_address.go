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
	"bytes"
	"context"
	"database/sql/driver"
	"encoding/hex"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/ethid/pkg/ethidmsgs"
)

// EthAddress is a 20 byte Ethereum account identifier, immutable once
// constructed. Parsing accepts all-lowercase, all-uppercase, or correctly
// EIP-55 checksummed hex (with or without 0x prefix); any other mixed case is
// rejected. Formatting always produces the canonical checksummed form.
type EthAddress [20]byte

var zeroAddress = EthAddress{}

// ParseEthAddress parses hex text, enforcing the EIP-55 case rules.
func ParseEthAddress(ctx context.Context, s string) (*EthAddress, error) {
	a := &EthAddress{}
	if err := decodeChecksummed(ctx, a[:], s); err != nil {
		return nil, err
	}
	return a, nil
}

func MustEthAddress(s string) *EthAddress {
	a, err := ParseEthAddress(context.Background(), s)
	if err != nil {
		panic(err)
	}
	return a
}

// EthAddressBytes wraps a raw byte value. No length checking in this function
// - the caller supplies exactly 20 bytes (shorter input zero-pads).
func EthAddressBytes(b []byte) *EthAddress {
	var a EthAddress
	copy(a[:], b)
	return &a
}

// Checksummed is the canonical EIP-55 mixed case form, with 0x prefix.
func (a EthAddress) Checksummed() string {
	return checksummedHex(a[:])
}

// Natural string representation is the canonical checksummed form, regardless
// of the casing any original parse input used.
func (a EthAddress) String() string {
	return a.Checksummed()
}

// Get string with 0x prefix, lower case
func (a EthAddress) HexString0xPrefix() string {
	return "0x" + hex.EncodeToString(a[:])
}

// Get string without 0x prefix, lower case
func (a EthAddress) HexString() string {
	return hex.EncodeToString(a[:])
}

// Bytes returns a copy of the 20 raw bytes
func (a *EthAddress) Bytes() []byte {
	if a == nil {
		return nil
	}
	b := make([]byte, len(a))
	copy(b, a[:])
	return b
}

func (a *EthAddress) Equals(b *EthAddress) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}

// Compare orders addresses lexicographically over their bytes, so they can be
// used as deterministic collection keys. nil sorts before any value.
func (a *EthAddress) Compare(b *EthAddress) int {
	if a == nil || b == nil {
		if a == nil && b == nil {
			return 0
		}
		if a == nil {
			return -1
		}
		return 1
	}
	return bytes.Compare(a[:], b[:])
}

func (a *EthAddress) IsZero() bool {
	return a == nil || *a == zeroAddress
}

// JSON representation is the checksummed string
func (a EthAddress) MarshalText() ([]byte, error) {
	return ([]byte)(a.Checksummed()), nil
}

// Parses with/without 0x prefix, enforcing EIP-55 case rules
func (a *EthAddress) UnmarshalText(text []byte) error {
	parsed, err := ParseEthAddress(context.Background(), string(text))
	if err != nil {
		return err
	}
	*a = *parsed
	return nil
}

// Binary representation is exactly the 20 raw bytes, no prefix
func (a EthAddress) MarshalBinary() ([]byte, error) {
	return a.Bytes(), nil
}

func (a *EthAddress) UnmarshalBinary(data []byte) error {
	return unmarshalBinaryFixed(context.Background(), a[:], data)
}

// Value implements sql.Valuer - no prefix, always 40 lower case chars
func (a EthAddress) Value() (driver.Value, error) {
	return a.HexString(), nil
}

// Scan implements sql.Scanner
func (a *EthAddress) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil

	case string:
		parsed, err := ParseEthAddress(context.Background(), src)
		if err != nil {
			return err
		}
		*a = *parsed
		return nil

	case []byte:
		switch len(src) {
		case 20:
			copy((*a)[:], src)
			return nil
		case 40, 42 /* with 0x */ :
			parsed, err := ParseEthAddress(context.Background(), (string)(src))
			if err != nil {
				return err
			}
			*a = *parsed
			return nil
		default:
			return i18n.NewError(context.Background(), ethidmsgs.MsgScanFail, src, a)
		}

	default:
		return i18n.NewError(context.Background(), ethidmsgs.MsgScanFail, src, a)
	}
}
