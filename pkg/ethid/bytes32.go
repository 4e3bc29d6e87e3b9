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

	"github.com/google/uuid"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kaleido-io/ethid/pkg/ethidmsgs"
)

// Bytes32 is a 32 byte identifier, most commonly a keccak256 hash. It shares
// the hex codec with EthAddress, but unlike addresses there is no ecosystem
// case convention for hashes, so parsing accepts any digit casing and the
// natural string form is lower case.
type Bytes32 [32]byte

// ParseBytes32 parses hex text with or without 0x prefix, in any case.
func ParseBytes32(ctx context.Context, s string) (*Bytes32, error) {
	id := &Bytes32{}
	if err := decodeHexFixed(ctx, id[:], s); err != nil {
		return nil, err
	}
	return id, nil
}

func MustParseBytes32(s string) Bytes32 {
	id, err := ParseBytes32(context.Background(), s)
	if err != nil {
		panic(err)
	}
	return *id
}

// No checking in this function on length
func NewBytes32FromSlice(b []byte) Bytes32 {
	var id Bytes32
	copy(id[:], b)
	return id
}

// Bytes32Keccak returns the keccak256 hash of the input
func Bytes32Keccak(b []byte) Bytes32 {
	return NewBytes32FromSlice(keccak256(b))
}

// UUIDLower16 uses the first 16 bytes to construct a UUID
func (id *Bytes32) UUIDLower16() (u uuid.UUID) {
	if id != nil {
		copy(u[:], id[0:16])
	}
	return u
}

// Bytes32UUIDLower16 creates a Bytes32 with the UUID in the first 16 bytes,
// and zeros in the second 16 bytes
func Bytes32UUIDLower16(u uuid.UUID) (id Bytes32) {
	copy(id[0:16], u[:])
	return id
}

// Natural string representation is HexString0xPrefix()
func (id Bytes32) String() string {
	return id.HexString0xPrefix()
}

// Checksummed applies the EIP-55 case derivation to the 64 hex digits. Not
// part of any wire convention for hashes, but available to any caller that
// wants a case-protected rendering.
func (id Bytes32) Checksummed() string {
	return checksummedHex(id[:])
}

// Get string with 0x prefix, lower case
func (id Bytes32) HexString0xPrefix() string {
	return "0x" + hex.EncodeToString(id[:])
}

// Get string without 0x prefix, lower case
func (id Bytes32) HexString() string {
	return hex.EncodeToString(id[:])
}

// Bytes returns a copy of the 32 raw bytes
func (id *Bytes32) Bytes() []byte {
	if id == nil {
		return nil
	}
	b := make([]byte, len(id))
	copy(b, id[:])
	return b
}

func (id *Bytes32) Equals(id2 *Bytes32) bool {
	if id == nil && id2 == nil {
		return true
	}
	if id == nil || id2 == nil {
		return false
	}
	return *id == *id2
}

// Compare orders values lexicographically over their bytes. nil sorts first.
func (id *Bytes32) Compare(id2 *Bytes32) int {
	if id == nil || id2 == nil {
		if id == nil && id2 == nil {
			return 0
		}
		if id == nil {
			return -1
		}
		return 1
	}
	return bytes.Compare(id[:], id2[:])
}

// Returns true for either nil, or all-zeros value
func (id *Bytes32) IsZero() bool {
	return id == nil || *id == Bytes32{}
}

// JSON representation is lower case hex, with 0x prefix
func (id Bytes32) MarshalText() ([]byte, error) {
	return ([]byte)(id.HexString0xPrefix()), nil
}

// Parses with/without 0x prefix, in any case
func (id *Bytes32) UnmarshalText(text []byte) error {
	parsed, err := ParseBytes32(context.Background(), string(text))
	if err != nil {
		return err
	}
	*id = *parsed
	return nil
}

// Binary representation is exactly the 32 raw bytes, no prefix
func (id Bytes32) MarshalBinary() ([]byte, error) {
	return id.Bytes(), nil
}

func (id *Bytes32) UnmarshalBinary(data []byte) error {
	return unmarshalBinaryFixed(context.Background(), id[:], data)
}

// Value implements sql.Valuer - no prefix, always 64 lower case chars
func (id Bytes32) Value() (driver.Value, error) {
	return id.HexString(), nil
}

// Scan implements sql.Scanner
func (id *Bytes32) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil

	case string:
		parsed, err := ParseBytes32(context.Background(), src)
		if err != nil {
			return err
		}
		*id = *parsed
		return nil

	case []byte:
		switch len(src) {
		case 32:
			copy((*id)[:], src)
			return nil
		case 64, 66 /* with 0x */ :
			parsed, err := ParseBytes32(context.Background(), (string)(src))
			if err != nil {
				return err
			}
			*id = *parsed
			return nil
		default:
			return i18n.NewError(context.Background(), ethidmsgs.MsgScanFail, src, id)
		}

	default:
		return i18n.NewError(context.Background(), ethidmsgs.MsgScanFail, src, id)
	}
}
