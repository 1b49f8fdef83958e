// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package trie

import "encoding/binary"

// Tags of the canonical node encoding. The empty tag doubles as the encoding
// of an absent child slot inside an inner node's body and as the encoding of
// an empty trie.
const (
	tagEmpty byte = 0x00
	tagInner byte = 0x01
	tagLeaf  byte = 0x02
)

// emptyEncoding is the canonical encoding of an empty trie.
var emptyEncoding = []byte{tagEmpty}

// encodeTagged frames a node body into the canonical node layout: the node's
// tag byte, the body length as an unsigned LEB128 varint, and the body itself.
// All length prefixes in this format use the same varint encoding, produced
// by encoding/binary's AppendUvarint.
func encodeTagged(tag byte, body []byte) []byte {
	res := make([]byte, 0, 1+binary.MaxVarintLen64+len(body))
	res = append(res, tag)
	res = binary.AppendUvarint(res, uint64(len(body)))
	return append(res, body...)
}
