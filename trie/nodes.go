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

import (
	"bytes"
	"encoding/binary"

	"github.com/0xsoniclabs/hashdex/common"
)

// ---- Nodes ----

// node is an interface for trie nodes, which can be either inner or leaf
// nodes. No other implementations exist; all algorithms in this package
// depend on this set being closed.
type node interface {
	// get retrieves the value stored under the given key suffix, reporting
	// whether it is present.
	get(key []byte) ([]byte, bool)

	// set stores the given value under the given key suffix and returns the
	// node taking this node's place, which is either the node itself or an
	// inner node it has been split into.
	set(key []byte, value []byte) node

	// encode produces the canonical binary encoding of this node. The
	// encoding is the preimage of the node's hash.
	encode() []byte

	// hash returns the hash of this node's canonical encoding, recomputing
	// cached hashes invalidated by previous set operations. Hashes of
	// modified subtrees are recomputed bottom-up, since an inner node's
	// encoding depends on the hashes of its children.
	hash() common.Hash
}

// ---- Inner nodes ----

// inner is the type of an inner node in the trie. It routes keys to up to
// 256 child nodes, indexed by the next unconsumed byte of the key. Inner
// nodes only come into existence when two keys collide in a leaf, so every
// inner node holds at least two children for the lifetime of the trie.
type inner struct {
	children [256]node

	// The cached hash of this inner node. It is only valid if no
	// dirtyChildren bit is set.
	digest common.Hash

	dirtyChildren bitMap // < which children have been modified
}

func (i *inner) get(key []byte) ([]byte, bool) {
	if len(key) == 0 {
		return nil, false
	}
	next := i.children[key[0]]
	if next == nil {
		return nil, false
	}
	return next.get(key[1:])
}

func (i *inner) set(key []byte, value []byte) node {
	pos := key[0]
	i.dirtyChildren.set(pos)
	next := i.children[pos]
	if next == nil {
		i.children[pos] = newLeaf(key[1:], value)
		return i
	}
	i.children[pos] = next.set(key[1:], value)
	return i
}

func (i *inner) encode() []byte {
	numChildren := 0
	for _, child := range i.children {
		if child != nil {
			numChildren++
		}
	}

	// An absent child costs one byte, a present child a length-prefixed hash.
	body := make([]byte, 0, 256+numChildren*(1+common.HashLength))
	for _, child := range i.children {
		if child == nil {
			body = append(body, tagEmpty)
			continue
		}
		hash := child.hash()
		body = binary.AppendUvarint(body, uint64(len(hash)))
		body = append(body, hash[:]...)
	}
	return encodeTagged(tagInner, body)
}

func (i *inner) hash() common.Hash {
	if !i.dirtyChildren.any() {
		return i.digest
	}
	// encode refreshes the hashes of all modified children.
	i.digest = common.Sha256(i.encode())
	i.dirtyChildren.clear()
	return i.digest
}

// ---- Leaf nodes ----

// leaf is the type of a leaf node in the trie. It holds the suffix of an
// inserted key that was not consumed by branching decisions above it,
// together with the stored value.
type leaf struct {
	remainingKey []byte
	value        []byte

	// The cached hash of this leaf. Leaf hashes are refreshed eagerly on
	// every content change, so this is valid at all times.
	digest common.Hash
}

// newLeaf creates a new leaf holding the given key suffix and value. The
// inputs are copied; the leaf shares no memory with the caller.
func newLeaf(remainingKey []byte, value []byte) *leaf {
	res := &leaf{
		remainingKey: bytes.Clone(remainingKey),
		value:        bytes.Clone(value),
	}
	res.rehash()
	return res
}

func (l *leaf) get(key []byte) ([]byte, bool) {
	if !bytes.Equal(key, l.remainingKey) {
		return nil, false
	}
	return l.value, true
}

func (l *leaf) set(key []byte, value []byte) node {
	if bytes.Equal(key, l.remainingKey) {
		l.value = bytes.Clone(value)
		l.rehash()
		return l
	}

	// This leaf needs to be split: it moves down one level, filed under the
	// first byte of its remaining key, and an inner node takes its place.
	// The insertion then continues in the new inner node; if the two keys
	// share their next byte, this descends into the moved leaf and splits
	// again until the keys diverge.
	res := &inner{}
	pos := l.remainingKey[0]
	l.remainingKey = l.remainingKey[1:]
	l.rehash()
	res.children[pos] = l
	res.dirtyChildren.set(pos)
	return res.set(key, value)
}

func (l *leaf) encode() []byte {
	body := binary.AppendUvarint(nil, uint64(len(l.remainingKey)))
	body = append(body, l.remainingKey...)
	body = binary.AppendUvarint(body, uint64(len(l.value)))
	body = append(body, l.value...)
	return encodeTagged(tagLeaf, body)
}

func (l *leaf) hash() common.Hash {
	return l.digest
}

func (l *leaf) rehash() {
	l.digest = common.Sha256(l.encode())
}
