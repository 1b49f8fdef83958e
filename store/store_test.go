// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package store

import (
	"testing"

	"github.com/0xsoniclabs/hashdex/common"
	"github.com/0xsoniclabs/hashdex/trie"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStore_TrieSatisfiesIndexInterface(t *testing.T) {
	var _ Index = (*trie.Trie)(nil)
}

func TestStore_InitialStoreIsEmpty(t *testing.T) {
	require := require.New(t)

	store := New()
	require.True(store.IsEmpty())
	require.False(store.Has(trie.Key{}))
}

func TestStore_PutAndGetRoundTrip(t *testing.T) {
	require := require.New(t)

	store := New()
	value := []byte("some content")

	key := store.Put(value)
	require.False(store.IsEmpty())
	require.True(store.Has(key))

	got, found := store.Get(key)
	require.True(found)
	require.Equal(value, got)
}

func TestStore_KeyIsHashOfContent(t *testing.T) {
	require := require.New(t)

	store := New()
	value := []byte("some content")

	key := store.Put(value)
	require.Equal(trie.Key(common.Sha256(value)), key)
}

func TestStore_IdenticalContentMapsToIdenticalKey(t *testing.T) {
	require := require.New(t)

	store := New()
	key1 := store.Put([]byte("content"))
	root := store.RootHash()

	key2 := store.Put([]byte("content"))
	require.Equal(key1, key2)
	require.Equal(root, store.RootHash(), "re-storing identical content should not change the root hash")
}

func TestStore_DistinctContentChangesRootHash(t *testing.T) {
	require := require.New(t)

	store := New()
	store.Put([]byte("first"))
	before := store.RootHash()

	store.Put([]byte("second"))
	require.NotEqual(before, store.RootHash())
}

func TestStore_EmptyStoreRootHashMatchesEmptyTrie(t *testing.T) {
	require := require.New(t)

	store := New()
	require.Equal(trie.NewTrie().RootHash(), store.RootHash())
}

func TestStore_PutDelegatesToIndexWithDerivedKey(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	value := []byte("some content")
	key := trie.Key(common.Sha256(value))

	index := NewMockIndex(ctrl)
	index.EXPECT().Set(key, value)

	store := NewWithIndex(index)
	require.Equal(key, store.Put(value))
}

func TestStore_ReadsDelegateToIndex(t *testing.T) {
	require := require.New(t)
	ctrl := gomock.NewController(t)

	key := trie.Key{1, 2, 3}
	root := common.Hash{4, 5, 6}

	index := NewMockIndex(ctrl)
	index.EXPECT().Get(key).Return([]byte{42}, true).Times(2)
	index.EXPECT().IsEmpty().Return(false)
	index.EXPECT().RootHash().Return(root)

	store := NewWithIndex(index)

	value, found := store.Get(key)
	require.True(found)
	require.Equal([]byte{42}, value)
	require.True(store.Has(key))
	require.False(store.IsEmpty())
	require.Equal(root, store.RootHash())
}
