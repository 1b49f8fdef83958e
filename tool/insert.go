// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"fmt"

	"github.com/0xsoniclabs/hashdex/trie"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli/v2"
)

var Insert = cli.Command{
	Action: insert,
	Name:   "insert",
	Usage:  "inserts key/value pairs into a fresh trie and reports the resulting root hash",
	Flags: []cli.Flag{
		&keyFlag,
		&valueFlag,
	},
}

var (
	keyFlag = cli.StringSliceFlag{
		Name:  "key",
		Usage: "a 32-byte key in 0x-prefixed hex notation",
	}
	valueFlag = cli.StringSliceFlag{
		Name:  "value",
		Usage: "the value stored under the corresponding --key, in 0x-prefixed hex notation",
	}
)

func insert(context *cli.Context) error {
	keys := context.StringSlice(keyFlag.Name)
	values := context.StringSlice(valueFlag.Name)

	// Without arguments, run the classic demo: a single all-zero key with a
	// one-byte value.
	if len(keys) == 0 && len(values) == 0 {
		keys = []string{hexutil.Encode(make([]byte, trie.KeyLength))}
		values = []string{"0x02"}
	}
	if len(keys) != len(values) {
		return fmt.Errorf("got %d keys and %d values, need one value per key", len(keys), len(values))
	}

	index := trie.NewTrie()
	parsedKeys := make([]trie.Key, len(keys))
	for i := range keys {
		raw, err := hexutil.Decode(keys[i])
		if err != nil {
			return fmt.Errorf("invalid key %q: %w", keys[i], err)
		}
		if len(raw) != trie.KeyLength {
			return fmt.Errorf("invalid key %q: got %d bytes, want %d", keys[i], len(raw), trie.KeyLength)
		}
		value, err := hexutil.Decode(values[i])
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", values[i], err)
		}
		parsedKeys[i] = trie.Key(raw)
		index.Set(parsedKeys[i], value)
	}

	for i, key := range parsedKeys {
		value, found := index.Get(key)
		if !found {
			return fmt.Errorf("key %q not found after insertion", keys[i])
		}
		fmt.Printf("%s => %s\n", hexutil.Encode(key[:]), hexutil.Encode(value))
	}
	fmt.Printf("empty: %t\n", index.IsEmpty())
	fmt.Printf("root: %s\n", index.RootHash())
	return nil
}
