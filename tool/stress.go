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
	"encoding/binary"
	"fmt"
	"runtime"
	"time"

	"github.com/0xsoniclabs/hashdex/common"
	"github.com/0xsoniclabs/hashdex/trie"
	"github.com/pbnjay/memory"
	"github.com/urfave/cli/v2"
)

var Stress = cli.Command{
	Action: stress,
	Name:   "stress",
	Usage:  "fills a trie with derived keys and reports throughput and memory usage",
	Flags: []cli.Flag{
		&numKeysFlag,
		&reportPeriodFlag,
	},
}

var (
	numKeysFlag = cli.IntFlag{
		Name:  "num-keys",
		Usage: "the number of keys to insert",
		Value: 1_000_000,
	}
	reportPeriodFlag = cli.IntFlag{
		Name:  "report-period",
		Usage: "the number of insertions between progress reports",
		Value: 100_000,
	}
)

func stress(context *cli.Context) error {
	numKeys := context.Int(numKeysFlag.Name)
	if numKeys <= 0 {
		numKeys = numKeysFlag.Value
	}
	reportPeriod := context.Int(reportPeriodFlag.Name)
	if reportPeriod <= 0 {
		reportPeriod = numKeys
	}

	index := trie.NewTrie()
	start := time.Now()

	var counter [8]byte
	for i := 0; i < numKeys; i++ {
		binary.BigEndian.PutUint64(counter[:], uint64(i))
		key := trie.Key(common.Keccak256(counter[:]))
		value := common.Sha256(counter[:])
		index.Set(key, value[:8])

		if (i+1)%reportPeriod == 0 {
			rate := float64(i+1) / time.Since(start).Seconds()
			fmt.Printf("inserted %d keys, %.0f keys/s, root %s\n", i+1, rate, index.RootHash())
		}
	}

	took := time.Since(start)
	fmt.Printf("inserted %d keys in %v (%.0f keys/s)\n", numKeys, took, float64(numKeys)/took.Seconds())
	fmt.Printf("root: %s\n", index.RootHash())

	printMemoryUsage()
	return nil
}

func printMemoryUsage() {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	fmt.Printf("heap in use: %d MiB\n", stats.HeapInuse>>20)
	fmt.Printf("system memory: %d of %d MiB free\n", memory.FreeMemory()>>20, memory.TotalMemory()>>20)
}
