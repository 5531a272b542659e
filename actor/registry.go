/*
 * MIT License
 *
 * Copyright (c) 2022-2025  Arsene Tochemey Gandote
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package actor

import (
	"encoding/binary"
	"runtime"
	"sync"

	"github.com/zeebo/xxh3"
	"go.uber.org/atomic"

	"github.com/tochemey/simpleactors/log"
)

// actorCell is the registry entry of one actor. It outlives any single
// dispatcher: slot holds the current one and is swapped by compare-and-set.
type actorCell struct {
	id          uint64
	actor       Actor
	self        *pid
	mailbox     Mailbox
	logger      log.Logger
	slot        atomic.Pointer[dispatcher]
	generations atomic.Uint64
}

// registryShard is one lock-protected partition of the registry
type registryShard struct {
	sync.RWMutex
	cells map[uint64]*actorCell
}

// registry maps actor identities to their cells. It is sharded to keep
// contention low when many actors spawn and send concurrently.
type registry struct {
	shards []*registryShard
	size   *atomic.Int64
}

func newRegistry() *registry {
	count := runtime.NumCPU() * 4
	if count > maxRegistryShards {
		count = maxRegistryShards
	}

	shards := make([]*registryShard, count)
	for i := range shards {
		shards[i] = &registryShard{cells: make(map[uint64]*actorCell)}
	}
	return &registry{
		shards: shards,
		size:   atomic.NewInt64(0),
	}
}

// store registers the cell. An identity is never stored twice.
func (r *registry) store(cell *actorCell) {
	shard := r.shard(cell.id)
	shard.Lock()
	if _, ok := shard.cells[cell.id]; !ok {
		shard.cells[cell.id] = cell
		r.size.Inc()
	}
	shard.Unlock()
}

func (r *registry) load(id uint64) (*actorCell, bool) {
	shard := r.shard(id)
	shard.RLock()
	cell, ok := shard.cells[id]
	shard.RUnlock()
	return cell, ok
}

func (r *registry) len() int {
	return int(r.size.Load())
}

// rangeCells calls f for every cell until f returns false
func (r *registry) rangeCells(f func(*actorCell) bool) {
	for _, shard := range r.shards {
		shard.RLock()
		cells := make([]*actorCell, 0, len(shard.cells))
		for _, cell := range shard.cells {
			cells = append(cells, cell)
		}
		shard.RUnlock()

		for _, cell := range cells {
			if !f(cell) {
				return
			}
		}
	}
}

func (r *registry) shard(id uint64) *registryShard {
	var key [8]byte
	binary.LittleEndian.PutUint64(key[:], id)
	return r.shards[xxh3.Hash(key[:])%uint64(len(r.shards))]
}
