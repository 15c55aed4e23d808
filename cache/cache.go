/*
 * cache.go, part of orbfield.
 *
 * Copyright 2026 The orbfield developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

/*Package cache is the result cache for callers of the field engine.

The engine itself is a pure function library and holds no state; whatever
layer drives it (a UI, a service) owns one of these caches and decides
what to keep. Keys carry the rendering parameters that determine a
result; iso fractions are rounded to three decimals so slider jitter
doesn't defeat the cache. An orbital-list digest stands in for the
version counters such callers tend to grow: equal content hashes to an
equal key, however the list was edited.
*/
package cache

import (
	"container/list"
	"encoding/binary"
	"hash/fnv"
	"math"
	"sync"

	"github.com/orbsim/orbfield/field"
)

//DefaultCapacity is the entry budget a single interactive view needs in
//practice: a handful of quantum-number triples times the few mode and
//representation switches a user flips between.
const DefaultCapacity = 24

//Key identifies one single-orbital field result.
type Key struct {
	Symbol         string
	Mode           string
	Representation string
	N, L, M        int
	IsoFraction    float64
}

//NewKey builds a Key, rounding the iso fraction to three decimals.
func NewKey(symbol, mode, representation string, n, l, m int, isoFraction float64) Key {
	return Key{
		Symbol:         symbol,
		Mode:           mode,
		Representation: representation,
		N:              n, L: l, M: m,
		IsoFraction: math.Round(isoFraction*1000) / 1000,
	}
}

//HybridKey identifies one multi-center combination result by the content
//digest of its orbital list rather than by identity or edit count.
type HybridKey struct {
	Digest      uint64
	Resolution  int
	Kind        string
	Mix         float64
	IsoFraction float64
}

//NewHybridKey builds a HybridKey, rounding mix and iso fraction to three
//decimals.
func NewHybridKey(orbs []field.PositionedOrbital, resolution int, kind string, mix, isoFraction float64) HybridKey {
	return HybridKey{
		Digest:      Digest(orbs),
		Resolution:  resolution,
		Kind:        kind,
		Mix:         math.Round(mix*1000) / 1000,
		IsoFraction: math.Round(isoFraction*1000) / 1000,
	}
}

//Digest hashes the content of an orbital list: symbols, quantum numbers,
//positions and visibility, in order. Two lists with equal content digest
//equal, so a caller can recompute on change without tracking versions.
func Digest(orbs []field.PositionedOrbital) uint64 {
	h := fnv.New64a()
	var b [8]byte
	writeInt := func(v int) {
		binary.LittleEndian.PutUint64(b[:], uint64(int64(v)))
		h.Write(b[:])
	}
	writeFloat := func(v float64) {
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
		h.Write(b[:])
	}
	for _, o := range orbs {
		h.Write([]byte(o.Symbol))
		h.Write([]byte{0})
		writeInt(o.N)
		writeInt(o.L)
		writeInt(o.M)
		writeFloat(o.Position.X)
		writeFloat(o.Position.Y)
		writeFloat(o.Position.Z)
		if o.Visible {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}
	return h.Sum64()
}

//LRU is a least-recently-used cache over comparable keys (Key, HybridKey or
//any other comparable type a caller defines). It is safe for use from
//several goroutines; the engine being pure, entries never go stale except
//by eviction.
type LRU struct {
	mu       sync.Mutex
	capacity int
	order    *list.List
	items    map[any]*list.Element
}

type entry struct {
	key   any
	value any
}

//New returns an LRU holding up to capacity entries; capacity below 1 gets
//DefaultCapacity.
func New(capacity int) *LRU {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &LRU{
		capacity: capacity,
		order:    list.New(),
		items:    make(map[any]*list.Element, capacity),
	}
}

//Get returns the cached value for key, marking it most recently used.
func (c *LRU) Get(key any) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.items[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*entry).value, true
}

//Put stores value under key, evicting the least recently used entry once
//over capacity.
func (c *LRU) Put(key, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		el.Value.(*entry).value = value
		c.order.MoveToFront(el)
		return
	}
	c.items[key] = c.order.PushFront(&entry{key: key, value: value})
	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(*entry).key)
	}
}

//Len returns the number of cached entries.
func (c *LRU) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

//Purge drops every entry.
func (c *LRU) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.Init()
	c.items = make(map[any]*list.Element, c.capacity)
}
