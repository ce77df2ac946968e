/* Copyright (C) 2020 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package metabcc

/* -------------------------------------------------------------------------- */

import   "fmt"
import   "strings"
import   "sync/atomic"

import   "github.com/edsrzf/mmap-go"

/* -------------------------------------------------------------------------- */

const MaxCountingTableKmerSize = 16

/* -------------------------------------------------------------------------- */

type CountingPolicy int

const (
  // count a k-mer and its reverse complement in two separate slots
  DualIncrement CountingPolicy = iota
  // count both orientations in the slot of the canonical k-mer
  CanonicalMerge
)

func ParseCountingPolicy(s string) (CountingPolicy, error) {
  switch strings.ToLower(s) {
  case "dual"     : return DualIncrement,  nil
  case "canonical": return CanonicalMerge, nil
  default:
    return DualIncrement, fmt.Errorf("invalid counting policy `%s'", s)
  }
}

func (obj CountingPolicy) String() string {
  switch obj {
  case DualIncrement : return "dual"
  case CanonicalMerge: return "canonical"
  default:
    return fmt.Sprintf("CountingPolicy(%d)", int(obj))
  }
}

func (obj CountingPolicy) MarshalText() ([]byte, error) {
  return []byte(obj.String()), nil
}

func (obj *CountingPolicy) UnmarshalText(text []byte) error {
  if r, err := ParseCountingPolicy(string(text)); err != nil {
    return err
  } else {
    *obj = r
  }
  return nil
}

/* -------------------------------------------------------------------------- */

// CountingTable holds one 32 bit counter for every possible k-mer code.
// Counters may be incremented concurrently without locking. Counters
// overflow silently after 2^32-1 increments.
type CountingTable struct {
  codec    KmerCodec
  policy   CountingPolicy
  counts []uint32
  // non-nil if counts are backed by a read-only memory mapping
  mapping  mmap.MMap
}

/* -------------------------------------------------------------------------- */

func NewCountingTable(k int, policy CountingPolicy) (*CountingTable, error) {
  if k < 1 || k > MaxCountingTableKmerSize {
    return nil, fmt.Errorf("NewCountingTable(): k-mer size `%d' out of range [1, %d]", k, MaxCountingTableKmerSize)
  }
  codec := NewKmerCodec(k)
  return &CountingTable{
    codec : codec,
    policy: policy,
    counts: make([]uint32, codec.Size()) }, nil
}

/* -------------------------------------------------------------------------- */

func (obj *CountingTable) K() int {
  return obj.codec.K()
}

func (obj *CountingTable) Codec() KmerCodec {
  return obj.codec
}

func (obj *CountingTable) Policy() CountingPolicy {
  return obj.policy
}

// Number of slots.
func (obj *CountingTable) Len() int {
  return len(obj.counts)
}

func (obj *CountingTable) ReadOnly() bool {
  return obj.mapping != nil
}

/* -------------------------------------------------------------------------- */

// Increment a single slot. Compare and swap is retried until it
// succeeds.
func (obj *CountingTable) Increment(code uint64) {
  if obj.mapping != nil {
    panic("Increment(): counting table is read-only")
  }
  p := &obj.counts[code]
  for {
    v := atomic.LoadUint32(p)
    if atomic.CompareAndSwapUint32(p, v, v+1) {
      return
    }
  }
}

// Add counts a k-mer according to the counting policy of the table.
func (obj *CountingTable) Add(code uint64) {
  switch obj.policy {
  case CanonicalMerge:
    obj.Increment(obj.codec.Canonical(code))
  default:
    obj.Increment(code)
    obj.Increment(obj.codec.RevComp(code))
  }
}

// AddSequence counts all k-mers of a sequence and returns the number of
// k-mers found.
func (obj *CountingTable) AddSequence(sequence []byte) int {
  return obj.codec.Scan(sequence, obj.Add)
}

/* -------------------------------------------------------------------------- */

// Get returns the value of a single slot. During a counting pass the
// result is only a snapshot.
func (obj *CountingTable) Get(code uint64) uint32 {
  return atomic.LoadUint32(&obj.counts[code])
}

// Lookup returns the count of a k-mer according to the counting
// policy. Under dual increment both orientations have their own slot
// and the slot of the given k-mer is returned.
func (obj *CountingTable) Lookup(code uint64) uint32 {
  if obj.policy == CanonicalMerge {
    return obj.Get(obj.codec.Canonical(code))
  }
  return obj.Get(code)
}

func (obj *CountingTable) Set(code uint64, value uint32) {
  if obj.mapping != nil {
    panic("Set(): counting table is read-only")
  }
  atomic.StoreUint32(&obj.counts[code], value)
}

/* -------------------------------------------------------------------------- */

// Total sum of all counters.
func (obj *CountingTable) Sum() uint64 {
  s := uint64(0)
  for i := 0; i < len(obj.counts); i++ {
    s += uint64(obj.counts[i])
  }
  return s
}

// Number of non-zero counters.
func (obj *CountingTable) Distinct() int {
  n := 0
  for i := 0; i < len(obj.counts); i++ {
    if obj.counts[i] != 0 {
      n++
    }
  }
  return n
}

/* -------------------------------------------------------------------------- */

// Close releases the memory mapping of a mapped table. Closing a table
// allocated on the heap only drops the counters.
func (obj *CountingTable) Close() error {
  obj.counts = nil
  if obj.mapping != nil {
    m := obj.mapping
    obj.mapping = nil
    return m.Unmap()
  }
  return nil
}
