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

import   "bufio"
import   "encoding/binary"
import   "fmt"
import   "io"
import   "os"
import   "unsafe"

import   "github.com/edsrzf/mmap-go"
import   "github.com/pkg/errors"

/* file format:
 *   [8 bytes: number of slots, little endian]
 *   [number of slots x 4 bytes: counters in slot order, little endian]
 * -------------------------------------------------------------------------- */

const countingTableChunkSize = 1 << 16

/* -------------------------------------------------------------------------- */

func (obj *CountingTable) WriteTo(writer io.Writer) (int64, error) {
  n      := int64(0)
  header := make([]byte, 8)
  binary.LittleEndian.PutUint64(header, uint64(len(obj.counts)))
  if m, err := writer.Write(header); err != nil {
    return n, err
  } else {
    n += int64(m)
  }
  buffer := make([]byte, 4*countingTableChunkSize)
  for i := 0; i < len(obj.counts); i += countingTableChunkSize {
    j := iMin(i+countingTableChunkSize, len(obj.counts))
    for l := i; l < j; l++ {
      binary.LittleEndian.PutUint32(buffer[4*(l-i):], obj.counts[l])
    }
    if m, err := writer.Write(buffer[0:4*(j-i)]); err != nil {
      return n, err
    } else {
      n += int64(m)
    }
  }
  return n, nil
}

func (obj *CountingTable) ExportTable(filename string) error {
  f, err := os.Create(filename)
  if err != nil {
    return errors.Wrap(err, "exporting counting table")
  }
  w := bufio.NewWriter(f)
  if _, err := obj.WriteTo(w); err != nil {
    f.Close()
    return errors.Wrapf(err, "writing counting table to `%s'", filename)
  }
  if err := w.Flush(); err != nil {
    f.Close()
    return errors.Wrapf(err, "writing counting table to `%s'", filename)
  }
  return f.Close()
}

/* -------------------------------------------------------------------------- */

// ReadCountingTable reads a table in the binary table format. The k-mer
// size is inferred from the number of slots, which must be a power of
// four.
func ReadCountingTable(reader io.Reader, policy CountingPolicy) (*CountingTable, error) {
  header := make([]byte, 8)
  if _, err := io.ReadFull(reader, header); err != nil {
    return nil, errors.Wrap(err, "reading counting table header")
  }
  k, err := kmerSizeFromSlots(binary.LittleEndian.Uint64(header))
  if err != nil {
    return nil, err
  }
  r, err := NewCountingTable(k, policy)
  if err != nil {
    return nil, err
  }
  buffer := make([]byte, 4*countingTableChunkSize)
  for i := 0; i < len(r.counts); i += countingTableChunkSize {
    j := iMin(i+countingTableChunkSize, len(r.counts))
    if _, err := io.ReadFull(reader, buffer[0:4*(j-i)]); err != nil {
      return nil, errors.Wrap(err, "reading counting table")
    }
    for l := i; l < j; l++ {
      r.counts[l] = binary.LittleEndian.Uint32(buffer[4*(l-i):])
    }
  }
  return r, nil
}

func ImportCountingTable(filename string, policy CountingPolicy) (*CountingTable, error) {
  f, err := os.Open(filename)
  if err != nil {
    return nil, errors.Wrap(err, "importing counting table")
  }
  defer f.Close()

  // check the header against the file size before allocating the table
  if err := checkCountingTableFile(f); err != nil {
    return nil, errors.Wrapf(err, "importing counting table `%s'", filename)
  }
  r, err := ReadCountingTable(bufio.NewReader(f), policy)
  if err != nil {
    return nil, errors.Wrapf(err, "importing counting table `%s'", filename)
  }
  return r, nil
}

/* -------------------------------------------------------------------------- */

// MapCountingTable maps an exported table into memory without copying
// the counters. The result is read-only and must be closed.
func MapCountingTable(filename string, policy CountingPolicy) (*CountingTable, error) {
  if !isLittleEndian() {
    return nil, fmt.Errorf("MapCountingTable(): memory mapping requires a little endian host")
  }
  f, err := os.Open(filename)
  if err != nil {
    return nil, errors.Wrap(err, "mapping counting table")
  }
  defer f.Close()

  m, err := mmap.Map(f, mmap.RDONLY, 0)
  if err != nil {
    return nil, errors.Wrapf(err, "mapping counting table `%s'", filename)
  }
  if len(m) < 8 {
    m.Unmap()
    return nil, fmt.Errorf("MapCountingTable(): `%s' is not a counting table", filename)
  }
  n := binary.LittleEndian.Uint64(m[0:8])
  k, err := kmerSizeFromSlots(n)
  if err != nil {
    m.Unmap()
    return nil, errors.Wrapf(err, "mapping counting table `%s'", filename)
  }
  if uint64(len(m)) != 8+4*n {
    m.Unmap()
    return nil, fmt.Errorf("MapCountingTable(): `%s' has invalid size", filename)
  }
  r := CountingTable{
    codec  : NewKmerCodec(k),
    policy : policy,
    counts : unsafe.Slice((*uint32)(unsafe.Pointer(&m[8])), n),
    mapping: m }
  return &r, nil
}

/* -------------------------------------------------------------------------- */

func checkCountingTableFile(f *os.File) error {
  info, err := f.Stat()
  if err != nil {
    return err
  }
  header := make([]byte, 8)
  if _, err := f.ReadAt(header, 0); err != nil {
    return errors.Wrap(err, "reading counting table header")
  }
  n := binary.LittleEndian.Uint64(header)
  if _, err := kmerSizeFromSlots(n); err != nil {
    return err
  }
  if uint64(info.Size()) != 8+4*n {
    return fmt.Errorf("file size `%d' does not match number of slots `%d'", info.Size(), n)
  }
  return nil
}

func kmerSizeFromSlots(n uint64) (int, error) {
  for k := 1; k <= MaxCountingTableKmerSize; k++ {
    if n == uint64(1) << uint(2*k) {
      return k, nil
    }
  }
  return 0, fmt.Errorf("invalid number of slots `%d' in counting table", n)
}

func isLittleEndian() bool {
  x := uint16(1)
  return *(*byte)(unsafe.Pointer(&x)) == 1
}
