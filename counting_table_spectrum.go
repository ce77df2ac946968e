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
import   "fmt"
import   "io"
import   "os"

import   "github.com/pkg/errors"

/* -------------------------------------------------------------------------- */

// Abundance spectrum of a counting table. Entry i holds the number of
// slots with count i, the last entry collects all slots with a count of
// at least len-1.
type KmerSpectrum []uint64

/* -------------------------------------------------------------------------- */

// Spectrum computes the abundance spectrum for counts in [0, maxCount].
// The optional callback is called periodically with the number of
// scanned slots.
func (obj *CountingTable) Spectrum(maxCount int, progress func(i, n int)) KmerSpectrum {
  if maxCount < 1 {
    maxCount = 1
  }
  r := make(KmerSpectrum, maxCount+1)
  n := len(obj.counts)
  for i := 0; i < n; i += countingTableChunkSize {
    j := iMin(i+countingTableChunkSize, n)
    for l := i; l < j; l++ {
      if c := int(obj.counts[l]); c >= maxCount {
        r[maxCount]++
      } else {
        r[c]++
      }
    }
    if progress != nil {
      progress(j, n)
    }
  }
  return r
}

/* -------------------------------------------------------------------------- */

func (obj KmerSpectrum) MaxCount() int {
  return len(obj)-1
}

// Write non-zero entries as `count number' lines. The count of the last
// entry is prefixed with `>='.
func (obj KmerSpectrum) WriteSpectrum(writer io.Writer) error {
  for i := 0; i < len(obj); i++ {
    if obj[i] == 0 {
      continue
    }
    var err error
    if i == len(obj)-1 {
      _, err = fmt.Fprintf(writer, ">=%d %d\n", i, obj[i])
    } else {
      _, err = fmt.Fprintf(writer, "%d %d\n", i, obj[i])
    }
    if err != nil {
      return err
    }
  }
  return nil
}

func (obj KmerSpectrum) ExportSpectrum(filename string) error {
  f, err := os.Create(filename)
  if err != nil {
    return errors.Wrap(err, "exporting k-mer spectrum")
  }
  w := bufio.NewWriter(f)
  if err := obj.WriteSpectrum(w); err != nil {
    f.Close()
    return errors.Wrapf(err, "exporting k-mer spectrum to `%s'", filename)
  }
  if err := w.Flush(); err != nil {
    f.Close()
    return errors.Wrapf(err, "exporting k-mer spectrum to `%s'", filename)
  }
  return f.Close()
}
