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
import   "strconv"
import   "strings"

import   "github.com/pkg/errors"

/* -------------------------------------------------------------------------- */

// ReadDsk imports k-mer counts exported from DSK, one `code,count' or
// `code count' pair per line. Under dual increment the count is stored
// for the k-mer and its reverse complement, under canonical merge only
// in the canonical slot. Returns the number of imported lines.
func (obj *CountingTable) ReadDsk(reader io.Reader) (int, error) {
  scanner := bufio.NewScanner(reader)
  n := 0
  for i := 1; scanner.Scan(); i++ {
    line := strings.TrimSpace(scanner.Text())
    if len(line) == 0 {
      continue
    }
    fields := strings.FieldsFunc(line, func(c rune) bool {
      return c == ',' || c == ' ' || c == '\t'
    })
    if len(fields) != 2 {
      return n, fmt.Errorf("ReadDsk(): invalid line %d: `%s'", i, line)
    }
    code, err := strconv.ParseUint(fields[0], 10, 64)
    if err != nil {
      return n, errors.Wrapf(err, "ReadDsk(): line %d", i)
    }
    count, err := strconv.ParseUint(fields[1], 10, 32)
    if err != nil {
      return n, errors.Wrapf(err, "ReadDsk(): line %d", i)
    }
    if code >= uint64(obj.Len()) {
      return n, fmt.Errorf("ReadDsk(): line %d: k-mer code `%d' out of range", i, code)
    }
    switch obj.policy {
    case CanonicalMerge:
      obj.Set(obj.codec.Canonical(code), uint32(count))
    default:
      obj.Set(code, uint32(count))
      obj.Set(obj.codec.RevComp(code), uint32(count))
    }
    n++
  }
  return n, scanner.Err()
}

func (obj *CountingTable) ImportDsk(filename string) (int, error) {
  f, err := os.Open(filename)
  if err != nil {
    return 0, errors.Wrap(err, "importing DSK counts")
  }
  defer f.Close()

  n, err := obj.ReadDsk(f)
  if err != nil {
    return n, errors.Wrapf(err, "importing DSK counts from `%s'", filename)
  }
  return n, nil
}
