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

import   "github.com/pkg/errors"

/* -------------------------------------------------------------------------- */

// FormatFeatureVector returns the vector as space separated decimals with
// six digits after the decimal point.
func FormatFeatureVector(v FeatureVector) []byte {
  r := make([]byte, 0, 9*len(v))
  for i, x := range v {
    if i > 0 {
      r = append(r, ' ')
    }
    r = strconv.AppendFloat(r, x, 'f', 6, 64)
  }
  return r
}

// ParseFeatureVector collects all numeric tokens of a line. A token is a
// maximal run of digits and the characters `.', `+', `-' and `e', any
// other character separates tokens.
func ParseFeatureVector(line string) (FeatureVector, error) {
  r := FeatureVector{}
  i := -1
  for j := 0; j <= len(line); j++ {
    if j < len(line) && isNumericChar(line[j]) {
      if i < 0 {
        i = j
      }
      continue
    }
    if i >= 0 {
      x, err := strconv.ParseFloat(line[i:j], 64)
      if err != nil {
        return nil, fmt.Errorf("ParseFeatureVector(): invalid number `%s'", line[i:j])
      }
      r = append(r, x)
      i = -1
    }
  }
  return r, nil
}

func isNumericChar(c byte) bool {
  return (c >= '0' && c <= '9') || c == '.' || c == '+' || c == '-' || c == 'e'
}

/* -------------------------------------------------------------------------- */

type VectorPair struct {
  Short FeatureVector
  Long  FeatureVector
}

// VectorPairReader reads composition (short) and abundance (long)
// profiles of the same reads from two files in lockstep.
type VectorPairReader struct {
  short *bufio.Reader
  long  *bufio.Reader
  files []*os.File
  line   int
}

func NewVectorPairReader(short, long io.Reader) *VectorPairReader {
  return &VectorPairReader{short: bufio.NewReader(short), long: bufio.NewReader(long)}
}

func OpenVectorPairReader(filenameShort, filenameLong string) (*VectorPairReader, error) {
  f1, err := os.Open(filenameShort)
  if err != nil {
    return nil, errors.Wrap(err, "opening composition profiles")
  }
  f2, err := os.Open(filenameLong)
  if err != nil {
    f1.Close()
    return nil, errors.Wrap(err, "opening abundance profiles")
  }
  r := NewVectorPairReader(f1, f2)
  r.files = []*os.File{f1, f2}
  return r, nil
}

func (obj *VectorPairReader) Read() (VectorPair, error) {
  l1, err1 := bufioReadLine(obj.short)
  l2, err2 := bufioReadLine(obj.long)
  if err1 == io.EOF && err2 == io.EOF {
    return VectorPair{}, io.EOF
  }
  obj.line++
  if err1 == io.EOF || err2 == io.EOF {
    return VectorPair{}, fmt.Errorf("Read(): profile files have different number of lines (line %d)", obj.line)
  }
  if err1 != nil {
    return VectorPair{}, err1
  }
  if err2 != nil {
    return VectorPair{}, err2
  }
  v1, err := ParseFeatureVector(l1)
  if err != nil {
    return VectorPair{}, errors.Wrapf(err, "composition profile on line %d", obj.line)
  }
  v2, err := ParseFeatureVector(l2)
  if err != nil {
    return VectorPair{}, errors.Wrapf(err, "abundance profile on line %d", obj.line)
  }
  return VectorPair{Short: v1, Long: v2}, nil
}

func (obj *VectorPairReader) Close() error {
  var r error
  for _, f := range obj.files {
    if err := f.Close(); err != nil && r == nil {
      r = err
    }
  }
  return r
}
