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
import   "bytes"
import   "fmt"
import   "io"
import   "math"
import   "os"
import   "strconv"
import   "strings"

import   "github.com/pkg/errors"

/* -------------------------------------------------------------------------- */

// Label of reads that could not be assigned to any bin.
const UnbinnedName = "UnBinned"

/* -------------------------------------------------------------------------- */

// Bin is a diagonal Gaussian model of the abundance (long) and
// composition (short) profiles of the reads of one genome cluster.
type Bin struct {
  Name       string
  LongMean   FeatureVector
  ShortMean  FeatureVector
  LongStd    FeatureVector
  ShortStd   FeatureVector
}

/* -------------------------------------------------------------------------- */

func NewBin(name string, longMean, shortMean, longStd, shortStd FeatureVector) (Bin, error) {
  if len(longMean) != len(longStd) {
    return Bin{}, fmt.Errorf("NewBin(): bin `%s' has %d long means but %d standard deviations", name, len(longMean), len(longStd))
  }
  if len(shortMean) != len(shortStd) {
    return Bin{}, fmt.Errorf("NewBin(): bin `%s' has %d short means but %d standard deviations", name, len(shortMean), len(shortStd))
  }
  return Bin{
    Name     : name,
    LongMean : longMean,
    ShortMean: shortMean,
    LongStd  : longStd,
    ShortStd : shortStd }, nil
}

/* -------------------------------------------------------------------------- */

func (obj Bin) LogLikelihoodLong(x FeatureVector) (float64, error) {
  if len(x) != len(obj.LongMean) {
    return math.NaN(), fmt.Errorf("LogLikelihoodLong(): bin `%s' expects vectors of length %d, got %d", obj.Name, len(obj.LongMean), len(x))
  }
  return gaussianLogLikelihood(x, obj.LongMean, obj.LongStd), nil
}

func (obj Bin) LogLikelihoodShort(x FeatureVector) (float64, error) {
  if len(x) != len(obj.ShortMean) {
    return math.NaN(), fmt.Errorf("LogLikelihoodShort(): bin `%s' expects vectors of length %d, got %d", obj.Name, len(obj.ShortMean), len(x))
  }
  return gaussianLogLikelihood(x, obj.ShortMean, obj.ShortStd), nil
}

func gaussianLogLikelihood(x, mean, std FeatureVector) float64 {
  r := 0.0
  for i := 0; i < len(x); i++ {
    z := (x[i] - mean[i])/std[i]
    r += -0.5*z*z - math.Log(math.Sqrt(2.0*math.Pi)*std[i])
  }
  return r
}

/* -------------------------------------------------------------------------- */

type BinSet []Bin

func (obj BinSet) Names() []string {
  r := make([]string, len(obj))
  for i, bin := range obj {
    r[i] = bin.Name
  }
  return r
}

/* statistics file: five lines per bin (name, long mean, short mean,
 * long std, short std)
 * -------------------------------------------------------------------------- */

func ReadBins(reader io.Reader) (BinSet, error) {
  scanner := bufio.NewScanner(reader)
  scanner.Buffer(make([]byte, 64*1024), 64*1024*1024)
  r       := BinSet{}
  line    := 0
  next    := func() (string, bool) {
    if scanner.Scan() {
      line++
      return strings.TrimRight(scanner.Text(), "\r"), true
    }
    return "", false
  }
  for {
    name, ok := next()
    if !ok {
      break
    }
    if strings.TrimSpace(name) == "" {
      continue
    }
    rows := [4]FeatureVector{}
    for i := 0; i < 4; i++ {
      s, ok := next()
      if !ok {
        return nil, fmt.Errorf("ReadBins(): statistics of bin `%s' are incomplete", name)
      }
      if v, err := ParseFeatureVector(s); err != nil {
        return nil, errors.Wrapf(err, "ReadBins(): line %d", line)
      } else {
        rows[i] = v
      }
    }
    if bin, err := NewBin(name, rows[0], rows[1], rows[2], rows[3]); err != nil {
      return nil, err
    } else {
      r = append(r, bin)
    }
  }
  if err := scanner.Err(); err != nil {
    return nil, err
  }
  return r, nil
}

func ImportBins(filename string) (BinSet, error) {
  f, err := os.Open(filename)
  if err != nil {
    return nil, errors.Wrap(err, "importing bin statistics")
  }
  defer f.Close()

  r, err := ReadBins(f)
  if err != nil {
    return nil, errors.Wrapf(err, "importing bin statistics from `%s'", filename)
  }
  return r, nil
}

/* -------------------------------------------------------------------------- */

func (obj BinSet) WriteStatistics(writer io.Writer) error {
  format := func(v FeatureVector) string {
    var buffer bytes.Buffer
    for i, x := range v {
      if i > 0 {
        buffer.WriteByte(' ')
      }
      buffer.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
    }
    return buffer.String()
  }
  for _, bin := range obj {
    if _, err := fmt.Fprintf(writer, "%s\n%s\n%s\n%s\n%s\n", bin.Name,
      format(bin.LongMean),
      format(bin.ShortMean),
      format(bin.LongStd),
      format(bin.ShortStd)); err != nil {
      return err
    }
  }
  return nil
}

func (obj BinSet) ExportStatistics(filename string) error {
  f, err := os.Create(filename)
  if err != nil {
    return errors.Wrap(err, "exporting bin statistics")
  }
  w := bufio.NewWriter(f)
  if err := obj.WriteStatistics(w); err != nil {
    f.Close()
    return errors.Wrapf(err, "exporting bin statistics to `%s'", filename)
  }
  if err := w.Flush(); err != nil {
    f.Close()
    return errors.Wrapf(err, "exporting bin statistics to `%s'", filename)
  }
  return f.Close()
}
