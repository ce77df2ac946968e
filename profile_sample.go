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
import   "math/rand"
import   "os"
import   "sort"

import   "github.com/pkg/errors"

/* -------------------------------------------------------------------------- */

// ProfileSample is a uniform random subset of paired profiles, kept in
// input order. Labels are empty if no labels were given.
type ProfileSample struct {
  // positions of the sampled records in the input
  Index  []int
  Pairs  []VectorPair
  Labels []string
  // number of records seen
  Total  int
}

func (obj *ProfileSample) Len() int {
  return len(obj.Index)
}

func (obj *ProfileSample) Less(i, j int) bool {
  return obj.Index[i] < obj.Index[j]
}

func (obj *ProfileSample) Swap(i, j int) {
  obj.Index[i], obj.Index[j] = obj.Index[j], obj.Index[i]
  obj.Pairs[i], obj.Pairs[j] = obj.Pairs[j], obj.Pairs[i]
  if len(obj.Labels) > 0 {
    obj.Labels[i], obj.Labels[j] = obj.Labels[j], obj.Labels[i]
  }
}

/* -------------------------------------------------------------------------- */

// SampleProfiles draws n records uniformly without replacement using
// reservoir sampling. If labels is not nil it is read in lockstep with the
// profiles and must contain one label per record. All records are kept if
// the input has at most n records.
func SampleProfiles(reader RecordReader[VectorPair], labels io.Reader, n int, rng *rand.Rand) (*ProfileSample, error) {
  if n < 1 {
    return nil, fmt.Errorf("SampleProfiles(): invalid sample size `%d'", n)
  }
  var labelReader *LabelReader
  if labels != nil {
    labelReader = NewLabelReader(labels)
  }
  r := ProfileSample{}
  for i := 0; ; i++ {
    pair, err := reader.Read()
    if err != nil && err != io.EOF {
      return nil, err
    }
    label := ""
    if labelReader != nil {
      var errLabel error
      label, errLabel = labelReader.Read()
      if errLabel != nil && errLabel != io.EOF {
        return nil, errLabel
      }
      if (err == io.EOF) != (errLabel == io.EOF) {
        return nil, fmt.Errorf("SampleProfiles(): number of profiles and labels differ (line %d)", i+1)
      }
    }
    if err == io.EOF {
      break
    }
    r.Total++
    j := i
    if i >= n {
      if j = rng.Intn(i+1); j >= n {
        continue
      }
    }
    if j == len(r.Index) {
      r.Index = append(r.Index, i)
      r.Pairs = append(r.Pairs, pair)
      if labelReader != nil {
        r.Labels = append(r.Labels, label)
      }
    } else {
      r.Index[j] = i
      r.Pairs[j] = pair
      if labelReader != nil {
        r.Labels[j] = label
      }
    }
  }
  sort.Sort(&r)
  return &r, nil
}

// CountProfiles returns the number of records of a profile reader.
func CountProfiles(reader RecordReader[VectorPair]) (int, error) {
  n := 0
  for {
    if _, err := reader.Read(); err == io.EOF {
      return n, nil
    } else
    if err != nil {
      return n, err
    }
    n++
  }
}

/* -------------------------------------------------------------------------- */

// WriteSample writes the sampled composition and abundance profiles and,
// if labelWriter is not nil, the sampled labels, one record per line.
func (obj *ProfileSample) WriteSample(shortWriter, longWriter, labelWriter io.Writer) error {
  for i, pair := range obj.Pairs {
    if _, err := fmt.Fprintf(shortWriter, "%s\n", FormatFeatureVector(pair.Short)); err != nil {
      return err
    }
    if _, err := fmt.Fprintf(longWriter, "%s\n", FormatFeatureVector(pair.Long)); err != nil {
      return err
    }
    if labelWriter != nil && len(obj.Labels) > 0 {
      if _, err := fmt.Fprintf(labelWriter, "%s\n", obj.Labels[i]); err != nil {
        return err
      }
    }
  }
  return nil
}

// ExportSample writes the sample to files. The label file is skipped if
// its name is empty or the sample has no labels.
func (obj *ProfileSample) ExportSample(filenameShort, filenameLong, filenameLabels string) error {
  filenames := []string{filenameShort, filenameLong}
  if filenameLabels != "" && len(obj.Labels) > 0 {
    filenames = append(filenames, filenameLabels)
  }
  files   := make([]*os.File, 0, len(filenames))
  writers := make([]*bufio.Writer, 0, len(filenames))
  closeAll := func() {
    for _, f := range files {
      f.Close()
    }
  }
  for _, filename := range filenames {
    f, err := os.Create(filename)
    if err != nil {
      closeAll()
      return errors.Wrap(err, "exporting profile sample")
    }
    files   = append(files, f)
    writers = append(writers, bufio.NewWriter(f))
  }
  var labelWriter io.Writer
  if len(writers) == 3 {
    labelWriter = writers[2]
  }
  if err := obj.WriteSample(writers[0], writers[1], labelWriter); err != nil {
    closeAll()
    return errors.Wrap(err, "exporting profile sample")
  }
  for i, w := range writers {
    if err := w.Flush(); err != nil {
      closeAll()
      return errors.Wrapf(err, "exporting profile sample to `%s'", filenames[i])
    }
  }
  for i, f := range files {
    if err := f.Close(); err != nil {
      return errors.Wrapf(err, "exporting profile sample to `%s'", filenames[i])
    }
  }
  return nil
}
