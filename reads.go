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
import   "path/filepath"
import   "strings"

import   "github.com/pkg/errors"

/* -------------------------------------------------------------------------- */

// LabelReader reads one bin label per line.
type LabelReader struct {
  scanner *bufio.Scanner
}

func NewLabelReader(reader io.Reader) *LabelReader {
  return &LabelReader{bufio.NewScanner(reader)}
}

func (obj *LabelReader) Read() (string, error) {
  if !obj.scanner.Scan() {
    if err := obj.scanner.Err(); err != nil {
      return "", err
    }
    return "", io.EOF
  }
  return strings.TrimSpace(obj.scanner.Text()), nil
}

/* -------------------------------------------------------------------------- */

// FilterReads writes all records with a sequence of at least minLength
// bases as FASTA. Returns the number of kept and the total number of
// records.
func FilterReads(reader SequenceRecordReader, writer io.Writer, minLength int) (int, int, error) {
  kept  := 0
  total := 0
  for {
    record, err := reader.ReadRecord()
    if err == io.EOF {
      break
    }
    if err != nil {
      return kept, total, err
    }
    total++
    if len(record.Sequence) < minLength {
      continue
    }
    if err := WriteFastaRecord(writer, record); err != nil {
      return kept, total, err
    }
    kept++
  }
  return kept, total, nil
}

/* -------------------------------------------------------------------------- */

// SplitReads writes every record to `<dir>/<label>.fasta' where labels
// are read line by line in record order. Returns the number of records
// per label.
func SplitReads(reader SequenceRecordReader, labels io.Reader, dir string) (map[string]int, error) {
  if err := os.MkdirAll(dir, 0755); err != nil {
    return nil, errors.Wrap(err, "splitting reads")
  }
  type output struct {
    file   *os.File
    writer *bufio.Writer
  }
  outputs := make(map[string]output)
  counts  := make(map[string]int)
  closeAll := func() error {
    var r error
    for _, o := range outputs {
      if err := o.writer.Flush(); err != nil && r == nil {
        r = err
      }
      if err := o.file.Close(); err != nil && r == nil {
        r = err
      }
    }
    return r
  }
  labelReader := NewLabelReader(labels)
  for i := 1; ; i++ {
    record, err1 := reader.ReadRecord()
    label,  err2 := labelReader.Read()
    if err1 == io.EOF && err2 == io.EOF {
      break
    }
    if err1 != nil && err1 != io.EOF {
      closeAll()
      return counts, err1
    }
    if err2 != nil && err2 != io.EOF {
      closeAll()
      return counts, err2
    }
    if err1 == io.EOF || err2 == io.EOF {
      closeAll()
      return counts, fmt.Errorf("SplitReads(): number of reads and labels differ (record %d)", i)
    }
    if strings.ContainsAny(label, "/\\") || label == "" || label == "." || label == ".." {
      closeAll()
      return counts, fmt.Errorf("SplitReads(): invalid label `%s' for record %d", label, i)
    }
    o, ok := outputs[label]
    if !ok {
      f, err := os.Create(filepath.Join(dir, label+".fasta"))
      if err != nil {
        closeAll()
        return counts, errors.Wrap(err, "splitting reads")
      }
      o = output{f, bufio.NewWriter(f)}
      outputs[label] = o
    }
    if err := WriteFastaRecord(o.writer, record); err != nil {
      closeAll()
      return counts, err
    }
    counts[label]++
  }
  return counts, closeAll()
}
