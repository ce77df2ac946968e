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
import   "io"

import   "github.com/pkg/errors"
import   "github.com/shenwei356/bio/seq"
import   "github.com/shenwei356/bio/seqio/fastx"

/* -------------------------------------------------------------------------- */

// RecordReader yields one record at a time and returns io.EOF once the
// source is exhausted.
type RecordReader[T any] interface {
  Read() (T, error)
}

type SequenceReader = RecordReader[[]byte]

/* -------------------------------------------------------------------------- */

type SequenceRecord struct {
  Name     string
  Sequence []byte
}

/* -------------------------------------------------------------------------- */

// FastxReader streams records from a FASTA or FASTQ file, which may be
// gzip compressed. Sequences are copied, the caller owns every returned
// slice.
type FastxReader struct {
  reader  *fastx.Reader
  filename string
}

func NewFastxReader(filename string) (*FastxReader, error) {
  // sequences are scanned by the k-mer codec, which handles any
  // character outside of the nucleotide alphabet
  seq.ValidateSeq = false
  r, err := fastx.NewDefaultReader(filename)
  if err != nil {
    return nil, errors.Wrapf(err, "opening sequence file `%s'", filename)
  }
  return &FastxReader{reader: r, filename: filename}, nil
}

/* -------------------------------------------------------------------------- */

func (obj *FastxReader) ReadRecord() (SequenceRecord, error) {
  record, err := obj.reader.Read()
  if err != nil {
    if err == io.EOF {
      return SequenceRecord{}, io.EOF
    }
    return SequenceRecord{}, errors.Wrapf(err, "reading sequence file `%s'", obj.filename)
  }
  s := make([]byte, len(record.Seq.Seq))
  copy(s, record.Seq.Seq)
  return SequenceRecord{Name: string(record.Name), Sequence: s}, nil
}

func (obj *FastxReader) Read() ([]byte, error) {
  r, err := obj.ReadRecord()
  return r.Sequence, err
}

func (obj *FastxReader) Close() {
  obj.reader.Close()
}

/* -------------------------------------------------------------------------- */

type SequenceSliceReader struct {
  records []SequenceRecord
  i       int
}

func NewSequenceSliceReader(sequences ...string) *SequenceSliceReader {
  r := SequenceSliceReader{}
  for i, s := range sequences {
    r.records = append(r.records, SequenceRecord{Name: fmt.Sprintf("read%d", i+1), Sequence: []byte(s)})
  }
  return &r
}

func (obj *SequenceSliceReader) ReadRecord() (SequenceRecord, error) {
  if obj.i >= len(obj.records) {
    return SequenceRecord{}, io.EOF
  }
  r := obj.records[obj.i]
  obj.i++
  s := make([]byte, len(r.Sequence))
  copy(s, r.Sequence)
  return SequenceRecord{Name: r.Name, Sequence: s}, nil
}

func (obj *SequenceSliceReader) Read() ([]byte, error) {
  r, err := obj.ReadRecord()
  return r.Sequence, err
}

/* -------------------------------------------------------------------------- */

type SequenceRecordReader interface {
  ReadRecord() (SequenceRecord, error)
}

func WriteFastaRecord(writer io.Writer, record SequenceRecord) error {
  if _, err := fmt.Fprintf(writer, ">%s\n%s\n", record.Name, record.Sequence); err != nil {
    return err
  }
  return nil
}
