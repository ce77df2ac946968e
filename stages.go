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

import   "io"

import   "github.com/pkg/errors"

/* -------------------------------------------------------------------------- */

// CountKmers adds all k-mers of all reads to the counting table. The
// table may be queried once this function returns.
func CountKmers(pipeline *Pipeline[[]byte], reader SequenceReader, table *CountingTable) error {
  if table.ReadOnly() {
    return errors.New("CountKmers(): counting table is read-only")
  }
  err := pipeline.Run(reader, func(threadId int, sequence []byte) ([]byte, error) {
    table.AddSequence(sequence)
    return nil, nil
  }, nil)
  return errors.Wrap(err, "counting k-mers")
}

/* -------------------------------------------------------------------------- */

// WriteProfiles computes the feature vector of every read and writes one
// line per read in input order.
func WriteProfiles(pipeline *Pipeline[[]byte], reader SequenceReader, builder FeatureBuilder, writer io.Writer) error {
  err := pipeline.Run(reader, func(threadId int, sequence []byte) ([]byte, error) {
    return FormatFeatureVector(builder.Build(sequence)), nil
  }, writer)
  return errors.Wrap(err, "computing profiles")
}

/* -------------------------------------------------------------------------- */

// AssignBins classifies every pair of profiles and writes one bin name
// per line in input order.
func AssignBins(pipeline *Pipeline[VectorPair], reader RecordReader[VectorPair], bins BinSet, writer io.Writer) error {
  err := pipeline.Run(reader, func(threadId int, pair VectorPair) ([]byte, error) {
    if name, err := bins.Classify(pair.Short, pair.Long); err != nil {
      return nil, err
    } else {
      return []byte(name), nil
    }
  }, writer)
  return errors.Wrap(err, "assigning reads to bins")
}
