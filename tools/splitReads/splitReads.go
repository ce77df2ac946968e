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

package main

/* -------------------------------------------------------------------------- */

import   "os"
import   "sort"

import   "github.com/dustin/go-humanize"
import   "github.com/sirupsen/logrus"

import . "github.com/anuradhawick/MetaBCC-LR"
import   "github.com/anuradhawick/MetaBCC-LR/lib/cli"

/* -------------------------------------------------------------------------- */

func splitReads(config Config, logger *logrus.Logger, filenameReads, filenameLabels, dirOut string) {
  reader, err := NewFastxReader(filenameReads)
  if err != nil {
    logger.Fatal(err)
  }
  defer reader.Close()

  labels, err := os.Open(filenameLabels)
  if err != nil {
    logger.Fatal(err)
  }
  defer labels.Close()

  counts, err := SplitReads(reader, labels, dirOut)
  if err != nil {
    logger.Fatal(err)
  }
  names := make([]string, 0, len(counts))
  for name := range counts {
    names = append(names, name)
  }
  sort.Strings(names)
  for _, name := range names {
    logger.Infof("bin `%s': %s reads", name, humanize.Comma(int64(counts[name])))
  }
}

/* -------------------------------------------------------------------------- */

func main() {
  options := cli.New()

  options.SetParameters("<READS.fasta|fastq> <LABELS> <OUTPUT-DIRECTORY>")
  args := options.Parse(os.Args, 3, 3)

  config := options.Config()
  logger := options.Logger(config)

  splitReads(config, logger, args[0], args[1], args[2])
}
