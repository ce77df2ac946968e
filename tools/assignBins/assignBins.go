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

import   "bufio"
import   "os"

import   "github.com/sirupsen/logrus"

import . "github.com/anuradhawick/MetaBCC-LR"
import   "github.com/anuradhawick/MetaBCC-LR/lib/cli"
import   "github.com/anuradhawick/MetaBCC-LR/lib/progress"

/* -------------------------------------------------------------------------- */

func assignBins(config Config, logger *logrus.Logger, filenameShort, filenameLong, filenameStats, filenameOut string) {
  bins, err := ImportBins(filenameStats)
  if err != nil {
    logger.Fatal(err)
  }
  logger.Infof("read statistics of %d bins from `%s'", len(bins), filenameStats)

  reader, err := OpenVectorPairReader(filenameShort, filenameLong)
  if err != nil {
    logger.Fatal(err)
  }
  defer reader.Close()

  // truncate output, batches are appended below
  f, err := os.Create(filenameOut)
  if err != nil {
    logger.Fatal(err)
  }
  defer f.Close()
  writer := bufio.NewWriter(f)

  pipeline := NewPipeline[VectorPair](config, logger)
  if config.Verbose > 0 {
    pipeline.Progress = progress.NewCounter("Loaded profiles", 10000)
  }
  if err := AssignBins(pipeline, reader, bins, writer); err != nil {
    logger.Fatal(err)
  }
  if err := writer.Flush(); err != nil {
    logger.Fatal(err)
  }
  logger.Infof("wrote bin assignments to `%s'", filenameOut)
}

/* -------------------------------------------------------------------------- */

func main() {
  options := cli.New()

  options.SetParameters("<COMPOSITION-PROFILES> <ABUNDANCE-PROFILES> <STATISTICS> <OUTPUT>")
  args := options.Parse(os.Args, 4, 4)

  config := options.Config()
  logger := options.Logger(config)

  assignBins(config, logger, args[0], args[1], args[2], args[3])
}
