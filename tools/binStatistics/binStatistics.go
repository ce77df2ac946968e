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

import   "github.com/dustin/go-humanize"
import   "github.com/sirupsen/logrus"

import . "github.com/anuradhawick/MetaBCC-LR"
import   "github.com/anuradhawick/MetaBCC-LR/lib/cli"

/* -------------------------------------------------------------------------- */

func binStatistics(config Config, logger *logrus.Logger, filenameShort, filenameLong, filenameLabels, filenameOut string) {
  reader, err := OpenVectorPairReader(filenameShort, filenameLong)
  if err != nil {
    logger.Fatal(err)
  }
  defer reader.Close()

  labels, err := os.Open(filenameLabels)
  if err != nil {
    logger.Fatal(err)
  }
  defer labels.Close()

  stats, err := CollectBinStatistics(reader, labels)
  if err != nil {
    logger.Fatal(err)
  }
  bins := stats.Bins()
  for _, bin := range bins {
    logger.Infof("bin `%s': %s reads", bin.Name, humanize.Comma(int64(stats.Count(bin.Name))))
  }
  if err := bins.ExportStatistics(filenameOut); err != nil {
    logger.Fatal(err)
  }
  logger.Infof("wrote statistics of %d bins to `%s'", len(bins), filenameOut)
}

/* -------------------------------------------------------------------------- */

func main() {
  options := cli.New()

  options.SetParameters("<COMPOSITION-PROFILES> <ABUNDANCE-PROFILES> <LABELS> <OUTPUT>")
  args := options.Parse(os.Args, 4, 4)

  config := options.Config()
  logger := options.Logger(config)

  binStatistics(config, logger, args[0], args[1], args[2], args[3])
}
