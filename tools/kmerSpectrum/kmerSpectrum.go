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
import   "fmt"
import   "os"

import   "github.com/dustin/go-humanize"
import   "github.com/sirupsen/logrus"

import   "gonum.org/v1/plot"
import   "gonum.org/v1/plot/plotter"
import   "gonum.org/v1/plot/plotutil"
import   "gonum.org/v1/plot/vg"

import . "github.com/anuradhawick/MetaBCC-LR"
import   "github.com/anuradhawick/MetaBCC-LR/lib/cli"
import   "github.com/anuradhawick/MetaBCC-LR/lib/progress"

/* -------------------------------------------------------------------------- */

func saveSpectrumPlot(logger *logrus.Logger, spectrum KmerSpectrum, filename string) {
  xy := plotter.XYs{}
  // skip empty entries on the logarithmic scale
  for i := 1; i < len(spectrum); i++ {
    if spectrum[i] > 0 {
      xy = append(xy, plotter.XY{X: float64(i), Y: float64(spectrum[i])})
    }
  }
  if len(xy) == 0 {
    logger.Warn("k-mer spectrum is empty, not writing plot")
    return
  }
  p := plot.New()
  p.Title.Text  = "K-mer spectrum"
  p.X.Label.Text = "count"
  p.Y.Label.Text = "number of k-mers"
  p.Y.Scale       = plot.LogScale{}
  p.Y.Tick.Marker = plot.LogTicks{}

  if err := plotutil.AddLines(p, xy); err != nil {
    logger.Fatal(err)
  }
  if err := p.Save(8*vg.Inch, 4*vg.Inch, filename); err != nil {
    logger.Fatal(err)
  }
  logger.Infof("wrote k-mer spectrum plot to `%s'", filename)
}

/* -------------------------------------------------------------------------- */

func kmerSpectrum(config Config, logger *logrus.Logger, filenameTable, filenameOut, filenamePlot string, maxCount int, useMmap bool) {
  var table *CountingTable
  var err   error
  if useMmap {
    table, err = MapCountingTable(filenameTable, config.Policy)
  } else {
    table, err = ImportCountingTable(filenameTable, config.Policy)
  }
  if err != nil {
    logger.Fatal(err)
  }
  defer table.Close()
  logger.Infof("read counting table for %d-mers with %s slots", table.K(), humanize.Comma(int64(table.Len())))

  var callback func(i, n int)
  if config.Verbose > 0 {
    p := progress.New(table.Len(), 100)
    callback = func(i, n int) {
      p.PrintStderr(i)
    }
  }
  spectrum := table.Spectrum(maxCount, callback)
  logger.Infof("counting table contains %s distinct k-mers", humanize.Comma(int64(table.Distinct())))

  if filenameOut == "" {
    writer := bufio.NewWriter(os.Stdout)
    if err := spectrum.WriteSpectrum(writer); err != nil {
      logger.Fatal(err)
    }
    if err := writer.Flush(); err != nil {
      logger.Fatal(err)
    }
  } else {
    if err := spectrum.ExportSpectrum(filenameOut); err != nil {
      logger.Fatal(err)
    }
    logger.Infof("wrote k-mer spectrum to `%s'", filenameOut)
  }
  if filenamePlot != "" {
    saveSpectrumPlot(logger, spectrum, filenamePlot)
  }
}

/* -------------------------------------------------------------------------- */

func main() {
  options := cli.New()

  optMaxCount := options.   IntLong("max-count", 0, 1000, "largest count with its own spectrum entry")
  optPolicy   := options.StringLong("policy",    0, "",   "counting policy of the table: dual or canonical [default: dual]")
  optPlot     := options.StringLong("plot",      0, "",   "save a plot of the spectrum to the given file (pdf, png, svg)")
  optMmap     := options.  BoolLong("mmap",      0,       "map the counting table into memory")

  options.SetParameters("<TABLE> [<OUTPUT>]")
  args := options.Parse(os.Args, 1, 2)

  config := options.Config()
  if err := cli.SetPolicy(&config.Policy, *optPolicy); err != nil {
    fmt.Fprintln(os.Stderr, err)
    options.Usage()
  }
  logger := options.Logger(config)

  if *optMaxCount < 1 {
    logger.Fatal("option `--max-count' must be positive")
  }
  filenameOut := ""
  if len(args) == 2 {
    filenameOut = args[1]
  }
  kmerSpectrum(config, logger, args[0], filenameOut, *optPlot, *optMaxCount, *optMmap)
}
