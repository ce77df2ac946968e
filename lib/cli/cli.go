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

// Package cli contains the command line options shared by all tools.
package cli

/* -------------------------------------------------------------------------- */

import   "fmt"
import   "os"
import   "strconv"

import   "github.com/pborman/getopt"
import   "github.com/sirupsen/logrus"

import . "github.com/anuradhawick/MetaBCC-LR"

/* -------------------------------------------------------------------------- */

// Options wraps a getopt set with the options common to all tools. Numeric
// options default to zero, which keeps the value from the configuration.
type Options struct {
  *getopt.Set
  optConfig    *string
  optThreads   *int
  optBatchSize *int
  optHighWater *int
  optVerbose   *int
  optHelp      *bool
}

/* -------------------------------------------------------------------------- */

func New() *Options {
  options := getopt.New()
  return &Options{
    Set         : options,
    optConfig   : options. StringLong("config",     0 , "", "configuration file in TOML format"),
    optThreads  : options.    IntLong("threads",    0 ,  0, "number of threads [default: 8]"),
    optBatchSize: options.    IntLong("batch-size", 0 ,  0, "number of reads per batch [default: 10000]"),
    optHighWater: options.    IntLong("high-water", 0 ,  0, "maximum number of queued reads [default: 50000]"),
    optVerbose  : options.CounterLong("verbose",   'v',     "verbose level [-v or -vv]"),
    optHelp     : options.   BoolLong("help",      'h',     "print help") }
}

/* -------------------------------------------------------------------------- */

// Parse the command line and return the positional arguments. Prints the
// usage and exits if help is requested or the number of arguments is not
// in [nMin, nMax].
func (obj *Options) Parse(args []string, nMin, nMax int) []string {
  obj.Set.Parse(args)
  if *obj.optHelp {
    obj.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if n := len(obj.Args()); n < nMin || n > nMax {
    obj.Usage()
  }
  return obj.Args()
}

func (obj *Options) Usage() {
  obj.PrintUsage(os.Stderr)
  os.Exit(1)
}

/* -------------------------------------------------------------------------- */

// Config returns the default configuration, updated by the configuration
// file and the common command line options.
func (obj *Options) Config() Config {
  config := DefaultConfig()
  if *obj.optConfig != "" {
    if err := config.ImportConfig(*obj.optConfig); err != nil {
      logrus.Fatal(err)
    }
  }
  SetInt(&config.Threads,   *obj.optThreads)
  SetInt(&config.BatchSize, *obj.optBatchSize)
  SetInt(&config.HighWater, *obj.optHighWater)
  if *obj.optVerbose > 0 {
    config.Verbose = *obj.optVerbose
  }
  return config
}

// Logger validates the final configuration and returns a logger for
// its verbosity level.
func (obj *Options) Logger(config Config) *logrus.Logger {
  logger := NewLogger(config.Verbose, os.Stderr)
  if err := config.Validate(); err != nil {
    logger.Fatal(err)
  }
  return logger
}

/* -------------------------------------------------------------------------- */

// SetInt overrides dst if the option was given.
func SetInt(dst *int, value int) {
  if value > 0 {
    *dst = value
  }
}

// SetFloat parses and overrides dst if the option was given.
func SetFloat(dst *float64, value string) error {
  if value == "" {
    return nil
  }
  if v, err := strconv.ParseFloat(value, 64); err != nil {
    return fmt.Errorf("invalid number `%s'", value)
  } else {
    *dst = v
  }
  return nil
}

// SetPolicy parses and overrides dst if the option was given.
func SetPolicy(dst *CountingPolicy, value string) error {
  if value == "" {
    return nil
  }
  if p, err := ParseCountingPolicy(value); err != nil {
    return err
  } else {
    *dst = p
  }
  return nil
}
