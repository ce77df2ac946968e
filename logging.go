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

import   "github.com/sirupsen/logrus"

/* -------------------------------------------------------------------------- */

// NewLogger maps the verbosity level of the tools onto log levels:
// 0 shows warnings, -v progress information and -vv batch details.
func NewLogger(verbose int, writer io.Writer) *logrus.Logger {
  logger := logrus.New()
  logger.SetOutput(writer)
  logger.SetFormatter(&logrus.TextFormatter{
    DisableColors   : true,
    FullTimestamp   : true,
    TimestampFormat : "2006-01-02 15:04:05" })
  switch {
  case verbose <= 0: logger.SetLevel(logrus.WarnLevel)
  case verbose == 1: logger.SetLevel(logrus.InfoLevel)
  default          : logger.SetLevel(logrus.DebugLevel)
  }
  return logger
}

func loggerOrDefault(logger logrus.FieldLogger) logrus.FieldLogger {
  if logger == nil {
    return logrus.StandardLogger()
  }
  return logger
}
