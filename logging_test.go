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

import   "bytes"
import   "testing"

import   "github.com/sirupsen/logrus"
import   "github.com/stretchr/testify/assert"

/* -------------------------------------------------------------------------- */

func TestLogger1(test *testing.T) {
  assert.Equal(test, logrus.WarnLevel,  NewLogger(0, nil).GetLevel())
  assert.Equal(test, logrus.InfoLevel,  NewLogger(1, nil).GetLevel())
  assert.Equal(test, logrus.DebugLevel, NewLogger(3, nil).GetLevel())

  var buffer bytes.Buffer
  logger := NewLogger(0, &buffer)
  logger.Info("hidden")
  logger.Warn("shown")
  assert.NotContains(test, buffer.String(), "hidden")
  assert.Contains   (test, buffer.String(), "shown")
}
