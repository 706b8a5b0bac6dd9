// This file is part of Gopher6800.
//
// Gopher6800 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6800 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6800.  If not, see <https://www.gnu.org/licenses/>.

package instance_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher6800/hardware/instance"
	"github.com/jetsetilly/gopher6800/hardware/preferences"
	"github.com/jetsetilly/gopher6800/test"
)

func TestInstance(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	ins, err := instance.NewInstance(nil, p)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, ins.AllowLogging())

	ins.Label = instance.Comparison
	test.ExpectFailure(t, ins.AllowLogging())

	test.ExpectSuccess(t, p.RefreshRate.Set(60.0))
	ins.Normalise()
	test.ExpectEquality(t, p.RefreshRate.Get().(float64), preferences.DefaultRefreshRate)
	test.ExpectSuccess(t, ins.Random.ZeroSeed)
}
