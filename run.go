/*
Copyright © 2020 the SoilPR authors.
This file is part of SoilPR.

SoilPR is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

SoilPR is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with SoilPR.  If not, see <http://www.gnu.org/licenses/>.
*/

package soilpr

import (
	"fmt"
	"io"
	"time"
)

// Log returns a function that writes simulation status messages to w.
// It should run after Calculations so that the day's record is
// available.
func Log(w io.Writer) DomainManipulator {
	startTime := time.Now()
	return func(m *Model) error {
		if len(m.Records) == 0 {
			return nil
		}
		r := m.Records[len(m.Records)-1]
		fmt.Fprintf(w, "Day %-5d walltime=%6.3gs  rain=%6.4g cm  s=%.4f  ET=%6.4g cm  Lk=%6.4g cm  Q=%6.4g cm\n",
			m.Day+1, time.Since(startTime).Seconds(), r.Rain, r.S, r.ET, r.Lk, r.Q)
		return nil
	}
}
