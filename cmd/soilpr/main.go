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

// Command soilpr is a command-line interface for the SoilPR soil water
// balance and penetration resistance model.
package main

import (
	"fmt"
	"os"

	"github.com/soilmodel/soilpr/soilprutil"
)

func main() {
	if err := soilprutil.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
