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

// Package soilpr simulates the daily soil water balance and the resulting
// soil penetration resistance in water-controlled environments
// (Souza et al., 2021).
//
// The water balance follows the point model of Rodríguez-Iturbe and
// Porporato as parameterized by Laio et al. (2001): the relative soil
// water content s of a root zone of depth Zr and porosity N is forced by
// daily rainfall and depleted by evapotranspiration and deep leakage,
// with saturation excess leaving the column as surface runoff. Soil
// penetration resistance is computed from s and the soil bulk density
// with the empirical model of Jakobsen and Dexter (1987).
//
// The model state is advanced one day at a time by composable
// DomainManipulator functions, with the sub-daily integration of the
// individual flux terms expressed as FluxManipulator functions.
package soilpr

// Version gives the model version.
const Version = "1.0.0"
