/*
 * conversion.go, part of physconst.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package physconst

//This provides useful conversion factors and other constants

import (
	"gonum.org/v1/gonum/floats"
)

//Conversions
const (
	Deg2Rad = 0.0174533
	Rad2Deg = 1 / 0.0174533
	H2Kcal  = 627.509 //Hartree 2 Kcal/mol
	Kcal2H  = 1 / 627.509
	H2eV    = 27.211386245988 //Hartree 2 eV
	EV2H    = 1 / 27.211386245988
	EV2J    = 1.602176634e-19
	J2eV    = 1 / 1.602176634e-19
	KJ2Kcal = 1 / 4.184
	Kcal2KJ = 4.184
	A2Bohr  = 1.889725989
	Bohr2A  = 1 / 1.889725989
)

//SI prefixes, as multiplicative factors relative to the base unit.
const (
	Yotta = 1e24
	Zetta = 1e21
	Exa   = 1e18
	Peta  = 1e15
	Tera  = 1e12
	Giga  = 1e9
	Mega  = 1e6
	Kilo  = 1e3
	Hecto = 1e2
	Deca  = 1e1
	Deci  = 1e-1
	Centi = 1e-2
	Milli = 1e-3
	Micro = 1e-6
	Nano  = 1e-9
	Pico  = 1e-12
	Femto = 1e-15
	Atto  = 1e-18
	Zepto = 1e-21
	Yocto = 1e-24
)

//Length units, as factors relative to the metre, for use with Convert.
const (
	Metre     = 1.0
	Angstrom  = 1e-10
	Nanometre = 1e-9
	Picometre = 1e-12
	BohrM     = 5.29177210903e-11 //the Bohr radius (atomic unit of length) in m
)

//Pressure units, as factors relative to the pascal, for use with Convert.
const (
	Pascal = 1.0
	Bar    = 1e5
	Atm    = 101325.0
	Torr   = 101325.0 / 760
)

//Others
const (
	CHDist = 1.098 //C(sp3)--H distance in A
)

//Convert rescales v, given in a unit with factor from relative to some base
//unit, to the unit with factor to relative to the same base. It panics on a
//zero target factor.
func Convert(v, from, to float64) float64 {
	if to == 0 {
		panic(ErrZeroFactor)
	}
	return v * from / to
}

//ConvertSlice converts every element of src as Convert does, into dst,
//which is allocated if nil. It panics if dst is non-nil and shorter
//than src, or on a zero target factor.
func ConvertSlice(dst, src []float64, from, to float64) []float64 {
	if to == 0 {
		panic(ErrZeroFactor)
	}
	if dst == nil {
		dst = make([]float64, len(src))
	}
	return floats.ScaleTo(dst, from/to, src)
}

//CelsiusToKelvin converts a temperature on the Celsius scale to kelvin.
//Temperature scale conversion is an offset, not a factor, so Convert
//can't do it.
func CelsiusToKelvin(c float64) float64 {
	return c + 273.15
}

//KelvinToCelsius converts a temperature in kelvin to the Celsius scale.
func KelvinToCelsius(k float64) float64 {
	return k - 273.15
}
