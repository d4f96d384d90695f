/*
 * physconst.go, part of physconst.
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

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

//Constant is one entry of the registry: a physical constant's accepted
//value together with its unit and standard uncertainty. Exact constants
//have uncertainty 0. Dimensionless constants have the unit "dimensionless".
type Constant struct {
	Name        string
	Value       float64
	Uncertainty float64
	Unit        string
}

//Constant methods

//Copy returns a copy of the Constant object.
func (C *Constant) Copy() *Constant {
	if C == nil {
		panic("attempted to copy a nil constant")
	}
	ret := new(Constant)
	ret.Name = C.Name
	ret.Value = C.Value
	ret.Uncertainty = C.Uncertainty
	ret.Unit = C.Unit
	return ret
}

//Exact returns true if the constant's value is exact by definition.
func (C *Constant) Exact() bool {
	return C.Uncertainty == 0
}

//Relative returns the relative standard uncertainty of the constant,
//0 for exact constants.
func (C *Constant) Relative() float64 {
	if C.Uncertainty == 0 {
		return 0
	}
	return C.Uncertainty / math.Abs(C.Value)
}

//Agrees returns true if v lies within nsigma standard uncertainties of the
//constant's accepted value. For exact constants it becomes a floating-point
//equality check within roundoff.
func (C *Constant) Agrees(v, nsigma float64) bool {
	if C.Uncertainty == 0 {
		return scalar.EqualWithinAbsOrRel(v, C.Value, 1e-300, 1e-12)
	}
	return math.Abs(v-C.Value) <= nsigma*C.Uncertainty
}

func (C *Constant) String() string {
	if C.Uncertainty == 0 {
		return fmt.Sprintf("%s: %g %s (exact)", C.Name, C.Value, C.Unit)
	}
	return fmt.Sprintf("%s: %g +/- %g %s", C.Name, C.Value, C.Uncertainty, C.Unit)
}

//The SI defining constants (2019 redefinition) and the exact quantities
//derived from them, as plain Go constants. For anything else, or when the
//unit and uncertainty are needed, use Value or Get.
const (
	C    = 299792458.0     //speed of light in vacuum, m s^-1
	H    = 6.62607015e-34  //Planck constant, J Hz^-1
	Hbar = 1.054571817e-34 //reduced Planck constant, J s
	E    = 1.602176634e-19 //elementary charge, C
	KB   = 1.380649e-23    //Boltzmann constant, J K^-1
	NA   = 6.02214076e23   //Avogadro constant, mol^-1
	R    = 8.314462618     //molar gas constant, J mol^-1 K^-1
	F    = 96485.33212     //Faraday constant, C mol^-1
	Gn   = 9.80665         //standard acceleration of gravity, m s^-2
)

//Accessors for the common measured constants. These query the registry by
//the CODATA name; as the table is embedded, a registry miss here is a bug
//in the library, and panics.

//ElectronMass returns the electron mass in kg.
func ElectronMass() float64 {
	return mustValue("electron mass")
}

//ProtonMass returns the proton mass in kg.
func ProtonMass() float64 {
	return mustValue("proton mass")
}

//NeutronMass returns the neutron mass in kg.
func NeutronMass() float64 {
	return mustValue("neutron mass")
}

//AtomicMassUnit returns the unified atomic mass unit (Dalton) in kg.
func AtomicMassUnit() float64 {
	return mustValue("unified atomic mass unit")
}

//BohrRadius returns the Bohr radius in m.
func BohrRadius() float64 {
	return mustValue("Bohr radius")
}

//HartreeEnergy returns the Hartree energy in J.
func HartreeEnergy() float64 {
	return mustValue("Hartree energy")
}

//FineStructure returns the fine-structure constant (dimensionless).
func FineStructure() float64 {
	return mustValue("fine-structure constant")
}

//Gravitational returns the Newtonian constant of gravitation
//in m^3 kg^-1 s^-2.
func Gravitational() float64 {
	return mustValue("Newtonian constant of gravitation")
}

//VacuumPermittivity returns the vacuum electric permittivity in F m^-1.
func VacuumPermittivity() float64 {
	return mustValue("vacuum electric permittivity")
}

//Rydberg returns the Rydberg constant in m^-1.
func Rydberg() float64 {
	return mustValue("Rydberg constant")
}
