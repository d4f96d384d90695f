/*
 * physconst_test.go, part of physconst.
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
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

//TestRegistry checks the invariants of every registered constant: the value
//is finite and non-NaN, the uncertainty non-negative and the unit non-empty.
func TestRegistry(Te *testing.T) {
	names := Names()
	if len(names) == 0 {
		Te.Fatal("empty registry")
	}
	fmt.Println("constants registered:", len(names))
	for _, name := range names {
		c, err := Get(name)
		if err != nil {
			Te.Error(err)
			continue
		}
		if math.IsNaN(c.Value) || math.IsInf(c.Value, 0) {
			Te.Errorf("%s: value not finite: %v", name, c.Value)
		}
		if c.Uncertainty < 0 {
			Te.Errorf("%s: negative uncertainty: %v", name, c.Uncertainty)
		}
		if c.Unit == "" {
			Te.Errorf("%s: empty unit", name)
		}
		v, err := Value(name)
		if err != nil {
			Te.Error(err)
		}
		if v != c.Value {
			Te.Errorf("%s: Value and Get disagree: %v vs %v", name, v, c.Value)
		}
	}
}

//TestSpotValues checks a few entries against the CODATA 2018 numbers.
func TestSpotValues(Te *testing.T) {
	v, err := Value("speed of light in vacuum")
	if err != nil {
		Te.Error(err)
	}
	if v != 299792458.0 {
		Te.Errorf("speed of light: got %v", v)
	}
	v, err = Value("Avogadro constant")
	if err != nil {
		Te.Error(err)
	}
	if v != NA {
		Te.Errorf("Avogadro constant: registry %v vs constant %v", v, NA)
	}
	c, err := Get("electron mass")
	if err != nil {
		Te.Error(err)
	}
	fmt.Println(c)
	if !c.Agrees(9.1093837015e-31, 1) {
		Te.Errorf("electron mass: got %v", c.Value)
	}
	if c.Unit != "kg" {
		Te.Errorf("electron mass: unit %q", c.Unit)
	}
	if c.Exact() {
		Te.Error("electron mass reported as exact")
	}
}

//TestExactEntries checks that the defining constants are marked exact in
//the registry and match the direct Go constants.
func TestExactEntries(Te *testing.T) {
	direct := map[string]float64{
		"speed of light in vacuum": C,
		"Planck constant":          H,
		"elementary charge":        E,
		"Boltzmann constant":       KB,
		"Avogadro constant":        NA,
		"molar gas constant":       R,
		"Faraday constant":         F,
	}
	for name, want := range direct {
		c, err := Get(name)
		if err != nil {
			Te.Error(err)
			continue
		}
		if !c.Exact() {
			Te.Errorf("%s: not marked exact", name)
		}
		if !scalar.EqualWithinAbsOrRel(c.Value, want, 1e-300, 1e-12) {
			Te.Errorf("%s: registry %v vs constant %v", name, c.Value, want)
		}
		if c.Relative() != 0 {
			Te.Errorf("%s: exact constant with relative uncertainty %v", name, c.Relative())
		}
	}
}

func TestUnknownConstant(Te *testing.T) {
	_, err := Value("unknown_xyz")
	if err == nil {
		Te.Fatal("lookup of unknown_xyz did not fail")
	}
	if !IsUnknownConstant(err) {
		Te.Errorf("error not recognized as unknown-constant: %v", err)
	}
	fmt.Println("expected failure:", err)
	_, err = Get("unknown_xyz")
	if !IsUnknownConstant(err) {
		Te.Errorf("Get error not recognized as unknown-constant: %v", err)
	}
}

func TestAccessors(Te *testing.T) {
	pairs := []struct {
		got  float64
		name string
	}{
		{ElectronMass(), "electron mass"},
		{ProtonMass(), "proton mass"},
		{NeutronMass(), "neutron mass"},
		{AtomicMassUnit(), "unified atomic mass unit"},
		{BohrRadius(), "Bohr radius"},
		{HartreeEnergy(), "Hartree energy"},
		{FineStructure(), "fine-structure constant"},
		{Gravitational(), "Newtonian constant of gravitation"},
		{VacuumPermittivity(), "vacuum electric permittivity"},
		{Rydberg(), "Rydberg constant"},
	}
	for _, p := range pairs {
		v, err := Value(p.name)
		if err != nil {
			Te.Error(err)
			continue
		}
		if v != p.got {
			Te.Errorf("%s: accessor %v vs registry %v", p.name, p.got, v)
		}
	}
}

//TestAgrees exercises the uncertainty comparison on a measured constant.
func TestAgrees(Te *testing.T) {
	g, err := Get("Newtonian constant of gravitation")
	if err != nil {
		Te.Fatal(err)
	}
	if !g.Agrees(g.Value+g.Uncertainty, 1) {
		Te.Error("value one sigma away rejected at nsigma=1")
	}
	if g.Agrees(g.Value+3*g.Uncertainty, 2) {
		Te.Error("value three sigmas away accepted at nsigma=2")
	}
	if g.Relative() <= 0 {
		Te.Errorf("measured constant with relative uncertainty %v", g.Relative())
	}
}

func TestCopy(Te *testing.T) {
	c, err := Get("proton mass")
	if err != nil {
		Te.Fatal(err)
	}
	c2 := c.Copy()
	c2.Value = 42
	c2.Unit = "bananas"
	again, err := Get("proton mass")
	if err != nil {
		Te.Fatal(err)
	}
	if again.Value == 42 || again.Unit == "bananas" {
		Te.Error("mutating a copy reached the registry")
	}
	//Get itself must also return copies
	c.Value = -1
	again, _ = Get("proton mass")
	if again.Value == -1 {
		Te.Error("mutating a Get result reached the registry")
	}
}
