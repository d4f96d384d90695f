/*
 * convert.go, part of physconst.
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

package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rmera/physconst"
	"github.com/spf13/cobra"
)

//Named factors accepted in place of a number. Factors only relate units of
//the same dimension; mixing, say, pm with atm is on the user.
var factors = map[string]float64{
	//length, base m
	"m":        physconst.Metre,
	"angstrom": physconst.Angstrom,
	"nm":       physconst.Nanometre,
	"pm":       physconst.Picometre,
	"bohr":     physconst.BohrM,
	//pressure, base Pa
	"pa":   physconst.Pascal,
	"bar":  physconst.Bar,
	"atm":  physconst.Atm,
	"torr": physconst.Torr,
	//energy, base J
	"j":       1.0,
	"kj":      physconst.Kilo,
	"cal":     physconst.Kcal2KJ,
	"kcal":    physconst.Kcal2KJ * physconst.Kilo,
	"ev":      physconst.EV2J,
	"hartree": physconst.EV2J * physconst.H2eV,
	//angle, base rad
	"rad": 1.0,
	"deg": physconst.Deg2Rad,
}

var convertCmd = &cobra.Command{
	Use:   "convert <value> <from> <to>",
	Short: "Convert a value between two units of the same dimension",
	Long: `convert rescales a value between units given either as known factor
names (run "physconst factors" for the list) or as explicit numeric factors
relative to a common base unit.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("bad value %q: %v", args[0], err)
		}
		from, err := parseFactor(args[1])
		if err != nil {
			return err
		}
		to, err := parseFactor(args[2])
		if err != nil {
			return err
		}
		if to == 0 {
			return fmt.Errorf("target factor must be non-zero")
		}
		fmt.Printf("%g\n", physconst.Convert(v, from, to))
		return nil
	},
}

func parseFactor(s string) (float64, error) {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, nil
	}
	if f, ok := factors[strings.ToLower(s)]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("unknown unit %q, not a number and not a known factor name", s)
}

var factorsCmd = &cobra.Command{
	Use:   "factors",
	Short: "List the unit factor names convert understands",
	Run: func(cmd *cobra.Command, args []string) {
		names := make([]string, 0, len(factors))
		for k := range factors {
			names = append(names, k)
		}
		sort.Strings(names)
		for _, k := range names {
			fmt.Printf("%-10s %g\n", k, factors[k])
		}
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(factorsCmd)
}
