/*
 * main.go, part of physconst.
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

//physconst is a little command-line frontend for the physconst library:
//it looks up CODATA constants by name and converts values between units.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "physconst",
	Short: "Look up CODATA physical constants and convert units",
	Long: `physconst prints CODATA 2018 physical constants (value, standard
uncertainty and unit) by their canonical names, and converts values
between units given as factors relative to a common base.

Examples:

  physconst get "speed of light in vacuum"
  physconst list mass
  physconst convert 140 pm angstrom
  physconst convert 1 atm 133.322368421
`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
