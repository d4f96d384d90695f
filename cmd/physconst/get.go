/*
 * get.go, part of physconst.
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
	"strings"

	"github.com/rmera/physconst"
	"github.com/spf13/cobra"
)

var optValueOnly bool

var getCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Print a constant's value, uncertainty and unit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := physconst.Get(args[0])
		if err != nil {
			if physconst.IsUnknownConstant(err) {
				suggest(args[0])
			}
			return err
		}
		if optValueOnly {
			fmt.Printf("%g\n", c.Value)
			return nil
		}
		fmt.Println(c)
		return nil
	},
}

//suggest prints registered names containing any word of the failed query.
func suggest(query string) {
	words := strings.Fields(strings.ToLower(query))
	printed := 0
	for _, name := range physconst.Names() {
		for _, w := range words {
			if strings.Contains(strings.ToLower(name), w) {
				fmt.Println("  did you mean:", name)
				printed++
				break
			}
		}
		if printed >= 5 {
			break
		}
	}
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().BoolVar(&optValueOnly, "value", false, "print only the numeric value")
}
