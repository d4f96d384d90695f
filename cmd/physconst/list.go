/*
 * list.go, part of physconst.
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

var optLong bool

var listCmd = &cobra.Command{
	Use:   "list [substring]",
	Short: "List registered constant names, optionally filtered",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := ""
		if len(args) > 0 {
			filter = strings.ToLower(args[0])
		}
		n := 0
		for _, name := range physconst.Names() {
			if filter != "" && !strings.Contains(strings.ToLower(name), filter) {
				continue
			}
			if optLong {
				c, err := physconst.Get(name)
				if err != nil {
					return err
				}
				fmt.Println(c)
			} else {
				fmt.Println(name)
			}
			n++
		}
		if n == 0 {
			return fmt.Errorf("no constant matches %q", filter)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVarP(&optLong, "long", "l", false, "also print values, uncertainties and units")
}
