/*
 * codata.go, part of physconst.
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
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

//The table is the NIST "allascii" fixed-column text, abridged to the
//constants a chemistry course actually touches, and gzipped.
//
//go:embed data/codata2018.txt.gz
var codataGz []byte

//The registry. Built once by init from the embedded table and never
//written to afterwards, so concurrent readers need no locking.
var constants map[string]*Constant

func init() {
	var err error
	constants, err = parseCODATA(codataGz)
	if err != nil {
		panic(fmt.Sprintf("%s: %s", ErrBadTable.Error(), err.Error()))
	}
}

//Column layout of the NIST file: quantity name, then value, uncertainty
//and unit fields of 25 characters each.
const (
	colValue = 60
	colUncer = 85
	colUnit  = 110
)

//parseCODATA reads the gzipped fixed-column CODATA listing and returns the
//name->constant map. It fails on duplicate names, non-finite values,
//negative uncertainties and other table corruption, as a bad embedded table
//means the library itself is broken.
func parseCODATA(gzdata []byte) (map[string]*Constant, error) {
	zr, err := gzip.NewReader(bytes.NewReader(gzdata))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	ret := make(map[string]*Constant)
	scanner := bufio.NewScanner(zr)
	indata := false
	for scanner.Scan() {
		line := scanner.Text()
		//Everything up to the all-dashes separator is header.
		if !indata {
			if strings.HasPrefix(line, "----") {
				indata = true
			}
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if len(line) <= colValue {
			return nil, fmt.Errorf("truncated line: %q", line)
		}
		c, err := parseEntry(line)
		if err != nil {
			return nil, err
		}
		if _, ok := ret[c.Name]; ok {
			return nil, fmt.Errorf("duplicate constant %q", c.Name)
		}
		ret[c.Name] = c
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(ret) == 0 {
		return nil, fmt.Errorf("no constants found")
	}
	return ret, nil
}

func parseEntry(line string) (*Constant, error) {
	c := new(Constant)
	c.Name = strings.TrimSpace(line[:colValue])
	if c.Name == "" {
		return nil, fmt.Errorf("entry with empty name: %q", line)
	}
	v, err := parseNumber(field(line, colValue, colUncer))
	if err != nil {
		return nil, fmt.Errorf("constant %q: bad value: %v", c.Name, err)
	}
	c.Value = v
	ufield := strings.TrimSpace(field(line, colUncer, colUnit))
	if ufield == "(exact)" {
		c.Uncertainty = 0
	} else {
		u, err := parseNumber(ufield)
		if err != nil {
			return nil, fmt.Errorf("constant %q: bad uncertainty: %v", c.Name, err)
		}
		c.Uncertainty = u
	}
	c.Unit = strings.TrimSpace(field(line, colUnit, len(line)))
	if c.Unit == "" {
		c.Unit = "dimensionless"
	}
	if math.IsNaN(c.Value) || math.IsInf(c.Value, 0) {
		return nil, fmt.Errorf("constant %q: value not finite", c.Name)
	}
	if c.Uncertainty < 0 {
		return nil, fmt.Errorf("constant %q: negative uncertainty", c.Name)
	}
	return c, nil
}

func field(line string, from, to int) string {
	if from >= len(line) {
		return ""
	}
	if to > len(line) {
		to = len(line)
	}
	return line[from:to]
}

//parseNumber parses a number in the NIST notation, where digits come in
//space-separated groups ("299 792 458"), truncated decimals carry a
//trailing "..." and the exponent may be separated from the mantissa
//("6.644 657 3357 e-27").
func parseNumber(s string) (float64, error) {
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "...", "")
	return strconv.ParseFloat(s, 64)
}

//Value returns the accepted numeric value for the constant with the given
//CODATA name. It fails if the name is not registered.
func Value(name string) (float64, error) {
	c, ok := constants[name]
	if !ok {
		return 0, errDecorate(unknownConstant(name), "Value")
	}
	return c.Value, nil
}

//Get returns the full entry (value, unit, standard uncertainty) for the
//constant with the given CODATA name. It fails if the name is not
//registered. The returned entry is a copy, so the caller can't corrupt
//the registry.
func Get(name string) (*Constant, error) {
	c, ok := constants[name]
	if !ok {
		return nil, errDecorate(unknownConstant(name), "Get")
	}
	ret := *c
	return &ret, nil
}

//Names returns the names of all registered constants, sorted.
func Names() []string {
	ret := make([]string, 0, len(constants))
	for k := range constants {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

//mustValue is for the library's own accessors, where the name is known at
//compile time, so a miss means the embedded table is broken.
func mustValue(name string) float64 {
	c, ok := constants[name]
	if !ok {
		panic(fmt.Sprintf("%s: missing %q", ErrBadTable.Error(), name))
	}
	return c.Value
}
