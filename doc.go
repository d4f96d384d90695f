/*
 * doc.go, part of physconst.
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

/*Package physconst provides CODATA physical constants and unit conversion
factors for chemistry calculations.


    **physconst Capabilities**


    Looks up any of the embedded CODATA 2018 constants by its canonical name,
	returning the accepted value together with its unit and standard
	uncertainty.

    Direct Go constants for the SI defining constants (speed of light, Planck,
	elementary charge, Boltzmann, Avogadro...) and the exact quantities
	derived from them, so the common cases need no lookup and no error
	handling.

    Multiplicative unit conversion between any two units expressed as factors
	relative to a common base (SI prefixes, lengths, energies, pressures),
	for scalars and for slices.

    Uncertainty helpers to compare a computed or measured value against a
	constant's accepted value within some number of standard uncertainties.


The constants table is embedded in the library (gzip-compressed CODATA text)
and parsed once at startup. After that the registry is never written to, so
any number of goroutines may query it concurrently without synchronization.

Elemental (periodic-table) properties are deliberately not included; they
belong to a separate library.*/
package physconst
