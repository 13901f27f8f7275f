// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package natural

import (
	"cmp"
	"slices"
	"unicode"
)

// IsSeparator reports whether r is elided during comparison.
func IsSeparator(r rune) bool {
	return r == ' ' || r == '_' || r == '-' || r == '.'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Compare returns -1, 0 or +1 depending on whether a sorts before, together
// with, or after b in natural order.
//
// Digit runs compare by magnitude first and by run length second, so "2"
// sorts before "02". When one name runs out, the name with fewer runes
// remaining at its cursor sorts first. Names that differ only in their
// separators compare equal.
func Compare(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	i, j := 0, 0
	na, nb := len(ra), len(rb)

	for i < na && j < nb {
		for i < na && IsSeparator(ra[i]) {
			i++
		}
		for j < nb && IsSeparator(rb[j]) {
			j++
		}
		if i >= na || j >= nb {
			break
		}

		if isDigit(ra[i]) && isDigit(rb[j]) {
			ei := digitRunEnd(ra, i)
			ej := digitRunEnd(rb, j)
			if c := compareMagnitude(ra[i:ei], rb[j:ej]); c != 0 {
				return c
			}
			if c := cmp.Compare(ei-i, ej-j); c != 0 {
				return c
			}
			i, j = ei, ej
			continue
		}

		ca, cb := unicode.ToLower(ra[i]), unicode.ToLower(rb[j])
		if ca != cb {
			return cmp.Compare(ca, cb)
		}
		i++
		j++
	}

	return cmp.Compare(na-i, nb-j)
}

// Less reports whether a sorts strictly before b.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// Rank returns a copy of names sorted in natural order. Names that compare
// equal keep their input order.
func Rank(names []string) []string {
	ranked := make([]string, len(names))
	copy(ranked, names)
	slices.SortStableFunc(ranked, Compare)
	return ranked
}

func digitRunEnd(r []rune, start int) int {
	end := start
	for end < len(r) && isDigit(r[end]) {
		end++
	}
	return end
}

// compareMagnitude compares two runs of ASCII digits by numeric value.
// Runs of any length are handled; nothing is parsed into an integer.
func compareMagnitude(a, b []rune) int {
	a = trimLeadingZeros(a)
	b = trimLeadingZeros(b)
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	return slices.Compare(a, b)
}

func trimLeadingZeros(r []rune) []rune {
	for len(r) > 0 && r[0] == '0' {
		r = r[1:]
	}
	return r
}
