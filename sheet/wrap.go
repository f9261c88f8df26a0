// seehuhn.de/go/daftarhadir - attendance sheets for daily casual workers
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package sheet

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// MaxNameLine is the number of characters of the worker name which fit
// on one line of the name cell.
const MaxNameLine = 20

// WrapName splits a worker name into the lines shown in the name cell.
//
// Names of at most MaxNameLine characters give a single line.  Longer
// names are broken at white space, such that every line holds at most
// MaxNameLine characters, counting the white space which separated it from
// the previous line.  A word which does not fit on a line is broken after
// MaxNameLine characters, unless it is the final word of the name.
// Lines are trimmed of surrounding white space.
//
// Characters are counted after NFC normalisation.
func WrapName(name string) []string {
	rr := []rune(norm.NFC.String(name))
	if len(rr) <= MaxNameLine {
		return []string{strings.TrimSpace(string(rr))}
	}

	var lines []string
	pos := 0
	for pos < len(rr) {
		end := breakAfter(rr, pos)
		if line := strings.TrimSpace(string(rr[pos:end])); line != "" {
			lines = append(lines, line)
		}
		pos = end
	}
	return lines
}

// breakAfter returns the end of the line which starts at rr[pos].
func breakAfter(rr []rune, pos int) int {
	limit := min(pos+MaxNameLine, len(rr))
	for end := limit; end > pos; end-- {
		if end == len(rr) || unicode.IsSpace(rr[end]) {
			return end
		}
	}

	// No break opportunity within the line.  A trailing word is kept in
	// one piece, everything else is broken hard.
	for _, r := range rr[pos:] {
		if unicode.IsSpace(r) {
			return limit
		}
	}
	return len(rr)
}
