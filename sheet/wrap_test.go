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
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

func TestWrapName(t *testing.T) {
	type testCase struct {
		name string
		want []string
	}
	cases := []testCase{
		{"", []string{""}},
		{"Budi", []string{"Budi"}},
		{" Budi Santoso ", []string{"Budi Santoso"}},
		{"Siti Nurhaliza Putri", []string{"Siti Nurhaliza Putri"}}, // exactly 20
		{"Muhammad Rizky Pratama Putra", []string{"Muhammad Rizky", "Pratama Putra"}},
		{
			"Raden Ajeng Kartini Djojoadhiningrat",
			[]string{"Raden Ajeng Kartini", "Djojoadhiningrat"},
		},
		{
			"Anak Agung Gede Ngurah Made Rai Wirawan",
			[]string{"Anak Agung Gede", "Ngurah Made Rai", "Wirawan"},
		},
		// a trailing long word stays in one piece
		{"Wiryosuryoningratanprawiro", []string{"Wiryosuryoningratanprawiro"}},
		// a long word followed by more text is broken
		{
			"Wiryosuryoningratanprawiro Adi",
			[]string{"Wiryosuryoningratanp", "rawiro Adi"},
		},
	}
	for _, c := range cases {
		got := WrapName(c.name)
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("%q: %s", c.name, d)
		}
	}
}

func TestWrapNameLineLength(t *testing.T) {
	name := strings.Repeat("Abc De ", 20)
	lines := WrapName(name)
	if len(lines) < 2 {
		t.Fatalf("expected several lines, got %q", lines)
	}
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > MaxNameLine {
			t.Errorf("line %q has %d characters", line, n)
		}
	}
	joined := strings.Join(lines, " ")
	if joined != strings.TrimSpace(name) {
		t.Errorf("text was lost: %q", joined)
	}
}

func TestWrapNameNormalisation(t *testing.T) {
	// 20 characters, but 21 code points before NFC normalisation
	name := "Ade Irma Suryani Mai" + "\u0301"
	lines := WrapName(name)
	if len(lines) != 1 {
		t.Errorf("got %d lines: %q", len(lines), lines)
	}
}
