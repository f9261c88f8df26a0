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
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

// jakarta is UTC+7 without daylight saving time.
var jakarta = time.FixedZone("WIB", 7*60*60)

func TestParseDateIn(t *testing.T) {
	cases := []struct {
		in   string
		loc  *time.Location
		want Date
	}{
		{"2024-08-17", jakarta, Date{2024, time.August, 17}},
		{"2024-08-16T17:00:00Z", nil, Date{2024, time.August, 16}},
		{"2024-08-16T17:00:00Z", jakarta, Date{2024, time.August, 17}},
		{"2024-08-17T00:00:00+07:00", time.UTC, Date{2024, time.August, 16}},
		{"2024-08-17T00:00:00+07:00", jakarta, Date{2024, time.August, 17}},
		{"", jakarta, Date{}},
	}
	for _, c := range cases {
		got, err := ParseDateIn(c.in, c.loc)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseDateIn(%q, %v) = %s, want %s", c.in, c.loc, got, c.want)
		}
	}
}

func TestFormRequest(t *testing.T) {
	body := `{
		"kategoriTLH": "Administrasi",
		"nama": "Siti Aminah",
		"dateRange": {"from": "2024-07-31T17:00:00.000Z", "to": "2024-08-30T17:00:00.000Z"},
		"holidays": ["2024-08-16T17:00:00.000Z", null, ""],
		"dateSign": "2024-09-02"
	}`
	var f Form
	if err := json.Unmarshal([]byte(body), &f); err != nil {
		t.Fatal(err)
	}
	got, err := f.Request(jakarta)
	if err != nil {
		t.Fatal(err)
	}
	want := &Request{
		Category: "Administrasi",
		Name:     "Siti Aminah",
		Range: DateRange{
			From: Date{2024, time.August, 1},
			To:   Date{2024, time.August, 31},
		},
		Holidays: []Date{{2024, time.August, 17}},
		SignDate: Date{2024, time.September, 2},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
	if n := got.Range.Len(); n != 31 {
		t.Errorf("got %d days, want 31", n)
	}
}

func TestFormRequestYAML(t *testing.T) {
	body := "nama: Budi\ndateRange:\n  from: 2024-08-01\n  to: 2024-08-03\nholidays:\n  - 2024-08-02\n"
	var f Form
	if err := yaml.Unmarshal([]byte(body), &f); err != nil {
		t.Fatal(err)
	}
	got, err := f.Request(nil)
	if err != nil {
		t.Fatal(err)
	}
	if got.Range.Len() != 3 || len(got.Holidays) != 1 || got.Holidays[0] != (Date{2024, time.August, 2}) {
		t.Errorf("unexpected request %+v", got)
	}
}

func TestFormRequestInvalid(t *testing.T) {
	forms := []Form{
		{Range: FormRange{From: "kemarin"}},
		{Range: FormRange{To: "2024-13-01"}},
		{Holidays: []string{"2024-08-17", "17/08/2024"}},
		{SignDate: "besok"},
	}
	for i, f := range forms {
		if _, err := f.Request(nil); err == nil {
			t.Errorf("%d: invalid date accepted", i)
		}
	}
}
