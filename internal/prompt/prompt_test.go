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

package prompt

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/daftarhadir/sheet"
)

// scripted is a Driver which returns prepared answers in order.
// An empty answer selects the default.
type scripted struct {
	answers []string
	asked   []InputConfig
}

func (s *scripted) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if len(s.answers) == 0 {
		return "", errors.New("unexpected question " + cfg.Message)
	}
	ans := s.answers[0]
	s.answers = s.answers[1:]
	s.asked = append(s.asked, cfg)
	if ans == "" {
		ans = cfg.Default
	}
	if cfg.Validator != nil {
		if err := cfg.Validator(ans); err != nil {
			return "", err
		}
	}
	return ans, nil
}

func date(y int, m time.Month, d int) sheet.Date {
	return sheet.Date{Year: y, Month: m, Day: d}
}

func TestAsk(t *testing.T) {
	d := &scripted{answers: []string{
		"Administrasi",
		" Bagian Pengembangan Produk TI ",
		"Direktorat Pusat Teknologi Informasi",
		"Agustus 2024",
		"Siti Aminah",
		"2024-08-01",
		"2024-08-31",
		"2024-08-17, 2024-08-19,",
		"2024-09-02",
	}}
	req, err := Ask(context.Background(), d, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := &sheet.Request{
		Category:    "Administrasi",
		Unit:        "Bagian Pengembangan Produk TI",
		Directorate: "Direktorat Pusat Teknologi Informasi",
		Period:      "Agustus 2024",
		Name:        "Siti Aminah",
		Range: sheet.DateRange{
			From: date(2024, time.August, 1),
			To:   date(2024, time.August, 31),
		},
		Holidays: []sheet.Date{
			date(2024, time.August, 17),
			date(2024, time.August, 19),
		},
		SignDate: date(2024, time.September, 2),
	}
	if diff := cmp.Diff(want, req); diff != "" {
		t.Error(diff)
	}
	if len(d.answers) != 0 {
		t.Errorf("%d answers left over", len(d.answers))
	}
}

func TestAskDefaults(t *testing.T) {
	defaults := &sheet.Request{
		Category: "Teknis",
		Name:     "Budi",
		Range: sheet.DateRange{
			From: date(2024, time.January, 1),
			To:   date(2024, time.January, 7),
		},
		Holidays: []sheet.Date{date(2024, time.January, 1)},
	}
	d := &scripted{answers: make([]string, 9)}
	req, err := Ask(context.Background(), d, defaults)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(defaults, req); diff != "" {
		t.Error(diff)
	}
	if got := d.asked[7].Default; got != "2024-01-01" {
		t.Errorf("holiday default %q", got)
	}
}

func TestAskInvalidDate(t *testing.T) {
	d := &scripted{answers: []string{"", "", "", "", "", "1 Agustus"}}
	_, err := Ask(context.Background(), d, nil)
	if err == nil {
		t.Error("invalid date accepted")
	}
}

func TestAskAborted(t *testing.T) {
	_, err := Ask(context.Background(), abortDriver{}, nil)
	if !errors.Is(err, ErrAborted) {
		t.Errorf("got error %v, want ErrAborted", err)
	}
}

type abortDriver struct{}

func (abortDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	return "", ErrAborted
}

func TestParseHolidays(t *testing.T) {
	cases := []struct {
		in   string
		want []sheet.Date
		ok   bool
	}{
		{"", nil, true},
		{" , ", nil, true},
		{"2024-12-25", []sheet.Date{date(2024, time.December, 25)}, true},
		{"2024-12-25,2024-12-26", []sheet.Date{
			date(2024, time.December, 25),
			date(2024, time.December, 26),
		}, true},
		{"2024-12-25, besok", nil, false},
	}
	for _, c := range cases {
		got, err := parseHolidays(c.in)
		if (err == nil) != c.ok {
			t.Errorf("%q: unexpected error %v", c.in, err)
			continue
		}
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("%q: %s", c.in, diff)
		}
	}
}
