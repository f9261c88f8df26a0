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

// Package prompt asks for the data of an attendance sheet in the terminal.
package prompt

import (
	"context"
	"strings"

	"seehuhn.de/go/daftarhadir/sheet"
)

// Ask fills in a request by asking one question per field.
// Values from defaults, if non-nil, are offered as default answers.
func Ask(ctx context.Context, d Driver, defaults *sheet.Request) (*sheet.Request, error) {
	if defaults == nil {
		defaults = &sheet.Request{}
	}
	req := &sheet.Request{}

	text := []struct {
		msg string
		def string
		out *string
	}{
		{"Kategori TLH:", defaults.Category, &req.Category},
		{"Unit / Bagian:", defaults.Unit, &req.Unit},
		{"Direktorat/Fakultas:", defaults.Directorate, &req.Directorate},
		{"Periode (Bulan):", defaults.Period, &req.Period},
		{"Nama:", defaults.Name, &req.Name},
	}
	for _, q := range text {
		ans, err := d.Input(ctx, InputConfig{Message: q.msg, Default: q.def})
		if err != nil {
			return nil, err
		}
		*q.out = strings.TrimSpace(ans)
	}

	dates := []struct {
		msg string
		def sheet.Date
		out *sheet.Date
	}{
		{"Tanggal mulai:", defaults.Range.From, &req.Range.From},
		{"Tanggal selesai:", defaults.Range.To, &req.Range.To},
	}
	for _, q := range dates {
		day, err := askDate(ctx, d, q.msg, q.def)
		if err != nil {
			return nil, err
		}
		*q.out = day
	}

	ans, err := d.Input(ctx, InputConfig{
		Message:   "Hari libur:",
		Default:   formatHolidays(defaults.Holidays),
		Help:      "dates in the form YYYY-MM-DD, separated by commas",
		Validator: func(s string) error { _, err := parseHolidays(s); return err },
	})
	if err != nil {
		return nil, err
	}
	req.Holidays, err = parseHolidays(ans)
	if err != nil {
		return nil, err
	}

	req.SignDate, err = askDate(ctx, d, "Tanggal tanda tangan:", defaults.SignDate)
	if err != nil {
		return nil, err
	}

	return req, nil
}

func askDate(ctx context.Context, d Driver, msg string, def sheet.Date) (sheet.Date, error) {
	ans, err := d.Input(ctx, InputConfig{
		Message: msg,
		Default: def.String(),
		Help:    "a date in the form YYYY-MM-DD",
		Validator: func(s string) error {
			_, err := sheet.ParseDate(s)
			return err
		},
	})
	if err != nil {
		return sheet.Date{}, err
	}
	return sheet.ParseDate(ans)
}

// parseHolidays parses a comma-separated list of dates.
// Empty entries are ignored.
func parseHolidays(s string) ([]sheet.Date, error) {
	var res []sheet.Date
	for _, field := range strings.Split(s, ",") {
		d, err := sheet.ParseDate(field)
		if err != nil {
			return nil, err
		}
		if d.IsZero() {
			continue
		}
		res = append(res, d)
	}
	return res, nil
}

func formatHolidays(days []sheet.Date) string {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = d.String()
	}
	return strings.Join(parts, ", ")
}
