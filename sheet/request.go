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
	"errors"
	"time"
)

// ErrNoDateRange is returned by [Build] if the start or the end of the
// date range is missing.
var ErrNoDateRange = errors.New("date range is incomplete")

// Request holds the data of one attendance sheet.
//
// The field names used for JSON and YAML match the form which submits
// the data.
type Request struct {
	// Category is the TLH category ("Kategori TLH").
	Category string `json:"kategoriTLH" yaml:"kategoriTLH"`

	// Unit is the organisational unit ("Unit / Bagian").
	Unit string `json:"unit" yaml:"unit"`

	// Directorate is the directorate or faculty ("Direktorat/Fakultas").
	Directorate string `json:"direktorat" yaml:"direktorat"`

	// Period is the label of the accounting period, usually a month name.
	// It is printed as "Bulan <Period>".
	Period string `json:"periode" yaml:"periode"`

	// Name is the name of the worker.
	Name string `json:"nama" yaml:"nama"`

	// Range is the inclusive range of days covered by the sheet.
	Range DateRange `json:"dateRange" yaml:"dateRange"`

	// Holidays lists days which are shaded like weekends.
	Holidays []Date `json:"holidays" yaml:"holidays"`

	// SignDate is the date printed next to the signatures.
	SignDate Date `json:"dateSign" yaml:"dateSign"`
}

// DateRange is an inclusive range of days.
type DateRange struct {
	From Date `json:"from" yaml:"from"`
	To   Date `json:"to" yaml:"to"`
}

// Complete reports whether both ends of the range are set.
func (r DateRange) Complete() bool {
	return !r.From.IsZero() && !r.To.IsZero()
}

// Len returns the number of days in the range, counting both ends.
// An incomplete range has length 0.
func (r DateRange) Len() int {
	if !r.Complete() {
		return 0
	}
	n := r.From.daysUntil(r.To)
	if n < 0 {
		n = -n
	}
	return n + 1
}

// Days returns every day of the range r, starting with r.From.
// If r.To is before r.From, the days are listed in decreasing order.
// An incomplete range gives nil.
func Days(r DateRange) []Date {
	n := r.Len()
	if n == 0 {
		return nil
	}
	step := 1
	if r.To.Before(r.From) {
		step = -1
	}
	days := make([]Date, n)
	for i := range days {
		days[i] = r.From.AddDays(i * step)
	}
	return days
}

// IsWeekend reports whether d is a Saturday or a Sunday.
func IsWeekend(d Date) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsHoliday reports whether d is listed in req.Holidays.
func (req *Request) IsHoliday(d Date) bool {
	for _, h := range req.Holidays {
		if h == d {
			return true
		}
	}
	return false
}

// IsShaded reports whether the cell for day d is shaded on the sheet.
// This is the case for weekends and holidays.
func (req *Request) IsShaded(d Date) bool {
	return IsWeekend(d) || req.IsHoliday(d)
}
