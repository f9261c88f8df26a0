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
	"fmt"
	"time"
)

// Form is a [Request] as submitted by a web form, with all dates in text
// form.  Browsers often send dates as UTC timestamps of local midnight;
// [Form.Request] converts these to the calendar date in a given zone.
type Form struct {
	Category    string    `json:"kategoriTLH" yaml:"kategoriTLH"`
	Unit        string    `json:"unit" yaml:"unit"`
	Directorate string    `json:"direktorat" yaml:"direktorat"`
	Period      string    `json:"periode" yaml:"periode"`
	Name        string    `json:"nama" yaml:"nama"`
	Range       FormRange `json:"dateRange" yaml:"dateRange"`
	Holidays    []string  `json:"holidays" yaml:"holidays"`
	SignDate    string    `json:"dateSign" yaml:"dateSign"`
}

// FormRange is the date range of a [Form].
type FormRange struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// Request converts the form data into a Request, using [ParseDateIn] for
// all dates.  Empty holiday entries are skipped.
func (f *Form) Request(loc *time.Location) (*Request, error) {
	req := &Request{
		Category:    f.Category,
		Unit:        f.Unit,
		Directorate: f.Directorate,
		Period:      f.Period,
		Name:        f.Name,
	}

	var err error
	req.Range.From, err = ParseDateIn(f.Range.From, loc)
	if err != nil {
		return nil, fmt.Errorf("dateRange.from: %w", err)
	}
	req.Range.To, err = ParseDateIn(f.Range.To, loc)
	if err != nil {
		return nil, fmt.Errorf("dateRange.to: %w", err)
	}
	for i, s := range f.Holidays {
		d, err := ParseDateIn(s, loc)
		if err != nil {
			return nil, fmt.Errorf("holidays[%d]: %w", i, err)
		}
		if !d.IsZero() {
			req.Holidays = append(req.Holidays, d)
		}
	}
	req.SignDate, err = ParseDateIn(f.SignDate, loc)
	if err != nil {
		return nil, fmt.Errorf("dateSign: %w", err)
	}

	return req, nil
}
